package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/chattanoogahockey/scorekeeper-sub003/db/mockdb"
	"github.com/chattanoogahockey/scorekeeper-sub003/model"
	"github.com/chattanoogahockey/scorekeeper-sub003/platforms/leaguesite/mockleaguesite"
)

func scheduleFixture() []model.Game {
	return []model.Game{
		{
			ID:          "2026-03-14-gold-1",
			HomeTeam:    "Bachstreet Boys",
			AwayTeam:    "Whiskey Dekes",
			Division:    model.DivisionGold,
			ScheduledAt: time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2026-03-14-silver-1",
			HomeTeam:    "Puck Norris",
			AwayTeam:    "Mighty Drunks",
			Division:    model.DivisionSilver,
			ScheduledAt: time.Date(2026, 3, 14, 21, 45, 0, 0, time.UTC),
		},
	}
}

func newScheduleController(t *testing.T, mockDB *mockdb.DB, site *mockleaguesite.Client) C {
	t.Helper()

	c, err := New(newTestClock(), mockDB, nil, site, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return c
}

func TestSyncSchedule(t *testing.T) {
	site := &mockleaguesite.Client{}
	site.On("LoadSchedule").Return(scheduleFixture(), nil)

	mockDB := &mockdb.DB{}
	mockDB.On("AddGame", mock.Anything, mock.Anything).Return(nil)

	c := newScheduleController(t, mockDB, site)

	count, err := c.SyncSchedule(context.Background())
	if err != nil {
		t.Fatalf("error syncing schedule: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 games synced, got %d", count)
	}
	mockDB.AssertNumberOfCalls(t, "AddGame", 2)
}

func TestSyncSchedule_siteUnavailable(t *testing.T) {
	site := &mockleaguesite.Client{}
	siteErr := errors.New("league site returned 502")
	site.On("LoadSchedule").Return(nil, siteErr)

	mockDB := &mockdb.DB{}
	c := newScheduleController(t, mockDB, site)

	_, err := c.SyncSchedule(context.Background())
	if !errors.Is(err, siteErr) {
		t.Errorf("expected the site error to be wrapped, got: %v", err)
	}
	mockDB.AssertNotCalled(t, "AddGame", mock.Anything, mock.Anything)
}

func TestSyncSchedule_stopsOnStoreError(t *testing.T) {
	site := &mockleaguesite.Client{}
	site.On("LoadSchedule").Return(scheduleFixture(), nil)

	mockDB := &mockdb.DB{}
	storeErr := errors.New("connection reset")
	mockDB.On("AddGame", mock.Anything, mock.Anything).Return(nil).Once()
	mockDB.On("AddGame", mock.Anything, mock.Anything).Return(storeErr)

	c := newScheduleController(t, mockDB, site)

	count, err := c.SyncSchedule(context.Background())
	if !errors.Is(err, storeErr) {
		t.Errorf("expected the store error to be wrapped, got: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 game synced before the failure, got %d", count)
	}
}

func TestRunPeriodicScheduleSync_shutdown(t *testing.T) {
	site := &mockleaguesite.Client{}
	site.On("LoadSchedule").Return([]model.Game{}, nil)

	mockDB := &mockdb.DB{}
	c := newScheduleController(t, mockDB, site)

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go c.RunPeriodicScheduleSync(time.Hour, shutdown, wg)
	close(shutdown)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Errorf("expected the job to stop on shutdown")
	}
}
