package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/chattanoogahockey/scorekeeper-sub003/db/mockdb"
	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

func TestRecordAttendance(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockDB.On("GetGame", mock.Anything, "G1").Return(testGame, nil)
	var saved *model.AttendanceRecord
	insertCall := mockDB.On("InsertAttendance", mock.Anything, mock.Anything)
	insertCall.Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.AttendanceRecord)
		insertCall.ReturnArguments = mock.Arguments{nil}
	})
	c := newTestController(t, mockDB)

	a, err := c.RecordAttendance(context.Background(), AttendanceInput{
		GameID:  "G1",
		Team:    "Bachstreet Boys",
		Players: []string{"J. Smith", "  ", "A. Jones ", ""},
	})
	if err != nil {
		t.Fatalf("error recording attendance: %v", err)
	}

	if len(a.Players) != 2 {
		t.Fatalf("expected blank names to be dropped, got: %v", a.Players)
	}
	if a.Players[0] != "J. Smith" || a.Players[1] != "A. Jones" {
		t.Errorf("expected trimmed names, got: %v", a.Players)
	}
	if saved == nil || saved.ID == "" {
		t.Errorf("expected the record to be persisted with a generated id")
	}
}

func TestRecordAttendance_noPlayers(t *testing.T) {
	mockDB := &mockdb.DB{}
	c := newTestController(t, mockDB)

	_, err := c.RecordAttendance(context.Background(), AttendanceInput{
		GameID:  "G1",
		Team:    "Bachstreet Boys",
		Players: []string{" ", ""},
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected a ValidationError, got: %v", err)
	}
	if vErr.Field != "players" {
		t.Errorf("expected the players field to be rejected, got: %s", vErr.Field)
	}
	mockDB.AssertNotCalled(t, "InsertAttendance", mock.Anything, mock.Anything)
}
