package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/chattanoogahockey/scorekeeper-sub003/containers"
	"github.com/chattanoogahockey/scorekeeper-sub003/db"
	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

var (
	GoldOpener = &model.Game{
		ID:          "2026-03-14-gold-1",
		HomeTeam:    "Bachstreet Boys",
		AwayTeam:    "Whiskey Dekes",
		Division:    model.DivisionGold,
		ScheduledAt: time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC),
		Status:      model.StatusScheduled,
	}
	SilverOpener = &model.Game{
		ID:          "2026-03-14-silver-1",
		HomeTeam:    "Puck Norris",
		AwayTeam:    "Mighty Drunks",
		Division:    model.DivisionSilver,
		ScheduledAt: time.Date(2026, 3, 14, 21, 45, 0, 0, time.UTC),
		Status:      model.StatusScheduled,
	}
	BronzeOpener = &model.Game{
		ID:          "2026-03-15-bronze-1",
		HomeTeam:    "Rink Rats",
		AwayTeam:    "Benchwarmers",
		Division:    model.DivisionBronze,
		ScheduledAt: time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC),
		Status:      model.StatusScheduled,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.NewMock()
	clock.Set(time.Date(2026, 3, 14, 20, 45, 0, 0, time.UTC))

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatalf("error migrating db in test container: %v", err)
	}

	if err := InsertTestGames(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestGames(db db.DB) error {
	games := []*model.Game{
		GoldOpener,
		SilverOpener,
		BronzeOpener,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, g := range games {
		game := *g
		if err := db.AddGame(ctx, &game); err != nil {
			return err
		}
	}

	return nil
}
