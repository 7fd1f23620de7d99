package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/chattanoogahockey/scorekeeper-sub003/db"
	"github.com/chattanoogahockey/scorekeeper-sub003/model"
	"github.com/chattanoogahockey/scorekeeper-sub003/platforms/announcer"
	"github.com/chattanoogahockey/scorekeeper-sub003/platforms/leaguesite"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// RecordGoal validates the submission, computes the derived counters by
	// counting the goals already recorded for the game, persists the event,
	// and returns it with its generated id. Writers to the same game are
	// serialized in-process.
	RecordGoal(ctx context.Context, in GoalInput) (*model.GoalEvent, error)
	RecordPenalty(ctx context.Context, in PenaltyInput) (*model.PenaltyEvent, error)
	RecordShot(ctx context.Context, in ShotInput) (*model.ShotEvent, error)
	RecordAttendance(ctx context.Context, in AttendanceInput) (*model.AttendanceRecord, error)

	ListGoals(ctx context.Context, gameID string) ([]model.GoalEvent, error)
	ListPenalties(ctx context.Context, gameID string) ([]model.PenaltyEvent, error)

	// PlayerGameLine recomputes a player's goals/assists/penalty minutes for
	// one game by scanning the event log. A player or game with no events
	// yields an all-zero line, not an error.
	PlayerGameLine(ctx context.Context, gameID, player string) (*model.PlayerGameLine, error)
	PlayerSeasonLine(ctx context.Context, player string) (*model.PlayerSeasonLine, error)
	GameSummary(ctx context.Context, gameID string) (*model.GameSummary, error)

	AddGame(ctx context.Context, g *model.Game) (*model.Game, error)
	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListGames(ctx context.Context, division string) ([]model.Game, error)
	UpdateGameStatus(ctx context.Context, id string, status string) (*model.Game, error)

	// SyncSchedule pulls the season schedule from the league site and
	// upserts the games. Existing games keep their score and status.
	SyncSchedule(ctx context.Context) (int, error)
	RunPeriodicScheduleSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

// EventSink receives every recorded event for live distribution. The web
// layer's websocket hub implements it; publishing must never block.
type EventSink interface {
	PublishGoal(e model.GoalEvent)
	PublishPenalty(e model.PenaltyEvent)
}

type controller struct {
	clock     clock.Clock
	db        db.DB
	announcer announcer.Client
	site      leaguesite.Client
	sink      EventSink
	locks     *gameLocks
}

func New(clock clock.Clock, db db.DB, announcer announcer.Client, site leaguesite.Client, sink EventSink) (C, error) {
	c := &controller{
		clock:     clock,
		db:        db,
		announcer: announcer,
		site:      site,
		sink:      sink,
		locks:     newGameLocks(),
	}
	return c, nil
}
