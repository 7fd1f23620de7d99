package db

import (
	"context"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

// DB is the event store. Goal, penalty, shot, and attendance records are
// immutable once inserted; games are mutated only to update score or status.
type DB interface {
	AddGame(ctx context.Context, g *model.Game) error
	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.Game, error)
	ListGamesByDivision(ctx context.Context, division string) ([]model.Game, error)
	UpdateGameStatus(ctx context.Context, id string, status model.GameStatus) error

	// InsertGoal persists the event and bumps the game's cached score in a
	// single transaction.
	InsertGoal(ctx context.Context, e *model.GoalEvent) error
	// Goals are returned in recording order, oldest first.
	ListGoals(ctx context.Context, gameID string) ([]model.GoalEvent, error)
	ListGoalsByPlayer(ctx context.Context, player string) ([]model.GoalEvent, error)

	InsertPenalty(ctx context.Context, e *model.PenaltyEvent) error
	ListPenalties(ctx context.Context, gameID string) ([]model.PenaltyEvent, error)
	ListPenaltiesByPlayer(ctx context.Context, player string) ([]model.PenaltyEvent, error)

	InsertShot(ctx context.Context, e *model.ShotEvent) error
	ListShots(ctx context.Context, gameID string) ([]model.ShotEvent, error)

	InsertAttendance(ctx context.Context, a *model.AttendanceRecord) error
	ListAttendance(ctx context.Context, gameID string) ([]model.AttendanceRecord, error)

	// Migrate applies any schema migrations that have not run yet. Safe to
	// call on every startup; already-applied steps are skipped.
	Migrate(ctx context.Context) error
}
