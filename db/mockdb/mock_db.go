package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) AddGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) ListGames(ctx context.Context) ([]model.Game, error) {
	args := db.Called(ctx)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) ListGamesByDivision(ctx context.Context, division string) ([]model.Game, error) {
	args := db.Called(ctx, division)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) UpdateGameStatus(ctx context.Context, id string, status model.GameStatus) error {
	args := db.Called(ctx, id, status)
	return args.Error(0)
}

func (db *DB) InsertGoal(ctx context.Context, e *model.GoalEvent) error {
	args := db.Called(ctx, e)
	return args.Error(0)
}

func (db *DB) ListGoals(ctx context.Context, gameID string) ([]model.GoalEvent, error) {
	args := db.Called(ctx, gameID)

	var r []model.GoalEvent
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GoalEvent)
	}
	return r, args.Error(1)
}

func (db *DB) ListGoalsByPlayer(ctx context.Context, player string) ([]model.GoalEvent, error) {
	args := db.Called(ctx, player)

	var r []model.GoalEvent
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GoalEvent)
	}
	return r, args.Error(1)
}

func (db *DB) InsertPenalty(ctx context.Context, e *model.PenaltyEvent) error {
	args := db.Called(ctx, e)
	return args.Error(0)
}

func (db *DB) ListPenalties(ctx context.Context, gameID string) ([]model.PenaltyEvent, error) {
	args := db.Called(ctx, gameID)

	var r []model.PenaltyEvent
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PenaltyEvent)
	}
	return r, args.Error(1)
}

func (db *DB) ListPenaltiesByPlayer(ctx context.Context, player string) ([]model.PenaltyEvent, error) {
	args := db.Called(ctx, player)

	var r []model.PenaltyEvent
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PenaltyEvent)
	}
	return r, args.Error(1)
}

func (db *DB) InsertShot(ctx context.Context, e *model.ShotEvent) error {
	args := db.Called(ctx, e)
	return args.Error(0)
}

func (db *DB) ListShots(ctx context.Context, gameID string) ([]model.ShotEvent, error) {
	args := db.Called(ctx, gameID)

	var r []model.ShotEvent
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ShotEvent)
	}
	return r, args.Error(1)
}

func (db *DB) InsertAttendance(ctx context.Context, a *model.AttendanceRecord) error {
	args := db.Called(ctx, a)
	return args.Error(0)
}

func (db *DB) ListAttendance(ctx context.Context, gameID string) ([]model.AttendanceRecord, error) {
	args := db.Called(ctx, gameID)

	var r []model.AttendanceRecord
	if args.Get(0) != nil {
		r = args.Get(0).([]model.AttendanceRecord)
	}
	return r, args.Error(1)
}

func (db *DB) Migrate(ctx context.Context) error {
	args := db.Called(ctx)
	return args.Error(0)
}
