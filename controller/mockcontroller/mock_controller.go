package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/chattanoogahockey/scorekeeper-sub003/controller"
	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

type C struct {
	mock.Mock
}

func (c *C) RecordGoal(ctx context.Context, in controller.GoalInput) (*model.GoalEvent, error) {
	args := c.Called(ctx, in)

	var r *model.GoalEvent
	if args.Get(0) != nil {
		r = args.Get(0).(*model.GoalEvent)
	}
	return r, args.Error(1)
}

func (c *C) RecordPenalty(ctx context.Context, in controller.PenaltyInput) (*model.PenaltyEvent, error) {
	args := c.Called(ctx, in)

	var r *model.PenaltyEvent
	if args.Get(0) != nil {
		r = args.Get(0).(*model.PenaltyEvent)
	}
	return r, args.Error(1)
}

func (c *C) RecordShot(ctx context.Context, in controller.ShotInput) (*model.ShotEvent, error) {
	args := c.Called(ctx, in)

	var r *model.ShotEvent
	if args.Get(0) != nil {
		r = args.Get(0).(*model.ShotEvent)
	}
	return r, args.Error(1)
}

func (c *C) RecordAttendance(ctx context.Context, in controller.AttendanceInput) (*model.AttendanceRecord, error) {
	args := c.Called(ctx, in)

	var r *model.AttendanceRecord
	if args.Get(0) != nil {
		r = args.Get(0).(*model.AttendanceRecord)
	}
	return r, args.Error(1)
}

func (c *C) ListGoals(ctx context.Context, gameID string) ([]model.GoalEvent, error) {
	args := c.Called(ctx, gameID)

	var r []model.GoalEvent
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GoalEvent)
	}
	return r, args.Error(1)
}

func (c *C) ListPenalties(ctx context.Context, gameID string) ([]model.PenaltyEvent, error) {
	args := c.Called(ctx, gameID)

	var r []model.PenaltyEvent
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PenaltyEvent)
	}
	return r, args.Error(1)
}

func (c *C) PlayerGameLine(ctx context.Context, gameID, player string) (*model.PlayerGameLine, error) {
	args := c.Called(ctx, gameID, player)

	var r *model.PlayerGameLine
	if args.Get(0) != nil {
		r = args.Get(0).(*model.PlayerGameLine)
	}
	return r, args.Error(1)
}

func (c *C) PlayerSeasonLine(ctx context.Context, player string) (*model.PlayerSeasonLine, error) {
	args := c.Called(ctx, player)

	var r *model.PlayerSeasonLine
	if args.Get(0) != nil {
		r = args.Get(0).(*model.PlayerSeasonLine)
	}
	return r, args.Error(1)
}

func (c *C) GameSummary(ctx context.Context, gameID string) (*model.GameSummary, error) {
	args := c.Called(ctx, gameID)

	var r *model.GameSummary
	if args.Get(0) != nil {
		r = args.Get(0).(*model.GameSummary)
	}
	return r, args.Error(1)
}

func (c *C) AddGame(ctx context.Context, g *model.Game) (*model.Game, error) {
	args := c.Called(ctx, g)

	var r *model.Game
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Game)
	}
	return r, args.Error(1)
}

func (c *C) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := c.Called(ctx, id)

	var r *model.Game
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Game)
	}
	return r, args.Error(1)
}

func (c *C) ListGames(ctx context.Context, division string) ([]model.Game, error) {
	args := c.Called(ctx, division)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (c *C) UpdateGameStatus(ctx context.Context, id string, status string) (*model.Game, error) {
	args := c.Called(ctx, id, status)

	var r *model.Game
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Game)
	}
	return r, args.Error(1)
}

func (c *C) SyncSchedule(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) RunPeriodicScheduleSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
