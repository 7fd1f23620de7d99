package controller

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

type ShotInput struct {
	GameID string `json:"gameId"`
	Team   string `json:"team"`
	Player string `json:"player"`
	Period int    `json:"period"`
	Time   string `json:"time"`
	OnGoal bool   `json:"onGoal"`
}

func (c *controller) RecordShot(ctx context.Context, in ShotInput) (*model.ShotEvent, error) {
	if err := requireFields(map[string]string{
		"gameId": in.GameID,
		"team":   in.Team,
		"player": in.Player,
	}); err != nil {
		return nil, err
	}
	if !model.ValidPeriod(in.Period) {
		return nil, invalidf("period", "must be 1-3 or %d for overtime, got: %d", model.PeriodOvertime, in.Period)
	}
	clock, err := model.ParseGameClock(in.Period, in.Time)
	if err != nil {
		return nil, &ValidationError{Field: "time", Reason: err.Error()}
	}

	g, err := c.db.GetGame(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	if !g.HasTeam(in.Team) {
		return nil, invalidf("team", "%q is not playing in this game (%s vs %s)",
			in.Team, g.HomeTeam, g.AwayTeam)
	}

	e := &model.ShotEvent{
		ID:         uuid.NewString(),
		GameID:     g.ID,
		Team:       canonicalTeam(g, in.Team),
		Shooter:    strings.TrimSpace(in.Player),
		Period:     in.Period,
		Clock:      clock,
		OnGoal:     in.OnGoal,
		RecordedAt: c.clock.Now().UTC(),
	}

	if err := c.db.InsertShot(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
