package controller

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

const defaultPenaltyMinutes = 2

// PenaltyInput is a penalty submission. Minutes defaults to the standard
// two-minute minor when zero.
type PenaltyInput struct {
	GameID      string `json:"gameId"`
	Team        string `json:"team"`
	Player      string `json:"player"`
	PenaltyType string `json:"penaltyType"`
	Period      int    `json:"period"`
	Time        string `json:"time"`
	Minutes     int    `json:"minutes,omitempty"`
}

func (c *controller) RecordPenalty(ctx context.Context, in PenaltyInput) (*model.PenaltyEvent, error) {
	if err := requireFields(map[string]string{
		"gameId":      in.GameID,
		"team":        in.Team,
		"player":      in.Player,
		"penaltyType": in.PenaltyType,
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
	if in.Minutes < 0 {
		return nil, invalidf("minutes", "must not be negative, got: %d", in.Minutes)
	}
	minutes := in.Minutes
	if minutes == 0 {
		minutes = defaultPenaltyMinutes
	}

	g, err := c.db.GetGame(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	if !g.HasTeam(in.Team) {
		return nil, invalidf("team", "%q is not playing in this game (%s vs %s)",
			in.Team, g.HomeTeam, g.AwayTeam)
	}

	e := &model.PenaltyEvent{
		ID:          uuid.NewString(),
		GameID:      g.ID,
		Team:        canonicalTeam(g, in.Team),
		Player:      strings.TrimSpace(in.Player),
		PenaltyType: strings.TrimSpace(in.PenaltyType),
		Period:      in.Period,
		Clock:       clock,
		Minutes:     minutes,
		RecordedAt:  c.clock.Now().UTC(),
	}

	if err := c.db.InsertPenalty(ctx, e); err != nil {
		return nil, err
	}

	if c.sink != nil {
		c.sink.PublishPenalty(*e)
	}
	c.announcePenalty(g, e)

	return e, nil
}

func (c *controller) ListPenalties(ctx context.Context, gameID string) ([]model.PenaltyEvent, error) {
	return c.db.ListPenalties(ctx, gameID)
}
