package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

// GoalInput is a goal submission as it arrives from the scorekeeping
// client. Team must be one of the game's two team names; ShotType and
// GoalType default to "Wrist Shot" and "Regular" when blank.
type GoalInput struct {
	GameID       string `json:"gameId"`
	Team         string `json:"team"`
	Player       string `json:"player"`
	Period       int    `json:"period"`
	Time         string `json:"time"`
	Assist       string `json:"assist,omitempty"`
	SecondAssist string `json:"secondAssist,omitempty"`
	ShotType     string `json:"shotType,omitempty"`
	GoalType     string `json:"goalType,omitempty"`
	Breakaway    bool   `json:"breakaway,omitempty"`
}

func (c *controller) RecordGoal(ctx context.Context, in GoalInput) (*model.GoalEvent, error) {
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
	team := canonicalTeam(g, in.Team)

	// Counters are derived by counting the rows already in the store, so
	// the count and the insert must not interleave with another writer for
	// this game. See gameLocks for the cross-process caveat.
	c.locks.Lock(g.ID)
	defer c.locks.Unlock(g.ID)

	prior, err := c.db.ListGoals(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading prior goals: %w", err)
	}

	scorer := strings.TrimSpace(in.Player)
	teamGoals, otherGoals, scorerGoals := 0, 0, 0
	for _, p := range prior {
		if strings.EqualFold(p.Team, team) {
			teamGoals++
		} else {
			otherGoals++
		}
		if strings.EqualFold(p.Scorer, scorer) {
			scorerGoals++
		}
	}

	e := &model.GoalEvent{
		ID:                uuid.NewString(),
		GameID:            g.ID,
		Team:              team,
		Scorer:            scorer,
		Assist:            strings.TrimSpace(in.Assist),
		SecondAssist:      strings.TrimSpace(in.SecondAssist),
		Period:            in.Period,
		Clock:             clock,
		ShotType:          model.CanonicalShotType(in.ShotType),
		GoalType:          model.CanonicalGoalType(in.GoalType),
		Breakaway:         in.Breakaway,
		TeamGoalsFor:      teamGoals + 1,
		TeamGoalsAgainst:  otherGoals,
		ScorerGoalsInGame: scorerGoals + 1,
		RecordedAt:        c.clock.Now().UTC(),
	}

	if err := c.db.InsertGoal(ctx, e); err != nil {
		return nil, err
	}

	if c.sink != nil {
		c.sink.PublishGoal(*e)
	}
	c.announceGoal(g, e)

	return e, nil
}

func (c *controller) ListGoals(ctx context.Context, gameID string) ([]model.GoalEvent, error) {
	return c.db.ListGoals(ctx, gameID)
}

// requireFields returns a ValidationError naming the first blank field.
func requireFields(fields map[string]string) error {
	// Check in a fixed order so the reported field is deterministic.
	for _, name := range []string{"gameId", "team", "player", "penaltyType", "time"} {
		if v, ok := fields[name]; ok && strings.TrimSpace(v) == "" {
			return invalidf(name, "is required")
		}
	}
	return nil
}

// canonicalTeam returns the game's exact spelling of the submitted team so
// stored events always match the schedule feed.
func canonicalTeam(g *model.Game, team string) string {
	if strings.EqualFold(g.HomeTeam, strings.TrimSpace(team)) {
		return g.HomeTeam
	}
	return g.AwayTeam
}
