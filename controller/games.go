package controller

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

func (c *controller) AddGame(ctx context.Context, g *model.Game) (*model.Game, error) {
	g.HomeTeam = strings.TrimSpace(g.HomeTeam)
	g.AwayTeam = strings.TrimSpace(g.AwayTeam)
	if g.HomeTeam == "" {
		return nil, invalidf("homeTeam", "is required")
	}
	if g.AwayTeam == "" {
		return nil, invalidf("awayTeam", "is required")
	}
	if strings.EqualFold(g.HomeTeam, g.AwayTeam) {
		return nil, invalidf("awayTeam", "a team cannot play itself")
	}
	if g.ScheduledAt.IsZero() {
		return nil, invalidf("scheduledAt", "is required")
	}

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Status == "" {
		g.Status = model.StatusScheduled
	}

	if err := c.db.AddGame(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (c *controller) GetGame(ctx context.Context, id string) (*model.Game, error) {
	return c.db.GetGame(ctx, id)
}

func (c *controller) ListGames(ctx context.Context, division string) ([]model.Game, error) {
	if division = strings.TrimSpace(division); division != "" {
		return c.db.ListGamesByDivision(ctx, division)
	}
	return c.db.ListGames(ctx)
}

func (c *controller) UpdateGameStatus(ctx context.Context, id string, status string) (*model.Game, error) {
	parsed, ok := model.ParseGameStatus(status)
	if !ok {
		return nil, invalidf("status", "unknown status: %q", status)
	}

	if err := c.db.UpdateGameStatus(ctx, id, parsed); err != nil {
		return nil, err
	}
	return c.db.GetGame(ctx, id)
}
