package controller

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

type AttendanceInput struct {
	GameID  string   `json:"gameId"`
	Team    string   `json:"team"`
	Players []string `json:"players"`
}

func (c *controller) RecordAttendance(ctx context.Context, in AttendanceInput) (*model.AttendanceRecord, error) {
	if err := requireFields(map[string]string{
		"gameId": in.GameID,
		"team":   in.Team,
	}); err != nil {
		return nil, err
	}

	players := make([]string, 0, len(in.Players))
	for _, p := range in.Players {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	if len(players) == 0 {
		return nil, invalidf("players", "at least one player is required")
	}

	g, err := c.db.GetGame(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	if !g.HasTeam(in.Team) {
		return nil, invalidf("team", "%q is not playing in this game (%s vs %s)",
			in.Team, g.HomeTeam, g.AwayTeam)
	}

	a := &model.AttendanceRecord{
		ID:         uuid.NewString(),
		GameID:     g.ID,
		Team:       canonicalTeam(g, in.Team),
		Players:    players,
		RecordedAt: c.clock.Now().UTC(),
	}

	if err := c.db.InsertAttendance(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
