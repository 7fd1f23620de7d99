package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

// PlayerGameLine scans the game's goal and penalty events and accumulates
// the player's counters. Nothing is cached; the event log is re-read on
// every call, so the result can be slow but never stale. An unknown game id
// scans an empty set and yields the all-zero line.
func (c *controller) PlayerGameLine(ctx context.Context, gameID, player string) (*model.PlayerGameLine, error) {
	goals, err := c.db.ListGoals(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("error loading goals: %w", err)
	}
	penalties, err := c.db.ListPenalties(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("error loading penalties: %w", err)
	}

	player = strings.TrimSpace(player)
	line := &model.PlayerGameLine{Player: player, GameID: gameID}
	accumulate(line, player, goals, penalties)
	return line, nil
}

// PlayerSeasonLine is PlayerGameLine across every game the player has an
// event in.
func (c *controller) PlayerSeasonLine(ctx context.Context, player string) (*model.PlayerSeasonLine, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return nil, invalidf("player", "is required")
	}

	goals, err := c.db.ListGoalsByPlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("error loading goals: %w", err)
	}
	penalties, err := c.db.ListPenaltiesByPlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("error loading penalties: %w", err)
	}

	line := &model.PlayerSeasonLine{Player: player}
	games := make(map[string]bool)
	for _, g := range goals {
		games[g.GameID] = true
		if strings.EqualFold(g.Scorer, player) {
			line.Goals++
		}
		if strings.EqualFold(g.Assist, player) || strings.EqualFold(g.SecondAssist, player) {
			line.Assists++
		}
	}
	for _, p := range penalties {
		games[p.GameID] = true
		if strings.EqualFold(p.Player, player) {
			line.PenaltyMinutes += p.Minutes
		}
	}
	line.Games = len(games)
	return line, nil
}

// GameSummary recounts the score from the goal events rather than trusting
// the game's cached columns, and builds a line for every player that shows
// up in the log.
func (c *controller) GameSummary(ctx context.Context, gameID string) (*model.GameSummary, error) {
	g, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	goals, err := c.db.ListGoals(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("error loading goals: %w", err)
	}
	penalties, err := c.db.ListPenalties(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("error loading penalties: %w", err)
	}

	summary := &model.GameSummary{Game: *g}
	players := make(map[string]bool)
	for _, e := range goals {
		if strings.EqualFold(e.Team, g.HomeTeam) {
			summary.HomeGoals++
		} else {
			summary.AwayGoals++
		}
		for _, name := range []string{e.Scorer, e.Assist, e.SecondAssist} {
			if name != "" {
				players[name] = true
			}
		}
	}
	for _, e := range penalties {
		players[e.Player] = true
	}

	for name := range players {
		line := &model.PlayerGameLine{Player: name, GameID: gameID}
		accumulate(line, name, goals, penalties)
		summary.Players = append(summary.Players, *line)
	}
	sort.Slice(summary.Players, func(i, j int) bool {
		return summary.Players[i].Player < summary.Players[j].Player
	})
	return summary, nil
}

func accumulate(line *model.PlayerGameLine, player string, goals []model.GoalEvent, penalties []model.PenaltyEvent) {
	for _, g := range goals {
		if strings.EqualFold(g.Scorer, player) {
			line.Goals++
		}
		if strings.EqualFold(g.Assist, player) || strings.EqualFold(g.SecondAssist, player) {
			line.Assists++
		}
	}
	for _, p := range penalties {
		if strings.EqualFold(p.Player, player) {
			line.PenaltyMinutes += p.Minutes
		}
	}
}
