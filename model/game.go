package model

import (
	"strings"
	"time"
)

type GameStatus string

const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in-progress"
	StatusFinal      GameStatus = "final"
)

func ParseGameStatus(s string) (GameStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scheduled":
		return StatusScheduled, true
	case "in-progress", "in progress", "live":
		return StatusInProgress, true
	case "final", "completed":
		return StatusFinal, true
	default:
		return "", false
	}
}

// Division labels as used by the league office. Free-form on purpose, new
// divisions show up in the schedule feed without warning.
const (
	DivisionGold   = "Gold"
	DivisionSilver = "Silver"
	DivisionBronze = "Bronze"
)

// Game is one scheduled contest. Created at schedule-import time and only
// ever mutated to update its score or status; never deleted during a season.
type Game struct {
	ID          string     `json:"id"`
	HomeTeam    string     `json:"homeTeam"`
	AwayTeam    string     `json:"awayTeam"`
	Division    string     `json:"division"`
	ScheduledAt time.Time  `json:"scheduledAt"`
	Status      GameStatus `json:"status"`
	// Cached score columns, bumped when a goal is recorded. The event log
	// is the source of truth; these exist so schedule pages don't have to
	// scan events for every game.
	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`
}

// HasTeam reports whether name matches either of the game's two teams.
// Team names come from a schedule feed and from scorekeepers typing on a
// tablet, so the comparison ignores case and surrounding whitespace.
func (g *Game) HasTeam(name string) bool {
	name = strings.TrimSpace(name)
	return strings.EqualFold(g.HomeTeam, name) || strings.EqualFold(g.AwayTeam, name)
}

// Opponent returns the other team's name, or "" if team is not in the game.
func (g *Game) Opponent(team string) string {
	team = strings.TrimSpace(team)
	if strings.EqualFold(g.HomeTeam, team) {
		return g.AwayTeam
	}
	if strings.EqualFold(g.AwayTeam, team) {
		return g.HomeTeam
	}
	return ""
}

func (g *Game) FormattedScheduledAt() string {
	if g.ScheduledAt.IsZero() {
		return "TBD"
	}
	return g.ScheduledAt.Format("Mon Jan 2, 3:04 PM")
}
