package model

// PlayerGameLine is a player's stat line for a single game. It is never
// stored; it is recomputed by scanning the game's events on every read.
type PlayerGameLine struct {
	Player         string `json:"player"`
	GameID         string `json:"gameId"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	PenaltyMinutes int    `json:"penaltyMinutes"`
}

// PlayerSeasonLine accumulates a player's counters across every game they
// appear in, plus the number of distinct games.
type PlayerSeasonLine struct {
	Player         string `json:"player"`
	Games          int    `json:"games"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	PenaltyMinutes int    `json:"penaltyMinutes"`
}

// GameSummary is a game together with its event-derived score and the stat
// lines of everybody who recorded an event in it. The score here is
// recounted from the goal events rather than read from the game's cached
// columns.
type GameSummary struct {
	Game      Game             `json:"game"`
	HomeGoals int              `json:"homeGoals"`
	AwayGoals int              `json:"awayGoals"`
	Players   []PlayerGameLine `json:"players"`
}