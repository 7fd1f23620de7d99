package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Period numbers. Roller hockey plays three periods plus sudden-death
// overtime; OT is stored as period 4 and rendered as "OT".
const (
	PeriodOvertime = 4

	periodMinutes = 15
	otMinutes     = 5
)

func ValidPeriod(p int) bool {
	return p >= 1 && p <= PeriodOvertime
}

func PeriodLabel(p int) string {
	if p == PeriodOvertime {
		return "OT"
	}
	return fmt.Sprintf("%d", p)
}

// GameClock is an in-period time parsed from the scorekeeper's MM:SS entry.
type GameClock struct {
	Minutes int
	Seconds int
}

func (c GameClock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Minutes, c.Seconds)
}

// MarshalJSON renders the clock as the same "MM:SS" string scorekeepers
// type in.
func (c GameClock) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

func (c *GameClock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	var m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d", &m, &sec); err != nil {
		return fmt.Errorf("clock must be in MM:SS format, got: %q", s)
	}
	c.Minutes, c.Seconds = m, sec
	return nil
}

// ParseGameClock parses an MM:SS string and checks it against the bounds of
// the given period (15:00 for regulation, 5:00 for OT).
func ParseGameClock(period int, s string) (GameClock, error) {
	s = strings.TrimSpace(s)
	var m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d", &m, &sec); err != nil || len(strings.Split(s, ":")) != 2 {
		return GameClock{}, fmt.Errorf("time must be in MM:SS format, got: %q", s)
	}
	if sec < 0 || sec > 59 {
		return GameClock{}, fmt.Errorf("seconds out of range in %q", s)
	}
	limit := periodMinutes
	if period == PeriodOvertime {
		limit = otMinutes
	}
	if m < 0 || m > limit || (m == limit && sec > 0) {
		return GameClock{}, fmt.Errorf("time %q is outside the bounds of period %s", s, PeriodLabel(period))
	}
	return GameClock{Minutes: m, Seconds: sec}, nil
}

// Shot and goal types as the scorekeeping tablet reports them. The store
// canonicalizes these spellings; see db.Migrate.
const (
	ShotTypeWrist      = "Wrist Shot"
	ShotTypeSlap       = "Slap Shot"
	ShotTypeSnap       = "Snap Shot"
	ShotTypeBackhand   = "Backhand"
	ShotTypeTipIn      = "Tip-In"
	ShotTypeWraparound = "Wraparound"

	GoalTypeRegular     = "Regular"
	GoalTypePowerPlay   = "Power Play"
	GoalTypeShortHanded = "Short-Handed"
)

// CanonicalShotType maps legacy and free-form spellings onto the canonical
// set. Unknown values pass through untouched so nothing is ever dropped.
func CanonicalShotType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrist", "wrist shot", "wristshot":
		return ShotTypeWrist
	case "slap", "slap shot", "slapshot":
		return ShotTypeSlap
	case "snap", "snap shot", "snapshot":
		return ShotTypeSnap
	case "backhand":
		return ShotTypeBackhand
	case "tip", "tip-in", "tip in", "deflection":
		return ShotTypeTipIn
	case "wraparound", "wrap-around", "wrap around":
		return ShotTypeWraparound
	default:
		return strings.TrimSpace(s)
	}
}

func CanonicalGoalType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regular", "even strength", "even-strength", "ev":
		return GoalTypeRegular
	case "power play", "powerplay", "power-play", "pp":
		return GoalTypePowerPlay
	case "short-handed", "short handed", "shorthanded", "sh":
		return GoalTypeShortHanded
	default:
		return strings.TrimSpace(s)
	}
}

// GoalEvent is the immutable record of one scored goal. The derived
// counters are captured at write time by counting the events already in the
// store and are never retroactively corrected.
type GoalEvent struct {
	ID           string    `json:"id"`
	GameID       string    `json:"gameId"`
	Team         string    `json:"team"`
	Scorer       string    `json:"scorer"`
	Assist       string    `json:"assist,omitempty"` // empty when unassisted
	SecondAssist string    `json:"secondAssist,omitempty"`
	Period       int       `json:"period"`
	Clock        GameClock `json:"clock"`
	ShotType     string    `json:"shotType"`
	GoalType     string    `json:"goalType"`
	Breakaway    bool      `json:"breakaway"`

	// Derived counters, see above.
	TeamGoalsFor      int `json:"teamGoalsFor"`
	TeamGoalsAgainst  int `json:"teamGoalsAgainst"`
	ScorerGoalsInGame int `json:"scorerGoalsInGame"`

	RecordedAt time.Time `json:"recordedAt"`
}

// PenaltyEvent is the immutable record of one penalty.
type PenaltyEvent struct {
	ID          string    `json:"id"`
	GameID      string    `json:"gameId"`
	Team        string    `json:"team"`
	Player      string    `json:"player"`
	PenaltyType string    `json:"penaltyType"`
	Period      int       `json:"period"`
	Clock       GameClock `json:"clock"`
	Minutes     int       `json:"minutes"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// ShotEvent records a shot attempt that did not score.
type ShotEvent struct {
	ID         string    `json:"id"`
	GameID     string    `json:"gameId"`
	Team       string    `json:"team"`
	Shooter    string    `json:"shooter"`
	Period     int       `json:"period"`
	Clock      GameClock `json:"clock"`
	OnGoal     bool      `json:"onGoal"`
	RecordedAt time.Time `json:"recordedAt"`
}

// AttendanceRecord lists the players a team had on the bench for a game.
type AttendanceRecord struct {
	ID         string    `json:"id"`
	GameID     string    `json:"gameId"`
	Team       string    `json:"team"`
	Players    []string  `json:"players"`
	RecordedAt time.Time `json:"recordedAt"`
}
