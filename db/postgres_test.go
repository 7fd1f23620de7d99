package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"

	"github.com/chattanoogahockey/scorekeeper-sub003/containers"
	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

// A test global db instance to use for all of the tests instead of setting
// up a new one each time.
var testDB DB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	clock := clock.New()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testDB, err = New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	// The init script loads the baseline; this records it and applies the rest.
	if err := testDB.Migrate(context.Background()); err != nil {
		fmt.Printf("error migrating db: %v", err)
		container.Shutdown()
		os.Exit(-1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func TestDB_gameSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	res, err := testDB.GetGame(ctx, g.ID)
	assertFatalf(t, err == nil, "error retrieving game: %v", err)

	assertEquals(t, "ID", g.ID, res.ID)
	assertEquals(t, "HomeTeam", g.HomeTeam, res.HomeTeam)
	assertEquals(t, "AwayTeam", g.AwayTeam, res.AwayTeam)
	assertEquals(t, "Division", g.Division, res.Division)
	assertEquals(t, "Status", model.StatusScheduled, res.Status)
	assertEquals(t, "HomeScore", 0, res.HomeScore)
	assertEquals(t, "AwayScore", 0, res.AwayScore)
	if !res.ScheduledAt.Equal(g.ScheduledAt) {
		t.Errorf("ScheduledAt - expected: '%v', got: '%v'", g.ScheduledAt, res.ScheduledAt)
	}
}

func TestDB_gameUpsertKeepsScore(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	insertGoal(t, g, g.HomeTeam, "J. Smith", 1, 1, 0, 1)

	// Re-importing the schedule must not reset the cached score.
	g.Division = model.DivisionSilver
	if err := testDB.AddGame(ctx, g); err != nil {
		t.Fatalf("error re-adding game: %v", err)
	}

	res, err := testDB.GetGame(ctx, g.ID)
	assertFatalf(t, err == nil, "error retrieving game: %v", err)
	assertEquals(t, "Division", model.DivisionSilver, res.Division)
	assertEquals(t, "HomeScore", 1, res.HomeScore)
}

func TestDB_gameNotFound(t *testing.T) {
	ctx := context.Background()

	_, err := testDB.GetGame(ctx, uuid.NewString())
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got: %v", err)
	}

	err = testDB.UpdateGameStatus(ctx, uuid.NewString(), model.StatusFinal)
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound from status update, got: %v", err)
	}
}

func TestDB_updateGameStatus(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	err := testDB.UpdateGameStatus(ctx, g.ID, model.StatusInProgress)
	assertFatalf(t, err == nil, "error updating status: %v", err)

	res, err := testDB.GetGame(ctx, g.ID)
	assertFatalf(t, err == nil, "error retrieving game: %v", err)
	assertEquals(t, "Status", model.StatusInProgress, res.Status)
}

func TestDB_listGamesByDivision(t *testing.T) {
	ctx := context.Background()
	division := "Div-" + uuid.NewString()

	g := &model.Game{
		ID:          uuid.NewString(),
		HomeTeam:    "Bachstreet Boys",
		AwayTeam:    "Whiskey Dekes",
		Division:    division,
		ScheduledAt: time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC),
		Status:      model.StatusScheduled,
	}
	if err := testDB.AddGame(ctx, g); err != nil {
		t.Fatalf("error adding game: %v", err)
	}

	games, err := testDB.ListGamesByDivision(ctx, division)
	assertFatalf(t, err == nil, "error listing games: %v", err)
	assertEquals(t, "len(games)", 1, len(games))
	assertEquals(t, "ID", g.ID, games[0].ID)

	games, err = testDB.ListGamesByDivision(ctx, "no-such-division")
	assertFatalf(t, err == nil, "error listing empty division: %v", err)
	assertEquals(t, "len(games)", 0, len(games))
}

func TestDB_goalInsertBumpsScoreAndListsInOrder(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	insertGoal(t, g, g.HomeTeam, "J. Smith", 1, 1, 0, 1)
	insertGoal(t, g, g.HomeTeam, "A. Jones", 2, 2, 0, 1)
	insertGoal(t, g, g.AwayTeam, "B. Brown", 3, 1, 2, 1)

	goals, err := testDB.ListGoals(ctx, g.ID)
	assertFatalf(t, err == nil, "error listing goals: %v", err)
	assertEquals(t, "len(goals)", 3, len(goals))
	assertEquals(t, "goals[0].Scorer", "J. Smith", goals[0].Scorer)
	assertEquals(t, "goals[1].Scorer", "A. Jones", goals[1].Scorer)
	assertEquals(t, "goals[2].Scorer", "B. Brown", goals[2].Scorer)
	assertEquals(t, "goals[2].TeamGoalsAgainst", 2, goals[2].TeamGoalsAgainst)

	res, err := testDB.GetGame(ctx, g.ID)
	assertFatalf(t, err == nil, "error retrieving game: %v", err)
	assertEquals(t, "HomeScore", 2, res.HomeScore)
	assertEquals(t, "AwayScore", 1, res.AwayScore)
}

func TestDB_goalFieldsRoundTrip(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	e := &model.GoalEvent{
		ID:                uuid.NewString(),
		GameID:            g.ID,
		Team:              g.HomeTeam,
		Scorer:            "J. Smith",
		Assist:            "A. Jones",
		SecondAssist:      "C. Clark",
		Period:            model.PeriodOvertime,
		Clock:             model.GameClock{Minutes: 3, Seconds: 42},
		ShotType:          model.ShotTypeSlap,
		GoalType:          model.GoalTypePowerPlay,
		Breakaway:         true,
		TeamGoalsFor:      1,
		TeamGoalsAgainst:  0,
		ScorerGoalsInGame: 1,
		RecordedAt:        time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC),
	}
	err := testDB.InsertGoal(ctx, e)
	assertFatalf(t, err == nil, "error inserting goal: %v", err)

	goals, err := testDB.ListGoals(ctx, g.ID)
	assertFatalf(t, err == nil, "error listing goals: %v", err)
	assertEquals(t, "len(goals)", 1, len(goals))

	res := goals[0]
	assertEquals(t, "ID", e.ID, res.ID)
	assertEquals(t, "Team", e.Team, res.Team)
	assertEquals(t, "Scorer", e.Scorer, res.Scorer)
	assertEquals(t, "Assist", e.Assist, res.Assist)
	assertEquals(t, "SecondAssist", e.SecondAssist, res.SecondAssist)
	assertEquals(t, "Period", e.Period, res.Period)
	assertEquals(t, "Clock", e.Clock, res.Clock)
	assertEquals(t, "ShotType", e.ShotType, res.ShotType)
	assertEquals(t, "GoalType", e.GoalType, res.GoalType)
	assertEquals(t, "Breakaway", e.Breakaway, res.Breakaway)
	assertEquals(t, "TeamGoalsFor", e.TeamGoalsFor, res.TeamGoalsFor)
	assertEquals(t, "ScorerGoalsInGame", e.ScorerGoalsInGame, res.ScorerGoalsInGame)
	if !res.RecordedAt.Equal(e.RecordedAt) {
		t.Errorf("RecordedAt - expected: '%v', got: '%v'", e.RecordedAt, res.RecordedAt)
	}
}

func TestDB_goalUnknownGameLeavesNoRow(t *testing.T) {
	ctx := context.Background()

	e := &model.GoalEvent{
		ID:     uuid.NewString(),
		GameID: uuid.NewString(),
		Team:   "Nobody",
		Scorer: "J. Smith",
		Period: 1,
	}
	// The insert violates the game_id foreign key, so the whole transaction
	// rolls back and no partial write survives.
	if err := testDB.InsertGoal(ctx, e); err == nil {
		t.Fatalf("expected an error inserting goal for unknown game")
	}

	goals, err := testDB.ListGoals(ctx, e.GameID)
	assertFatalf(t, err == nil, "error listing goals: %v", err)
	assertEquals(t, "len(goals)", 0, len(goals))
}

func TestDB_goalsByPlayerMatchesAnyCreditSlot(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)
	player := "Player-" + uuid.NewString()

	e1 := &model.GoalEvent{ID: uuid.NewString(), GameID: g.ID, Team: g.HomeTeam,
		Scorer: player, Period: 1, ShotType: model.ShotTypeWrist, GoalType: model.GoalTypeRegular,
		TeamGoalsFor: 1, ScorerGoalsInGame: 1}
	e2 := &model.GoalEvent{ID: uuid.NewString(), GameID: g.ID, Team: g.HomeTeam,
		Scorer: "A. Jones", Assist: player, Period: 2, ShotType: model.ShotTypeWrist,
		GoalType: model.GoalTypeRegular, TeamGoalsFor: 2, ScorerGoalsInGame: 1}
	e3 := &model.GoalEvent{ID: uuid.NewString(), GameID: g.ID, Team: g.HomeTeam,
		Scorer: "B. Brown", SecondAssist: player, Period: 3, ShotType: model.ShotTypeWrist,
		GoalType: model.GoalTypeRegular, TeamGoalsFor: 3, ScorerGoalsInGame: 1}

	for _, e := range []*model.GoalEvent{e1, e2, e3} {
		if err := testDB.InsertGoal(ctx, e); err != nil {
			t.Fatalf("error inserting goal: %v", err)
		}
	}

	goals, err := testDB.ListGoalsByPlayer(ctx, player)
	assertFatalf(t, err == nil, "error listing goals by player: %v", err)
	assertEquals(t, "len(goals)", 3, len(goals))
}

func TestDB_penaltySaveAndLoad(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	e := &model.PenaltyEvent{
		ID:          uuid.NewString(),
		GameID:      g.ID,
		Team:        g.AwayTeam,
		Player:      "B. Brown",
		PenaltyType: "Tripping",
		Period:      2,
		Clock:       model.GameClock{Minutes: 7, Seconds: 15},
		Minutes:     2,
		RecordedAt:  time.Date(2026, 3, 14, 21, 10, 0, 0, time.UTC),
	}
	err := testDB.InsertPenalty(ctx, e)
	assertFatalf(t, err == nil, "error inserting penalty: %v", err)

	penalties, err := testDB.ListPenalties(ctx, g.ID)
	assertFatalf(t, err == nil, "error listing penalties: %v", err)
	assertEquals(t, "len(penalties)", 1, len(penalties))
	assertEquals(t, "Player", e.Player, penalties[0].Player)
	assertEquals(t, "PenaltyType", e.PenaltyType, penalties[0].PenaltyType)
	assertEquals(t, "Minutes", e.Minutes, penalties[0].Minutes)
	assertEquals(t, "Clock", e.Clock, penalties[0].Clock)

	byPlayer, err := testDB.ListPenaltiesByPlayer(ctx, "B. Brown")
	assertFatalf(t, err == nil, "error listing penalties by player: %v", err)
	assertTrue(t, "len(byPlayer) >= 1", len(byPlayer) >= 1)
}

func TestDB_shotSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	e := &model.ShotEvent{
		ID:      uuid.NewString(),
		GameID:  g.ID,
		Team:    g.HomeTeam,
		Shooter: "J. Smith",
		Period:  1,
		Clock:   model.GameClock{Minutes: 4, Seconds: 20},
		OnGoal:  true,
	}
	err := testDB.InsertShot(ctx, e)
	assertFatalf(t, err == nil, "error inserting shot: %v", err)

	shots, err := testDB.ListShots(ctx, g.ID)
	assertFatalf(t, err == nil, "error listing shots: %v", err)
	assertEquals(t, "len(shots)", 1, len(shots))
	assertEquals(t, "Shooter", e.Shooter, shots[0].Shooter)
	assertEquals(t, "OnGoal", true, shots[0].OnGoal)
	assertTrue(t, "RecordedAt defaulted", !shots[0].RecordedAt.IsZero())
}

func TestDB_attendanceSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)

	a := &model.AttendanceRecord{
		ID:      uuid.NewString(),
		GameID:  g.ID,
		Team:    g.HomeTeam,
		Players: []string{"J. Smith", "A. Jones", "C. Clark"},
	}
	err := testDB.InsertAttendance(ctx, a)
	assertFatalf(t, err == nil, "error inserting attendance: %v", err)

	records, err := testDB.ListAttendance(ctx, g.ID)
	assertFatalf(t, err == nil, "error listing attendance: %v", err)
	assertEquals(t, "len(records)", 1, len(records))
	assertEquals(t, "len(Players)", 3, len(records[0].Players))
	assertEquals(t, "Players[0]", "J. Smith", records[0].Players[0])
}

func TestDB_migrateIsIdempotent(t *testing.T) {
	ctx := context.Background()

	// TestMain already ran Migrate once; these reruns must be no-ops.
	if err := testDB.Migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	if err := testDB.Migrate(ctx); err != nil {
		t.Fatalf("third migrate failed: %v", err)
	}
}

func TestDB_standardizeEventTypes(t *testing.T) {
	ctx := context.Background()
	g := newGame(t)
	pdb := testDB.(*postgresDB)

	// Sneak a row with legacy spellings in under the migration's radar.
	e := &model.GoalEvent{ID: uuid.NewString(), GameID: g.ID, Team: g.HomeTeam,
		Scorer: "J. Smith", Period: 1, ShotType: "slapshot", GoalType: "pp",
		TeamGoalsFor: 1, ScorerGoalsInGame: 1}
	if err := testDB.InsertGoal(ctx, e); err != nil {
		t.Fatalf("error inserting goal: %v", err)
	}

	runStandardize := func() {
		tx, err := pdb.pool.Begin(ctx)
		if err != nil {
			t.Fatalf("error starting tx: %v", err)
		}
		if err := standardizeEventTypes(ctx, tx); err != nil {
			tx.Rollback(ctx)
			t.Fatalf("error standardizing: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("error committing: %v", err)
		}
	}

	// Run twice: the second pass must find nothing left to rewrite.
	runStandardize()
	runStandardize()

	goals, err := testDB.ListGoals(ctx, g.ID)
	assertFatalf(t, err == nil, "error listing goals: %v", err)
	assertEquals(t, "len(goals)", 1, len(goals))
	assertEquals(t, "ShotType", model.ShotTypeSlap, goals[0].ShotType)
	assertEquals(t, "GoalType", model.GoalTypePowerPlay, goals[0].GoalType)
}

// newGame inserts a fresh game with unique teams and returns it.
func newGame(t *testing.T) *model.Game {
	t.Helper()

	n := uuid.NewString()[:8]
	g := &model.Game{
		ID:          uuid.NewString(),
		HomeTeam:    "Home-" + n,
		AwayTeam:    "Away-" + n,
		Division:    model.DivisionGold,
		ScheduledAt: time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC),
		Status:      model.StatusScheduled,
	}
	if err := testDB.AddGame(context.Background(), g); err != nil {
		t.Fatalf("error adding game: %v", err)
	}
	return g
}

// insertGoal writes a goal with the given derived counters already computed.
func insertGoal(t *testing.T, g *model.Game, team, scorer string, period, goalsFor, goalsAgainst, scorerGoals int) {
	t.Helper()

	e := &model.GoalEvent{
		ID:                uuid.NewString(),
		GameID:            g.ID,
		Team:              team,
		Scorer:            scorer,
		Period:            period,
		ShotType:          model.ShotTypeWrist,
		GoalType:          model.GoalTypeRegular,
		TeamGoalsFor:      goalsFor,
		TeamGoalsAgainst:  goalsAgainst,
		ScorerGoalsInGame: scorerGoals,
	}
	if err := testDB.InsertGoal(context.Background(), e); err != nil {
		t.Fatalf("error inserting goal: %v", err)
	}
}

func assertFatalf(t *testing.T, c bool, f string, args ...any) {
	t.Helper()
	if !c {
		t.Fatalf(f, args...)
	}
}

func assertEquals(t *testing.T, field string, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
	}
}

func assertTrue(t *testing.T, field string, cond bool) {
	t.Helper()
	if !cond {
		t.Errorf("%s - expected to be true but it was false", field)
	}
}
