package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

func (db *postgresDB) InsertGoal(ctx context.Context, e *model.GoalEvent) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = db.clock.Now().UTC()
	}

	const insert = `INSERT INTO goal_events (id, game_id, team, scorer, assist, second_assist,
						period, clock_minutes, clock_seconds, shot_type, goal_type, breakaway,
						team_goals_for, team_goals_against, scorer_goals_in_game, recorded_at)
					VALUES (@id, @gameID, @team, @scorer, @assist, @secondAssist,
						@period, @clockMin, @clockSec, @shotType, @goalType, @breakaway,
						@goalsFor, @goalsAgainst, @scorerGoals, @recordedAt)`

	const bumpHome = `UPDATE games SET home_score = home_score + 1 WHERE id=@gameID AND home_team=@team`
	const bumpAway = `UPDATE games SET away_score = away_score + 1 WHERE id=@gameID AND away_team=@team`

	args := pgx.NamedArgs{
		"id":           e.ID,
		"gameID":       e.GameID,
		"team":         e.Team,
		"scorer":       e.Scorer,
		"assist":       e.Assist,
		"secondAssist": e.SecondAssist,
		"period":       e.Period,
		"clockMin":     e.Clock.Minutes,
		"clockSec":     e.Clock.Seconds,
		"shotType":     e.ShotType,
		"goalType":     e.GoalType,
		"breakaway":    e.Breakaway,
		"goalsFor":     e.TeamGoalsFor,
		"goalsAgainst": e.TeamGoalsAgainst,
		"scorerGoals":  e.ScorerGoalsInGame,
		"recordedAt":   e.RecordedAt,
	}

	// The event insert and the cached-score bump land together or not at all.
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return storeErr("error starting goal transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insert, args); err != nil {
		return storeErr("error inserting goal event", err)
	}

	bump := pgx.NamedArgs{"gameID": e.GameID, "team": e.Team}
	tag, err := tx.Exec(ctx, bumpHome, bump)
	if err != nil {
		return storeErr("error updating home score", err)
	}
	if tag.RowsAffected() == 0 {
		tag, err = tx.Exec(ctx, bumpAway, bump)
		if err != nil {
			return storeErr("error updating away score", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrGameNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("error committing goal event", err)
	}
	return nil
}

const goalColumns = `id, game_id, team, scorer, assist, second_assist,
						period, clock_minutes, clock_seconds, shot_type, goal_type, breakaway,
						team_goals_for, team_goals_against, scorer_goals_in_game, recorded_at`

func (db *postgresDB) ListGoals(ctx context.Context, gameID string) ([]model.GoalEvent, error) {
	query := `SELECT ` + goalColumns + ` FROM goal_events WHERE game_id=@gameID ORDER BY recorded_at ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, storeErr("error listing goals", err)
	}
	return collectGoals(rows)
}

func (db *postgresDB) ListGoalsByPlayer(ctx context.Context, player string) ([]model.GoalEvent, error) {
	query := `SELECT ` + goalColumns + ` FROM goal_events
				WHERE scorer ILIKE @player OR assist ILIKE @player OR second_assist ILIKE @player
				ORDER BY recorded_at ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"player": player})
	if err != nil {
		return nil, storeErr("error listing goals by player", err)
	}
	return collectGoals(rows)
}

func (db *postgresDB) InsertPenalty(ctx context.Context, e *model.PenaltyEvent) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = db.clock.Now().UTC()
	}

	const query = `INSERT INTO penalty_events (id, game_id, team, player, penalty_type,
						period, clock_minutes, clock_seconds, duration_minutes, recorded_at)
					VALUES (@id, @gameID, @team, @player, @penaltyType,
						@period, @clockMin, @clockSec, @minutes, @recordedAt)`

	args := pgx.NamedArgs{
		"id":          e.ID,
		"gameID":      e.GameID,
		"team":        e.Team,
		"player":      e.Player,
		"penaltyType": e.PenaltyType,
		"period":      e.Period,
		"clockMin":    e.Clock.Minutes,
		"clockSec":    e.Clock.Seconds,
		"minutes":     e.Minutes,
		"recordedAt":  e.RecordedAt,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return storeErr("error inserting penalty event", err)
	}
	return nil
}

const penaltyColumns = `id, game_id, team, player, penalty_type,
						period, clock_minutes, clock_seconds, duration_minutes, recorded_at`

func (db *postgresDB) ListPenalties(ctx context.Context, gameID string) ([]model.PenaltyEvent, error) {
	query := `SELECT ` + penaltyColumns + ` FROM penalty_events WHERE game_id=@gameID ORDER BY recorded_at ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, storeErr("error listing penalties", err)
	}
	return collectPenalties(rows)
}

func (db *postgresDB) ListPenaltiesByPlayer(ctx context.Context, player string) ([]model.PenaltyEvent, error) {
	query := `SELECT ` + penaltyColumns + ` FROM penalty_events WHERE player ILIKE @player ORDER BY recorded_at ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"player": player})
	if err != nil {
		return nil, storeErr("error listing penalties by player", err)
	}
	return collectPenalties(rows)
}

func (db *postgresDB) InsertShot(ctx context.Context, e *model.ShotEvent) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = db.clock.Now().UTC()
	}

	const query = `INSERT INTO shot_events (id, game_id, team, shooter, period,
						clock_minutes, clock_seconds, on_goal, recorded_at)
					VALUES (@id, @gameID, @team, @shooter, @period,
						@clockMin, @clockSec, @onGoal, @recordedAt)`

	args := pgx.NamedArgs{
		"id":         e.ID,
		"gameID":     e.GameID,
		"team":       e.Team,
		"shooter":    e.Shooter,
		"period":     e.Period,
		"clockMin":   e.Clock.Minutes,
		"clockSec":   e.Clock.Seconds,
		"onGoal":     e.OnGoal,
		"recordedAt": e.RecordedAt,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return storeErr("error inserting shot event", err)
	}
	return nil
}

func (db *postgresDB) ListShots(ctx context.Context, gameID string) ([]model.ShotEvent, error) {
	const query = `SELECT id, game_id, team, shooter, period, clock_minutes, clock_seconds, on_goal, recorded_at
					FROM shot_events WHERE game_id=@gameID ORDER BY recorded_at ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, storeErr("error listing shots", err)
	}
	defer rows.Close()

	results := make([]model.ShotEvent, 0, 8)
	for rows.Next() {
		var e model.ShotEvent
		if err := rows.Scan(&e.ID, &e.GameID, &e.Team, &e.Shooter, &e.Period,
			&e.Clock.Minutes, &e.Clock.Seconds, &e.OnGoal, &e.RecordedAt); err != nil {
			return nil, storeErr("error scanning shot event", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error reading shot rows", err)
	}
	return results, nil
}

func (db *postgresDB) InsertAttendance(ctx context.Context, a *model.AttendanceRecord) error {
	if a.RecordedAt.IsZero() {
		a.RecordedAt = db.clock.Now().UTC()
	}

	const query = `INSERT INTO attendance_records (id, game_id, team, players, recorded_at)
					VALUES (@id, @gameID, @team, @players, @recordedAt)`

	args := pgx.NamedArgs{
		"id":         a.ID,
		"gameID":     a.GameID,
		"team":       a.Team,
		"players":    a.Players,
		"recordedAt": a.RecordedAt,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return storeErr("error inserting attendance record", err)
	}
	return nil
}

func (db *postgresDB) ListAttendance(ctx context.Context, gameID string) ([]model.AttendanceRecord, error) {
	const query = `SELECT id, game_id, team, players, recorded_at
					FROM attendance_records WHERE game_id=@gameID ORDER BY recorded_at ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, storeErr("error listing attendance", err)
	}
	defer rows.Close()

	results := make([]model.AttendanceRecord, 0, 2)
	for rows.Next() {
		var a model.AttendanceRecord
		if err := rows.Scan(&a.ID, &a.GameID, &a.Team, &a.Players, &a.RecordedAt); err != nil {
			return nil, storeErr("error scanning attendance record", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error reading attendance rows", err)
	}
	return results, nil
}

func collectGoals(rows pgx.Rows) ([]model.GoalEvent, error) {
	defer rows.Close()

	results := make([]model.GoalEvent, 0, 8)
	for rows.Next() {
		var e model.GoalEvent
		if err := rows.Scan(&e.ID, &e.GameID, &e.Team, &e.Scorer, &e.Assist, &e.SecondAssist,
			&e.Period, &e.Clock.Minutes, &e.Clock.Seconds, &e.ShotType, &e.GoalType, &e.Breakaway,
			&e.TeamGoalsFor, &e.TeamGoalsAgainst, &e.ScorerGoalsInGame, &e.RecordedAt); err != nil {
			return nil, storeErr("error scanning goal event", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error reading goal rows", err)
	}
	return results, nil
}

func collectPenalties(rows pgx.Rows) ([]model.PenaltyEvent, error) {
	defer rows.Close()

	results := make([]model.PenaltyEvent, 0, 8)
	for rows.Next() {
		var e model.PenaltyEvent
		if err := rows.Scan(&e.ID, &e.GameID, &e.Team, &e.Player, &e.PenaltyType,
			&e.Period, &e.Clock.Minutes, &e.Clock.Seconds, &e.Minutes, &e.RecordedAt); err != nil {
			return nil, storeErr("error scanning penalty event", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error reading penalty rows", err)
	}
	return results, nil
}
