package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

// A migration is one idempotent schema-evolution step. Steps run in version
// order, each in its own transaction, and are recorded in schema_migrations
// so reruns skip them. New steps get the next version number; existing
// steps are never edited.
type migration struct {
	version int
	name    string
	apply   func(ctx context.Context, tx pgx.Tx) error
}

var migrations = []migration{
	{version: 1, name: "baseline schema", apply: applyBaseline},
	{version: 2, name: "standardize shot and goal type spellings", apply: standardizeEventTypes},
}

func (db *postgresDB) Migrate(ctx context.Context) error {
	const track = `CREATE TABLE IF NOT EXISTS schema_migrations (
					version INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					applied_at TIMESTAMPTZ NOT NULL)`

	if _, err := db.pool.Exec(ctx, track); err != nil {
		return storeErr("error creating schema_migrations", err)
	}

	applied := make(map[int]bool)
	rows, err := db.pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return storeErr("error reading schema_migrations", err)
	}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return storeErr("error scanning schema_migrations", err)
		}
		applied[v] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return storeErr("error reading schema_migrations rows", err)
	}

	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		if err := db.applyMigration(ctx, m); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		log.Printf("applied migration %d: %s", m.version, m.name)
	}
	return nil
}

func (db *postgresDB) applyMigration(ctx context.Context, m migration) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return storeErr("error starting migration transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := m.apply(ctx, tx); err != nil {
		return err
	}

	record := pgx.NamedArgs{"version": m.version, "name": m.name, "appliedAt": db.clock.Now().UTC()}
	if _, err := tx.Exec(ctx,
		`INSERT INTO schema_migrations (version, name, applied_at) VALUES (@version, @name, @appliedAt)`,
		record); err != nil {
		return storeErr("error recording migration", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("error committing migration", err)
	}
	return nil
}

// applyBaseline mirrors schema/schema.sql. The container tests load that
// file as an init script, so every statement here must be harmless when the
// objects already exist.
func applyBaseline(ctx context.Context, tx pgx.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			home_team TEXT NOT NULL,
			away_team TEXT NOT NULL,
			division TEXT NOT NULL DEFAULT '',
			scheduled_at TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL DEFAULT 'scheduled',
			home_score INTEGER NOT NULL DEFAULT 0,
			away_score INTEGER NOT NULL DEFAULT 0)`,
		`CREATE TABLE IF NOT EXISTS goal_events (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL REFERENCES games (id),
			team TEXT NOT NULL,
			scorer TEXT NOT NULL,
			assist TEXT NOT NULL DEFAULT '',
			second_assist TEXT NOT NULL DEFAULT '',
			period INTEGER NOT NULL,
			clock_minutes INTEGER NOT NULL,
			clock_seconds INTEGER NOT NULL,
			shot_type TEXT NOT NULL,
			goal_type TEXT NOT NULL,
			breakaway BOOLEAN NOT NULL DEFAULT FALSE,
			team_goals_for INTEGER NOT NULL,
			team_goals_against INTEGER NOT NULL,
			scorer_goals_in_game INTEGER NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL)`,
		`CREATE INDEX IF NOT EXISTS goal_events_game_idx ON goal_events (game_id, recorded_at)`,
		`CREATE TABLE IF NOT EXISTS penalty_events (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL REFERENCES games (id),
			team TEXT NOT NULL,
			player TEXT NOT NULL,
			penalty_type TEXT NOT NULL,
			period INTEGER NOT NULL,
			clock_minutes INTEGER NOT NULL,
			clock_seconds INTEGER NOT NULL,
			duration_minutes INTEGER NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL)`,
		`CREATE INDEX IF NOT EXISTS penalty_events_game_idx ON penalty_events (game_id, recorded_at)`,
		`CREATE TABLE IF NOT EXISTS shot_events (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL REFERENCES games (id),
			team TEXT NOT NULL,
			shooter TEXT NOT NULL,
			period INTEGER NOT NULL,
			clock_minutes INTEGER NOT NULL,
			clock_seconds INTEGER NOT NULL,
			on_goal BOOLEAN NOT NULL DEFAULT TRUE,
			recorded_at TIMESTAMPTZ NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL REFERENCES games (id),
			team TEXT NOT NULL,
			players TEXT[] NOT NULL DEFAULT '{}',
			recorded_at TIMESTAMPTZ NOT NULL)`,
	}
	for _, stmt := range stmts {
		if err := execMigration(ctx, tx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// standardizeEventTypes rewrites legacy free-form shot/goal type spellings
// to the canonical set. Canonical rows are untouched, so rerunning the
// step is a no-op.
func standardizeEventTypes(ctx context.Context, tx pgx.Tx) error {
	if err := canonicalizeColumn(ctx, tx, "shot_type", model.CanonicalShotType); err != nil {
		return err
	}
	return canonicalizeColumn(ctx, tx, "goal_type", model.CanonicalGoalType)
}

func canonicalizeColumn(ctx context.Context, tx pgx.Tx, column string, canon func(string) string) error {
	rows, err := tx.Query(ctx, fmt.Sprintf(`SELECT DISTINCT %s FROM goal_events`, column))
	if err != nil {
		return storeErr("error reading distinct "+column, err)
	}

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return storeErr("error scanning "+column, err)
		}
		values = append(values, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return storeErr("error reading "+column+" rows", err)
	}

	for _, v := range values {
		c := canon(v)
		if c == v {
			continue
		}
		update := fmt.Sprintf(`UPDATE goal_events SET %s=@canon WHERE %s=@legacy`, column, column)
		if _, err := tx.Exec(ctx, update, pgx.NamedArgs{"canon": c, "legacy": v}); err != nil {
			return storeErr("error standardizing "+column, err)
		}
		log.Printf("standardized %s %q to %q", column, v, c)
	}
	return nil
}

func execMigration(ctx context.Context, tx pgx.Tx, stmt string) error {
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return storeErr("error applying migration statement", err)
	}
	return nil
}
