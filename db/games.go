package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chattanoogahockey/scorekeeper-sub003/model"
)

func (db *postgresDB) AddGame(ctx context.Context, g *model.Game) error {
	const query = `INSERT INTO games (id, home_team, away_team, division, scheduled_at, status, home_score, away_score)
					VALUES (@id, @homeTeam, @awayTeam, @division, @scheduledAt, @status, @homeScore, @awayScore)
					ON CONFLICT (id) DO UPDATE
						SET home_team=@homeTeam, away_team=@awayTeam, division=@division, scheduled_at=@scheduledAt`

	args := pgx.NamedArgs{
		"id":          g.ID,
		"homeTeam":    g.HomeTeam,
		"awayTeam":    g.AwayTeam,
		"division":    g.Division,
		"scheduledAt": g.ScheduledAt,
		"status":      string(g.Status),
		"homeScore":   g.HomeScore,
		"awayScore":   g.AwayScore,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return storeErr("error adding game", err)
	}
	return nil
}

func (db *postgresDB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	const query = `SELECT id, home_team, away_team, division, scheduled_at, status, home_score, away_score
					FROM games WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, storeErr(fmt.Sprintf("error getting game %s", id), err)
	}
	return g, nil
}

func (db *postgresDB) ListGames(ctx context.Context) ([]model.Game, error) {
	const query = `SELECT id, home_team, away_team, division, scheduled_at, status, home_score, away_score
					FROM games ORDER BY scheduled_at ASC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("error listing games", err)
	}
	return collectGames(rows)
}

func (db *postgresDB) ListGamesByDivision(ctx context.Context, division string) ([]model.Game, error) {
	const query = `SELECT id, home_team, away_team, division, scheduled_at, status, home_score, away_score
					FROM games WHERE division ILIKE @division ORDER BY scheduled_at ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"division": division})
	if err != nil {
		return nil, storeErr("error listing games by division", err)
	}
	return collectGames(rows)
}

func (db *postgresDB) UpdateGameStatus(ctx context.Context, id string, status model.GameStatus) error {
	const query = `UPDATE games SET status=@status WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return storeErr("error updating game status", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var status string
	if err := row.Scan(&g.ID, &g.HomeTeam, &g.AwayTeam, &g.Division, &g.ScheduledAt,
		&status, &g.HomeScore, &g.AwayScore); err != nil {
		return nil, err
	}
	g.Status = model.GameStatus(status)
	return &g, nil
}

func collectGames(rows pgx.Rows) ([]model.Game, error) {
	defer rows.Close()

	results := make([]model.Game, 0, 8)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, storeErr("error scanning game", err)
		}
		results = append(results, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("error reading game rows", err)
	}
	return results, nil
}
