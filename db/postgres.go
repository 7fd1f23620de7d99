package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrGameNotFound means the referenced game id does not exist. Never
	// retried; no write occurs.
	ErrGameNotFound error = errors.New("game not found")

	// ErrStoreUnavailable wraps connection, timeout, and query failures.
	// Writes are transactional, so a caller that sees this error can
	// safely retry without risking a partial record.
	ErrStoreUnavailable error = errors.New("event store unavailable")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// storeErr tags a failed store call with ErrStoreUnavailable while keeping
// the underlying error text for the logs.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}
