package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the subset of *pgxpool.Pool the store needs.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// AdStore implements port.AdStore on top of the key_value_store table.
type AdStore struct {
	db querier
}

// NewAdStore returns a new store instance. pool is usually a *pgxpool.Pool.
func NewAdStore(pool querier) *AdStore {
	return &AdStore{db: pool}
}

// Get returns the value stored under key.
func (s *AdStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM key_value_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set upserts the value under key, replacing any previous value.
func (s *AdStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO key_value_store (key, value, created_at, updated_at)
        VALUES ($1, $2, now(), now())
        ON CONFLICT (key) DO UPDATE
            SET value = EXCLUDED.value,
                updated_at = EXCLUDED.updated_at`, key, value)
	return err
}
