package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/charcoals/storefront/internal/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type kvRepository struct {
	pool *pgxpool.Pool
}

// NewKV is a durable key-value session store backed by Postgres. Each Set
// overwrites the row for the key, so the last write for a session key wins.
func NewKV(pool *pgxpool.Pool) port.KVStore {
	return &kvRepository{pool: pool}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM session_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return value, true, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO session_store (key, value)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
