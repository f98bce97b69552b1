package pg

import (
	"context"
	"fmt"
)

const createCalculationsTable = `
	CREATE TABLE IF NOT EXISTS calculations (
		id          UUID PRIMARY KEY,
		expression  TEXT NOT NULL,
		postfix     TEXT NOT NULL,
		result      DOUBLE PRECISION NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS calculations_created_at_idx ON calculations (created_at DESC);
`

// EnsureSchema creates the calculations table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *ConnectionPool) error {
	if _, err := pool.conn.Exec(ctx, createCalculationsTable); err != nil {
		return fmt.Errorf("failed to create calculations schema: %w", err)
	}
	return nil
}
