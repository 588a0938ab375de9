// Package migrations creates and upgrades the run-history schema.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id          VARCHAR PRIMARY KEY,
		workload    VARCHAR NOT NULL,
		tasks       INTEGER NOT NULL,
		completed   INTEGER NOT NULL,
		cancelled   INTEGER NOT NULL,
		failed      INTEGER NOT NULL,
		duration_ms BIGINT NOT NULL,
		created_at  TIMESTAMP NOT NULL DEFAULT now()
	)`,
}

// Run applies all migrations in order. Statements are idempotent, so running
// against an existing database is safe.
func Run(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
