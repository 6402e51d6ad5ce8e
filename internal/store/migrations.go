package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schema contains the DDL for the run history. Each statement uses
// IF NOT EXISTS so migrate can run on every start.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id                    TEXT PRIMARY KEY,
		divisions             INTEGER NOT NULL,
		teams_per_division    INTEGER NOT NULL,
		games_vs_division     INTEGER NOT NULL,
		games_vs_non_division INTEGER NOT NULL,
		seed                  INTEGER NOT NULL,
		days                  INTEGER NOT NULL,
		byes                  INTEGER NOT NULL DEFAULT 0,
		created_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
