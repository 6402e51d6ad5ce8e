package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout has a fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath.
// Use ":memory:" for an in-memory database.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Every connection to ":memory:" is a separate database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run *Run) error {
	s.logger.Debug("sql", "op", "insert", "table", "runs", "id", run.ID)

	p := run.Params
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, divisions, teams_per_division, games_vs_division, games_vs_non_division, seed, days, byes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, p.Divisions, p.TeamsPerDivision, p.GamesVsDivision, p.GamesVsNonDivision, p.Seed,
		run.Days, run.Byes, run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "id", id)

	run, err := scanRun(s.db.QueryRowContext(ctx,
		`SELECT id, divisions, teams_per_division, games_vs_division, games_vs_non_division, seed, days, byes, created_at
		 FROM runs WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the most recent runs first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	s.logger.Debug("sql", "op", "list", "table", "runs", "limit", limit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, divisions, teams_per_division, games_vs_division, games_vs_non_division, seed, days, byes, created_at
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var createdAt string
	p := &run.Params
	err := row.Scan(&run.ID, &p.Divisions, &p.TeamsPerDivision, &p.GamesVsDivision, &p.GamesVsNonDivision,
		&p.Seed, &run.Days, &run.Byes, &createdAt)
	if err != nil {
		return nil, err
	}
	run.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("run %s: parse created_at: %w", run.ID, err)
	}
	return &run, nil
}
