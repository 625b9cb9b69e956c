// Package store archives parse runs in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/transform"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	parser_name   TEXT NOT NULL,
	source_path   TEXT NOT NULL,
	bank          TEXT NOT NULL,
	account_id    TEXT NOT NULL,
	statement_id  TEXT NOT NULL,
	groups        INTEGER NOT NULL,
	accounts      INTEGER NOT NULL,
	transactions  INTEGER NOT NULL,
	file_total    INTEGER,
	errors        INTEGER NOT NULL,
	warnings      INTEGER NOT NULL,
	recorded_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_account ON runs(account_id);
`

// Run is one archived parse run.
type Run struct {
	ID           string
	ParserName   string
	SourcePath   string
	Bank         string
	AccountID    string
	StatementID  string
	Groups       int
	Accounts     int
	Transactions int
	FileTotal    *int64
	Errors       int
	Warnings     int
	RecordedAt   time.Time
}

// Store provides access to the run archive
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the archive at the given path.
// Use ":memory:" for an ephemeral archive.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun archives one parse run and returns the stored record
func (s *Store) RecordRun(ctx context.Context, summary *transform.Summary, errors, warnings int) (*Run, error) {
	if summary == nil {
		return nil, fmt.Errorf("summary cannot be nil")
	}

	run := &Run{
		ID:           uuid.NewString(),
		ParserName:   summary.ParserName,
		SourcePath:   summary.SourcePath,
		Bank:         summary.Bank,
		AccountID:    summary.AccountID,
		StatementID:  summary.StatementID,
		Groups:       summary.Groups,
		Accounts:     summary.Accounts,
		Transactions: summary.Transactions,
		FileTotal:    summary.FileTotal,
		Errors:       errors,
		Warnings:     warnings,
		RecordedAt:   time.Now().UTC(),
	}

	var total sql.NullInt64
	if run.FileTotal != nil {
		total = sql.NullInt64{Int64: *run.FileTotal, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, parser_name, source_path, bank, account_id, statement_id,
			groups, accounts, transactions, file_total, errors, warnings, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.ParserName, run.SourcePath, run.Bank, run.AccountID, run.StatementID,
		run.Groups, run.Accounts, run.Transactions, total, run.Errors, run.Warnings,
		run.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record run for %s: %w", run.SourcePath, err)
	}

	return run, nil
}

// ListRuns returns all archived runs, most recent first
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	return s.queryRuns(ctx, `SELECT `+runColumns+` FROM runs ORDER BY recorded_at DESC, id`)
}

// RunsForAccount returns archived runs for one account, most recent first
func (s *Store) RunsForAccount(ctx context.Context, accountID string) ([]Run, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID cannot be empty")
	}
	return s.queryRuns(ctx,
		`SELECT `+runColumns+` FROM runs WHERE account_id = ? ORDER BY recorded_at DESC, id`,
		accountID)
}

const runColumns = `id, parser_name, source_path, bank, account_id, statement_id,
	groups, accounts, transactions, file_total, errors, warnings, recorded_at`

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			total    sql.NullInt64
			recorded string
		)
		if err := rows.Scan(
			&run.ID, &run.ParserName, &run.SourcePath, &run.Bank, &run.AccountID, &run.StatementID,
			&run.Groups, &run.Accounts, &run.Transactions, &total, &run.Errors, &run.Warnings,
			&recorded,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		if total.Valid {
			v := total.Int64
			run.FileTotal = &v
		}

		when, err := time.Parse(time.RFC3339, recorded)
		if err != nil {
			return nil, fmt.Errorf("failed to parse recorded_at for run %s: %w", run.ID, err)
		}
		run.RecordedAt = when

		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}
