// Package db provides the SQLite implementation of report.Repository.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/pulso-tools/pulso/internal/report"
)

// SQLite implements report.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveIndex replaces the stored index atomically and records the sync time.
func (s *SQLite) SaveIndex(ctx context.Context, idx *report.Index) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() // no-op after a successful commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM report_dates`); err != nil {
		return fmt.Errorf("clearing dates: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM report_weeks`); err != nil {
		return fmt.Errorf("clearing weeks: %w", err)
	}

	for _, d := range idx.Dates {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO report_dates (date) VALUES (?)`, d); err != nil {
			return fmt.Errorf("inserting date %s: %w", d, err)
		}
	}
	for _, w := range idx.Weeks {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO report_weeks (week) VALUES (?)`, w); err != nil {
			return fmt.Errorf("inserting week %s: %w", w, err)
		}
	}

	syncedAt := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO sync_meta (id, synced_at, generated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET synced_at = excluded.synced_at, generated_at = excluded.generated_at
	`
	if _, err := tx.ExecContext(ctx, query, syncedAt, idx.GeneratedAt); err != nil {
		return fmt.Errorf("updating sync meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing index: %w", err)
	}
	return nil
}

// LoadIndex returns the stored index, empty if nothing has been synced.
func (s *SQLite) LoadIndex(ctx context.Context) (*report.Index, error) {
	idx := &report.Index{}

	dates, err := s.listColumn(ctx, `SELECT date FROM report_dates ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("listing dates: %w", err)
	}
	idx.Dates = dates

	weeks, err := s.listColumn(ctx, `SELECT week FROM report_weeks ORDER BY week`)
	if err != nil {
		return nil, fmt.Errorf("listing weeks: %w", err)
	}
	idx.Weeks = weeks

	var generatedAt sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT generated_at FROM sync_meta WHERE id = 1`).Scan(&generatedAt)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("reading sync meta: %w", err)
	}
	if generatedAt.Valid {
		idx.GeneratedAt = generatedAt.String
	}

	return idx, nil
}

// SyncedAt returns when the index was last saved, zero if never.
func (s *SQLite) SyncedAt(ctx context.Context) (time.Time, error) {
	var syncedAt string
	err := s.db.QueryRowContext(ctx, `SELECT synced_at FROM sync_meta WHERE id = 1`).Scan(&syncedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading sync meta: %w", err)
	}

	t, err := time.Parse(time.RFC3339, syncedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing synced_at: %w", err)
	}
	return t, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) listColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
