package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS report_dates (
			date TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS report_weeks (
			week TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS sync_meta (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			synced_at    TEXT NOT NULL,
			generated_at TEXT
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating index tables: %w", err)
	}

	return nil
}
