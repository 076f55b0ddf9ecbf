package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			id            TEXT PRIMARY KEY,
			title         TEXT NOT NULL,
			due_date      DATE,
			end_date      DATE,
			start_time    TIME,
			end_time      TIME,
			energy        TEXT CHECK(energy IN ('low', 'medium', 'high')),
			location      TEXT NOT NULL DEFAULT '',
			display_order INTEGER NOT NULL DEFAULT 0,
			owner_id      TEXT NOT NULL DEFAULT '',
			is_shared     INTEGER NOT NULL DEFAULT 0,
			created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date);
		CREATE INDEX IF NOT EXISTS idx_tasks_location ON tasks(location);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tasks table: %w", err)
	}

	return nil
}
