package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_items (
		id                  TEXT PRIMARY KEY,
		title               TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		kind                TEXT NOT NULL
		                    CHECK(kind IN ('task','quick_win','roadblock')),
		status              TEXT NOT NULL
		                    CHECK(status IN ('pending','in_progress','completed','resolved')),
		priority            TEXT NOT NULL
		                    CHECK(priority IN ('low','medium','high','urgent')),
		due_date            TEXT,
		estimated_min       INTEGER NOT NULL DEFAULT 0,
		linked_parent_id    TEXT,
		root_cause_category TEXT,
		root_cause_factor   TEXT,
		root_cause_severity TEXT,
		escalated_at        TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	// linked_parent_id is a back-reference into the activities table owned
	// by the wider application; indexed lookup, no cascade into the parent.
	`CREATE INDEX IF NOT EXISTS idx_work_items_linked_parent
		ON work_items(linked_parent_id)`,

	`CREATE INDEX IF NOT EXISTS idx_work_items_due_status
		ON work_items(due_date, status)`,

	`CREATE TABLE IF NOT EXISTS work_item_participants (
		work_item_id  TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		user_id       TEXT NOT NULL,
		position      INTEGER NOT NULL DEFAULT 0,
		kind_override TEXT
		              CHECK(kind_override IS NULL OR kind_override IN ('task','quick_win','roadblock')),
		PRIMARY KEY (work_item_id, user_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_participants_user
		ON work_item_participants(user_id)`,

	`CREATE TABLE IF NOT EXISTS completion_marks (
		user_id      TEXT NOT NULL,
		work_item_id TEXT NOT NULL REFERENCES work_items(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		PRIMARY KEY (user_id, work_item_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completion_marks_user_date
		ON completion_marks(user_id, date)`,
}

// Migrate runs all schema migrations. Every statement is IF NOT EXISTS,
// so re-running the full list on startup is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
