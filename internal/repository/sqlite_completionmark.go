package repository

import (
	"context"
	"database/sql"
	"fmt"

	"flowdeck/internal/db"
	"flowdeck/internal/domain"
)

// SQLiteCompletionMarkRepo implements CompletionMarkRepo on SQLite.
type SQLiteCompletionMarkRepo struct {
	db db.DBTX
}

// NewSQLiteCompletionMarkRepo creates a new SQLiteCompletionMarkRepo.
func NewSQLiteCompletionMarkRepo(dbtx db.DBTX) *SQLiteCompletionMarkRepo {
	return &SQLiteCompletionMarkRepo{db: dbtx}
}

func (r *SQLiteCompletionMarkRepo) Upsert(ctx context.Context, m *domain.DailyCompletionMark) error {
	query := `INSERT INTO completion_marks (user_id, work_item_id, date, completed, completed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, work_item_id, date)
		DO UPDATE SET completed = excluded.completed, completed_at = excluded.completed_at`
	_, err := r.db.ExecContext(ctx, query,
		m.UserID,
		m.WorkItemID,
		m.Date,
		boolToInt(m.Completed),
		nullableTimeToString(m.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting completion mark: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionMarkRepo) Get(ctx context.Context, userID, workItemID, date string) (*domain.DailyCompletionMark, error) {
	query := `SELECT user_id, work_item_id, date, completed, completed_at
		FROM completion_marks
		WHERE user_id = ? AND work_item_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, userID, workItemID, date)

	var m domain.DailyCompletionMark
	var completedInt int
	var completedAtStr sql.NullString
	if err := row.Scan(&m.UserID, &m.WorkItemID, &m.Date, &completedInt, &completedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("completion mark: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning completion mark: %w", err)
	}
	m.Completed = intToBool(completedInt)
	m.CompletedAt = parseNullableTime(completedAtStr)
	return &m, nil
}

func (r *SQLiteCompletionMarkRepo) ListForDay(ctx context.Context, userID, date string) ([]*domain.DailyCompletionMark, error) {
	query := `SELECT user_id, work_item_id, date, completed, completed_at
		FROM completion_marks
		WHERE user_id = ? AND date = ?
		ORDER BY work_item_id`
	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("listing completion marks: %w", err)
	}
	defer rows.Close()

	var marks []*domain.DailyCompletionMark
	for rows.Next() {
		var m domain.DailyCompletionMark
		var completedInt int
		var completedAtStr sql.NullString
		if err := rows.Scan(&m.UserID, &m.WorkItemID, &m.Date, &completedInt, &completedAtStr); err != nil {
			return nil, fmt.Errorf("scanning completion mark row: %w", err)
		}
		m.Completed = intToBool(completedInt)
		m.CompletedAt = parseNullableTime(completedAtStr)
		marks = append(marks, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completion marks: %w", err)
	}
	return marks, nil
}
