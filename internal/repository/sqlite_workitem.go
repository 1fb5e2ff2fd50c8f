package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"flowdeck/internal/db"
	"flowdeck/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, title, description, kind, status, priority,
		due_date, estimated_min, linked_parent_id,
		root_cause_category, root_cause_factor, root_cause_severity,
		escalated_at, created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo on a SQLite database. It
// accepts a DBTX so the same implementation serves both direct access and
// transaction-scoped use inside a UnitOfWork.
type SQLiteWorkItemRepo struct {
	db db.DBTX
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo.
func NewSQLiteWorkItemRepo(dbtx db.DBTX) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: dbtx}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (id, title, description, kind, status, priority,
		due_date, estimated_min, linked_parent_id,
		root_cause_category, root_cause_factor, root_cause_severity,
		escalated_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Title,
		w.Description,
		string(w.Kind),
		string(w.Status),
		string(w.Priority),
		nullableTimeToString(w.DueDate),
		w.EstimatedMin,
		nullableString(w.LinkedParentID),
		causeField(w.RootCause, func(rc *domain.RootCause) string { return string(rc.Category) }),
		causeField(w.RootCause, func(rc *domain.RootCause) string { return rc.Factor }),
		causeField(w.RootCause, func(rc *domain.RootCause) string { return string(rc.Severity) }),
		nullableTimeToString(w.EscalatedAt),
		w.CreatedAt.UTC().Format(time.RFC3339),
		w.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	if err := r.insertParticipants(ctx, w); err != nil {
		return err
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	w, err := r.scanWorkItem(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadParticipants(ctx, []*domain.WorkItem{w}); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *SQLiteWorkItemRepo) ListActive(ctx context.Context, userID string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items
		WHERE status IN ('pending', 'in_progress')
		  AND id IN (SELECT work_item_id FROM work_item_participants WHERE user_id = ?)
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing active work items: %w", err)
	}
	defer rows.Close()
	items, err := r.scanWorkItems(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadParticipants(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQLiteWorkItemRepo) ListOverdue(ctx context.Context, before time.Time) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items
		WHERE due_date IS NOT NULL
		  AND due_date < ?
		  AND status IN ('pending', 'in_progress')
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, before.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing overdue work items: %w", err)
	}
	defer rows.Close()
	items, err := r.scanWorkItems(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadParticipants(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET title = ?, description = ?, kind = ?, status = ?, priority = ?,
		due_date = ?, estimated_min = ?, linked_parent_id = ?,
		root_cause_category = ?, root_cause_factor = ?, root_cause_severity = ?,
		escalated_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Title,
		w.Description,
		string(w.Kind),
		string(w.Status),
		string(w.Priority),
		nullableTimeToString(w.DueDate),
		w.EstimatedMin,
		nullableString(w.LinkedParentID),
		causeField(w.RootCause, func(rc *domain.RootCause) string { return string(rc.Category) }),
		causeField(w.RootCause, func(rc *domain.RootCause) string { return rc.Factor }),
		causeField(w.RootCause, func(rc *domain.RootCause) string { return string(rc.Severity) }),
		nullableTimeToString(w.EscalatedAt),
		w.UpdatedAt.UTC().Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("work item %s: %w", w.ID, ErrNotFound)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM work_item_participants WHERE work_item_id = ?`, w.ID); err != nil {
		return fmt.Errorf("clearing participants: %w", err)
	}
	return r.insertParticipants(ctx, w)
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) insertParticipants(ctx context.Context, w *domain.WorkItem) error {
	for i, userID := range w.Participants {
		var override interface{}
		if k, ok := w.ParticipantKind[userID]; ok {
			override = string(k)
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO work_item_participants (work_item_id, user_id, position, kind_override)
			VALUES (?, ?, ?, ?)`,
			w.ID, userID, i, override,
		)
		if err != nil {
			return fmt.Errorf("inserting participant %s: %w", userID, err)
		}
	}
	return nil
}

// loadParticipants fills Participants and ParticipantKind for the given
// items with a single batched query.
func (r *SQLiteWorkItemRepo) loadParticipants(ctx context.Context, items []*domain.WorkItem) error {
	if len(items) == 0 {
		return nil
	}
	byID := make(map[string]*domain.WorkItem, len(items))
	placeholders := make([]string, 0, len(items))
	args := make([]any, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		item.Participants = nil
		item.ParticipantKind = nil
		placeholders = append(placeholders, "?")
		args = append(args, item.ID)
	}

	query := `SELECT work_item_id, user_id, kind_override
		FROM work_item_participants
		WHERE work_item_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY work_item_id, position`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, userID string
		var override sql.NullString
		if err := rows.Scan(&itemID, &userID, &override); err != nil {
			return fmt.Errorf("scanning participant: %w", err)
		}
		item := byID[itemID]
		if item == nil {
			continue
		}
		item.Participants = append(item.Participants, userID)
		if override.Valid && override.String != "" {
			if item.ParticipantKind == nil {
				item.ParticipantKind = make(map[string]domain.Kind)
			}
			item.ParticipantKind[userID] = domain.Kind(override.String)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating participants: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) scanWorkItem(row *sql.Row) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var kindStr, statusStr, priorityStr string
	var dueDateStr, parentStr, causeCat, causeFactor, causeSev, escalatedStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&w.ID, &w.Title, &w.Description, &kindStr, &statusStr, &priorityStr,
		&dueDateStr, &w.EstimatedMin, &parentStr,
		&causeCat, &causeFactor, &causeSev,
		&escalatedStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work item: %w", err)
	}
	return populateWorkItem(&w, kindStr, statusStr, priorityStr,
		dueDateStr, parentStr, causeCat, causeFactor, causeSev, escalatedStr,
		createdAtStr, updatedAtStr)
}

func (r *SQLiteWorkItemRepo) scanWorkItems(rows *sql.Rows) ([]*domain.WorkItem, error) {
	var items []*domain.WorkItem
	for rows.Next() {
		var w domain.WorkItem
		var kindStr, statusStr, priorityStr string
		var dueDateStr, parentStr, causeCat, causeFactor, causeSev, escalatedStr sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&w.ID, &w.Title, &w.Description, &kindStr, &statusStr, &priorityStr,
			&dueDateStr, &w.EstimatedMin, &parentStr,
			&causeCat, &causeFactor, &causeSev,
			&escalatedStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning work item row: %w", err)
		}
		item, err := populateWorkItem(&w, kindStr, statusStr, priorityStr,
			dueDateStr, parentStr, causeCat, causeFactor, causeSev, escalatedStr,
			createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}

// populateWorkItem fills in parsed fields after scanning raw values.
func populateWorkItem(
	w *domain.WorkItem,
	kindStr, statusStr, priorityStr string,
	dueDateStr, parentStr, causeCat, causeFactor, causeSev, escalatedStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.WorkItem, error) {
	w.Kind = domain.Kind(kindStr)
	w.Status = domain.Status(statusStr)
	w.Priority = domain.Priority(priorityStr)
	w.DueDate = parseNullableTime(dueDateStr)
	w.EscalatedAt = parseNullableTime(escalatedStr)
	if parentStr.Valid {
		w.LinkedParentID = parentStr.String
	}
	if causeCat.Valid && causeCat.String != "" {
		w.RootCause = &domain.RootCause{
			Category: domain.RootCauseCategory(causeCat.String),
			Factor:   causeFactor.String,
			Severity: domain.Severity(causeSev.String),
		}
	}

	var parseErr error
	w.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	w.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return w, nil
}

// causeField extracts one column value from an optional RootCause.
func causeField(rc *domain.RootCause, get func(*domain.RootCause) string) interface{} {
	if rc == nil {
		return nil
	}
	v := get(rc)
	if v == "" {
		return nil
	}
	return v
}
