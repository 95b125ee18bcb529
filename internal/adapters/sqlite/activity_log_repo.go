package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/skyops/internal/ports/secondary"
)

// ActivityLogRepository implements secondary.ActivityLogRepository with SQLite.
type ActivityLogRepository struct {
	db *sql.DB
}

// NewActivityLogRepository creates a new SQLite activity log repository.
func NewActivityLogRepository(db *sql.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append records a single activity entry.
func (r *ActivityLogRepository) Append(ctx context.Context, entry *secondary.ActivityRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO activity_log (actor, action, entity_id, detail) VALUES (?, ?, ?, ?)",
		entry.Actor, entry.Action, entry.EntityID, entry.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}

	return nil
}

// Recent returns the newest entries first, capped at limit.
func (r *ActivityLogRepository) Recent(ctx context.Context, limit int) ([]*secondary.ActivityRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, actor, action, entity_id, detail, created_at FROM activity_log ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.ActivityRecord
	for rows.Next() {
		record := &secondary.ActivityRecord{}
		err := rows.Scan(&record.ID, &record.Actor, &record.Action, &record.EntityID, &record.Detail, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, record)
	}

	return entries, nil
}

// Ensure ActivityLogRepository implements the interface
var _ secondary.ActivityLogRepository = (*ActivityLogRepository)(nil)
