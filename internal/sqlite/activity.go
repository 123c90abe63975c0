package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/atelierdoces/backoffice/internal/domain/activity"
)

// ActivityRepository provides SQLite persistence for activity entries
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an audit entry
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	query := `
		INSERT INTO activity_log (entity_type, entity_id, action, actor_id, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.EntityType,
		entry.EntityID,
		entry.Action,
		entry.ActorID,
		entry.Summary,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}

	return nil
}

// List returns audit entries, newest first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, entity_type, entity_id, action, actor_id, summary, created_at
		FROM activity_log
		WHERE 1=1
	`)

	var args []any
	if opts.EntityType != "" {
		sb.WriteString(" AND entity_type = ?")
		args = append(args, opts.EntityType)
	}
	if opts.EntityID != "" {
		sb.WriteString(" AND entity_id = ?")
		args = append(args, opts.EntityID)
	}

	sb.WriteString(" ORDER BY created_at DESC, id DESC LIMIT ?")
	args = append(args, opts.Limit)
	if opts.Offset > 0 {
		sb.WriteString(" OFFSET ?")
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Action,
			&entry.ActorID,
			&entry.Summary,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}
