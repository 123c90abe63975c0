package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/atelierdoces/backoffice/internal/repository"
)

// ProjectRepository provides SQLite persistence for projects
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	query := `
		INSERT INTO projects (id, customer_id, name, event_date, delivery_notes, status, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		proj.CustomerID,
		proj.Name,
		proj.EventDate,
		proj.DeliveryNotes,
		proj.Status,
		proj.CreatedAt,
		proj.ModifiedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT id, customer_id, name, event_date, delivery_notes, status, created_at, modified_at
		FROM projects
		WHERE id = ?
	`

	var proj project.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proj.ID,
		&proj.CustomerID,
		&proj.Name,
		&proj.EventDate,
		&proj.DeliveryNotes,
		&proj.Status,
		&proj.CreatedAt,
		&proj.ModifiedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &proj, nil
}

// Update replaces the mutable fields of a project
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	query := `
		UPDATE projects
		SET name = ?, event_date = ?, delivery_notes = ?, status = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.Name,
		proj.EventDate,
		proj.DeliveryNotes,
		proj.Status,
		proj.ModifiedAt,
		proj.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a project; line items cascade
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns project summaries with derived cake and payment figures
func (r *ProjectRepository) List(ctx context.Context, opts project.ListOptions) ([]project.Summary, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			p.id,
			p.customer_id,
			c.name as customer_name,
			p.name,
			p.event_date,
			p.status,
			COUNT(DISTINCT k.id) as cake_count,
			COALESCE(SUM(k.quantity * k.unit_price_cents), 0) as total_cents,
			COALESCE((SELECT SUM(amount_cents) FROM payments WHERE project_id = p.id), 0) as paid_cents,
			p.created_at
		FROM projects p
		JOIN customers c ON c.id = p.customer_id
		LEFT JOIN cakes k ON k.project_id = p.id
		WHERE 1=1
	`)

	var args []any
	if opts.CustomerID != "" {
		sb.WriteString(" AND p.customer_id = ?")
		args = append(args, opts.CustomerID)
	}
	if len(opts.Statuses) > 0 {
		sb.WriteString(" AND p.status IN (?" + strings.Repeat(", ?", len(opts.Statuses)-1) + ")")
		for _, st := range opts.Statuses {
			args = append(args, st)
		}
	}

	sb.WriteString(`
		GROUP BY p.id, p.customer_id, c.name, p.name, p.event_date, p.status, p.created_at
		ORDER BY p.event_date ASC, p.created_at ASC
	`)

	if opts.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			sb.WriteString(" OFFSET ?")
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.Summary
	for rows.Next() {
		var summary project.Summary
		err := rows.Scan(
			&summary.ID,
			&summary.CustomerID,
			&summary.CustomerName,
			&summary.Name,
			&summary.EventDate,
			&summary.Status,
			&summary.CakeCount,
			&summary.TotalCents,
			&summary.PaidCents,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}

// Exists reports whether a project exists
func (r *ProjectRepository) Exists(ctx context.Context, projectID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM projects WHERE id = ?`, projectID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check project: %w", err)
	}
	return true, nil
}
