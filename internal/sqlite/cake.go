package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/repository"
)

// CakeRepository provides SQLite persistence for cake line items
type CakeRepository struct {
	db *DB
}

// NewCakeRepository creates a new CakeRepository
func NewCakeRepository(db *DB) *CakeRepository {
	return &CakeRepository{db: db}
}

// Create creates a new cake line item
func (r *CakeRepository) Create(ctx context.Context, ck *cake.Cake) error {
	query := `
		INSERT INTO cakes (id, project_id, description, flavor, size, quantity, unit_price_cents, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		ck.ID,
		ck.ProjectID,
		ck.Description,
		ck.Flavor,
		ck.Size,
		ck.Quantity,
		ck.UnitPriceCents,
		ck.CreatedAt,
		ck.ModifiedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create cake: %w", err)
	}

	return nil
}

// Get retrieves a cake by ID
func (r *CakeRepository) Get(ctx context.Context, id string) (*cake.Cake, error) {
	query := `
		SELECT id, project_id, description, flavor, size, quantity, unit_price_cents, created_at, modified_at
		FROM cakes
		WHERE id = ?
	`

	var ck cake.Cake
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ck.ID,
		&ck.ProjectID,
		&ck.Description,
		&ck.Flavor,
		&ck.Size,
		&ck.Quantity,
		&ck.UnitPriceCents,
		&ck.CreatedAt,
		&ck.ModifiedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cake: %w", err)
	}

	return &ck, nil
}

// Update replaces the mutable fields of a cake
func (r *CakeRepository) Update(ctx context.Context, ck *cake.Cake) error {
	query := `
		UPDATE cakes
		SET description = ?, flavor = ?, size = ?, quantity = ?, unit_price_cents = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		ck.Description,
		ck.Flavor,
		ck.Size,
		ck.Quantity,
		ck.UnitPriceCents,
		ck.ModifiedAt,
		ck.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cake: %w", err)
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

// Delete removes a cake line item
func (r *CakeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cakes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cake: %w", err)
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

// ListByProject returns the cake line items of a project
func (r *CakeRepository) ListByProject(ctx context.Context, projectID string) ([]cake.Cake, error) {
	query := `
		SELECT id, project_id, description, flavor, size, quantity, unit_price_cents, created_at, modified_at
		FROM cakes
		WHERE project_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cakes: %w", err)
	}
	defer rows.Close()

	var cakes []cake.Cake
	for rows.Next() {
		var ck cake.Cake
		err := rows.Scan(
			&ck.ID,
			&ck.ProjectID,
			&ck.Description,
			&ck.Flavor,
			&ck.Size,
			&ck.Quantity,
			&ck.UnitPriceCents,
			&ck.CreatedAt,
			&ck.ModifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cake: %w", err)
		}
		cakes = append(cakes, ck)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cake rows: %w", err)
	}

	return cakes, nil
}
