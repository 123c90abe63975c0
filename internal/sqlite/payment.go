package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierdoces/backoffice/internal/domain/payment"
	"github.com/atelierdoces/backoffice/internal/repository"
)

// PaymentRepository provides SQLite persistence for payments
type PaymentRepository struct {
	db *DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create records a payment
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (id, project_id, amount_cents, method, paid_at, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ProjectID,
		p.AmountCents,
		p.Method,
		p.PaidAt,
		p.Note,
		p.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// Get retrieves a payment by ID
func (r *PaymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	query := `
		SELECT id, project_id, amount_cents, method, paid_at, note, created_at
		FROM payments
		WHERE id = ?
	`

	var p payment.Payment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.ProjectID,
		&p.AmountCents,
		&p.Method,
		&p.PaidAt,
		&p.Note,
		&p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &p, nil
}

// Delete removes a payment
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
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

// ListByProject returns the payments of a project
func (r *PaymentRepository) ListByProject(ctx context.Context, projectID string) ([]payment.Payment, error) {
	query := `
		SELECT id, project_id, amount_cents, method, paid_at, note, created_at
		FROM payments
		WHERE project_id = ?
		ORDER BY paid_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		err := rows.Scan(
			&p.ID,
			&p.ProjectID,
			&p.AmountCents,
			&p.Method,
			&p.PaidAt,
			&p.Note,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

// SumByProject returns the total paid against a project in cents
func (r *PaymentRepository) SumByProject(ctx context.Context, projectID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE project_id = ?`, projectID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}
