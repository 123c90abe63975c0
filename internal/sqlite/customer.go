package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/repository"
)

// CustomerRepository provides SQLite persistence for customers
type CustomerRepository struct {
	db *DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, address, notes, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		cust.ID,
		cust.Name,
		cust.Phone,
		cust.Email,
		cust.Address,
		cust.Notes,
		cust.CreatedAt,
		cust.ModifiedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// Get retrieves a customer by ID
func (r *CustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, notes, created_at, modified_at
		FROM customers
		WHERE id = ?
	`

	var cust customer.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cust.ID,
		&cust.Name,
		&cust.Phone,
		&cust.Email,
		&cust.Address,
		&cust.Notes,
		&cust.CreatedAt,
		&cust.ModifiedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &cust, nil
}

// Update replaces the mutable fields of a customer
func (r *CustomerRepository) Update(ctx context.Context, cust *customer.Customer) error {
	query := `
		UPDATE customers
		SET name = ?, phone = ?, email = ?, address = ?, notes = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		cust.Name,
		cust.Phone,
		cust.Email,
		cust.Address,
		cust.Notes,
		cust.ModifiedAt,
		cust.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
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

// Delete removes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
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

// List returns all customers with project counts
func (r *CustomerRepository) List(ctx context.Context) ([]customer.Summary, error) {
	query := `
		SELECT c.id, c.name, c.phone, COUNT(p.id) as project_count, c.created_at
		FROM customers c
		LEFT JOIN projects p ON p.customer_id = c.id
		GROUP BY c.id, c.name, c.phone, c.created_at
		ORDER BY c.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	return scanCustomerSummaries(rows)
}

// Search returns customers matching a full-text query over name and notes
func (r *CustomerRepository) Search(ctx context.Context, query string, limit int) ([]customer.Summary, error) {
	sqlQuery := `
		SELECT c.id, c.name, c.phone, COUNT(p.id) as project_count, c.created_at
		FROM customers_fts fts
		JOIN customers c ON c.rowid = fts.rowid
		LEFT JOIN projects p ON p.customer_id = c.id
		WHERE customers_fts MATCH ?
		GROUP BY c.id, c.name, c.phone, c.created_at
		ORDER BY rank
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, sqlQuery, ftsQuery(query), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	return scanCustomerSummaries(rows)
}

// CountProjects returns how many projects reference a customer
func (r *CustomerRepository) CountProjects(ctx context.Context, customerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE customer_id = ?`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

// Exists reports whether a customer exists
func (r *CustomerRepository) Exists(ctx context.Context, customerID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM customers WHERE id = ?`, customerID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}
	return true, nil
}

func scanCustomerSummaries(rows *sql.Rows) ([]customer.Summary, error) {
	var summaries []customer.Summary
	for rows.Next() {
		var summary customer.Summary
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Phone,
			&summary.ProjectCount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	return summaries, nil
}

// ftsQuery quotes each term so user input cannot inject FTS5 operators.
func ftsQuery(input string) string {
	terms := strings.Fields(input)
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		quoted = append(quoted, `"`+strings.ReplaceAll(term, `"`, `""`)+`"*`)
	}
	return strings.Join(quoted, " ")
}
