package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/repository"
)

// UserRepository provides SQLite persistence for users
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		u.Role,
		u.CreatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getWhere(ctx, "email = ?", email)
}

// Get retrieves a user by ID
func (r *UserRepository) Get(ctx context.Context, id string) (*auth.User, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *UserRepository) getWhere(ctx context.Context, where string, arg any) (*auth.User, error) {
	query := `
		SELECT id, email, name, password_hash, role, created_at
		FROM users
		WHERE ` + where

	var u auth.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
