package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/repository"
)

// AuthSessionRepository provides SQLite persistence for issued token pairs
type AuthSessionRepository struct {
	db *DB
}

// NewAuthSessionRepository creates a new AuthSessionRepository
func NewAuthSessionRepository(db *DB) *AuthSessionRepository {
	return &AuthSessionRepository{db: db}
}

// Create stores a freshly issued token pair
func (r *AuthSessionRepository) Create(ctx context.Context, sess *auth.Session) error {
	query := `
		INSERT INTO auth_sessions (id, user_id, access_token_hash, access_expires_at, refresh_token_hash, refresh_expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sess.ID,
		sess.UserID,
		sess.AccessTokenHash,
		sess.AccessExpiresAt,
		sess.RefreshTokenHash,
		sess.RefreshExpiresAt,
		sess.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create auth session: %w", err)
	}

	return nil
}

// GetByAccessHash retrieves a session by hashed access token
func (r *AuthSessionRepository) GetByAccessHash(ctx context.Context, hash string) (*auth.Session, error) {
	return r.getWhere(ctx, "access_token_hash = ?", hash)
}

// GetByRefreshHash retrieves a session by hashed refresh token
func (r *AuthSessionRepository) GetByRefreshHash(ctx context.Context, hash string) (*auth.Session, error) {
	return r.getWhere(ctx, "refresh_token_hash = ?", hash)
}

func (r *AuthSessionRepository) getWhere(ctx context.Context, where string, arg any) (*auth.Session, error) {
	query := `
		SELECT id, user_id, access_token_hash, access_expires_at, refresh_token_hash, refresh_expires_at, created_at
		FROM auth_sessions
		WHERE ` + where

	var sess auth.Session
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&sess.ID,
		&sess.UserID,
		&sess.AccessTokenHash,
		&sess.AccessExpiresAt,
		&sess.RefreshTokenHash,
		&sess.RefreshExpiresAt,
		&sess.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get auth session: %w", err)
	}

	return &sess, nil
}

// Rotate atomically replaces the token hashes and expiries of a session.
// The previous pair stops resolving as soon as the update commits.
func (r *AuthSessionRepository) Rotate(ctx context.Context, sess *auth.Session) error {
	query := `
		UPDATE auth_sessions
		SET access_token_hash = ?, access_expires_at = ?, refresh_token_hash = ?, refresh_expires_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		sess.AccessTokenHash,
		sess.AccessExpiresAt,
		sess.RefreshTokenHash,
		sess.RefreshExpiresAt,
		sess.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to rotate auth session: %w", err)
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

// Delete revokes a session
func (r *AuthSessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete auth session: %w", err)
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

// DeleteExpired drops sessions whose refresh token has lapsed
func (r *AuthSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM auth_sessions WHERE refresh_expires_at < ?`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
