package auth

import "context"

// UserRepository provides persistence for users.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
}

// SessionRepository provides persistence for issued token pairs.
type SessionRepository interface {
	Create(ctx context.Context, sess *Session) error
	GetByAccessHash(ctx context.Context, hash string) (*Session, error)
	GetByRefreshHash(ctx context.Context, hash string) (*Session, error)
	// Rotate replaces the token hashes and expiries of an existing
	// session atomically.
	Rotate(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
