package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atelierdoces/backoffice/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TTLConfig holds token lifetimes.
type TTLConfig struct {
	Access  time.Duration
	Refresh time.Duration
}

// DefaultTTL matches the cookie lifetimes the front end expects.
var DefaultTTL = TTLConfig{
	Access:  15 * time.Minute,
	Refresh: 30 * 24 * time.Hour,
}

// Service handles sign-in, token refresh and access-token resolution.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	ttl      TTLConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new auth service.
func NewService(users UserRepository, sessions SessionRepository, ttl TTLConfig, logger *slog.Logger) *Service {
	if ttl.Access <= 0 {
		ttl.Access = DefaultTTL.Access
	}
	if ttl.Refresh <= 0 {
		ttl.Refresh = DefaultTTL.Refresh
	}
	return &Service{users: users, sessions: sessions, ttl: ttl, logger: logger, now: time.Now}
}

// RegisterRequest defines user creation inputs.
type RegisterRequest struct {
	Email    string
	Name     string
	Password string
	Role     Role
}

// Register creates a new back-office user.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return nil, ErrInvalidInput
	}
	role := req.Role
	if role == "" {
		role = RoleStaff
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return u, nil
}

// SignIn verifies credentials and issues a fresh token pair.
func (s *Service) SignIn(ctx context.Context, email, password string) (*User, *TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("getting user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, sess, err := s.mintPair(u.ID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user signed in", "user_id", u.ID)
	}

	return u, pair, nil
}

// Refresh exchanges a refresh token for a new token pair. Both tokens
// rotate; the previous pair stops working the moment the rotation lands.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrRefreshFailed
	}

	sess, err := s.sessions.GetByRefreshHash(ctx, HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRefreshFailed
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if s.now().After(sess.RefreshExpiresAt) {
		return nil, ErrRefreshFailed
	}

	pair, rotated, err := s.mintPair(sess.UserID)
	if err != nil {
		return nil, err
	}
	rotated.ID = sess.ID
	rotated.CreatedAt = sess.CreatedAt

	if err := s.sessions.Rotate(ctx, rotated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRefreshFailed
		}
		return nil, fmt.Errorf("rotating session: %w", err)
	}

	return pair, nil
}

// Authenticate resolves an access token to its user.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, ErrUnauthorized
	}

	sess, err := s.sessions.GetByAccessHash(ctx, HashToken(accessToken))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if s.now().After(sess.AccessExpiresAt) {
		return nil, ErrUnauthorized
	}

	u, err := s.users.Get(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

// SignOut revokes the session behind a refresh token. Missing or already
// revoked sessions are not an error; sign-out is best-effort.
func (s *Service) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	sess, err := s.sessions.GetByRefreshHash(ctx, HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("getting session: %w", err)
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// PurgeExpired drops sessions whose refresh token has lapsed.
func (s *Service) PurgeExpired(ctx context.Context) error {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("purging sessions: %w", err)
	}
	if n > 0 && s.logger != nil {
		s.logger.Info("purged expired sessions", "count", n)
	}
	return nil
}

func (s *Service) mintPair(userID string) (*TokenPair, *Session, error) {
	access, err := newToken()
	if err != nil {
		return nil, nil, err
	}
	refresh, err := newToken()
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	pair := &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresIn:  s.ttl.Access,
		RefreshExpiresAt: now.Add(s.ttl.Refresh),
	}
	sess := &Session{
		ID:               uuid.NewString(),
		UserID:           userID,
		AccessTokenHash:  HashToken(access),
		AccessExpiresAt:  now.Add(s.ttl.Access),
		RefreshTokenHash: HashToken(refresh),
		RefreshExpiresAt: pair.RefreshExpiresAt,
		CreatedAt:        now,
	}
	return pair, sess, nil
}

// HashToken returns the hex SHA-256 of a token. Only hashes touch the
// database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
