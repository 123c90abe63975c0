package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/repository"
	"github.com/atelierdoces/backoffice/internal/repository/mocks"
)

func newService(users *mocks.UserRepository, sessions *mocks.AuthSessionRepository) *auth.Service {
	return auth.NewService(users, sessions, auth.TTLConfig{}, nil)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := newService(&mocks.UserRepository{}, &mocks.AuthSessionRepository{})

	_, err := svc.Register(context.Background(), auth.RegisterRequest{Email: "a@b.c", Password: "short"})
	require.ErrorIs(t, err, auth.ErrInvalidInput)

	_, err = svc.Register(context.Background(), auth.RegisterRequest{Email: "", Password: "long-enough"})
	require.ErrorIs(t, err, auth.ErrInvalidInput)
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserRepository{}
	var created *auth.User
	users.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*auth.User)
	}).Return(nil)

	svc := newService(users, &mocks.AuthSessionRepository{})
	u, err := svc.Register(ctx, auth.RegisterRequest{
		Email:    "  Ana@Atelier.Test ",
		Name:     "Ana",
		Password: "confeitaria",
	})
	require.NoError(t, err)
	require.Equal(t, "ana@atelier.test", u.Email)
	require.Equal(t, auth.RoleStaff, u.Role)
	require.NotEqual(t, "confeitaria", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("confeitaria")))
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	user := &auth.User{
		ID:           "u-1",
		Email:        "ana@atelier.test",
		PasswordHash: hashPassword(t, "confeitaria"),
		Role:         auth.RoleAdmin,
	}

	users := &mocks.UserRepository{}
	users.On("GetByEmail", ctx, "ana@atelier.test").Return(user, nil)
	sessions := &mocks.AuthSessionRepository{}
	var stored *auth.Session
	sessions.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*auth.Session)
	}).Return(nil)

	svc := newService(users, sessions)
	got, pair, err := svc.SignIn(ctx, "Ana@Atelier.Test", "confeitaria")
	require.NoError(t, err)
	require.Equal(t, "u-1", got.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	require.Equal(t, auth.DefaultTTL.Access, pair.AccessExpiresIn)

	// Only hashes reach the store.
	require.Equal(t, auth.HashToken(pair.AccessToken), stored.AccessTokenHash)
	require.Equal(t, auth.HashToken(pair.RefreshToken), stored.RefreshTokenHash)
	require.NotContains(t, stored.AccessTokenHash, pair.AccessToken)
}

func TestAuthService_SignInWrongPassword(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserRepository{}
	users.On("GetByEmail", ctx, "ana@atelier.test").Return(&auth.User{
		ID:           "u-1",
		PasswordHash: hashPassword(t, "confeitaria"),
	}, nil)

	svc := newService(users, &mocks.AuthSessionRepository{})
	_, _, err := svc.SignIn(ctx, "ana@atelier.test", "wrong")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_SignInUnknownEmail(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserRepository{}
	users.On("GetByEmail", ctx, "ghost@atelier.test").Return(nil, repository.ErrNotFound)

	svc := newService(users, &mocks.AuthSessionRepository{})
	_, _, err := svc.SignIn(ctx, "ghost@atelier.test", "whatever")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_RefreshRotatesBothTokens(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Now().Add(-time.Hour)
	existing := &auth.Session{
		ID:               "sess-1",
		UserID:           "u-1",
		AccessTokenHash:  auth.HashToken("old-access"),
		RefreshTokenHash: auth.HashToken("old-refresh"),
		RefreshExpiresAt: time.Now().Add(time.Hour),
		CreatedAt:        createdAt,
	}

	sessions := &mocks.AuthSessionRepository{}
	sessions.On("GetByRefreshHash", ctx, auth.HashToken("old-refresh")).Return(existing, nil)
	var rotated *auth.Session
	sessions.On("Rotate", ctx, mock.Anything).Run(func(args mock.Arguments) {
		rotated = args.Get(1).(*auth.Session)
	}).Return(nil)

	svc := newService(&mocks.UserRepository{}, sessions)
	pair, err := svc.Refresh(ctx, "old-refresh")
	require.NoError(t, err)

	// Same session row, fresh tokens on both sides.
	require.Equal(t, "sess-1", rotated.ID)
	require.Equal(t, createdAt, rotated.CreatedAt)
	require.NotEqual(t, existing.AccessTokenHash, rotated.AccessTokenHash)
	require.NotEqual(t, existing.RefreshTokenHash, rotated.RefreshTokenHash)
	require.Equal(t, auth.HashToken(pair.AccessToken), rotated.AccessTokenHash)
	require.Equal(t, auth.HashToken(pair.RefreshToken), rotated.RefreshTokenHash)
}

func TestAuthService_RefreshExpired(t *testing.T) {
	ctx := context.Background()
	sessions := &mocks.AuthSessionRepository{}
	sessions.On("GetByRefreshHash", ctx, auth.HashToken("stale")).Return(&auth.Session{
		ID:               "sess-1",
		RefreshExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	svc := newService(&mocks.UserRepository{}, sessions)
	_, err := svc.Refresh(ctx, "stale")
	require.ErrorIs(t, err, auth.ErrRefreshFailed)
}

func TestAuthService_RefreshUnknownToken(t *testing.T) {
	ctx := context.Background()
	sessions := &mocks.AuthSessionRepository{}
	sessions.On("GetByRefreshHash", ctx, mock.Anything).Return(nil, repository.ErrNotFound)

	svc := newService(&mocks.UserRepository{}, sessions)
	_, err := svc.Refresh(ctx, "ghost")
	require.ErrorIs(t, err, auth.ErrRefreshFailed)

	_, err = svc.Refresh(ctx, "")
	require.ErrorIs(t, err, auth.ErrRefreshFailed)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	sessions := &mocks.AuthSessionRepository{}
	sessions.On("GetByAccessHash", ctx, auth.HashToken("tok")).Return(&auth.Session{
		ID:              "sess-1",
		UserID:          "u-1",
		AccessExpiresAt: time.Now().Add(time.Minute),
	}, nil)
	users := &mocks.UserRepository{}
	users.On("Get", ctx, "u-1").Return(&auth.User{ID: "u-1", Email: "ana@atelier.test"}, nil)

	svc := newService(users, sessions)
	u, err := svc.Authenticate(ctx, "tok")
	require.NoError(t, err)
	require.Equal(t, "ana@atelier.test", u.Email)
}

func TestAuthService_AuthenticateExpiredAccess(t *testing.T) {
	ctx := context.Background()
	sessions := &mocks.AuthSessionRepository{}
	sessions.On("GetByAccessHash", ctx, auth.HashToken("stale")).Return(&auth.Session{
		ID:              "sess-1",
		UserID:          "u-1",
		AccessExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	svc := newService(&mocks.UserRepository{}, sessions)
	_, err := svc.Authenticate(ctx, "stale")
	require.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestAuthService_AuthenticateUnknownToken(t *testing.T) {
	ctx := context.Background()
	sessions := &mocks.AuthSessionRepository{}
	sessions.On("GetByAccessHash", ctx, mock.Anything).Return(nil, repository.ErrNotFound)

	svc := newService(&mocks.UserRepository{}, sessions)
	_, err := svc.Authenticate(ctx, "ghost")
	require.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "")
	require.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestAuthService_SignOutBestEffort(t *testing.T) {
	ctx := context.Background()
	sessions := &mocks.AuthSessionRepository{}
	sessions.On("GetByRefreshHash", ctx, auth.HashToken("ghost")).Return(nil, repository.ErrNotFound)

	svc := newService(&mocks.UserRepository{}, sessions)
	require.NoError(t, svc.SignOut(ctx, "ghost"))
	require.NoError(t, svc.SignOut(ctx, ""))
}

func TestAuthService_SignOutRevokes(t *testing.T) {
	ctx := context.Background()
	sessions := &mocks.AuthSessionRepository{}
	sessions.On("GetByRefreshHash", ctx, auth.HashToken("ref")).Return(&auth.Session{ID: "sess-1"}, nil)
	sessions.On("Delete", ctx, "sess-1").Return(nil)

	svc := newService(&mocks.UserRepository{}, sessions)
	require.NoError(t, svc.SignOut(ctx, "ref"))
	sessions.AssertCalled(t, "Delete", ctx, "sess-1")
}
