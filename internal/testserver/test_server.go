// Package testserver spins up a fully wired backend over an in-memory
// database for HTTP-level tests.
package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atelierdoces/backoffice/internal/domain/activity"
	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/payment"
	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/atelierdoces/backoffice/internal/sqlite"
	"github.com/atelierdoces/backoffice/internal/transport"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Auth   *auth.Service

	Customers *customer.Service
	Projects  *project.Service
	Cakes     *cake.Service
	Payments  *payment.Service
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	customerRepo := sqlite.NewCustomerRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	cakeRepo := sqlite.NewCakeRepository(db)
	paymentRepo := sqlite.NewPaymentRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	authSessionRepo := sqlite.NewAuthSessionRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	customerSvc := customer.NewService(customerRepo, nil)
	projectSvc := project.NewService(projectRepo, customerRepo, nil)
	cakeSvc := cake.NewService(cakeRepo, projectRepo, nil)
	paymentSvc := payment.NewService(paymentRepo, projectRepo, nil)
	authSvc := auth.NewService(userRepo, authSessionRepo, auth.TTLConfig{}, nil)
	activitySvc := activity.NewService(activityRepo, nil)

	server := httptest.NewServer(transport.NewServer(transport.Services{
		Customers: customerSvc,
		Projects:  projectSvc,
		Cakes:     cakeSvc,
		Payments:  paymentSvc,
		Auth:      authSvc,
		Activity:  activitySvc,
	}, nil, false))

	ts := &TestServer{
		Server:    server,
		DB:        db,
		Auth:      authSvc,
		Customers: customerSvc,
		Projects:  projectSvc,
		Cakes:     cakeSvc,
		Payments:  paymentSvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// SignUp registers a staff user and signs them in, returning the token
// pair.
func (ts *TestServer) SignUp(t *testing.T, email, password string) *auth.TokenPair {
	return ts.SignUpAs(t, email, password, auth.RoleStaff)
}

// SignUpAs registers a user with the given role and signs them in.
func (ts *TestServer) SignUpAs(t *testing.T, email, password string, role auth.Role) *auth.TokenPair {
	t.Helper()
	ctx := context.Background()
	_, err := ts.Auth.Register(ctx, auth.RegisterRequest{
		Email:    email,
		Name:     "Test User",
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	_, pair, err := ts.Auth.SignIn(ctx, email, password)
	require.NoError(t, err)
	return pair
}
