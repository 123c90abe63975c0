package mocks

import (
	"context"

	"github.com/atelierdoces/backoffice/internal/domain/activity"
	"github.com/atelierdoces/backoffice/internal/domain/auth"
	"github.com/atelierdoces/backoffice/internal/domain/cake"
	"github.com/atelierdoces/backoffice/internal/domain/customer"
	"github.com/atelierdoces/backoffice/internal/domain/payment"
	"github.com/atelierdoces/backoffice/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// CustomerRepository is a mock customer store.
type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) error {
	args := m.Called(ctx, cust)
	return args.Error(0)
}

func (m *CustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if cust, ok := args.Get(0).(*customer.Customer); ok {
		return cust, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CustomerRepository) Update(ctx context.Context, cust *customer.Customer) error {
	args := m.Called(ctx, cust)
	return args.Error(0)
}

func (m *CustomerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CustomerRepository) List(ctx context.Context) ([]customer.Summary, error) {
	args := m.Called(ctx)
	if sums, ok := args.Get(0).([]customer.Summary); ok {
		return sums, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CustomerRepository) Search(ctx context.Context, query string, limit int) ([]customer.Summary, error) {
	args := m.Called(ctx, query, limit)
	if sums, ok := args.Get(0).([]customer.Summary); ok {
		return sums, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CustomerRepository) CountProjects(ctx context.Context, customerID string) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

func (m *CustomerRepository) Exists(ctx context.Context, customerID string) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

// ProjectRepository is a mock project store.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) List(ctx context.Context, opts project.ListOptions) ([]project.Summary, error) {
	args := m.Called(ctx, opts)
	if sums, ok := args.Get(0).([]project.Summary); ok {
		return sums, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Exists(ctx context.Context, projectID string) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

// CakeRepository is a mock cake store.
type CakeRepository struct {
	mock.Mock
}

func (m *CakeRepository) Create(ctx context.Context, ck *cake.Cake) error {
	args := m.Called(ctx, ck)
	return args.Error(0)
}

func (m *CakeRepository) Get(ctx context.Context, id string) (*cake.Cake, error) {
	args := m.Called(ctx, id)
	if ck, ok := args.Get(0).(*cake.Cake); ok {
		return ck, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CakeRepository) Update(ctx context.Context, ck *cake.Cake) error {
	args := m.Called(ctx, ck)
	return args.Error(0)
}

func (m *CakeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CakeRepository) ListByProject(ctx context.Context, projectID string) ([]cake.Cake, error) {
	args := m.Called(ctx, projectID)
	if cks, ok := args.Get(0).([]cake.Cake); ok {
		return cks, args.Error(1)
	}
	return nil, args.Error(1)
}

// PaymentRepository is a mock payment store.
type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PaymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*payment.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaymentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PaymentRepository) ListByProject(ctx context.Context, projectID string) ([]payment.Payment, error) {
	args := m.Called(ctx, projectID)
	if ps, ok := args.Get(0).([]payment.Payment); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaymentRepository) SumByProject(ctx context.Context, projectID string) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

// UserRepository is a mock user store.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *auth.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*auth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Get(ctx context.Context, id string) (*auth.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*auth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// AuthSessionRepository is a mock session store.
type AuthSessionRepository struct {
	mock.Mock
}

func (m *AuthSessionRepository) Create(ctx context.Context, sess *auth.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *AuthSessionRepository) GetByAccessHash(ctx context.Context, hash string) (*auth.Session, error) {
	args := m.Called(ctx, hash)
	if sess, ok := args.Get(0).(*auth.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthSessionRepository) GetByRefreshHash(ctx context.Context, hash string) (*auth.Session, error) {
	args := m.Called(ctx, hash)
	if sess, ok := args.Get(0).(*auth.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthSessionRepository) Rotate(ctx context.Context, sess *auth.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *AuthSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AuthSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// ActivityRepository is a mock activity store.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if entries, ok := args.Get(0).([]activity.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}
