package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atelierdoces/backoffice/internal/repository"
	"github.com/google/uuid"
)

// Service handles payment operations. Payments are immutable once
// recorded; corrections go through delete and re-create.
type Service struct {
	repo     Repository
	projects ProjectChecker
	logger   *slog.Logger
}

// NewService creates a new payment service.
func NewService(repo Repository, projects ProjectChecker, logger *slog.Logger) *Service {
	return &Service{repo: repo, projects: projects, logger: logger}
}

// CreateRequest defines payment creation inputs.
type CreateRequest struct {
	ProjectID   string
	AmountCents int64
	Method      Method
	PaidAt      time.Time
	Note        string
}

// Create records a payment against a project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Payment, error) {
	if req.AmountCents <= 0 || !req.Method.Valid() {
		return nil, ErrInvalidInput
	}

	ok, err := s.projects.Exists(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("checking project: %w", err)
	}
	if !ok {
		return nil, ErrProjectNotFound
	}

	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	p := &Payment{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		PaidAt:      paidAt,
		Note:        req.Note,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	return p, nil
}

// Get fetches a payment by ID.
func (s *Service) Get(ctx context.Context, id string) (*Payment, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("getting payment: %w", err)
	}
	return p, nil
}

// Delete removes a payment.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("deleting payment: %w", err)
	}
	return nil
}

// ListByProject returns the payments of a project.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]Payment, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// Balance returns the total paid against a project in cents.
func (s *Service) Balance(ctx context.Context, projectID string) (int64, error) {
	paid, err := s.repo.SumByProject(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("summing payments: %w", err)
	}
	return paid, nil
}
