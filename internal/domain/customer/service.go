package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atelierdoces/backoffice/internal/repository"
	"github.com/google/uuid"
)

// Service handles customer operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new customer service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines customer creation inputs.
type CreateRequest struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// Create creates a new customer.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	cust := &Customer{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Notes:      req.Notes,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.repo.Create(ctx, cust); err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return cust, nil
}

// Get fetches a customer by ID.
func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	cust, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("getting customer: %w", err)
	}
	return cust, nil
}

// UpdateRequest defines customer update inputs. Nil fields are left unchanged.
type UpdateRequest struct {
	ID      string
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Notes   *string
}

// Update applies the non-nil fields of req to an existing customer.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Customer, error) {
	cust, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		cust.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		cust.Phone = *req.Phone
	}
	if req.Email != nil {
		cust.Email = *req.Email
	}
	if req.Address != nil {
		cust.Address = *req.Address
	}
	if req.Notes != nil {
		cust.Notes = *req.Notes
	}
	cust.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, cust); err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	return cust, nil
}

// Delete removes a customer. Customers with projects attached are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	count, err := s.repo.CountProjects(ctx, id)
	if err != nil {
		return fmt.Errorf("counting customer projects: %w", err)
	}
	if count > 0 {
		return ErrHasProjects
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("deleting customer: %w", err)
	}
	return nil
}

// List returns customer summaries, optionally filtered by a search query.
func (s *Service) List(ctx context.Context, query string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	if strings.TrimSpace(query) != "" {
		return s.repo.Search(ctx, strings.TrimSpace(query), limit)
	}
	return s.repo.List(ctx)
}
