package cake

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

// Service handles cake line item operations.
type Service struct {
	repo     Repository
	projects ProjectChecker
	logger   *slog.Logger
}

// NewService creates a new cake service.
func NewService(repo Repository, projects ProjectChecker, logger *slog.Logger) *Service {
	return &Service{repo: repo, projects: projects, logger: logger}
}

// CreateRequest defines cake creation inputs.
type CreateRequest struct {
	ProjectID      string
	Description    string
	Flavor         string
	Size           string
	Quantity       int
	UnitPriceCents int64
}

// Create adds a cake line item to a project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Cake, error) {
	if strings.TrimSpace(req.Description) == "" || req.Quantity <= 0 || req.UnitPriceCents < 0 {
		return nil, ErrInvalidInput
	}

	ok, err := s.projects.Exists(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("checking project: %w", err)
	}
	if !ok {
		return nil, ErrProjectNotFound
	}

	now := time.Now()
	ck := &Cake{
		ID:             uuid.NewString(),
		ProjectID:      req.ProjectID,
		Description:    strings.TrimSpace(req.Description),
		Flavor:         req.Flavor,
		Size:           req.Size,
		Quantity:       req.Quantity,
		UnitPriceCents: req.UnitPriceCents,
		CreatedAt:      now,
		ModifiedAt:     now,
	}

	if err := s.repo.Create(ctx, ck); err != nil {
		return nil, fmt.Errorf("creating cake: %w", err)
	}

	return ck, nil
}

// Get fetches a cake line item by ID.
func (s *Service) Get(ctx context.Context, id string) (*Cake, error) {
	ck, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCakeNotFound
		}
		return nil, fmt.Errorf("getting cake: %w", err)
	}
	return ck, nil
}

// UpdateRequest defines cake update inputs. Nil fields are left unchanged.
type UpdateRequest struct {
	ID             string
	Description    *string
	Flavor         *string
	Size           *string
	Quantity       *int
	UnitPriceCents *int64
}

// Update applies the non-nil fields of req to an existing cake.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Cake, error) {
	ck, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrInvalidInput
		}
		ck.Description = strings.TrimSpace(*req.Description)
	}
	if req.Flavor != nil {
		ck.Flavor = *req.Flavor
	}
	if req.Size != nil {
		ck.Size = *req.Size
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, ErrInvalidInput
		}
		ck.Quantity = *req.Quantity
	}
	if req.UnitPriceCents != nil {
		if *req.UnitPriceCents < 0 {
			return nil, ErrInvalidInput
		}
		ck.UnitPriceCents = *req.UnitPriceCents
	}
	ck.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, ck); err != nil {
		return nil, fmt.Errorf("updating cake: %w", err)
	}

	return ck, nil
}

// Delete removes a cake line item.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCakeNotFound
		}
		return fmt.Errorf("deleting cake: %w", err)
	}
	return nil
}

// ListByProject returns the cake line items of a project.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]Cake, error) {
	return s.repo.ListByProject(ctx, projectID)
}
