package project

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

// Service handles project operations.
type Service struct {
	repo      Repository
	customers CustomerChecker
	logger    *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, customers CustomerChecker, logger *slog.Logger) *Service {
	return &Service{repo: repo, customers: customers, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	CustomerID    string
	Name          string
	EventDate     string
	DeliveryNotes string
	Status        Status
}

// Create creates a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.CustomerID) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := DateOnly(req.EventDate); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	status := req.Status
	if status == "" {
		status = StatusPlanning
	}
	if !status.Valid() {
		return nil, ErrInvalidInput
	}

	ok, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("checking customer: %w", err)
	}
	if !ok {
		return nil, ErrCustomerNotFound
	}

	now := time.Now()
	proj := &Project{
		ID:            uuid.NewString(),
		CustomerID:    req.CustomerID,
		Name:          strings.TrimSpace(req.Name),
		EventDate:     req.EventDate,
		DeliveryNotes: req.DeliveryNotes,
		Status:        status,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// UpdateRequest defines project update inputs. Nil fields are left unchanged.
type UpdateRequest struct {
	ID            string
	Name          *string
	EventDate     *string
	DeliveryNotes *string
}

// Update applies the non-nil fields of req to an existing project.
// Status changes go through Transition.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Project, error) {
	proj, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		proj.Name = strings.TrimSpace(*req.Name)
	}
	if req.EventDate != nil {
		if _, err := DateOnly(*req.EventDate); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		proj.EventDate = *req.EventDate
	}
	if req.DeliveryNotes != nil {
		proj.DeliveryNotes = *req.DeliveryNotes
	}
	proj.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, proj); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return proj, nil
}

// Transition moves a project to a new status. Terminal statuses cannot be
// left.
func (s *Service) Transition(ctx context.Context, id string, to Status) (*Project, error) {
	if !to.Valid() {
		return nil, ErrInvalidInput
	}

	proj, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if proj.Status.Terminal() && to != proj.Status {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, proj.Status, to)
	}

	proj.Status = to
	proj.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, proj); err != nil {
		return nil, fmt.Errorf("updating project status: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("project status changed", "project_id", id, "status", to)
	}

	return proj, nil
}

// Delete removes a project and its line items.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// List returns project summaries.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Summary, error) {
	for _, st := range opts.Statuses {
		if !st.Valid() {
			return nil, ErrInvalidInput
		}
	}
	return s.repo.List(ctx, opts)
}

// Upcoming returns the this-week/next-week partition of open projects
// relative to today. Terminal projects are filtered before partitioning;
// the classifier itself is total.
func (s *Service) Upcoming(ctx context.Context, today time.Time) (WeekBuckets, error) {
	summaries, err := s.repo.List(ctx, ListOptions{
		Statuses: []Status{StatusPlanning, StatusConfirmed, StatusProducing},
	})
	if err != nil {
		return WeekBuckets{}, fmt.Errorf("listing projects: %w", err)
	}
	return PartitionByWeek(summaries, today)
}

// Board returns the by-status display buckets of all projects.
func (s *Service) Board(ctx context.Context) (StatusBuckets, error) {
	summaries, err := s.repo.List(ctx, ListOptions{})
	if err != nil {
		return StatusBuckets{}, fmt.Errorf("listing projects: %w", err)
	}
	return PartitionByStatus(summaries), nil
}
