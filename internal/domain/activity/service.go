package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Repository provides persistence for audit entries.
type Repository interface {
	Log(ctx context.Context, entry *Entry) error
	List(ctx context.Context, opts ListOptions) ([]Entry, error)
}

// Service handles the audit trail. Logging failures are reported to the
// logger, never to the caller; an audit write must not fail a mutation.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record appends an audit entry.
func (s *Service) Record(ctx context.Context, entityType, entityID string, action Action, actorID, summary string) {
	entry := &Entry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actorID,
		Summary:    summary,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Log(ctx, entry); err != nil && s.logger != nil {
		s.logger.Error("audit write failed", "entity_type", entityType, "entity_id", entityID, "error", err)
	}
}

// List returns recent audit entries.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	entries, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return entries, nil
}
