package payment

import "context"

// Repository provides persistence for payments.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]Payment, error)
	SumByProject(ctx context.Context, projectID string) (int64, error)
}

// ProjectChecker verifies that a parent project exists.
type ProjectChecker interface {
	Exists(ctx context.Context, projectID string) (bool, error)
}
