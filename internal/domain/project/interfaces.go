package project

import "context"

// ListOptions provides filtering options for listing projects.
type ListOptions struct {
	CustomerID string
	Statuses   []Status
	Limit      int
	Offset     int
}

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]Summary, error)
}

// CustomerChecker verifies that a referenced customer exists.
type CustomerChecker interface {
	Exists(ctx context.Context, customerID string) (bool, error)
}
