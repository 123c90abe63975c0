package cake

import "context"

// Repository provides persistence for cake line items.
type Repository interface {
	Create(ctx context.Context, ck *Cake) error
	Get(ctx context.Context, id string) (*Cake, error)
	Update(ctx context.Context, ck *Cake) error
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]Cake, error)
}

// ProjectChecker verifies that a parent project exists.
type ProjectChecker interface {
	Exists(ctx context.Context, projectID string) (bool, error)
}
