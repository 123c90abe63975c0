package customer

import "context"

// Repository provides persistence for customers.
type Repository interface {
	Create(ctx context.Context, cust *Customer) error
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, cust *Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Summary, error)
	Search(ctx context.Context, query string, limit int) ([]Summary, error)
	CountProjects(ctx context.Context, customerID string) (int, error)
}
