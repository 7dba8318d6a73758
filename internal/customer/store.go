package customer

import "context"

// Store is the customer collection shared by all workflows.
type Store interface {
	// Create assigns a fresh ID and appends the record.
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id ID) (*Customer, error)
	Exists(ctx context.Context, id ID) (bool, error)
	// List returns all customers ordered by ID ascending.
	List(ctx context.Context) ([]Customer, error)
}
