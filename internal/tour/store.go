package tour

import (
	"context"
	"time"

	"aotearoa/internal/customer"
)

// Store is the tour catalog shared by all workflows. AppendMember is the only
// mutation; everything else is a read-only snapshot.
type Store interface {
	// Save adds a tour to the catalog. Used when seeding.
	Save(ctx context.Context, t *Tour) error
	FindByName(ctx context.Context, name string) (*Tour, error)
	// List returns a deep-copied snapshot of the catalog ordered by name.
	List(ctx context.Context) ([]Tour, error)
	// Groups projects the catalog into its ordered tour-group snapshot.
	Groups(ctx context.Context) ([]Group, error)
	// AppendMember appends the customer to the group at (tourName, date).
	AppendMember(ctx context.Context, tourName string, date time.Time, id customer.ID) error
}
