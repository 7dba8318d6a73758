package tour

import (
	"strings"
	"time"

	"aotearoa/internal/customer"
	dErrors "aotearoa/pkg/domain-errors"
)

// Tour is a named travel package offered across multiple departure dates.
// The name is the natural key; there is no numeric id.
type Tour struct {
	Name           string
	AgeRestriction int
	Itinerary      []string
	// Groups maps a departure date (UTC midnight) to the enrolled member
	// list, in enrollment order.
	Groups map[time.Time][]customer.ID
}

// New validates tour invariants and builds a tour with no scheduled groups.
func New(name string, ageRestriction int, itinerary []string) (*Tour, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tour name cannot be empty")
	}
	if ageRestriction < 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "age restriction cannot be negative")
	}
	return &Tour{
		Name:           name,
		AgeRestriction: ageRestriction,
		Itinerary:      itinerary,
		Groups:         make(map[time.Time][]customer.ID),
	}, nil
}

// Group is one scheduled departure of a tour — the enrollment unit. It is
// derived from the catalog on demand and never stored independently, so any
// membership change must be written back into the catalog at the same
// (tour name, date) key.
type Group struct {
	TourName       string
	Date           time.Time
	AgeRestriction int
	Members        []customer.ID
}

// Contains reports whether the customer is already a member of the group.
func (g Group) Contains(id customer.ID) bool {
	for _, member := range g.Members {
		if member == id {
			return true
		}
	}
	return false
}

// DateOnly truncates a timestamp to its UTC calendar day, the canonical form
// for departure-date keys.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
