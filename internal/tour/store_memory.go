package tour

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"aotearoa/internal/customer"
	"aotearoa/pkg/platform/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the tour or (tour, date) group does not exist
// - Return ErrConflict when a saved tour name is already taken
// - Return nil for successful operations

// InMemoryStore holds the tour catalog for one interactive session.
type InMemoryStore struct {
	mu    sync.RWMutex
	tours map[string]*Tour
}

// NewInMemoryStore constructs an empty tour catalog.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{tours: make(map[string]*Tour)}
}

func (s *InMemoryStore) Save(_ context.Context, t *Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tours[t.Name]; ok {
		return fmt.Errorf("tour %q already in catalog: %w", t.Name, sentinel.ErrConflict)
	}
	// Normalize group keys so lookups by projected date always hit.
	normalized := make(map[time.Time][]customer.ID, len(t.Groups))
	for date, members := range t.Groups {
		normalized[DateOnly(date)] = members
	}
	t.Groups = normalized
	s.tours[t.Name] = t
	return nil
}

func (s *InMemoryStore) FindByName(_ context.Context, name string) (*Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tours[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("tour %q not found: %w", name, sentinel.ErrNotFound)
}

func (s *InMemoryStore) List(_ context.Context) ([]Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Tour, 0, len(s.tours))
	for _, t := range s.tours {
		out = append(out, s.copyTour(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) Groups(ctx context.Context) ([]Group, error) {
	tours, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Project(tours), nil
}

// AppendMember writes the updated member list back into the catalog at the
// same (tour name, date) key. This is the catalog's single mutation point.
func (s *InMemoryStore) AppendMember(_ context.Context, tourName string, date time.Time, id customer.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tours[tourName]
	if !ok {
		return fmt.Errorf("tour %q not found: %w", tourName, sentinel.ErrNotFound)
	}

	key := DateOnly(date)
	members, ok := t.Groups[key]
	if !ok {
		return fmt.Errorf("tour %q has no group departing %s: %w",
			tourName, key.Format("2006-01-02"), sentinel.ErrNotFound)
	}

	t.Groups[key] = append(members, id)
	return nil
}

// copyTour deep-copies a tour so snapshots stay detached from later commits.
// Callers hold at least the read lock.
func (s *InMemoryStore) copyTour(t *Tour) Tour {
	out := Tour{
		Name:           t.Name,
		AgeRestriction: t.AgeRestriction,
		Itinerary:      append([]string{}, t.Itinerary...),
		Groups:         make(map[time.Time][]customer.ID, len(t.Groups)),
	}
	for date, members := range t.Groups {
		out.Groups[date] = append([]customer.ID{}, members...)
	}
	return out
}
