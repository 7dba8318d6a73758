package customer

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"aotearoa/pkg/platform/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested record does not exist
// - Return ErrConflict when an inserted ID is already taken
// - Return nil for successful operations

// InMemoryStore holds the customer collection for one interactive session.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[ID]*Customer
}

// NewInMemoryStore constructs an empty customer store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[ID]*Customer)}
}

// Create assigns the next free ID and appends the record.
func (s *InMemoryStore) Create(_ context.Context, c *Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID()
	s.records[c.ID] = c
	return nil
}

// Insert appends a record that already carries an ID. Used when seeding.
func (s *InMemoryStore) Insert(_ context.Context, c *Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[c.ID]; ok {
		return fmt.Errorf("customer id %d already taken: %w", c.ID, sentinel.ErrConflict)
	}
	s.records[c.ID] = c
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id ID) (*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.records[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("customer %d not found: %w", id, sentinel.ErrNotFound)
}

func (s *InMemoryStore) Exists(_ context.Context, id ID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Customer, 0, len(s.records))
	for _, c := range s.records {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// nextID returns a fresh integer not used by any stored customer. Callers
// hold the write lock.
func (s *InMemoryStore) nextID() ID {
	next := ID(1)
	for id := range s.records {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
