package store

import (
	"context"
	"sync"
	"time"

	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
)

// MemoryStore keeps groups in process memory. Nothing survives a restart.
//
// The store is the single owner of its records and its id counter. mu is
// held for the whole of every operation, so the id assignment and insert in
// Create happen as one step.
type MemoryStore struct {
	mu     sync.Mutex
	groups map[int64]models.Group
	nextID int64
	now    Clock
}

// Option configures a store
type Option func(*options)

type options struct {
	clock Clock
	seed  bool
}

// WithClock replaces time.Now as the source of CreatedAt values
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDemoData controls whether the demonstration groups are loaded.
// Stores are seeded by default.
func WithDemoData(enabled bool) Option {
	return func(o *options) { o.seed = enabled }
}

func buildOptions(opts []Option) options {
	o := options{clock: time.Now, seed: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore(opts ...Option) *MemoryStore {
	o := buildOptions(opts)
	s := &MemoryStore{
		groups: make(map[int64]models.Group),
		nextID: 1,
		now:    o.clock,
	}
	if o.seed {
		now := s.now()
		for _, d := range demoGroups {
			s.insert(d.group, now.Add(-d.age).Unix())
		}
	}
	return s
}

// insert assigns the next id and stores the group. Callers hold mu.
func (s *MemoryStore) insert(g models.NewGroup, createdAt int64) models.Group {
	group := models.Group{
		ID:          s.nextID,
		Name:        g.Name,
		Description: g.Description,
		Category:    g.Category,
		Country:     g.Country,
		Link:        g.Link,
		Owner:       g.Owner,
		Members:     g.Members,
		CreatedAt:   createdAt,
	}
	s.nextID++
	s.groups[group.ID] = group
	return group
}

// GetAll returns every group, newest first
func (s *MemoryStore) GetAll(ctx context.Context) ([]models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		groups = append(groups, g)
	}
	sortNewestFirst(groups)
	return groups, nil
}

// GetByID returns the group with the given id or ErrNotFound
func (s *MemoryStore) GetByID(ctx context.Context, id int64) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[id]
	if !ok {
		return models.Group{}, ErrNotFound
	}
	return g, nil
}

// GetByCategory returns groups whose category matches exactly, newest first
func (s *MemoryStore) GetByCategory(ctx context.Context, category string) ([]models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := []models.Group{}
	for _, g := range s.groups {
		if g.Category == category {
			groups = append(groups, g)
		}
	}
	sortNewestFirst(groups)
	return groups, nil
}

// Create stores a validated group and returns it with ID and CreatedAt set
func (s *MemoryStore) Create(ctx context.Context, g models.NewGroup) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(g, s.now().Unix()), nil
}
