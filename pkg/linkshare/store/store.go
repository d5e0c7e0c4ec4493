// Package store holds the authoritative collection of group records.
package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
)

// ErrNotFound is returned when no group has the requested id
var ErrNotFound = errors.New("group not found")

// Store is the repository capability the HTTP handlers depend on.
// Implementations must return GetAll and GetByCategory results ordered by
// CreatedAt descending, with equal timestamps ordered by ID descending.
type Store interface {
	GetAll(ctx context.Context) ([]models.Group, error)
	GetByID(ctx context.Context, id int64) (models.Group, error)
	GetByCategory(ctx context.Context, category string) ([]models.Group, error)
	Create(ctx context.Context, group models.NewGroup) (models.Group, error)
}

// Clock returns the current time. Stores take one so tests can pin it.
type Clock func() time.Time

// sortNewestFirst orders groups by CreatedAt descending, then ID descending
func sortNewestFirst(groups []models.Group) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].CreatedAt != groups[j].CreatedAt {
			return groups[i].CreatedAt > groups[j].CreatedAt
		}
		return groups[i].ID > groups[j].ID
	})
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLStore)(nil)
)
