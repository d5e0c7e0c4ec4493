package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
	"gorm.io/gorm"
)

// SQLStore persists groups through GORM. IDs come from the table's
// autoincrement key, which never reuses values.
type SQLStore struct {
	db  *gorm.DB
	now Clock
}

// NewSQLStore migrates the schema and, when the table is empty and seeding is
// enabled, loads the demonstration groups.
func NewSQLStore(db *gorm.DB, opts ...Option) (*SQLStore, error) {
	o := buildOptions(opts)
	s := &SQLStore{db: db, now: o.clock}

	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate groups: %w", err)
	}

	if o.seed {
		if err := s.seed(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SQLStore) seed() error {
	var count int64
	if err := s.db.Model(&models.Group{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count groups: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := s.now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range demoGroups {
			group := newRecord(d.group, now.Add(-d.age).Unix())
			if err := tx.Create(&group).Error; err != nil {
				return fmt.Errorf("seed group %q: %w", d.group.Name, err)
			}
		}
		return nil
	})
}

func newRecord(g models.NewGroup, createdAt int64) models.Group {
	return models.Group{
		Name:        g.Name,
		Description: g.Description,
		Category:    g.Category,
		Country:     g.Country,
		Link:        g.Link,
		Owner:       g.Owner,
		Members:     g.Members,
		CreatedAt:   createdAt,
	}
}

// GetAll returns every group, newest first
func (s *SQLStore) GetAll(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// GetByID returns the group with the given id or ErrNotFound
func (s *SQLStore) GetByID(ctx context.Context, id int64) (models.Group, error) {
	var group models.Group
	err := s.db.WithContext(ctx).First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Group{}, ErrNotFound
	}
	if err != nil {
		return models.Group{}, fmt.Errorf("get group %d: %w", id, err)
	}
	return group, nil
}

// GetByCategory returns groups whose category matches exactly, newest first
func (s *SQLStore) GetByCategory(ctx context.Context, category string) ([]models.Group, error) {
	groups := []models.Group{}
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC, id DESC").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("list groups in %q: %w", category, err)
	}
	return groups, nil
}

// Create stores a validated group and returns it with ID and CreatedAt set
func (s *SQLStore) Create(ctx context.Context, g models.NewGroup) (models.Group, error) {
	group := newRecord(g, s.now().Unix())
	if err := s.db.WithContext(ctx).Create(&group).Error; err != nil {
		return models.Group{}, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}
