package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// SortOrderUpdate is one entry of a category reorder batch.
type SortOrderUpdate struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
}

// FindActive returns categories visible in the public gallery, ordered by
// their configured sort order.
func (r *CategoryRepo) FindActive() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Where("is_active = ?", true).Order("sort_order asc").Find(&categories).Error
	return categories, err
}

// FindAll returns every category, including soft-deleted ones, for admin views
func (r *CategoryRepo) FindAll() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Order("sort_order asc").Find(&categories).Error
	return categories, err
}

// FindByID returns a category by its ID, or (nil, nil) when no row exists
func (r *CategoryRepo) FindByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new category into the database
func (r *CategoryRepo) Add(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update merges the given fields into an existing category and stamps
// updated_at. Unknown keys are passed through to the database and fail there.
func (r *CategoryRepo) Update(id uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	return r.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error
}

// SoftDelete flips the active flag off. The row is never removed so existing
// projects keep resolving the category.
func (r *CategoryRepo) SoftDelete(id uuid.UUID) error {
	return r.db.Model(&models.Category{}).Where("id = ?", id).Updates(map[string]any{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}).Error
}

// Reorder applies a batch of sort-order updates concurrently. Each update is
// an independent write; the first error cancels the rest.
func (r *CategoryRepo) Reorder(ctx context.Context, updates []SortOrderUpdate) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, update := range updates {
		g.Go(func() error {
			return r.db.WithContext(ctx).
				Model(&models.Category{}).
				Where("id = ?", update.ID).
				Updates(map[string]any{
					"sort_order": update.SortOrder,
					"updated_at": time.Now().UTC(),
				}).Error
		})
	}
	return g.Wait()
}
