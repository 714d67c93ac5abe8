package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// CategoryCount is the number of projects referencing one category. A nil
// CategoryID groups projects with no category.
type CategoryCount struct {
	CategoryID *uuid.UUID `json:"category_id"`
	Count      int64      `json:"count"`
}

// FindAll returns all projects, newest first, with their category preloaded
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").Order("created_at desc").Find(&projects).Error
	return projects, err
}

// FindByCategory returns the projects referencing the given category, newest first
func (r *ProjectRepo) FindByCategory(categoryID uuid.UUID) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project with its category preloaded, or (nil, nil) when
// no row exists
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Category").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update merges the given fields into an existing project and stamps updated_at
func (r *ProjectRepo) Update(id uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a project from the database by id. This is a hard delete;
// the project's thumbnail object is not touched (see the upload endpoints).
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// CountByCategory returns project counts grouped by category reference
func (r *ProjectRepo) CountByCategory() ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.Model(&models.Project{}).
		Select("category_id, count(*) as count").
		Group("category_id").
		Find(&counts).Error
	return counts, err
}
