package api

import (
	"time"

	"github.com/google/uuid"

	"portfolio-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	categoryHandler categoryHandler
	projectHandler  projectHandler
	uploadHandler   uploadHandler
	authHandler     authHandler
	healthHandler   healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// CategorySummary is the joined category shape embedded on project reads
type CategorySummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Icon  string    `json:"icon"`
}

func newCategorySummary(category *models.Category) *CategorySummary {
	if category == nil {
		return nil
	}
	return &CategorySummary{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
		Icon:  category.Icon,
	}
}

// ProjectWithCategory is a project with its category summary embedded in
// place of the raw foreign key
type ProjectWithCategory struct {
	ID           uuid.UUID        `json:"id"`
	Title        string           `json:"title"`
	Content      *string          `json:"content"`
	ThumbnailURL *string          `json:"thumbnail_url"`
	AuthorID     uuid.UUID        `json:"author_id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Category     *CategorySummary `json:"category"`
}

func newProjectWithCategory(project *models.Project) ProjectWithCategory {
	return ProjectWithCategory{
		ID:           project.ID,
		Title:        project.Title,
		Content:      project.Content,
		ThumbnailURL: project.ThumbnailURL,
		AuthorID:     project.AuthorID,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
		Category:     newCategorySummary(project.Category),
	}
}

// ProjectCollection wraps a project list response
type ProjectCollection struct {
	Projects []ProjectWithCategory `json:"projects"`
	Total    int                   `json:"total,omitempty"`
}
