package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, categoryRepo *database.CategoryRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

type createProjectRequest struct {
	Title        string     `json:"title"`
	Content      *string    `json:"content"`
	CategoryID   *uuid.UUID `json:"category_id"`
	ThumbnailURL *string    `json:"thumbnail_url"`
}

type updateProjectRequest struct {
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	CategoryID   *uuid.UUID `json:"category_id"`
	ThumbnailURL *string    `json:"thumbnail_url"`
}

// categoryCount pairs a category summary with its project count
type categoryCount struct {
	CategoryID *uuid.UUID `json:"category_id"`
	Name       string     `json:"name"`
	Count      int64      `json:"count"`
}

// listProjects returns all projects, or only those in ?category={id}
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			projects []*models.Project
			err      error
		)

		if rawCategory := r.URL.Query().Get("category"); rawCategory != "" {
			categoryID, parseErr := uuid.Parse(rawCategory)
			if parseErr != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("category", "must be a uuid"))
				return
			}
			projects, err = h.projectRepo.FindByCategory(categoryID)
		} else {
			projects, err = h.projectRepo.FindAll()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		response := ProjectCollection{Total: len(projects)}
		for _, project := range projects {
			response.Projects = append(response.Projects, newProjectWithCategory(project))
		}

		h.responder.WriteJSON(w, response)
	}
}

// getProject retrieves a specific project by ID with its category summary
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, newProjectWithCategory(project))
	}
}

// createProject inserts a new project authored by the session profile. Only
// the title is enforced server-side; the admin form validates the rest.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := ctxGetProfileID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(req.Title) == "" {
			h.responder.WriteValidationError(w, "title", "title is required")
			return
		}

		project := models.Project{
			Title:        strings.TrimSpace(req.Title),
			Content:      req.Content,
			CategoryID:   req.CategoryID,
			ThumbnailURL: req.ThumbnailURL,
			AuthorID:     authorID,
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		// Reload so the category summary is embedded
		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newProjectWithCategory(created))
	}
}

// updateProject merges the submitted fields into an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var req updateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}
		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				h.responder.WriteValidationError(w, "title", "title is required")
				return
			}
			fields["title"] = strings.TrimSpace(*req.Title)
		}
		if req.Content != nil {
			fields["content"] = *req.Content
		}
		if req.CategoryID != nil {
			fields["category_id"] = *req.CategoryID
		}
		if req.ThumbnailURL != nil {
			fields["thumbnail_url"] = *req.ThumbnailURL
		}

		if err := h.projectRepo.Update(projectID, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectWithCategory(updated))
	}
}

// deleteProject hard-deletes a project. The thumbnail object is left in
// storage on purpose; admins remove it through the upload endpoints.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// countByCategory returns project counts per category for the home overview
func (h projectHandler) countByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.projectRepo.CountByCategory()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count projects", "projects", err))
			return
		}

		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		namesByID := make(map[uuid.UUID]string, len(categories))
		for _, category := range categories {
			namesByID[category.ID] = category.Name
		}

		response := make([]categoryCount, 0, len(counts))
		for _, count := range counts {
			entry := categoryCount{
				CategoryID: count.CategoryID,
				Name:       "Uncategorized",
				Count:      count.Count,
			}
			if count.CategoryID != nil {
				if name, ok := namesByID[*count.CategoryID]; ok {
					entry.Name = name
				}
			}
			response = append(response, entry)
		}

		h.responder.WriteJSON(w, response)
	}
}
