package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	SortOrder   int     `json:"sort_order"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// listActive returns the categories shown in the public gallery
func (h categoryHandler) listActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find active categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

// listAll returns every category, soft-deleted included, for the admin list
func (h categoryHandler) listAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

// getCategory retrieves a single category by ID
func (h categoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// createCategory inserts a new category. The name is validated before the
// repository is touched.
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			h.responder.WriteValidationError(w, "name", "name is required")
			return
		}

		category := models.Category{
			Name:        strings.TrimSpace(req.Name),
			Description: req.Description,
			Color:       req.Color,
			Icon:        req.Icon,
			SortOrder:   req.SortOrder,
			IsActive:    true,
		}
		if category.Color == "" {
			category.Color = "#3b82f6"
		}
		if category.Icon == "" {
			category.Icon = "folder"
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create category", "category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

// updateCategory merges the submitted fields into an existing category
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		var req updateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				h.responder.WriteValidationError(w, "name", "name is required")
				return
			}
			fields["name"] = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.Color != nil {
			fields["color"] = *req.Color
		}
		if req.Icon != nil {
			fields["icon"] = *req.Icon
		}
		if req.SortOrder != nil {
			fields["sort_order"] = *req.SortOrder
		}
		if req.IsActive != nil {
			fields["is_active"] = *req.IsActive
		}

		if err := h.categoryRepo.Update(categoryID, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update category", "category", err))
			return
		}

		updated, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated category", "category", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteCategory soft-deletes: the active flag is flipped off, the row stays
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		if err := h.categoryRepo.SoftDelete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete category", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deactivated",
		})
	}
}

// reorderCategories applies a batch of sort-order updates
func (h categoryHandler) reorderCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var updates []database.SortOrderUpdate
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode reorder request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if len(updates) == 0 {
			h.responder.WriteValidationError(w, "updates", "at least one sort-order update is required")
			return
		}

		if err := h.categoryRepo.Reorder(r.Context(), updates); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("reorder", "categories", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category order updated",
		})
	}
}

// parseIDParam reads a uuid path parameter
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
