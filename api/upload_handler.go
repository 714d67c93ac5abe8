package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/errs"
	"portfolio-backend/services"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   *services.Storage
}

func newUploadHandler(storage *services.Storage) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

type deleteObjectRequest struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

// uploadThumbnail accepts a multipart image, validates it before any storage
// call, optionally removes the object it replaces (best-effort) and uploads
// under a generated name.
func (h uploadHandler) uploadThumbnail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Cap the body before parsing so an oversized upload is cut off
		// instead of spooled to disk first
		r.Body = http.MaxBytesReader(w, r.Body, services.MaxFileSize+1024*1024)
		if err := r.ParseMultipartForm(services.MaxFileSize + 1024*1024); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if ok, message := services.ValidateFile(header.Size, contentType); !ok {
			h.responder.WriteValidationError(w, "file", message)
			return
		}

		if h.storage == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "storage is not configured"))
			return
		}

		// Replacing a thumbnail: deleting the previous object is best-effort
		// and never blocks the new upload.
		if previousURL := r.FormValue("previous_url"); previousURL != "" {
			if previousPath := h.storage.PathFromURL(previousURL); previousPath != "" {
				if err := h.storage.Delete(r.Context(), previousPath); err != nil {
					h.logger.Warn().Err(err).Str("path", previousPath).Msg("failed to delete previous thumbnail")
				}
			}
		}

		url, err := h.storage.Upload(r.Context(), file, header.Size, header.Filename, contentType, r.FormValue("folder"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("upload failed", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, uploadResponse{URL: url})
	}
}

// deleteObject removes one stored object, addressed by public URL or path
func (h uploadHandler) deleteObject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteObjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if h.storage == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "storage is not configured"))
			return
		}

		objectPath := req.Path
		if objectPath == "" && req.URL != "" {
			objectPath = h.storage.PathFromURL(req.URL)
		}
		if objectPath == "" {
			h.responder.WriteValidationError(w, "url", "a storage path or a public URL containing the bucket is required")
			return
		}

		if err := h.storage.Delete(r.Context(), objectPath); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("delete failed", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "object deleted",
		})
	}
}
