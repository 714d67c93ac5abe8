package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/config"
	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
	"portfolio-backend/services"
)

const minPasswordLength = 8

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	issuer      *services.TokenIssuer
	config      map[string]string
}

func newAuthHandler(profileRepo *database.ProfileRepo, issuer *services.TokenIssuer, cfg map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		issuer:      issuer,
		config:      cfg,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

type resetRequest struct {
	Email string `json:"email"`
}

type resetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// login exchanges email+password for a session token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Email == "" || req.Password == "" {
			h.responder.WriteValidationError(w, "email", "email and password are required")
			return
		}

		profile, err := h.profileRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}

		// Same response for unknown account and wrong password
		if profile == nil || !services.CheckPassword(profile.PasswordHash, req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		token, err := h.issuer.IssueSession(profile.ID, profile.Role)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue session token", err))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: token, Profile: profile})
	}
}

// requestPasswordReset emails a reset link. The response never discloses
// whether the account exists.
func (h authHandler) requestPasswordReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Email == "" {
			h.responder.WriteValidationError(w, "email", "email is required")
			return
		}

		profile, err := h.profileRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			h.logger.Error().Err(err).Msg("reset lookup failed")
		}

		if profile != nil {
			token, err := h.issuer.IssueReset(profile.ID)
			if err != nil {
				h.logger.Error().Err(err).Msg("failed to issue reset token")
			} else {
				baseURL := config.GetString(h.config, "FRONTEND_BASE_URL", "http://localhost:3000")
				resetURL := fmt.Sprintf("%s/admin/reset-password?token=%s", strings.TrimSuffix(baseURL, "/"), token)
				if err := services.SendPasswordResetEmail(h.config, profile.Email, resetURL); err != nil {
					h.logger.Error().Err(err).Msg("failed to send reset email")
				}
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "ok",
			"message": "If the account exists, a reset link has been sent",
		})
	}
}

// confirmPasswordReset stores a new password for the token's profile
func (h authHandler) confirmPasswordReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetConfirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Token == "" {
			h.responder.WriteValidationError(w, "token", "token is required")
			return
		}
		if len(req.Password) < minPasswordLength {
			h.responder.WriteValidationError(w, "password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
			return
		}

		claims, err := h.issuer.Verify(req.Token, services.PurposePasswordReset)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profileID, err := uuid.Parse(claims.Subject)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidTokenError())
			return
		}

		// The profile may have been removed since the token was issued
		profile, err := h.profileRepo.FindByID(profileID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewInvalidTokenError())
			return
		}

		hash, err := services.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to hash password", err))
			return
		}

		if err := h.profileRepo.UpdatePassword(profileID, hash); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update password", "profile", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "password updated",
		})
	}
}
