package api

import (
	"time"

	"portfolio-backend/database"
	"portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, storage *services.Storage, issuer *services.TokenIssuer, cfg map[string]string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		categoryHandler: newCategoryHandler(db.CategoryRepo()),
		projectHandler:  newProjectHandler(db.ProjectRepo(), db.CategoryRepo()),
		uploadHandler:   newUploadHandler(storage),
		authHandler:     newAuthHandler(db.ProfileRepo(), issuer, cfg),
		healthHandler:   newHealthHandler(startupTime),
	}
}
