package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public gallery routes, the auth endpoints and the
// guarded admin routes.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())

		// Public gallery endpoints
		r.Get("/categories", handlers.categoryHandler.listActive())
		r.Get("/categories/counts", handlers.projectHandler.countByCategory())
		r.Get("/category/{categoryID}", handlers.categoryHandler.getCategory())
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())

		// Auth endpoints
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/reset-password", handlers.authHandler.requestPasswordReset())
		r.Post("/auth/reset-password/confirm", handlers.authHandler.confirmPasswordReset())

		// Admin endpoints, gated on an authenticated admin session
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.authenticate)
			r.Use(auth.requireAdmin)

			r.Get("/categories", handlers.categoryHandler.listAll())
			r.Post("/category", handlers.categoryHandler.createCategory())
			r.Put("/category/{categoryID}", handlers.categoryHandler.updateCategory())
			r.Delete("/category/{categoryID}", handlers.categoryHandler.deleteCategory())
			r.Put("/categories/reorder", handlers.categoryHandler.reorderCategories())

			r.Post("/project", handlers.projectHandler.createProject())
			r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/upload", handlers.uploadHandler.uploadThumbnail())
			r.Delete("/upload", handlers.uploadHandler.deleteObject())
		})
	})
}
