package routes

import (
	"github.com/Hereaj/portfolio-api/internal/handlers"
	"github.com/Hereaj/portfolio-api/internal/middleware"
	"github.com/Hereaj/portfolio-api/internal/session"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	portfolioHandler *handlers.PortfolioHandler,
	adminHandler *handlers.AdminHandler,
	store *session.Store,
) {
	// Public routes - no authentication required
	router.Get("/portfolio-data", portfolioHandler.GetData)
	router.With(middleware.RateLimitByIP(middleware.ContactRateLimit())).
		Post("/contact", portfolioHandler.SubmitContact)

	// Login carries its own per-origin failure window; the IP limit here
	// only caps raw request volume.
	router.With(middleware.RateLimitByIP(middleware.LoginRateLimit())).
		Post("/admin/login", adminHandler.Login)

	// Admin routes - valid session token required
	router.Group(func(r chi.Router) {
		r.Use(session.Middleware(store))

		r.Post("/admin/logout", adminHandler.Logout)
		r.Get("/admin/data", adminHandler.GetData)
		r.Get("/admin/export", adminHandler.Export)

		r.Put("/admin/hero", adminHandler.UpdateHero)
		r.Put("/admin/about", adminHandler.UpdateAbout)

		r.Post("/admin/stats", adminHandler.CreateStat)
		r.Put("/admin/stats/{id}", adminHandler.UpdateStat)
		r.Delete("/admin/stats/{id}", adminHandler.DeleteStat)

		r.Post("/admin/projects", adminHandler.CreateProject)
		r.Put("/admin/projects/{id}", adminHandler.UpdateProject)
		r.Delete("/admin/projects/{id}", adminHandler.DeleteProject)

		r.Post("/admin/skills", adminHandler.CreateSkill)
		r.Put("/admin/skills/{id}", adminHandler.UpdateSkill)
		r.Delete("/admin/skills/{id}", adminHandler.DeleteSkill)

		r.Post("/admin/education", adminHandler.CreateEducation)
		r.Put("/admin/education/{id}", adminHandler.UpdateEducation)
		r.Delete("/admin/education/{id}", adminHandler.DeleteEducation)
	})
}
