package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thedenisnikulin/nocsdegree.ru/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
	Jobs   *handlers.JobsHandler
	Paid   *handlers.PaidHandler
}

// Register wires all HTTP routes onto given Fiber app.
// authMW and adminMW guard the admin API.
func Register(app *fiber.App, h Handlers, authMW, adminMW fiber.Handler) {
	// Public site
	app.Get("/", h.Jobs.Index)
	app.Post("/load-jobs", h.Jobs.LoadJobs)
	app.Get("/jobs/:id", h.Jobs.Get)
	app.Get("/paid-jobs", h.Paid.Featured)

	v1 := app.Group("/api/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/auth/login", h.Auth.Login)

	admin := v1.Group("/admin", authMW, adminMW)
	admin.Get("/paid-vacancies", h.Paid.List)
	admin.Post("/paid-vacancies", h.Paid.Create)
	admin.Get("/paid-vacancies/:id", h.Paid.GetByID)
	admin.Delete("/paid-vacancies/:id", h.Paid.Delete)
}
