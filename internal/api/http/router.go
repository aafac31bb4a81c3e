package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-service/internal/api/http/handlers"
	"github.com/spec-kit/jobboard-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Only the applicant listing requires a
// token outright; the applicant-by-job listing and the status update parse
// the cookie when present and leave enforcement to the policy.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/jwt", cfg.Auth.IssueToken)
	app.Post("/logout", cfg.Auth.Logout)

	app.Get("/jobs", cfg.Jobs.List)
	app.Get("/jobs/:id", cfg.Jobs.Get)
	app.Post("/jobs", cfg.Jobs.Create)

	app.Get("/job-application", cfg.AuthMiddleware.Handle, cfg.Applications.ListMine)
	app.Get("/job-application/jobs/:job_id", cfg.AuthMiddleware.HandleOptional, cfg.Applications.ListByJob)
	app.Post("/job-applications", cfg.Applications.Create)
	app.Patch("/job-applications/:id", cfg.AuthMiddleware.HandleOptional, cfg.Applications.UpdateStatus)
}
