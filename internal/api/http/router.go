package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Grievances *handlers.GrievancesHandler
	FAQ        *handlers.FAQHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}

	app.Post("/submit_grievance/", cfg.Grievances.Submit)
	app.Get("/get_grievances/", cfg.Grievances.List)
	app.Get("/faq", cfg.FAQ.Ask)
}
