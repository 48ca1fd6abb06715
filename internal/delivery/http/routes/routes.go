package routes

import (
	"perfect-fit/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health    *handler.HealthHandler
	fit       *handler.FitHandler
	sizeChart *handler.SizeChartHandler
	page      *handler.PageHandler
}

func NewRegistry(fit *handler.FitHandler, sizeChart *handler.SizeChartHandler, page *handler.PageHandler) *Registry {
	return &Registry{
		health:    handler.NewHealthHandler(),
		fit:       fit,
		sizeChart: sizeChart,
		page:      page,
	}
}

// Register mounts API routes before the front-end page. Anything left
// unmatched falls through to fiber's 404, rendered as JSON by the error
// middleware.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerAPI(app)
	if r.page != nil {
		r.page.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	if r.fit != nil {
		r.fit.RegisterRoutes(api)
	}
	if r.sizeChart != nil {
		r.sizeChart.RegisterRoutes(api)
	}
}
