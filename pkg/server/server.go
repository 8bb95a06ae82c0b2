package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumeforge/pkg/generator"
	"resumeforge/pkg/server/middleware"
)

// New assembles the Fiber application: middleware stack, API routes, the
// embedded form page and the Prometheus endpoint.
func New(svc generator.Service, store *SessionStore) (app *fiber.App, err error) {
	app = fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	reg := prometheus.NewRegistry()

	var promMiddleware *middleware.PrometheusMiddleware
	promMiddleware, err = middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		err = errors.Wrap(err, "failed to register metrics")
		return nil, err
	}
	app.Use(promMiddleware.Handler())

	app.Get("/", IndexPage())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	RegisterRoutes(app, svc, store)

	return app, err
}
