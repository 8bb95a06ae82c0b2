package server

import (
	"github.com/gofiber/fiber/v2"

	"resumeforge/pkg/generator"
)

// RegisterRoutes attaches the API routes to the Fiber app.
func RegisterRoutes(app *fiber.App, svc generator.Service, store *SessionStore) {
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Post("/generate", GenerateResume(svc, store))
	api.Post("/enhance", EnhanceResume(svc))
	api.Get("/session/:id/latex", DownloadLaTeX(store))
	api.Get("/session/:id/pdf", DownloadPDF(store))
}
