package server

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed static/index.html
var indexHTML string

// IndexPage serves the embedded resume form.
func IndexPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Type("html").SendString(indexHTML)
	}
}
