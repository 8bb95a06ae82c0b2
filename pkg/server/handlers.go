package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeforge/pkg/generator"
	"resumeforge/pkg/logging"
	"resumeforge/pkg/resume"
)

// generateRequest is the POST /api/generate body.
type generateRequest struct {
	Resume  resume.Resume   `json:"resume"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Enhance bool `json:"enhance"`
}

// generateResponse echoes the typeset source for in-browser preview along
// with the session ID for the download links.
type generateResponse struct {
	SessionID string   `json:"session_id"`
	LaTeX     string   `json:"latex"`
	Warnings  []string `json:"warnings"`
}

// enhanceResponse carries the enhanced model back to the form.
type enhanceResponse struct {
	Resume   *resume.Resume `json:"resume"`
	Warnings []string       `json:"warnings"`
}

// GenerateResume runs the full pipeline and stores the result for download.
func GenerateResume(svc generator.Service, store *SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}

		if missing := req.Resume.MissingFields(); len(missing) > 0 {
			return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED",
				"missing required fields: "+strings.Join(missing, ", "))
		}

		result, err := svc.Generate(c.UserContext(), &req.Resume, generator.Options{Enhance: req.Options.Enhance})
		if err != nil {
			logging.Error().Err(err).Str("request_id", requestIDFromCtx(c)).Msg("generation failed")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		session := store.Put(result.LaTeX, result.PDF, result.Warnings)

		warnings := result.Warnings
		if warnings == nil {
			warnings = []string{}
		}

		return c.JSON(generateResponse{
			SessionID: session.ID,
			LaTeX:     result.LaTeX,
			Warnings:  warnings,
		})
	}
}

// EnhanceResume runs AI enhancement only and returns the updated model.
func EnhanceResume(svc generator.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var r resume.Resume
		if err := c.BodyParser(&r); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}

		enhanced, warnings := svc.Enhance(c.UserContext(), &r)
		if warnings == nil {
			warnings = []string{}
		}

		return c.JSON(enhanceResponse{
			Resume:   enhanced,
			Warnings: warnings,
		})
	}
}

// DownloadLaTeX serves a stored session's typeset source as resume.tex.
func DownloadLaTeX(store *SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid session id format")
		}

		session, ok := store.Get(id)
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "session not found")
		}

		c.Set(fiber.HeaderContentType, "application/x-tex")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.tex"`)
		return c.SendString(session.LaTeX)
	}
}

// DownloadPDF serves a stored session's rendered document as resume.pdf.
func DownloadPDF(store *SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid session id format")
		}

		session, ok := store.Get(id)
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "session not found")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
		return c.Send(session.PDF)
	}
}

// LivenessProbe reports process liveness.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
