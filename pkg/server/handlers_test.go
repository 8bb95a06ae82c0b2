package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/generator"
	"resumeforge/pkg/generator/mocks"
	"resumeforge/pkg/resume"
)

func jsonRequest(method, target string, body any) (req *http.Request) {
	data, _ := json.Marshal(body)
	req = httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func validBody() map[string]any {
	return map[string]any{
		"resume": map[string]any{
			"name":    "Jane Dev",
			"email":   "jane@dev.example",
			"phone":   "555-0100",
			"summary": "Engineer who ships.",
		},
		"options": map[string]any{"enhance": false},
	}
}

func TestGenerateResume(t *testing.T) {
	mockSvc := new(mocks.MockService)
	store := NewSessionStore(10)

	app := fiber.New()
	app.Post("/api/generate", GenerateResume(mockSvc, store))

	t.Run("success", func(t *testing.T) {
		expected := &generator.Result{
			Resume:   &resume.Resume{Name: "Jane Dev"},
			LaTeX:    "\\documentclass{article}",
			PDF:      []byte("%PDF-1.4"),
			Warnings: nil,
		}
		mockSvc.On("Generate", mock.Anything, mock.Anything, generator.Options{Enhance: false}).
			Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/generate", validBody()))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body generateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		_, err := uuid.Parse(body.SessionID)
		assert.NoError(t, err, "session_id should be a UUID")
		assert.Equal(t, "\\documentclass{article}", body.LaTeX)
		assert.NotNil(t, body.Warnings)
		assert.Empty(t, body.Warnings)

		// The artifacts are downloadable afterwards.
		session, ok := store.Get(body.SessionID)
		require.True(t, ok)
		assert.Equal(t, []byte("%PDF-1.4"), session.PDF)

		mockSvc.AssertExpectations(t)
	})

	t.Run("enhance option forwarded", func(t *testing.T) {
		expected := &generator.Result{LaTeX: "x", PDF: []byte("y"), Warnings: []string{"skipped"}}
		mockSvc.On("Generate", mock.Anything, mock.Anything, generator.Options{Enhance: true}).
			Return(expected, nil).Once()

		body := validBody()
		body["options"] = map[string]any{"enhance": true}

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/generate", body))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var decoded generateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, []string{"skipped"}, decoded.Warnings)

		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		body := map[string]any{
			"resume": map[string]any{"name": "Only Name"},
		}

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/generate", body))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var decoded errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, "VALIDATION_FAILED", decoded.Error.Code)
		assert.Contains(t, decoded.Error.Message, "email")
		assert.Contains(t, decoded.Error.Message, "phone")
		assert.Contains(t, decoded.Error.Message, "summary")
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Generate", mock.Anything, mock.Anything, generator.Options{Enhance: false}).
			Return(nil, errors.New("render exploded")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/generate", validBody()))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var decoded errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, "INTERNAL_ERROR", decoded.Error.Code)

		mockSvc.AssertExpectations(t)
	})
}

func TestEnhanceResume(t *testing.T) {
	mockSvc := new(mocks.MockService)

	app := fiber.New()
	app.Post("/api/enhance", EnhanceResume(mockSvc))

	t.Run("success", func(t *testing.T) {
		enhanced := &resume.Resume{Name: "Jane Dev", Summary: "Polished summary."}
		mockSvc.On("Enhance", mock.Anything, mock.Anything).
			Return(enhanced, []string{"skills cleanup failed"}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/enhance", map[string]any{
			"name":    "Jane Dev",
			"summary": "rough summary",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body enhanceResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Polished summary.", body.Resume.Summary)
		assert.Equal(t, []string{"skills cleanup failed"}, body.Warnings)

		mockSvc.AssertExpectations(t)
	})

	t.Run("no warnings gives empty array", func(t *testing.T) {
		enhanced := &resume.Resume{Name: "Jane Dev"}
		mockSvc.On("Enhance", mock.Anything, mock.Anything).Return(enhanced, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/enhance", map[string]any{"name": "Jane Dev"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw := new(bytes.Buffer)
		_, _ = raw.ReadFrom(resp.Body)
		assert.Contains(t, raw.String(), `"warnings":[]`)

		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/enhance", strings.NewReader("{{{"))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDownloadLaTeX(t *testing.T) {
	store := NewSessionStore(10)

	app := fiber.New()
	app.Get("/api/session/:id/latex", DownloadLaTeX(store))

	t.Run("success", func(t *testing.T) {
		session := store.Put("\\documentclass{article}", nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/session/"+session.ID+"/latex", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/x-tex", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "resume.tex")

		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		assert.Equal(t, "\\documentclass{article}", buf.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/session/abc/latex", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/session/"+uuid.NewString()+"/latex", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})
}

func TestDownloadPDF(t *testing.T) {
	store := NewSessionStore(10)

	app := fiber.New()
	app.Get("/api/session/:id/pdf", DownloadPDF(store))

	t.Run("success", func(t *testing.T) {
		session := store.Put("", []byte("%PDF-1.4 payload"), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/session/"+session.ID+"/pdf", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "resume.pdf")

		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		assert.Equal(t, "%PDF-1.4 payload", buf.String())
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/session/"+uuid.NewString()+"/pdf", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIndexPage(t *testing.T) {
	app := fiber.New()
	app.Get("/", IndexPage())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	assert.Contains(t, buf.String(), "ResumeForge")
	assert.Contains(t, buf.String(), "/api/generate")
}

func TestNewAppWiring(t *testing.T) {
	mockSvc := new(mocks.MockService)
	store := NewSessionStore(10)

	app, err := New(mockSvc, store)
	require.NoError(t, err)

	// Liveness goes through the full middleware stack.
	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	// The counted request shows up on the metrics endpoint.
	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	assert.Contains(t, buf.String(), "http_requests_total")
}
