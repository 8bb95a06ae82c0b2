package cmd

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resumeforge/pkg/config"
	"resumeforge/pkg/logging"
	"resumeforge/pkg/server"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listenAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the resume builder web UI and API",
	Long: `Start an HTTP server exposing the browser form UI and the JSON API.

The form UI collects resume data, previews the generated LaTeX in the
browser, and offers the PDF and LaTeX source as downloads. The same
pipeline is available to API clients:

  POST /api/generate            Generate documents, returns a session id
  POST /api/enhance             Enhance content with the Gemini API
  GET  /api/session/:id/latex   Download LaTeX source
  GET  /api/session/:id/pdf     Download PDF
  GET  /healthz                 Liveness probe
  GET  /metrics                 Prometheus metrics

Example:
  resumeforge serve
  resumeforge serve -a :3000`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&listenAddr, "addr", "a", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	// Load configuration
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	logLevel := cfg.LogLevel
	if getVerbose() {
		logLevel = "debug"
	}
	logging.Init(logging.Config{Level: logLevel, Format: "console"})

	svc := newGeneratorService(cfg)
	store := server.NewSessionStore(0)

	var app *fiber.App
	app, err = server.New(svc, store)
	if err != nil {
		err = errors.Wrap(err, "failed to build server")
		return err
	}

	if cfg.GeminiAPIKey == "" {
		logging.Warn().Msg("no API key configured, enhancement requests will be skipped")
	}

	addr := listenAddr
	if addr == "" {
		addr = cfg.GetListenAddr()
	}

	logging.Info().Str("addr", addr).Msg("starting server")

	err = app.Listen(addr)
	if err != nil {
		err = errors.Wrap(err, "server stopped")
		return err
	}

	return err
}
