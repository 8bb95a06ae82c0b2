package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resumeforge/pkg/config"
	"resumeforge/pkg/generator"
	"resumeforge/pkg/latex"
	"resumeforge/pkg/llm"
	"resumeforge/pkg/resume"
)

//nolint:gochecknoglobals // Cobra boilerplate
var resumeFile string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var enhance bool

//nolint:gochecknoglobals // Cobra boilerplate
var compileTex bool

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume PDF and LaTeX source from JSON data",
	Long: `Generate a professional resume from structured JSON data.

The resume data can be provided as:
- A file path (e.g., resume.json)
- A URL (e.g., https://example.com/resume.json)

Both a fixed-layout PDF and the LaTeX source are written to the output
directory. With --enhance, free-text fields are rewritten by the Gemini API
before rendering. With --compile, the LaTeX source is additionally typeset
with pdflatex, replacing the built-in PDF.

Example:
  resumeforge generate -f resume.json
  resumeforge generate -f resume.json --enhance
  resumeforge generate -f https://example.com/resume.json -o ~/Documents --compile`,
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&resumeFile, "file", "f", "resume.json", "Resume JSON file or URL")
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default from config)")
	generateCmd.Flags().BoolVar(&enhance, "enhance", false, "Enhance content with the Gemini API before rendering")
	generateCmd.Flags().BoolVar(&compileTex, "compile", false, "Typeset the LaTeX source with pdflatex")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	// Load configuration
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	// Load resume data
	if getVerbose() {
		fmt.Printf("Loading resume data from: %s\n", resumeFile)
	}

	var r *resume.Resume
	r, err = resume.Load(resumeFile)
	if err != nil {
		err = errors.Wrap(err, "failed to load resume")
		return err
	}

	if getVerbose() {
		fmt.Printf("Loaded resume for: %s\n", r.Name)
	}

	svc := newGeneratorService(cfg)

	// Show spinner during enhancement unless in verbose mode
	enhancing := enhance && cfg.GeminiAPIKey != ""

	var genSpinner *spinner
	if enhancing && !getVerbose() {
		genSpinner = newSpinner("Enhancing resume content with Gemini API...")
		genSpinner.start()
	} else if enhancing {
		fmt.Println("Enhancing resume content with Gemini API...")
	}

	var result *generator.Result
	result, err = svc.Generate(ctx, r, generator.Options{Enhance: enhance})

	if genSpinner != nil {
		genSpinner.stopSpinner()
	}

	if err != nil {
		return err
	}

	if enhancing && !getVerbose() {
		fmt.Println("✓ Enhancement complete")
	}

	for _, warning := range result.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}

	// Write outputs
	outDir := getOutputDir(outputDir, cfg.Defaults.OutputDir)
	texPath, pdfPath := buildOutputPaths(outDir, result.Resume.Name)

	err = latex.WriteSource(result.LaTeX, texPath)
	if err != nil {
		return err
	}

	err = os.WriteFile(pdfPath, result.PDF, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write PDF: %s", pdfPath)
		return err
	}

	if compileTex {
		typesetWithPdflatex(texPath, pdfPath)
	}

	fmt.Printf("Resume PDF saved at: %s\n", pdfPath)
	fmt.Printf("LaTeX source saved at: %s\n", texPath)
	fmt.Println("\nGeneration complete!")

	return err
}

// newGeneratorService wires the generation pipeline. Without an API key the
// enhancer stays nil and enhancement degrades to a warning.
func newGeneratorService(cfg config.Config) (svc *generator.Generator) {
	var enhancer generator.Enhancer
	if cfg.GeminiAPIKey != "" {
		enhancer = llm.NewEnhancer(llm.NewClient(cfg.GeminiAPIKey, cfg.GetModel()))
	}

	svc = generator.New(enhancer)
	return svc
}

// typesetWithPdflatex replaces the built-in PDF with a pdflatex-typeset one.
// Compilation failure is not fatal; the built-in PDF stays in place.
func typesetWithPdflatex(texPath, pdfPath string) {
	if getVerbose() {
		fmt.Println("Typesetting LaTeX source with pdflatex...")
	}

	_, err := latex.Compile(texPath)
	if err != nil {
		fmt.Printf("Warning: pdflatex compilation failed: %v\n", err)
		fmt.Printf("Keeping the built-in PDF at: %s\n", pdfPath)
		return
	}

	if getVerbose() {
		fmt.Println("Typeset PDF replaced the built-in rendering")
	}
}

// getOutputDir returns the output directory from flag or config.
func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configValue
	}
	return outDir
}

// buildOutputPaths generates the .tex and .pdf paths for a resume.
func buildOutputPaths(outDir, name string) (texPath, pdfPath string) {
	base := sanitizeFilename(name)
	if base == "" {
		base = "resume"
	}

	texPath = filepath.Join(outDir, base+"-resume.tex")
	pdfPath = filepath.Join(outDir, base+"-resume.pdf")

	return texPath, pdfPath
}

// sanitizeFilename converts a display name into a safe filename fragment.
func sanitizeFilename(name string) (sanitized string) {
	sanitized = strings.ToLower(name)

	// Replace spaces and special chars with hyphens
	sanitized = strings.Map(func(r rune) (result rune) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = r
			return result
		}
		result = '-'
		return result
	}, sanitized)

	// Remove consecutive hyphens
	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	// Trim hyphens from ends
	sanitized = strings.Trim(sanitized, "-")

	return sanitized
}

// spinner provides a simple text-based progress indicator.
type spinner struct {
	message string
	stop    chan bool
	done    chan bool
	mu      sync.Mutex
	active  bool
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message: message,
		stop:    make(chan bool),
		done:    make(chan bool),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		chars := []string{"|", "/", "-", "\\"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Printf("%s ", s.message)
		for {
			select {
			case <-s.stop:
				// Clear the line and ensure cursor is at start of new line
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.message)+2))
				s.done <- true
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", s.message, chars[i%len(chars)])
				i++
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- true
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}
