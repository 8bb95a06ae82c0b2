package generator

import (
	"context"

	"github.com/pkg/errors"

	"resumeforge/pkg/latex"
	"resumeforge/pkg/pdf"
	"resumeforge/pkg/resume"
)

// Enhancer rewrites resume text fields, reporting failures as warnings.
// *llm.Enhancer satisfies this.
type Enhancer interface {
	Enhance(ctx context.Context, r *resume.Resume) (*resume.Resume, []string)
}

// Result holds the artifacts of one generation run.
type Result struct {
	Resume   *resume.Resume
	LaTeX    string
	PDF      []byte
	Warnings []string
}

// Options control optional pipeline stages.
type Options struct {
	Enhance bool
}

// Service defines the resume generation use cases.
type Service interface {
	// Generate validates the model, optionally enhances it, and produces
	// both the LaTeX source and the rendered PDF.
	Generate(ctx context.Context, r *resume.Resume, opts Options) (*Result, error)

	// Enhance rewrites the model's free text via the AI client and reports
	// per-field failures as warnings.
	Enhance(ctx context.Context, r *resume.Resume) (*resume.Resume, []string)
}

// Generator is the concrete pipeline implementation.
type Generator struct {
	enhancer  Enhancer
	assembler *latex.Assembler
	renderer  *pdf.Renderer
}

// New constructs a Generator. A nil enhancer disables AI enhancement;
// generation still works, each enhancing run just carries a warning.
func New(enhancer Enhancer) (g *Generator) {
	g = &Generator{
		enhancer:  enhancer,
		assembler: latex.NewAssembler(),
		renderer:  pdf.NewRenderer(),
	}

	return g
}

// Generate runs the full pipeline: validate, clamp ratings, optionally
// enhance, then render both output formats. Enhancement failures downgrade
// to warnings; only validation and rendering can fail the run.
func (g *Generator) Generate(ctx context.Context, r *resume.Resume, opts Options) (result *Result, err error) {
	err = r.Validate()
	if err != nil {
		return result, err
	}

	working := r.Clone()
	warnings := working.ClampRatings()

	if opts.Enhance {
		var enhanceWarnings []string
		working, enhanceWarnings = g.Enhance(ctx, working)
		warnings = append(warnings, enhanceWarnings...)
	}

	doc := g.assembler.Render(working)

	var pdfData []byte
	pdfData, err = g.renderer.Render(working)
	if err != nil {
		err = errors.Wrap(err, "PDF rendering failed")
		return result, err
	}

	result = &Result{
		Resume:   working,
		LaTeX:    doc,
		PDF:      pdfData,
		Warnings: warnings,
	}

	return result, err
}

// Enhance rewrites the model's text fields via the AI client. Without a
// configured client it returns the model unchanged plus a warning.
func (g *Generator) Enhance(ctx context.Context, r *resume.Resume) (enhanced *resume.Resume, warnings []string) {
	if g.enhancer == nil {
		enhanced = r.Clone()
		warnings = append(warnings, "no API key configured, skipping AI enhancement")
		return enhanced, warnings
	}

	enhanced, warnings = g.enhancer.Enhance(ctx, r)

	return enhanced, warnings
}
