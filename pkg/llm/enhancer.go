package llm

import (
	"context"
	"fmt"
	"strings"

	"resumeforge/pkg/resume"
)

// Enhancer rewrites resume content via the Gemini API, field by field.
type Enhancer struct {
	client *Client
}

// NewEnhancer creates an Enhancer backed by the given client.
func NewEnhancer(client *Client) (enhancer *Enhancer) {
	enhancer = &Enhancer{
		client: client,
	}

	return enhancer
}

// Enhance returns a copy of the resume with AI-improved text where the model
// succeeded and the original text where it did not.  A failed call never
// aborts the run; it produces a warning and leaves that field untouched.
func (e *Enhancer) Enhance(ctx context.Context, r *resume.Resume) (enhanced *resume.Resume, warnings []string) {
	enhanced = r.Clone()

	if enhanced.Name != "" && enhanced.JobTitle != "" {
		summary, err := e.client.EnhanceSummary(ctx, enhanced.Name, enhanced.JobTitle, skillsDigest(enhanced))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("summary enhancement failed, keeping original: %s", err))
		} else if summary != "" {
			enhanced.Summary = summary
		}
	}

	for i := range enhanced.Experience {
		exp := &enhanced.Experience[i]
		if exp.Title == "" || exp.Company == "" || exp.BasicDescription == "" {
			continue
		}

		points, err := e.client.EnhanceExperience(ctx, exp.Title, exp.Company, exp.BasicDescription)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("experience %q enhancement failed, keeping original: %s", exp.Title, err))
			continue
		}

		if len(points) > 0 {
			exp.Points = points
		}
	}

	for i := range enhanced.Projects {
		proj := &enhanced.Projects[i]
		if proj.Name == "" {
			continue
		}

		basis := strings.Join(proj.Description, " ")
		if basis == "" && proj.Tech == "" {
			continue
		}

		points, err := e.client.EnhanceProject(ctx, proj.Name, proj.Tech, basis)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("project %q enhancement failed, keeping original: %s", proj.Name, err))
			continue
		}

		if len(points) > 0 {
			proj.Description = points
		}
	}

	for i := range enhanced.Skills {
		cat := &enhanced.Skills[i]
		if cat.Items == "" {
			continue
		}

		cleaned, err := e.client.CleanupSkills(ctx, cat.Category, cat.Items)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skills %q cleanup failed, keeping original: %s", cat.Category, err))
			continue
		}

		if cleaned != "" {
			cat.Items = cleaned
		}
	}

	return enhanced, warnings
}

// skillsDigest flattens all skill categories into one comma-separated list
// for use as summary context.
func skillsDigest(r *resume.Resume) (digest string) {
	var items []string

	for _, cat := range r.Skills {
		if cat.Items != "" {
			items = append(items, cat.Items)
		}
	}

	digest = strings.Join(items, ", ")

	return digest
}
