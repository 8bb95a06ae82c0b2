package resume

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// RequiredFields are the fields that must be present before any document is
// generated. Everything else degrades gracefully.
//
//nolint:gochecknoglobals // Fixed contract shared by CLI and HTTP validation
var RequiredFields = []string{"name", "email", "phone", "summary"}

// MissingFields returns the names of required fields that are empty.
func (r *Resume) MissingFields() (missing []string) {
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(r.Summary) == "" {
		missing = append(missing, "summary")
	}
	return missing
}

// Validate checks that every required field is populated. The error names
// all missing fields at once so the user can fix them in one pass.
func (r *Resume) Validate() (err error) {
	missing := r.MissingFields()
	if len(missing) > 0 {
		err = errors.Errorf("missing required fields: %s", strings.Join(missing, ", "))
		return err
	}

	return err
}

// ClampRatings forces every proficiency rating into [0,5] in place and
// returns a warning per adjusted entry. Ratings arrive from form input and
// JSON files unchecked; clamping here keeps negative empty-mark counts out
// of both renderers.
func (r *Resume) ClampRatings() (warnings []string) {
	clamp := func(group string, skills []RatedSkill) {
		for i, skill := range skills {
			clamped := skill.Rating
			if clamped < 0 {
				clamped = 0
			}
			if clamped > 5 {
				clamped = 5
			}
			if clamped != skill.Rating {
				warnings = append(warnings, fmt.Sprintf("%s %q: rating %d out of range, clamped to %d", group, skill.Name, skill.Rating, clamped))
				skills[i].Rating = clamped
			}
		}
	}

	clamp("software skill", r.SoftwareSkills)
	clamp("language", r.Languages)

	return warnings
}
