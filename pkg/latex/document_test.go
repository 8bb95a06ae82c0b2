package latex

import (
	"strings"
	"testing"

	"resumeforge/pkg/resume"
)

func TestRenderEmptyModel(t *testing.T) {
	a := NewAssembler()

	doc := a.Render(&resume.Resume{})

	if doc == "" {
		t.Fatal("Expected non-empty document for empty model")
	}

	// Structurally complete.
	for _, marker := range []string{
		`\documentclass[10pt, a4paper]{article}`,
		`\begin{document}`,
		`\end{document}`,
		`\begin{paracol}{2}`,
		`\end{paracol}`,
		`\switchcolumn`,
	} {
		if !strings.Contains(doc, marker) {
			t.Errorf("Document missing structural marker '%s'", marker)
		}
	}

	// Defaults fill the identity fields.
	if !strings.Contains(doc, resume.DefaultName) {
		t.Error("Expected default name in output")
	}
	if !strings.Contains(doc, resume.DefaultEmail) {
		t.Error("Expected default email in output")
	}
	if !strings.Contains(doc, resume.DefaultPhone) {
		t.Error("Expected default phone in output")
	}
	if !strings.Contains(doc, "SanCorp") {
		t.Error("Expected default summary in output")
	}

	// Stock sections render.
	for _, section := range []string{
		`\section*{Software}`,
		`\section*{Languages}`,
		`\section*{Certifications}`,
		`\section*{Interests}`,
	} {
		if !strings.Contains(doc, section) {
			t.Errorf("Expected stock section '%s' in output", section)
		}
	}

	// Sections without stock content are omitted entirely.
	for _, section := range []string{
		`\section*{Skills}`,
		`\section*{Experience}`,
		`\section*{Education}`,
		`\section*{Projects}`,
	} {
		if strings.Contains(doc, section) {
			t.Errorf("Section '%s' should be omitted for empty model", section)
		}
	}

	// GitHub has no default, so its contact line is absent.
	if strings.Contains(doc, "GitHub:") {
		t.Error("GitHub line should be omitted when field is empty")
	}
	if !strings.Contains(doc, "LinkedIn:") {
		t.Error("LinkedIn line should fall back to its placeholder")
	}
}

func TestRenderEmptyExperienceOmitsSection(t *testing.T) {
	a := NewAssembler()
	r := resume.Sample()
	r.Experience = []resume.Experience{}

	doc := a.Render(r)

	if strings.Contains(doc, `\section*{Experience}`) {
		t.Error("Experience section header should be omitted for empty experience")
	}
}

func TestRenderSkillRatings(t *testing.T) {
	a := NewAssembler()

	tests := []struct {
		name   string
		rating int
		want   string
	}{
		{name: "full rating", rating: 5, want: `\skillrating{5}{0}`},
		{name: "zero rating", rating: 0, want: `\skillrating{0}{5}`},
		{name: "mid rating", rating: 3, want: `\skillrating{3}{2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &resume.Resume{
				SoftwareSkills: []resume.RatedSkill{
					{Name: "Tool", Rating: tt.rating, Label: "Label"},
				},
			}

			doc := a.Render(r)

			if !strings.Contains(doc, tt.want) {
				t.Errorf("Expected '%s' in output for rating %d", tt.want, tt.rating)
			}
		})
	}
}

func TestRenderEscapesUserText(t *testing.T) {
	a := NewAssembler()
	r := &resume.Resume{
		Name:    "Smith & Jones",
		Email:   "jane_smith@example.com",
		Phone:   "555-0100",
		Summary: "Grew revenue by 100% with a $2M budget",
	}

	doc := a.Render(r)

	if !strings.Contains(doc, `Smith \& Jones`) {
		t.Error("Expected escaped ampersand in name")
	}
	if !strings.Contains(doc, `jane\_smith@example.com`) {
		t.Error("Expected escaped underscore in email")
	}
	if !strings.Contains(doc, `100\% with a \$2M budget`) {
		t.Error("Expected escaped percent and dollar in summary")
	}
	if strings.Contains(doc, "Smith & Jones") {
		t.Error("Raw ampersand should never reach the output")
	}
}

func TestRenderFullModel(t *testing.T) {
	a := NewAssembler()
	r := resume.Sample()

	doc := a.Render(r)

	for _, section := range []string{
		`\section*{Personal Info}`,
		`\section*{Skills}`,
		`\section*{Software}`,
		`\section*{Languages}`,
		`\section*{Experience}`,
		`\section*{Education}`,
		`\section*{Projects}`,
		`\section*{Certifications}`,
		`\section*{Interests}`,
	} {
		if !strings.Contains(doc, section) {
			t.Errorf("Expected section '%s' in full-model output", section)
		}
	}

	// Entry formatting.
	if !strings.Contains(doc, `\textbf{IT Project Manager} \hfill 2015 - Present`) {
		t.Error("Expected experience title/duration line")
	}
	if !strings.Contains(doc, `\textit{Atlantic Logistics Group}`) {
		t.Error("Expected italicized company name")
	}
	if !strings.Contains(doc, `\textbf{B.S. Computer Science} \hfill 2008`) {
		t.Error("Expected education degree/year line")
	}
	if !strings.Contains(doc, `\item CGPA: 3.7`) {
		t.Error("Expected CGPA item")
	}
	if !strings.Contains(doc, "GitHub:") {
		t.Error("Expected GitHub line when field is set")
	}
	if !strings.Contains(doc, `PMP -- Project Management Institute \hfill 2010-05`) {
		t.Error("Expected certification line with issuer")
	}
	if !strings.Contains(doc, `PRINCE2 Foundation \hfill 2003-04`) {
		t.Error("Expected certification line without issuer")
	}
}

func TestRenderDropsIncompleteEntries(t *testing.T) {
	a := NewAssembler()
	r := &resume.Resume{
		Education: []resume.Education{
			{Degree: "M.S. Orphan"}, // no institution
		},
		Experience: []resume.Experience{
			{Title: "Orphan Title"}, // no company
		},
	}

	doc := a.Render(r)

	if strings.Contains(doc, `\section*{Education}`) {
		t.Error("Education section should be omitted when no entry is complete")
	}
	if strings.Contains(doc, `\section*{Experience}`) {
		t.Error("Experience section should be omitted when no entry is complete")
	}
	if strings.Contains(doc, "Orphan") {
		t.Error("Incomplete entries should not leak into the output")
	}
}

func TestRenderBlankPointsDropped(t *testing.T) {
	a := NewAssembler()
	r := &resume.Resume{
		Experience: []resume.Experience{
			{
				Title:   "Engineer",
				Company: "Acme",
				Points:  []string{"Shipped the thing", "   ", ""},
			},
		},
	}

	doc := a.Render(r)

	// Count items inside the Experience section only; stock sections carry
	// their own items.
	start := strings.Index(doc, `\section*{Experience}`)
	if start == -1 {
		t.Fatal("Expected Experience section in output")
	}
	rest := doc[start+len(`\section*{Experience}`):]
	end := strings.Index(rest, `\section*{`)
	if end == -1 {
		end = len(rest)
	}
	section := rest[:end]

	if got := strings.Count(section, `\item`); got != 1 {
		t.Errorf("Expected exactly 1 experience item, got %d", got)
	}

	if !strings.Contains(section, "Shipped the thing") {
		t.Error("Expected the non-blank point to render")
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := NewAssembler()
	r := resume.Sample()

	first := a.Render(r)
	second := a.Render(r)

	if first != second {
		t.Error("Render should be deterministic for identical input")
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	a := NewAssembler()
	r := &resume.Resume{}

	a.Render(r)

	if r.Name != "" || r.SoftwareSkills != nil {
		t.Error("Render should not write defaults back into the caller's model")
	}
}
