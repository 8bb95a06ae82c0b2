package pdf

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"resumeforge/pkg/resume"
)

// Layout constants, in points for fonts and millimeters for geometry.
const (
	marginMM      = 19.05 // 0.75in
	titleSize     = 18
	headingSize   = 14
	bodySize      = 10
	lineHeight    = 5.0
	headingHeight = 7.0
)

// Renderer produces the portable fixed-layout rendering of a resume. Unlike
// the typeset assembler it performs no default-value substitution: a sparse
// model yields a sparse document. Section inclusion comes from the shared
// normalized view, so both producers always agree on which sections appear.
type Renderer struct {
	compress bool
}

// NewRenderer creates a new renderer instance.
func NewRenderer() (r *Renderer) {
	r = &Renderer{compress: true}
	return r
}

// Render produces PDF bytes for the model. Sections without populated
// entries are omitted; an entirely empty model still yields a valid, mostly
// blank document.
func (rd *Renderer) Render(r *resume.Resume) (data []byte, err error) {
	s := resume.Normalize(r)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(rd.compress)
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetAutoPageBreak(true, marginMM)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	rd.writeTitle(doc, tr, s)
	rd.writeContact(doc, tr, s)

	if s.Summary != "" {
		rd.writeHeading(doc, "PROFESSIONAL SUMMARY")
		rd.writeBody(doc, tr, s.Summary)
		doc.Ln(4)
	}

	if len(s.Education) > 0 {
		rd.writeHeading(doc, "EDUCATION")
		for _, edu := range s.Education {
			line := edu.Institution
			if edu.Year != "" {
				line += " (" + edu.Year + ")"
			}
			rd.writeBodyBold(doc, tr, edu.Degree)
			rd.writeBody(doc, tr, line)
			if edu.CGPA != "" {
				rd.writeBody(doc, tr, "CGPA: "+edu.CGPA)
			}
			doc.Ln(2)
		}
		doc.Ln(2)
	}

	if len(s.Experience) > 0 {
		rd.writeHeading(doc, "PROFESSIONAL EXPERIENCE")
		for _, exp := range s.Experience {
			header := exp.Title + " - " + exp.Company
			if exp.Duration != "" {
				header += " (" + exp.Duration + ")"
			}
			rd.writeBodyBold(doc, tr, header)
			for _, point := range exp.Points {
				rd.writeBody(doc, tr, "• "+point)
			}
			doc.Ln(3)
		}
		doc.Ln(1)
	}

	if len(s.Projects) > 0 {
		rd.writeHeading(doc, "PROJECTS")
		for _, proj := range s.Projects {
			header := proj.Name
			if proj.Tech != "" {
				header += " - " + proj.Tech
			}
			rd.writeBodyBold(doc, tr, header)
			for _, line := range proj.Description {
				rd.writeBody(doc, tr, "• "+line)
			}
			doc.Ln(3)
		}
		doc.Ln(1)
	}

	if len(s.Skills) > 0 {
		rd.writeHeading(doc, "TECHNICAL SKILLS")
		for _, cat := range s.Skills {
			rd.writeBody(doc, tr, cat.Category+": "+cat.Items)
		}
		doc.Ln(4)
	}

	if len(s.SoftwareSkills) > 0 {
		rd.writeHeading(doc, "SOFTWARE SKILLS")
		for _, skill := range s.SoftwareSkills {
			rd.writeBody(doc, tr, ratedLine(skill))
		}
		doc.Ln(4)
	}

	if len(s.Languages) > 0 {
		rd.writeHeading(doc, "LANGUAGES")
		for _, lang := range s.Languages {
			rd.writeBody(doc, tr, ratedLine(lang))
		}
		doc.Ln(4)
	}

	if len(s.Certifications) > 0 {
		rd.writeHeading(doc, "CERTIFICATIONS")
		for _, cert := range s.Certifications {
			line := "• " + cert.Name
			if cert.Issuer != "" {
				line += " - " + cert.Issuer
			}
			if cert.Date != "" {
				line += " (" + cert.Date + ")"
			}
			rd.writeBody(doc, tr, line)
		}
		doc.Ln(4)
	}

	if len(s.Interests) > 0 {
		rd.writeHeading(doc, "INTERESTS")
		for _, interest := range s.Interests {
			rd.writeBody(doc, tr, "• "+interest)
		}
	}

	var buf bytes.Buffer
	err = doc.Output(&buf)
	if err != nil {
		err = errors.Wrap(err, "failed to serialize PDF")
		return data, err
	}

	data = buf.Bytes()
	return data, err
}

func (rd *Renderer) writeTitle(doc *fpdf.Fpdf, tr func(string) string, s resume.Sections) {
	if s.Name == "" {
		return
	}
	doc.SetFont("Helvetica", "B", titleSize)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 10, tr(s.Name), "", 1, "C", false, 0, "")
}

func (rd *Renderer) writeContact(doc *fpdf.Fpdf, tr func(string) string, s resume.Sections) {
	var parts []string
	if s.Email != "" {
		parts = append(parts, s.Email)
	}
	if s.Phone != "" {
		parts = append(parts, s.Phone)
	}
	if s.Location != "" {
		parts = append(parts, s.Location)
	}
	if len(parts) == 0 {
		return
	}
	doc.SetFont("Helvetica", "", bodySize)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, lineHeight, tr(strings.Join(parts, " • ")), "", 1, "C", false, 0, "")
	doc.Ln(4)
}

func (rd *Renderer) writeHeading(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", headingSize)
	doc.SetTextColor(0, 0, 139)
	doc.CellFormat(0, headingHeight, title, "", 1, "L", false, 0, "")
}

func (rd *Renderer) writeBody(doc *fpdf.Fpdf, tr func(string) string, text string) {
	doc.SetFont("Helvetica", "", bodySize)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, lineHeight, tr(text), "", "L", false)
}

func (rd *Renderer) writeBodyBold(doc *fpdf.Fpdf, tr func(string) string, text string) {
	doc.SetFont("Helvetica", "B", bodySize)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, lineHeight, tr(text), "", "L", false)
}

// ratedLine renders a proficiency as name, a 5-slot dot indicator, and the
// label. Out-of-range ratings are truncated to the indicator's bounds; the
// generation pipeline clamps them before rendering anyway.
func ratedLine(skill resume.RatedSkill) (line string) {
	filled := skill.Rating
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}

	line = skill.Name + "  " + strings.Repeat("•", filled) + strings.Repeat("·", 5-filled)
	if skill.Label != "" {
		line += "  " + skill.Label
	}
	return line
}
