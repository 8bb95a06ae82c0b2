package latex

import (
	"fmt"
	"strings"

	"resumeforge/pkg/resume"
)

// preamble is the fixed document head: page geometry, fonts, colors, the
// section title format, and the \skillrating command that renders a 5-slot
// proficiency indicator as filled and empty marks in the accent color.
const preamble = `\documentclass[10pt, a4paper]{article}

% Setting up the page layout and basic packages
\usepackage[left=0.75in, right=0.75in, top=0.5in, bottom=0.5in]{geometry}
\usepackage{lmodern}
\usepackage[T1]{fontenc}
\usepackage{xcolor}
\usepackage{titlesec}
\usepackage{hyperref}
\usepackage{enumitem}
\usepackage{paracol}
\usepackage{pgffor}

% Defining colors for styling
\definecolor{primaryblue}{RGB}{42, 94, 133}
\definecolor{lightgray}{RGB}{220, 220, 220}

% Setting up hyperlinks
\hypersetup{
    colorlinks=true,
    urlcolor=primaryblue,
    linkcolor=primaryblue,
}

% Removing page numbers
\pagestyle{empty}

% Custom command for skill ratings with filled and empty bullets
\newcommand{\skillrating}[2]{%
    \textcolor{primaryblue}{\foreach \x in {1,...,#1}{\textbullet}\foreach \x in {1,...,#2}{\circ}}%
}

% Formatting section titles
\titleformat{\section}
  {\color{primaryblue}\normalsize\bfseries\MakeUppercase}
  {}{0em}
  {}
  [\vspace{-0.5ex}\textcolor{lightgray}{\titlerule[0.5pt]}]
\titlespacing*{\section}{0pt}{2.5ex}{0.5ex}

% Adjusting itemize spacing for tight lists
\setlist[itemize]{noitemsep, topsep=2pt, leftmargin=1.2em}

\begin{document}

`

// Assembler deterministically renders a resume model into complete LaTeX
// source. Empty identity fields fall back to placeholder values, so the
// output is always a compilable document even from an empty model; sections
// with no populated entries are omitted entirely. Ratings are emitted as
// given, filled marks first, 5 minus rating empty marks after; the
// generation pipeline clamps ratings to [0,5] before any renderer runs.
type Assembler struct{}

// NewAssembler creates a new assembler instance.
func NewAssembler() (a *Assembler) {
	a = &Assembler{}
	return a
}

// Render produces the complete LaTeX document for r. It never fails:
// missing input degrades via the default-value policy.
func (a *Assembler) Render(r *resume.Resume) (doc string) {
	s := resume.Normalize(resume.WithDefaults(r))

	var b strings.Builder
	b.WriteString(preamble)

	a.writeHeader(&b, s)

	b.WriteString("% Two-column layout\n")
	b.WriteString("\\setcolumnwidth{0.35\\textwidth, 0.62\\textwidth}\n")
	b.WriteString("\\begin{paracol}{2}\n\n")

	b.WriteString("% Left Column: Personal Info, Skills, Software, Languages\n")
	a.writePersonalInfo(&b, s)
	a.writeSkills(&b, s.Skills)
	a.writeRatedSection(&b, "Software", s.SoftwareSkills)
	a.writeRatedSection(&b, "Languages", s.Languages)

	b.WriteString("\\switchcolumn\n\n")

	b.WriteString("% Right Column: Experience, Education, Projects, Certifications, Interests\n")
	a.writeExperience(&b, s.Experience)
	a.writeEducation(&b, s.Education)
	a.writeProjects(&b, s.Projects)
	a.writeCertifications(&b, s.Certifications)
	a.writeInterests(&b, s.Interests)

	b.WriteString("\\end{paracol}\n\n\\end{document}\n")

	doc = b.String()
	return doc
}

func (a *Assembler) writeHeader(b *strings.Builder, s resume.Sections) {
	b.WriteString("% Header: Name, Job Title, and Summary\n")
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(b, "    {\\Huge\\bfseries %s}\n", Escape(s.Name))
	b.WriteString("    \\vspace{1mm}\n    \\\\\n")
	fmt.Fprintf(b, "    {\\large\\color{primaryblue}%s}\n", Escape(s.JobTitle))
	b.WriteString("    \\vspace{3mm}\n    \\\\\n")
	b.WriteString("    \\small\n")
	fmt.Fprintf(b, "    %s\n", Escape(s.Summary))
	b.WriteString("    \\vspace{5mm}\n")
	b.WriteString("\\end{center}\n\n")
}

func (a *Assembler) writePersonalInfo(b *strings.Builder, s resume.Sections) {
	b.WriteString("\\section*{Personal Info}\n\\small\n")
	fmt.Fprintf(b, "%s \\\\\n", Escape(s.Location))
	fmt.Fprintf(b, "Phone: %s \\\\\n", Escape(s.Phone))
	fmt.Fprintf(b, "Email: %s \\\\\n", Escape(s.Email))
	if s.LinkedIn != "" {
		fmt.Fprintf(b, "LinkedIn: \\href{%s}{%s} \\\\\n", Escape(s.LinkedIn), Escape(s.LinkedIn))
	}
	if s.GitHub != "" {
		fmt.Fprintf(b, "GitHub: \\href{%s}{%s} \\\\\n", Escape(s.GitHub), Escape(s.GitHub))
	}
	b.WriteString("\\vspace{5mm}\n\n")
}

// writeSkills lists each skill on its own line, grouped per category with a
// small gap between groups. Category names are form bookkeeping and are not
// printed.
func (a *Assembler) writeSkills(b *strings.Builder, skills []resume.SkillCategory) {
	if len(skills) == 0 {
		return
	}

	b.WriteString("\\section*{Skills}\n\\small\n")
	for _, cat := range skills {
		for _, item := range resume.SkillItems(cat.Items) {
			fmt.Fprintf(b, "%s \\\\\n", Escape(item))
		}
		b.WriteString("\\vspace{2mm}\n")
	}
	b.WriteString("\\vspace{5mm}\n\n")
}

func (a *Assembler) writeRatedSection(b *strings.Builder, title string, skills []resume.RatedSkill) {
	if len(skills) == 0 {
		return
	}

	fmt.Fprintf(b, "\\section*{%s}\n\\small\n\\begin{itemize}\n", title)
	for _, skill := range skills {
		emptyMarks := 5 - skill.Rating
		fmt.Fprintf(b, "    \\item %s \\hfill \\skillrating{%d}{%d}", Escape(skill.Name), skill.Rating, emptyMarks)
		if skill.Label != "" {
			fmt.Fprintf(b, " \\\\ \\small %s", Escape(skill.Label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\\end{itemize}\n\\vspace{5mm}\n\n")
}

func (a *Assembler) writeExperience(b *strings.Builder, entries []resume.Experience) {
	if len(entries) == 0 {
		return
	}

	b.WriteString("\\section*{Experience}\n\\small\n")
	for _, exp := range entries {
		fmt.Fprintf(b, "\\textbf{%s} \\hfill %s \\\\\n", Escape(exp.Title), Escape(exp.Duration))
		fmt.Fprintf(b, "\\textit{%s}", Escape(exp.Company))
		if exp.Location != "" {
			fmt.Fprintf(b, " \\hfill %s", Escape(exp.Location))
		}
		b.WriteString(" \\\\\n")
		if len(exp.Points) > 0 {
			b.WriteString("\\begin{itemize}\n")
			for _, point := range exp.Points {
				fmt.Fprintf(b, "    \\item %s\n", Escape(point))
			}
			b.WriteString("\\end{itemize}\n")
		}
		b.WriteString("\\vspace{3mm}\n")
	}
	b.WriteString("\n")
}

func (a *Assembler) writeEducation(b *strings.Builder, entries []resume.Education) {
	if len(entries) == 0 {
		return
	}

	b.WriteString("\\section*{Education}\n\\small\n")
	for _, edu := range entries {
		fmt.Fprintf(b, "\\textbf{%s} \\hfill %s \\\\\n", Escape(edu.Degree), Escape(edu.Year))
		fmt.Fprintf(b, "%s \\\\\n", Escape(edu.Institution))
		if edu.CGPA != "" {
			b.WriteString("\\begin{itemize}\n")
			fmt.Fprintf(b, "    \\item CGPA: %s\n", Escape(edu.CGPA))
			b.WriteString("\\end{itemize}\n")
		}
		b.WriteString("\\vspace{5mm}\n")
	}
	b.WriteString("\n")
}

func (a *Assembler) writeProjects(b *strings.Builder, entries []resume.Project) {
	if len(entries) == 0 {
		return
	}

	b.WriteString("\\section*{Projects}\n\\small\n")
	for _, proj := range entries {
		fmt.Fprintf(b, "\\textbf{%s}", Escape(proj.Name))
		if proj.Tech != "" {
			fmt.Fprintf(b, " \\hfill \\textit{%s}", Escape(proj.Tech))
		}
		b.WriteString(" \\\\\n")
		if len(proj.Description) > 0 {
			b.WriteString("\\begin{itemize}\n")
			for _, line := range proj.Description {
				fmt.Fprintf(b, "    \\item %s\n", Escape(line))
			}
			b.WriteString("\\end{itemize}\n")
		}
		b.WriteString("\\vspace{3mm}\n")
	}
	b.WriteString("\n")
}

func (a *Assembler) writeCertifications(b *strings.Builder, certs []resume.Certification) {
	if len(certs) == 0 {
		return
	}

	b.WriteString("\\section*{Certifications}\n\\small\n\\begin{itemize}\n")
	for _, cert := range certs {
		fmt.Fprintf(b, "    \\item %s", Escape(cert.Name))
		if cert.Issuer != "" {
			fmt.Fprintf(b, " -- %s", Escape(cert.Issuer))
		}
		fmt.Fprintf(b, " \\hfill %s\n", Escape(cert.Date))
	}
	b.WriteString("\\end{itemize}\n\\vspace{5mm}\n\n")
}

func (a *Assembler) writeInterests(b *strings.Builder, interests []string) {
	if len(interests) == 0 {
		return
	}

	b.WriteString("\\section*{Interests}\n\\small\n\\begin{itemize}\n")
	for _, interest := range interests {
		fmt.Fprintf(b, "    \\item %s\n", Escape(interest))
	}
	b.WriteString("\\end{itemize}\n\n")
}
