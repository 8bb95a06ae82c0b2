package resume

import "strings"

// Section names reported by Sections.Included, in display order.
const (
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionSoftware       = "software"
	SectionLanguages      = "languages"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionInterests      = "interests"
)

// Sections is the normalized renderable view of a resume: scalar fields
// trimmed, incomplete entries dropped, blank list items removed. Both
// document producers consume this view, so section-inclusion decisions are
// made exactly once and the two outputs cannot diverge on which sections
// they carry.
type Sections struct {
	Name     string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string
	JobTitle string
	Summary  string

	Education      []Education
	Experience     []Experience
	Projects       []Project
	Skills         []SkillCategory
	SoftwareSkills []RatedSkill
	Languages      []RatedSkill
	Certifications []Certification
	Interests      []string
}

// Normalize builds the renderable view of r. An education entry needs both
// degree and institution; an experience entry needs both title and company;
// projects and certifications need a name; skill categories need a category
// and a non-blank item string. List-valued sub-fields keep only non-blank
// lines. The input model is not modified.
func Normalize(r *Resume) (s Sections) {
	s.Name = strings.TrimSpace(r.Name)
	s.Email = strings.TrimSpace(r.Email)
	s.Phone = strings.TrimSpace(r.Phone)
	s.Location = strings.TrimSpace(r.Location)
	s.LinkedIn = strings.TrimSpace(r.LinkedIn)
	s.GitHub = strings.TrimSpace(r.GitHub)
	s.JobTitle = strings.TrimSpace(r.JobTitle)
	s.Summary = strings.TrimSpace(r.Summary)

	for _, edu := range r.Education {
		if strings.TrimSpace(edu.Degree) == "" || strings.TrimSpace(edu.Institution) == "" {
			continue
		}
		s.Education = append(s.Education, Education{
			Degree:      strings.TrimSpace(edu.Degree),
			Institution: strings.TrimSpace(edu.Institution),
			Year:        strings.TrimSpace(edu.Year),
			CGPA:        strings.TrimSpace(edu.CGPA),
		})
	}

	for _, exp := range r.Experience {
		if strings.TrimSpace(exp.Title) == "" || strings.TrimSpace(exp.Company) == "" {
			continue
		}
		s.Experience = append(s.Experience, Experience{
			Title:            strings.TrimSpace(exp.Title),
			Company:          strings.TrimSpace(exp.Company),
			Duration:         strings.TrimSpace(exp.Duration),
			Location:         strings.TrimSpace(exp.Location),
			BasicDescription: strings.TrimSpace(exp.BasicDescription),
			Points:           nonBlank(exp.Points),
		})
	}

	for _, proj := range r.Projects {
		if strings.TrimSpace(proj.Name) == "" {
			continue
		}
		s.Projects = append(s.Projects, Project{
			Name:        strings.TrimSpace(proj.Name),
			Tech:        strings.TrimSpace(proj.Tech),
			Description: nonBlank(proj.Description),
		})
	}

	for _, cat := range r.Skills {
		if strings.TrimSpace(cat.Category) == "" || strings.TrimSpace(cat.Items) == "" {
			continue
		}
		s.Skills = append(s.Skills, SkillCategory{
			Category: strings.TrimSpace(cat.Category),
			Items:    strings.TrimSpace(cat.Items),
		})
	}

	s.SoftwareSkills = namedSkills(r.SoftwareSkills)
	s.Languages = namedSkills(r.Languages)

	for _, cert := range r.Certifications {
		if strings.TrimSpace(cert.Name) == "" {
			continue
		}
		s.Certifications = append(s.Certifications, Certification{
			Name:   strings.TrimSpace(cert.Name),
			Issuer: strings.TrimSpace(cert.Issuer),
			Date:   strings.TrimSpace(cert.Date),
		})
	}

	s.Interests = nonBlank(r.Interests)

	return s
}

// Included reports which content sections carry at least one populated
// entry, in display order. Used for logging and for verifying that both
// document producers agree on the section set.
func (s *Sections) Included() (names []string) {
	if s.Summary != "" {
		names = append(names, SectionSummary)
	}
	if len(s.Skills) > 0 {
		names = append(names, SectionSkills)
	}
	if len(s.SoftwareSkills) > 0 {
		names = append(names, SectionSoftware)
	}
	if len(s.Languages) > 0 {
		names = append(names, SectionLanguages)
	}
	if len(s.Experience) > 0 {
		names = append(names, SectionExperience)
	}
	if len(s.Education) > 0 {
		names = append(names, SectionEducation)
	}
	if len(s.Projects) > 0 {
		names = append(names, SectionProjects)
	}
	if len(s.Certifications) > 0 {
		names = append(names, SectionCertifications)
	}
	if len(s.Interests) > 0 {
		names = append(names, SectionInterests)
	}
	return names
}

// SkillItems splits a comma-separated skill string into its non-blank parts.
func SkillItems(items string) (parts []string) {
	for _, part := range strings.Split(items, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func nonBlank(lines []string) (kept []string) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return kept
}

func namedSkills(skills []RatedSkill) (kept []RatedSkill) {
	for _, skill := range skills {
		if strings.TrimSpace(skill.Name) == "" {
			continue
		}
		kept = append(kept, RatedSkill{
			Name:   strings.TrimSpace(skill.Name),
			Rating: skill.Rating,
			Label:  strings.TrimSpace(skill.Label),
		})
	}
	return kept
}
