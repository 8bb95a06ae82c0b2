package resume

// Resume is the complete structured record of user-supplied resume content.
// All fields are optional at the model level; Validate enforces the required
// set before generation. Ordered slices preserve display order, which is why
// skills and rated-skill groups are arrays rather than maps.
type Resume struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	JobTitle string `json:"job_title"`
	Summary  string `json:"summary"`

	Education      []Education     `json:"education,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Skills         []SkillCategory `json:"skills,omitempty"`
	SoftwareSkills []RatedSkill    `json:"software_skills,omitempty"`
	Languages      []RatedSkill    `json:"languages,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Interests      []string        `json:"interests,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	CGPA        string `json:"cgpa"`
}

// Experience is a single work-experience entry.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Location         string   `json:"location"`
	BasicDescription string   `json:"basic_description"`
	Points           []string `json:"points"`
}

// Project is a single project entry.
type Project struct {
	Name        string   `json:"name"`
	Tech        string   `json:"tech"`
	Description []string `json:"description"`
}

// SkillCategory maps a category name to a comma-separated skill string.
type SkillCategory struct {
	Category string `json:"category"`
	Items    string `json:"items"`
}

// RatedSkill is a named proficiency with a 0-5 rating and a text label.
type RatedSkill struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Label  string `json:"label"`
}

// Certification is a single certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Clone returns a deep copy of the resume. Producers never mutate their
// input, so anything that rewrites fields (defaults, enhancement) works on a
// clone and leaves the caller's model untouched.
func (r *Resume) Clone() (clone *Resume) {
	clone = &Resume{}
	*clone = *r

	if r.Education != nil {
		clone.Education = make([]Education, len(r.Education))
		copy(clone.Education, r.Education)
	}

	if r.Experience != nil {
		clone.Experience = make([]Experience, len(r.Experience))
		for i, exp := range r.Experience {
			clone.Experience[i] = exp
			if exp.Points != nil {
				clone.Experience[i].Points = make([]string, len(exp.Points))
				copy(clone.Experience[i].Points, exp.Points)
			}
		}
	}

	if r.Projects != nil {
		clone.Projects = make([]Project, len(r.Projects))
		for i, proj := range r.Projects {
			clone.Projects[i] = proj
			if proj.Description != nil {
				clone.Projects[i].Description = make([]string, len(proj.Description))
				copy(clone.Projects[i].Description, proj.Description)
			}
		}
	}

	if r.Skills != nil {
		clone.Skills = make([]SkillCategory, len(r.Skills))
		copy(clone.Skills, r.Skills)
	}

	if r.SoftwareSkills != nil {
		clone.SoftwareSkills = make([]RatedSkill, len(r.SoftwareSkills))
		copy(clone.SoftwareSkills, r.SoftwareSkills)
	}

	if r.Languages != nil {
		clone.Languages = make([]RatedSkill, len(r.Languages))
		copy(clone.Languages, r.Languages)
	}

	if r.Certifications != nil {
		clone.Certifications = make([]Certification, len(r.Certifications))
		copy(clone.Certifications, r.Certifications)
	}

	if r.Interests != nil {
		clone.Interests = make([]string, len(r.Interests))
		copy(clone.Interests, r.Interests)
	}

	return clone
}
