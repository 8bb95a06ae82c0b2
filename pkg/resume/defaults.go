package resume

// Placeholder identity values used by the typeset assembler when a field is
// empty. The fixed-layout renderer performs no default substitution, so a
// sparse model produces a sparser PDF than its typeset counterpart.
const (
	DefaultName     = "John Smith"
	DefaultEmail    = "john.smith@email.com"
	DefaultPhone    = "774-987-4032"
	DefaultLocation = "Portland, ME 04109"
	DefaultLinkedIn = "linkedin.com/in/johnsmith"
	DefaultJobTitle = "IT Project Manager"
	DefaultSummary  = "IT professional with over 10 years of experience specializing in IT department management for international logistics companies. Greatest strength is business awareness, which enables permanent infrastructure and applications. Seeking to leverage IT management abilities in SanCorp."
)

// DefaultSoftwareSkills returns the stock software proficiency entries.
func DefaultSoftwareSkills() (skills []RatedSkill) {
	skills = []RatedSkill{
		{Name: "Microsoft Project", Rating: 5, Label: "Excellent"},
		{Name: "Windows Server", Rating: 4, Label: "Very Good"},
		{Name: "Linux/Unix", Rating: 4, Label: "Very Good"},
		{Name: "Microsoft Excel", Rating: 3, Label: "Good"},
	}
	return skills
}

// DefaultLanguages returns the stock language proficiency entries.
func DefaultLanguages() (languages []RatedSkill) {
	languages = []RatedSkill{
		{Name: "French", Rating: 3, Label: "Intermediate"},
	}
	return languages
}

// DefaultCertifications returns the stock certification entries.
func DefaultCertifications() (certs []Certification) {
	certs = []Certification{
		{Name: "PMP", Issuer: "Project Management Institute", Date: "2010-05"},
		{Name: "CAPM", Issuer: "Project Management Institute", Date: "2007-11"},
		{Name: "PRINCE2 Foundation", Issuer: "", Date: "2003-04"},
	}
	return certs
}

// DefaultInterests returns the stock interest lines.
func DefaultInterests() (interests []string) {
	interests = []string{
		"Avid cross country skier and cyclist.",
		"Member of the Parent Teacher Association.",
		"Father of two passionate boys.",
		"Interested in personal development.",
	}
	return interests
}

// WithDefaults returns a copy of r with empty identity fields replaced by
// their placeholders and empty rated/list sections replaced by the stock
// content. GitHub has no placeholder: when empty, its contact line is simply
// omitted. Skills, experience, education, and projects have no stock content
// either; their sections disappear from the output when empty.
func WithDefaults(r *Resume) (out *Resume) {
	out = r.Clone()

	if out.Name == "" {
		out.Name = DefaultName
	}
	if out.Email == "" {
		out.Email = DefaultEmail
	}
	if out.Phone == "" {
		out.Phone = DefaultPhone
	}
	if out.Location == "" {
		out.Location = DefaultLocation
	}
	if out.LinkedIn == "" {
		out.LinkedIn = DefaultLinkedIn
	}
	if out.JobTitle == "" {
		out.JobTitle = DefaultJobTitle
	}
	if out.Summary == "" {
		out.Summary = DefaultSummary
	}

	if len(out.SoftwareSkills) == 0 {
		out.SoftwareSkills = DefaultSoftwareSkills()
	}
	if len(out.Languages) == 0 {
		out.Languages = DefaultLanguages()
	}
	if len(out.Certifications) == 0 {
		out.Certifications = DefaultCertifications()
	}
	if len(out.Interests) == 0 {
		out.Interests = DefaultInterests()
	}

	return out
}
