package resume

// Sample returns a fully populated example model covering every field, used
// by the sample command to write a starter file the user can edit.
func Sample() (r *Resume) {
	r = &Resume{
		Name:     DefaultName,
		Email:    DefaultEmail,
		Phone:    DefaultPhone,
		Location: DefaultLocation,
		LinkedIn: DefaultLinkedIn,
		GitHub:   "github.com/johnsmith",
		JobTitle: DefaultJobTitle,
		Summary:  DefaultSummary,
		Education: []Education{
			{
				Degree:      "B.S. Computer Science",
				Institution: "University of Southern Maine",
				Year:        "2008",
				CGPA:        "3.7",
			},
		},
		Experience: []Experience{
			{
				Title:            "IT Project Manager",
				Company:          "Atlantic Logistics Group",
				Duration:         "2015 - Present",
				Location:         "Portland, ME",
				BasicDescription: "Manage infrastructure and application projects for an international logistics company",
				Points: []string{
					"Led migration of core shipment tracking platform to a private cloud, cutting hosting costs by 30%",
					"Coordinated a 12-person team across three time zones delivering quarterly releases on schedule",
					"Introduced a change-management process that reduced failed deployments by half",
				},
			},
			{
				Title:            "Systems Administrator",
				Company:          "Casco Bay Shipping",
				Duration:         "2010 - 2015",
				Location:         "Portland, ME",
				BasicDescription: "Ran Windows and Linux server fleets for warehouse operations",
				Points: []string{
					"Maintained 99.9% uptime across a 40-server mixed Windows/Linux estate",
					"Automated nightly backup verification, eliminating a weekly manual audit",
				},
			},
		},
		Projects: []Project{
			{
				Name: "Warehouse Telemetry Dashboard",
				Tech: "Grafana, PostgreSQL, MQTT",
				Description: []string{
					"Built a real-time dashboard aggregating sensor data from three warehouses",
					"Reduced cold-chain incident response time from hours to minutes",
				},
			},
		},
		Skills: []SkillCategory{
			{Category: "Project Management", Items: "Agile, Scrum, Kanban, Budgeting, Risk Management"},
			{Category: "Infrastructure", Items: "VMware, Active Directory, Networking, Disaster Recovery"},
		},
		SoftwareSkills: DefaultSoftwareSkills(),
		Languages: []RatedSkill{
			{Name: "French", Rating: 3, Label: "Intermediate"},
			{Name: "Spanish", Rating: 2, Label: "Basic"},
		},
		Certifications: DefaultCertifications(),
		Interests:      DefaultInterests(),
	}
	return r
}
