package llm

import "fmt"

// buildSummaryPrompt builds the prompt for professional summary generation.
func buildSummaryPrompt(name, jobTitle, keySkills string) (prompt string) {
	prompt = fmt.Sprintf(`Create a professional, ATS-friendly resume summary for %s, a %s.
Key skills: %s
Requirements:
- 2-3 sentences maximum
- Include relevant keywords for ATS optimization
- Highlight key achievements and value proposition
- Professional tone
- No personal pronouns
Return only the summary text, no additional formatting.`, name, jobTitle, keySkills)

	return prompt
}

// buildExperiencePrompt builds the prompt for job description enhancement.
func buildExperiencePrompt(title, company, basicDescription string) (prompt string) {
	prompt = fmt.Sprintf(`Enhance this job description for a resume:
Position: %s at %s
Basic description: %s
Requirements:
- Create 3-4 bullet points
- Start each with strong action verbs
- Include quantifiable achievements where possible
- Use ATS-friendly keywords
- Professional tone
- Focus on impact and results
Return only the bullet points, one per line, without bullet symbols.`, title, company, basicDescription)

	return prompt
}

// buildProjectPrompt builds the prompt for project description enhancement.
func buildProjectPrompt(projectName, technologies, basicDescription string) (prompt string) {
	prompt = fmt.Sprintf(`Enhance this project description for a resume:
Project: %s
Technologies: %s
Basic description: %s
Requirements:
- Create 2-3 bullet points
- Highlight technical skills and achievements
- Include impact or results where possible
- Use technical keywords appropriately
- Professional and concise
Return only the bullet points, one per line, without bullet symbols.`, projectName, technologies, basicDescription)

	return prompt
}

// buildSkillsPrompt builds the prompt for ATS skills cleanup.
func buildSkillsPrompt(category, skills string) (prompt string) {
	prompt = fmt.Sprintf(`Optimize the following skills list for ATS compatibility and clarity:
Category: %s
Skills: %s
Requirements:
- Ensure keywords are ATS-friendly and relevant.
- Remove duplicates and overly generic terms.
- Return the optimized skills as a comma-separated string (e.g., "Skill1, Skill2, Skill3").
- Do not include additional text or formatting.`, category, skills)

	return prompt
}
