package ats

// FallbackReport returns the fixed report used when no LLM result is usable.
// Each call returns a fresh copy that the caller may modify.
func FallbackReport() Report {
	return Report{
		OverallScore: 75,
		Breakdown: []CategoryScore{
			{Category: CategoryKeywords, Score: 70, Description: "Some relevant keywords present"},
			{Category: CategoryFormat, Score: 85, Description: "Good ATS-friendly format"},
			{Category: CategorySections, Score: 80, Description: "Well-structured sections"},
			{Category: CategoryContact, Score: 90, Description: "Complete contact details"},
			{Category: CategorySkills, Score: 65, Description: "Skills section needs improvement"},
		},
		Recommendations: []string{
			"Add more industry-specific keywords",
			"Include quantifiable achievements with metrics",
			"Ensure consistent formatting",
			"Add a detailed skills section",
			"Use action verbs in bullet points",
		},
	}
}

// defaultRecommendations substitute when the LLM output has no numbered items.
func defaultRecommendations() []string {
	return []string{
		"Add more industry-specific keywords",
		"Include quantifiable achievements",
		"Ensure clear section headers and formatting",
		"Include relevant technical skills",
		"Use action verbs in bullet points",
	}
}
