// Package ats scores resume text for applicant tracking system compatibility.
// The LLM's free-text answer is normalized into a fixed-shape Report, and every
// failure path degrades to FallbackReport so callers always get a usable result.
package ats

// Canonical breakdown categories, in output order.
const (
	CategoryKeywords = "Keywords Match"
	CategoryFormat   = "Format Compatibility"
	CategorySections = "Section Organization"
	CategoryContact  = "Contact Information"
	CategorySkills   = "Skills Alignment"
)

// Categories lists the breakdown categories in the order they appear in a Report.
var Categories = []string{
	CategoryKeywords,
	CategoryFormat,
	CategorySections,
	CategoryContact,
	CategorySkills,
}

const (
	// MinScore and MaxScore bound every score in a Report.
	MinScore = 0
	MaxScore = 100

	// DefaultOverallScore is used when the overall score cannot be found.
	DefaultOverallScore = 70

	// MaxRecommendations caps the recommendation list.
	MaxRecommendations = 5
)

// CategoryScore is one entry of the report breakdown.
type CategoryScore struct {
	Category    string `json:"category"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// Report is the normalized ATS assessment of a resume.
type Report struct {
	OverallScore    int             `json:"overallScore"`
	Breakdown       []CategoryScore `json:"breakdown"`
	Recommendations []string        `json:"recommendations"`
}

// Category returns the breakdown entry for name.
func (r Report) Category(name string) (CategoryScore, bool) {
	for _, c := range r.Breakdown {
		if c.Category == name {
			return c, true
		}
	}
	return CategoryScore{}, false
}

func clampScore(score int) int {
	return max(MinScore, min(MaxScore, score))
}
