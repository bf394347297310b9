package ats

import (
	"github.com/NiloferMubeen/Resume-Builder-app/internal/prompts"
)

// MaxPromptChars is the number of resume characters sent for scoring.
const MaxPromptChars = 3000

// BuildPrompt fills the ATS analysis template with the first MaxPromptChars
// characters of resumeText.
func BuildPrompt(resumeText string) string {
	return prompts.Render(prompts.ATSAnalysis, map[string]string{
		"ResumeText": truncateRunes(resumeText, MaxPromptChars),
	})
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
