package resume

import (
	"github.com/NiloferMubeen/Resume-Builder-app/internal/llm"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/prompts"
)

// BuildMessages returns the system and user messages for the resume-parse call.
// The full resume text is embedded; the reply is expected to be one JSON object.
func BuildMessages(resumeText string) []llm.Message {
	return []llm.Message{
		{
			Role:    llm.RoleSystem,
			Content: prompts.MustGet(prompts.ResumeParserSystem.File, prompts.ResumeParserSystem.Name),
		},
		{
			Role:    llm.RoleUser,
			Content: prompts.Render(prompts.ExtractResumeFields, map[string]string{"ResumeText": resumeText}),
		},
	}
}
