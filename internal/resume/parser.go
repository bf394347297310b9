package resume

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/llm"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/schemas"
)

// Parser runs the resume-parse flow against an LLM client.
type Parser struct {
	client llm.Client
	logger *zap.Logger
}

// NewParser creates a Parser. A nil client makes every Parse call return the
// empty Record without a network call.
func NewParser(client llm.Client, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{client: client, logger: logger}
}

// Parse extracts resume fields from resumeText. It never fails: an unavailable
// client, a failed call, an empty answer or unparsable output all yield the
// empty Record.
func (p *Parser) Parse(ctx context.Context, resumeText string) Record {
	if p.client == nil {
		p.logger.Warn("no resume parsing model configured, returning empty record")
		return Record{}
	}

	p.logger.Info("sending resume to parsing model",
		zap.String("model", p.client.GetModel(llm.TierStandard)),
		zap.Int("text_length", len(resumeText)))

	answer, err := p.client.Chat(ctx, BuildMessages(resumeText), llm.TierStandard)
	if err != nil {
		p.logger.Error("resume parsing model call failed", zap.Error(err))
		return Record{}
	}
	if strings.TrimSpace(answer) == "" {
		p.logger.Warn("resume parsing model returned empty text")
		return Record{}
	}

	record := parseOutput(answer, p.logger)
	p.check(record)
	return record
}

// check logs schema violations without rejecting the record.
func (p *Parser) check(record Record) {
	if record.IsEmpty() {
		return
	}

	doc, err := record.MarshalJSON()
	if err != nil {
		p.logger.Warn("failed to encode resume record for schema check", zap.Error(err))
		return
	}

	err = schemas.ValidateResume(doc)
	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &validationErr):
		for _, fe := range validationErr.Errors {
			p.logger.Warn("resume record does not match schema",
				zap.String("field", fe.Field),
				zap.String("message", fe.Message))
		}
	default:
		p.logger.Warn("resume schema check failed", zap.Error(err))
	}
}
