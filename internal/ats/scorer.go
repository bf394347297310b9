package ats

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/llm"
)

// Scorer runs the ATS flow against an LLM client.
type Scorer struct {
	client llm.Client
	logger *zap.Logger
}

// NewScorer creates a Scorer. A nil client makes every Analyze call return
// FallbackReport without a network call.
func NewScorer(client llm.Client, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{client: client, logger: logger}
}

// Analyze scores resumeText. It never fails: an unavailable client, a failed
// call or an empty answer all yield FallbackReport.
func (s *Scorer) Analyze(ctx context.Context, resumeText string) Report {
	if s.client == nil {
		s.logger.Warn("no ATS model configured, using fallback report")
		return FallbackReport()
	}

	s.logger.Info("sending resume to ATS model",
		zap.String("model", s.client.GetModel(llm.TierStandard)),
		zap.Int("text_length", len(resumeText)))

	answer, err := s.client.GenerateContent(ctx, BuildPrompt(resumeText), llm.TierStandard)
	if err != nil {
		s.logger.Error("ATS model call failed, using fallback report", zap.Error(err))
		return FallbackReport()
	}
	if strings.TrimSpace(answer) == "" {
		s.logger.Warn("ATS model returned empty text, using fallback report")
		return FallbackReport()
	}

	s.logger.Debug("received ATS model answer", zap.Int("answer_length", len(answer)))
	return parseOutput(answer, s.logger)
}
