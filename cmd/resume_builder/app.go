package main

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/ats"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/config"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/extraction"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/llm"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/observability"
	"github.com/NiloferMubeen/Resume-Builder-app/internal/resume"
)

// Client constructors, replaced in tests
var (
	newATSClient = func(ctx context.Context, cfg config.Config) (llm.Client, error) {
		llmCfg := llm.DefaultGeminiConfig().
			WithModel(llm.TierStandard, cfg.GeminiModel).
			WithTimeout(cfg.LLMTimeout)
		return llm.NewClient(ctx, llmCfg, cfg.GeminiAPIKey)
	}
	newParseClient = func(ctx context.Context, cfg config.Config) (llm.Client, error) {
		llmCfg := llm.DefaultGroqConfig().
			WithModel(llm.TierStandard, cfg.GroqModel).
			WithTimeout(cfg.LLMTimeout)
		llmCfg.BaseURL = cfg.GroqBaseURL
		return llm.NewClient(ctx, llmCfg, cfg.GroqAPIKey)
	}
)

// app holds the components shared by every command
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	extractor *extraction.Extractor
	scorer    *ats.Scorer
	parser    *resume.Parser
	clients   []llm.Client
}

// loadConfig resolves configuration from defaults, the optional config file,
// the environment and the global flags, in increasing precedence.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg, err := cfg.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newApp builds the logger and the LLM-backed flows. A flow whose API key is
// missing runs without a client and answers with its fallback.
func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	a := &app{
		cfg:       cfg,
		logger:    logger,
		extractor: extraction.NewExtractor(logger),
	}

	atsClient, err := a.connect(ctx, "gemini", config.EnvGeminiAPIKey, cfg.GeminiAPIKey, newATSClient)
	if err != nil {
		return nil, err
	}
	parseClient, err := a.connect(ctx, "groq", config.EnvGroqAPIKey, cfg.GroqAPIKey, newParseClient)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.scorer = ats.NewScorer(atsClient, logger)
	a.parser = resume.NewParser(parseClient, logger)
	return a, nil
}

// connect creates one provider client, or returns nil when no key is set
func (a *app) connect(
	ctx context.Context,
	provider, envKey, apiKey string,
	build func(context.Context, config.Config) (llm.Client, error),
) (llm.Client, error) {
	if apiKey == "" {
		a.logger.Warn("API key not configured, using fallback results", zap.String("provider", provider), zap.String("env", envKey))
		return nil, nil
	}

	client, err := build(ctx, a.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", provider, err)
	}
	if client == nil {
		return nil, nil
	}
	a.logger.Info("API key loaded", zap.String("provider", provider), zap.String("key", config.MaskKey(apiKey)))
	a.clients = append(a.clients, client)
	return client, nil
}

// Close releases the LLM clients and flushes the logger
func (a *app) Close() {
	for _, c := range a.clients {
		if err := c.Close(); err != nil {
			a.logger.Warn("failed to close LLM client", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

// setup loads configuration and builds the app for a command
func setup(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg)
}

// extractText reads a resume file and rejects documents without text
func (a *app) extractText(path string) (string, error) {
	text, err := a.extractor.Extract(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("could not extract text from %s", path)
	}
	return text, nil
}
