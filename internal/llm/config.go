// Package llm provides centralized LLM configuration and client abstractions.
// Two providers are wired: Gemini for ATS scoring and Groq for resume field extraction.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

// TierStandard is the tier the scoring and parsing calls run on
const TierStandard ModelTier = "standard"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderGroq is Groq's OpenAI-compatible endpoint
	ProviderGroq Provider = "groq"
)

// DefaultGroqBaseURL is the OpenAI-compatible endpoint Groq exposes.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

// Config holds the model configuration for one provider
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// BaseURL overrides the provider endpoint. Only used by OpenAI-compatible providers.
	BaseURL string
	// Timeout bounds a single call. Zero means the caller's context decides.
	Timeout time.Duration
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "gemini-1.5-flash",
		},
	}
}

// DefaultGroqConfig returns the default Groq configuration
func DefaultGroqConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		BaseURL:  DefaultGroqBaseURL,
		Models: map[ModelTier]string{
			TierStandard: "llama-3.3-70b-versatile",
		},
	}
}

// GetModel returns the model name for a given tier, falling back to the
// standard tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierStandard]
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := c.clone()
	newConfig.Models[tier] = model
	return newConfig
}

// WithTimeout returns a new Config with the per-call timeout set
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	newConfig := c.clone()
	newConfig.Timeout = timeout
	return newConfig
}

func (c *Config) clone() *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)+1),
		BaseURL:  c.BaseURL,
		Timeout:  c.Timeout,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	return newConfig
}
