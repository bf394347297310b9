package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-1.5-flash", config.GetModel(TierStandard))
}

func TestDefaultGroqConfig(t *testing.T) {
	config := DefaultGroqConfig()

	assert.Equal(t, ProviderGroq, config.Provider)
	assert.Equal(t, DefaultGroqBaseURL, config.BaseURL)
	assert.Equal(t, "llama-3.3-70b-versatile", config.GetModel(TierStandard))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "fallback-model",
		},
	}

	// Unknown tier falls back to TierStandard
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	assert.Equal(t, "", config.GetModel(TierStandard))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierStandard, "gemini-2.0-flash")

	// Original should be unchanged
	assert.Equal(t, "gemini-1.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.0-flash", newConfig.GetModel(TierStandard))
	assert.Equal(t, config.Provider, newConfig.Provider)
}

func TestWithTimeout(t *testing.T) {
	config := DefaultGroqConfig()
	newConfig := config.WithTimeout(5 * time.Second)

	assert.Zero(t, config.Timeout)
	assert.Equal(t, 5*time.Second, newConfig.Timeout)
	assert.Equal(t, config.BaseURL, newConfig.BaseURL)
	assert.Equal(t, config.GetModel(TierStandard), newConfig.GetModel(TierStandard))
}

func TestProviderConstants(t *testing.T) {
	assert.Equal(t, Provider("gemini"), ProviderGemini)
	assert.Equal(t, Provider("groq"), ProviderGroq)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, DefaultGeminiConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")

	_, err = NewClient(ctx, DefaultGroqConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "acme"}, "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestNewGroqClient(t *testing.T) {
	client, err := NewGroqClient(DefaultGroqConfig(), "gsk_test")
	require.NoError(t, err)

	assert.Equal(t, "llama-3.3-70b-versatile", client.GetModel(TierStandard))
	assert.NoError(t, client.Close())
}

func TestAPICallError(t *testing.T) {
	cause := assert.AnError
	err := &APICallError{Provider: ProviderGroq, Message: "failed to generate content", Cause: cause}

	assert.Equal(t, "groq API call failed: failed to generate content: "+cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &APICallError{Provider: ProviderGemini, Message: "quota"}
	assert.Equal(t, "gemini API call failed: quota", bare.Error())
}
