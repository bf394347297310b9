// Package llmtest provides a configurable llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/llm"
)

// MockClient implements llm.Client for testing. Unset funcs return an empty
// reply. Every call is recorded.
type MockClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	ChatFunc            func(ctx context.Context, messages []llm.Message, tier llm.ModelTier) (string, error)
	GetModelFunc        func(tier llm.ModelTier) string
	CloseFunc           func() error

	mu       sync.Mutex
	prompts  []string
	messages [][]llm.Message
}

// Reply returns a MockClient that answers every call with text.
func Reply(text string) *MockClient {
	return &MockClient{
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return text, nil
		},
		ChatFunc: func(context.Context, []llm.Message, llm.ModelTier) (string, error) {
			return text, nil
		},
	}
}

// Fail returns a MockClient that fails every call with err.
func Fail(err error) *MockClient {
	return &MockClient{
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return "", err
		},
		ChatFunc: func(context.Context, []llm.Message, llm.ModelTier) (string, error) {
			return "", err
		},
	}
}

func (m *MockClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockClient) Chat(ctx context.Context, messages []llm.Message, tier llm.ModelTier) (string, error) {
	m.mu.Lock()
	m.messages = append(m.messages, messages)
	m.mu.Unlock()

	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, messages, tier)
	}
	return "", nil
}

func (m *MockClient) GetModel(tier llm.ModelTier) string {
	if m.GetModelFunc != nil {
		return m.GetModelFunc(tier)
	}
	return "mock-model"
}

func (m *MockClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Prompts returns the prompts passed to GenerateContent.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Messages returns the message lists passed to Chat.
func (m *MockClient) Messages() [][]llm.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]llm.Message(nil), m.messages...)
}
