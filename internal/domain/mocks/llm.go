// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"
)

// LLMClient is a mock implementation of ports.LLMClient.
type LLMClient struct {
	// Complete return values
	Response string
	Err      error

	// Responses, when set, are returned in order; the last one repeats.
	Responses []string

	// Call tracking
	mu             sync.Mutex
	Prompts        []string
	CompleteCalled int
}

// Complete records the prompt and returns the configured response or error.
func (m *LLMClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	m.CompleteCalled++

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) > 0 {
		idx := m.CompleteCalled - 1
		if idx >= len(m.Responses) {
			idx = len(m.Responses) - 1
		}
		return m.Responses[idx], nil
	}
	return m.Response, nil
}

// Name returns the mock provider name.
func (m *LLMClient) Name() string {
	return "mock"
}

// LastPrompt returns the most recent prompt, or "" when never called.
func (m *LLMClient) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}
