package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicheck/medicheck/internal/infrastructure/config"
)

func TestNewClient(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		client, err := NewClient(t.Context(), config.LLMConfig{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key is required")
		assert.Nil(t, client)
	})
}

func TestModelName(t *testing.T) {
	assert.Equal(t, DefaultModel, modelName(config.LLMConfig{}))
	assert.Equal(t, "gemini-1.5-pro", modelName(config.LLMConfig{Model: "gemini-1.5-pro"}))
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{
			name:     "nil response",
			resp:     nil,
			expected: "",
		},
		{
			name:     "no candidates",
			resp:     &genai.GenerateContentResponse{},
			expected: "",
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			expected: "",
		},
		{
			name: "text parts joined",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"summary":`), genai.Text(`"x"}`)}}},
				},
			},
			expected: `{"summary":"x"}`,
		},
		{
			name: "non-text parts skipped",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []genai.Part{genai.FunctionCall{Name: "f"}, genai.Text("hello")}}},
				},
			},
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, responseText(tt.resp))
		})
	}
}
