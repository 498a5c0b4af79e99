// Package gemini provides an LLMClient implementation using the Google AI API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/medicheck/medicheck/internal/infrastructure/config"
)

// DefaultModel is used when the config names no model.
const DefaultModel = "gemini-2.0-flash"

// Client implements the LLMClient interface using Gemini.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewClient creates a new Gemini LLM client.
func NewClient(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &Client{
		client:      client,
		model:       modelName(cfg),
		temperature: cfg.Temperature,
	}, nil
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return config.ProviderGemini
}

// Complete sends the prompt and concatenates the text parts of the first
// candidate.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("calling Gemini: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", errors.New("no response from Gemini")
	}
	return text, nil
}

// Close releases the Gemini client resources.
func (c *Client) Close() error {
	return c.client.Close()
}

func modelName(cfg config.LLMConfig) string {
	if cfg.Model != "" {
		return cfg.Model
	}
	return DefaultModel
}

// responseText extracts the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
