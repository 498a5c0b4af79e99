// Package anthropic provides an LLMClient implementation using Claude.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/medicheck/medicheck/internal/infrastructure/config"
)

const (
	// DefaultModel is used when the config names no model.
	DefaultModel = "claude-3-5-haiku-latest"
	// DefaultMaxTokens bounds the reply length.
	DefaultMaxTokens = 4096
)

// Client implements the LLMClient interface using the Anthropic API.
type Client struct {
	client      anthropic.Client
	model       anthropic.Model
	temperature float64
}

// NewClient creates a new Anthropic LLM client. The SDK's automatic retries
// are turned off; each Complete is a single request.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := DefaultModel
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client:      anthropic.NewClient(opts...),
		model:       anthropic.Model(model),
		temperature: float64(cfg.Temperature),
	}, nil
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return config.ProviderAnthropic
}

// Complete sends the prompt as a single user message.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   DefaultMaxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("calling Anthropic: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("no response from Anthropic")
	}
	return b.String(), nil
}
