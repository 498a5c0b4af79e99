// Package openai provides an LLMClient implementation using OpenAI.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/medicheck/medicheck/internal/infrastructure/config"
)

// DefaultModel is used when the config names no model.
const DefaultModel = "gpt-4o-mini"

// Client implements the LLMClient interface using OpenAI.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewClient creates a new OpenAI LLM client.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := DefaultModel
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: cfg.Temperature,
	}, nil
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return config.ProviderOpenAI
}

// Complete sends the prompt as a single user message.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
