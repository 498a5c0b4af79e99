// Package llm selects the LLM client for the configured provider.
package llm

import (
	"context"
	"fmt"

	"github.com/medicheck/medicheck/internal/domain/ports"
	"github.com/medicheck/medicheck/internal/infrastructure/config"
	"github.com/medicheck/medicheck/internal/infrastructure/llm/anthropic"
	"github.com/medicheck/medicheck/internal/infrastructure/llm/gemini"
	"github.com/medicheck/medicheck/internal/infrastructure/llm/openai"
)

// NewClient creates the client named by cfg.Provider. Clients holding
// connections (gemini) also implement io.Closer.
func NewClient(ctx context.Context, cfg config.LLMConfig) (ports.LLMClient, error) {
	var (
		client ports.LLMClient
		err    error
	)

	switch cfg.Provider {
	case config.ProviderGemini, "":
		var c *gemini.Client
		if c, err = gemini.NewClient(ctx, cfg); err == nil {
			client = c
		}
	case config.ProviderOpenAI:
		var c *openai.Client
		if c, err = openai.NewClient(cfg); err == nil {
			client = c
		}
	case config.ProviderAnthropic:
		var c *anthropic.Client
		if c, err = anthropic.NewClient(cfg); err == nil {
			client = c
		}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", cfg.Provider, err)
	}
	return client, nil
}
