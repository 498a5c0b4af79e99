package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/medicheck/medicheck/internal/application/handlers"
	"github.com/medicheck/medicheck/internal/domain/ports"
	"github.com/medicheck/medicheck/internal/domain/services"
	"github.com/medicheck/medicheck/internal/infrastructure/config"
	"github.com/medicheck/medicheck/internal/infrastructure/llm"
	"github.com/medicheck/medicheck/internal/infrastructure/logging"
	"github.com/medicheck/medicheck/internal/infrastructure/memory"
	"github.com/medicheck/medicheck/internal/infrastructure/tools"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and adapters are internal.
type Deps struct {
	Config          *config.Config
	Logger          *zap.Logger
	ValidateHandler *handlers.ValidateHandler
	ChatHandler     *handlers.ChatHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cfg, err := config.Load(globalConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating llm client: %w", err)
	}
	defer closeClient(llmClient, logger)

	store, err := memory.NewSessionStore(cfg.History.MaxSessions, cfg.History.MaxEntries)
	if err != nil {
		return fmt.Errorf("creating history store: %w", err)
	}

	bank, unknown := tools.DefaultBank(cfg.Validation.DisabledTools)
	for _, name := range unknown {
		logger.Warn("ignoring unknown disabled tool", zap.String("tool", name))
	}

	validationService := services.NewValidationService(llmClient, bank, store, services.ValidationOptions{
		MaxTextLength:       cfg.Validation.MaxTextLength,
		DefaultInstructions: cfg.Validation.CustomInstructions,
	}, logger)
	chatService := services.NewChatService(llmClient, store, logger)

	logger.Debug("dependencies ready",
		zap.String("provider", llmClient.Name()),
		zap.String("model", cfg.LLM.Model),
		zap.Strings("tools", bank.Names()),
	)

	return fn(&Deps{
		Config:          cfg,
		Logger:          logger,
		ValidateHandler: handlers.NewValidateHandler(validationService),
		ChatHandler:     handlers.NewChatHandler(chatService),
	})
}

// closeClient releases clients that hold connections and logs close errors.
func closeClient(client ports.LLMClient, logger *zap.Logger) {
	closer, ok := client.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn("closing llm client", zap.Error(err))
	}
}
