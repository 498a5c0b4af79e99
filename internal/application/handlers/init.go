// Package handlers contains application use case handlers.
package handlers

import (
	"fmt"

	"github.com/medicheck/medicheck/internal/infrastructure/config"
)

// InitHandler writes a default configuration file.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	Provider   string
	Model      string
}

// Handle writes the default config to path (DefaultConfigFile when empty)
// and loads it back.
func (h *InitHandler) Handle(path string) (*InitResult, error) {
	if path == "" {
		path = config.DefaultConfigFile
	}
	if config.Exists(path) {
		return nil, fmt.Errorf("medicheck already initialized: %s exists", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &InitResult{
		ConfigPath: path,
		Provider:   cfg.LLM.Provider,
		Model:      cfg.LLM.Model,
	}, nil
}
