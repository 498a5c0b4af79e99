// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the working directory
// when no path is given.
const DefaultConfigFile = "medicheck.yaml"

// Supported LLM providers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ErrMissingCredential is returned when the selected provider has no API key.
var ErrMissingCredential = errors.New("missing API credential")

// Config holds static configuration (read-only after load).
type Config struct {
	LLM        LLMConfig        `yaml:"llm,omitempty"`
	Server     ServerConfig     `yaml:"server,omitempty"`
	History    HistoryConfig    `yaml:"history,omitempty"`
	Validation ValidationConfig `yaml:"validation,omitempty"`
	Log        LogConfig        `yaml:"log,omitempty"`
}

// LLMConfig holds configuration for the LLM provider.
type LLMConfig struct {
	Provider    string  `yaml:"provider,omitempty"`
	Model       string  `yaml:"model,omitempty"`
	APIKey      string  `yaml:"api_key,omitempty"`
	Temperature float32 `yaml:"temperature"`
	// BaseURL points the client at a compatible endpoint (e.g. a proxy or
	// an OpenAI-compatible host). Ignored by gemini.
	BaseURL string `yaml:"base_url,omitempty"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `yaml:"host,omitempty"`
	Port           int      `yaml:"port,omitempty"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
	// SoftErrors answers failed fact-checks with 200 instead of 502.
	SoftErrors bool `yaml:"soft_errors,omitempty"`
}

// HistoryConfig bounds the in-memory conversation history.
type HistoryConfig struct {
	MaxEntries  int `yaml:"max_entries,omitempty"`
	MaxSessions int `yaml:"max_sessions,omitempty"`
}

// ValidationConfig controls fact-check prompts.
type ValidationConfig struct {
	MaxTextLength      int      `yaml:"max_text_length,omitempty"`
	CustomInstructions string   `yaml:"custom_instructions,omitempty"`
	DisabledTools      []string `yaml:"disabled_tools,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool `yaml:"debug,omitempty"`
}

// Default returns a Config with default values. LLM.Model is left empty;
// Load picks the default model of the configured provider.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    ProviderGemini,
			Temperature: 0.2,
		},
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8000,
			AllowedOrigins: []string{"chrome-extension://*"},
		},
		History: HistoryConfig{
			MaxEntries:  15,
			MaxSessions: 1024,
		},
		Validation: ValidationConfig{
			MaxTextLength: 30000,
		},
	}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	default:
		return "gemini-2.0-flash"
	}
}

// Load reads configuration from path. An empty path looks for
// DefaultConfigFile in the working directory and falls back to defaults when
// it does not exist. Variables from a .env file and the environment override
// file values.
func Load(path string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return nil, fmt.Errorf("config file not found: %s (run 'medicheck init' first)", path)
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel(cfg.LLM.Provider)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if provider := os.Getenv("MEDICHECK_PROVIDER"); provider != "" {
		if !strings.EqualFold(provider, c.LLM.Provider) {
			c.LLM.Model = ""
			c.LLM.APIKey = ""
		}
		c.LLM.Provider = provider
	}
	if model := os.Getenv("MEDICHECK_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = apiKeyFromEnv(strings.ToLower(c.LLM.Provider))
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("parsing PORT: %w", err)
		}
		c.Server.Port = p
	}
	if debug := os.Getenv("MEDICHECK_DEBUG"); debug != "" {
		c.Log.Debug = debug == "1" || strings.EqualFold(debug, "true")
	}
	return nil
}

func apiKeyFromEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks that the configuration can start the service.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("%w for provider %s (set %s)", ErrMissingCredential, c.LLM.Provider, CredentialEnv(c.LLM.Provider))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// CredentialEnv names the environment variable holding the provider key.
func CredentialEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "GOOGLE_API_KEY"
	}
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
