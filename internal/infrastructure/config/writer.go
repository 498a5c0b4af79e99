package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# MediCheck Configuration

llm:
  provider: gemini            # gemini, openai or anthropic
  # model: gemini-2.0-flash   # defaults per provider: gpt-4o-mini, claude-3-5-haiku-latest
  temperature: 0.2
  # api_key: your-api-key (or set GOOGLE_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY)

server:
  host: 0.0.0.0
  port: 8000
  allowed_origins:
    - chrome-extension://*
  # soft_errors: true answers failed fact-checks with HTTP 200

history:
  max_entries: 15
  max_sessions: 1024

validation:
  max_text_length: 30000
  # custom_instructions: Focus on claims about vaccines.
  # disabled_tools: [web_search]

log:
  debug: false
`

// WriteDefault writes a default config file to path.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(DefaultConfigYAML), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
