package stylist

import (
	"fmt"

	"styler/config"
)

// NewCompleter creates the chat completion backend selected by config.
// This is the single place provider selection happens; everything above it
// talks to the Completer interface.
func NewCompleter(cfg *config.Config) (Completer, error) {
	switch cfg.Provider.Type {
	case "openai", "":
		return NewOpenAICompleter(cfg.Provider.BaseURL, cfg.ModelAPIKey, cfg.Provider.Model)
	case "anthropic":
		return NewAnthropicCompleter(cfg.Provider.BaseURL, cfg.ModelAPIKey, cfg.Provider.Model)
	case "ollama":
		return NewOllamaCompleter(cfg.Provider.BaseURL, cfg.Provider.Model)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Provider.Type)
	}
}
