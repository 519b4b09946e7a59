// Package config handles Styler's settings file and environment credentials.
//
// Settings live in a TOML file under the user config directory and cover
// everything that is safe to commit to disk: provider selection, model name,
// search locale, fallback policy. Credentials are never written to the
// settings file; they come exclusively from the environment (or a .env file
// in the working directory), one key per backend family:
//
//   - GROQ_API_KEY / ANTHROPIC_API_KEY — chat completion backend
//   - QLOO_API_KEY — cultural recommendation backend
//   - BROWSER_USE_API_KEY — browser-automation product scraping (H&M, Zara)
//   - RAPID_API_KEY — RapidAPI retailer search (Myntra, Ajio)
//
// A missing credential is not an error: each adapter detects its own missing
// key and degrades to its fallback path. The only place missing keys are
// surfaced to the user is the --doctor diagnostic mode.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ProviderConfig selects the chat completion backend.
type ProviderConfig struct {
	// Type is one of "openai" (any OpenAI-compatible endpoint, Groq by
	// default), "anthropic", or "ollama".
	Type    string `toml:"type"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// SearchConfig controls the product search adapters.
type SearchConfig struct {
	DefaultStore string `toml:"default_store"`
	Country      string `toml:"country"`
	Language     string `toml:"language"`
	MaxResults   int    `toml:"max_results"`
	// AllowFallback controls whether adapters substitute canned sample
	// data when a backend call fails. Disable to surface failures as
	// empty results instead of fake products.
	AllowFallback bool `toml:"allow_fallback"`
}

// Config is the resolved application configuration: settings file values
// merged with environment credentials. Constructed once in main and passed
// by reference to every component that needs it.
type Config struct {
	Provider ProviderConfig `toml:"provider"`
	Search   SearchConfig   `toml:"search"`
	Debug    bool           `toml:"debug"`

	// Credentials, env-only. Empty string means "not configured".
	ModelAPIKey      string `toml:"-"`
	QlooAPIKey       string `toml:"-"`
	BrowserUseAPIKey string `toml:"-"`
	RapidAPIKey      string `toml:"-"`
}

// Load reads the settings file (creating it with defaults on first run),
// then overlays environment credentials. A .env file in the working
// directory is honored if present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	cfg.ModelAPIKey = modelKeyFromEnv(cfg.Provider.Type)
	cfg.QlooAPIKey = os.Getenv("QLOO_API_KEY")
	cfg.BrowserUseAPIKey = os.Getenv("BROWSER_USE_API_KEY")
	cfg.RapidAPIKey = os.Getenv("RAPID_API_KEY")

	if v := os.Getenv("STYLER_DEBUG"); v == "1" || v == "true" {
		cfg.Debug = true
	}

	return cfg, nil
}

// modelKeyFromEnv picks the credential matching the configured provider.
// Ollama is local and needs no key.
func modelKeyFromEnv(providerType string) string {
	switch providerType {
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "ollama":
		return ""
	default:
		// Groq and any other OpenAI-compatible endpoint.
		if key := os.Getenv("GROQ_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("OPENAI_API_KEY")
	}
}

// HasModelKey reports whether the chat completion backend is usable.
// Ollama never requires a key.
func (c *Config) HasModelKey() bool {
	return c.Provider.Type == "ollama" || c.ModelAPIKey != ""
}
