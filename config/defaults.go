package config

func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Type:    "openai",
			BaseURL: "https://api.groq.com/openai/v1",
			Model:   "llama-3.1-8b-instant",
		},
		Search: SearchConfig{
			DefaultStore:  "hm",
			Country:       "in",
			Language:      "en",
			MaxResults:    10,
			AllowFallback: true,
		},
	}
}

func GenerateSettingsTemplate() string {
	return `# Styler Configuration
# Location: ~/.config/styler/settings.toml
# This file uses TOML format: https://toml.io
#
# API keys are NOT stored here. Set them in the environment (or a .env file):
#   GROQ_API_KEY / ANTHROPIC_API_KEY, QLOO_API_KEY,
#   BROWSER_USE_API_KEY, RAPID_API_KEY

[provider]
# Chat completion backend: "openai" (Groq or any OpenAI-compatible
# endpoint), "anthropic", or "ollama"
type = "openai"
base_url = "https://api.groq.com/openai/v1"
model = "llama-3.1-8b-instant"

[search]
# Store used for tool calls and product extraction
default_store = "hm"
country = "in"
language = "en"
max_results = 10
# Substitute deterministic sample products when a search backend fails.
# Keeps the chat usable without credentials, but the results are not real.
allow_fallback = true

# Write a debug log to the config directory
debug = false
`
}
