package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider.Type != "openai" {
		t.Errorf("Provider.Type = %q, want openai", cfg.Provider.Type)
	}
	if cfg.Provider.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("Provider.BaseURL = %q", cfg.Provider.BaseURL)
	}
	if cfg.Search.DefaultStore != "hm" {
		t.Errorf("Search.DefaultStore = %q, want hm", cfg.Search.DefaultStore)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("Search.MaxResults = %d, want 10", cfg.Search.MaxResults)
	}
	if !cfg.Search.AllowFallback {
		t.Error("Search.AllowFallback should default to true")
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestSettingsTemplateParses(t *testing.T) {
	var cfg Config
	if _, err := toml.Decode(GenerateSettingsTemplate(), &cfg); err != nil {
		t.Fatalf("settings template does not parse: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Provider != defaults.Provider {
		t.Errorf("template provider = %+v, want %+v", cfg.Provider, defaults.Provider)
	}
	if cfg.Search != defaults.Search {
		t.Errorf("template search = %+v, want %+v", cfg.Search, defaults.Search)
	}
}

func TestModelKeyFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		providerType string
		env          map[string]string
		want         string
	}{
		{
			name:         "groq key for openai provider",
			providerType: "openai",
			env:          map[string]string{"GROQ_API_KEY": "gsk_test"},
			want:         "gsk_test",
		},
		{
			name:         "openai key when groq unset",
			providerType: "openai",
			env:          map[string]string{"OPENAI_API_KEY": "sk_test"},
			want:         "sk_test",
		},
		{
			name:         "groq key wins over openai key",
			providerType: "openai",
			env:          map[string]string{"GROQ_API_KEY": "gsk_test", "OPENAI_API_KEY": "sk_test"},
			want:         "gsk_test",
		},
		{
			name:         "anthropic provider",
			providerType: "anthropic",
			env:          map[string]string{"ANTHROPIC_API_KEY": "ak_test", "GROQ_API_KEY": "gsk_test"},
			want:         "ak_test",
		},
		{
			name:         "ollama needs no key",
			providerType: "ollama",
			env:          map[string]string{"GROQ_API_KEY": "gsk_test"},
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"GROQ_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := modelKeyFromEnv(tt.providerType); got != tt.want {
				t.Errorf("modelKeyFromEnv(%q) = %q, want %q", tt.providerType, got, tt.want)
			}
		})
	}
}

func TestHasModelKey(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HasModelKey() {
		t.Error("HasModelKey() true without a key")
	}

	cfg.ModelAPIKey = "gsk_test"
	if !cfg.HasModelKey() {
		t.Error("HasModelKey() false with a key set")
	}

	cfg = DefaultConfig()
	cfg.Provider.Type = "ollama"
	if !cfg.HasModelKey() {
		t.Error("HasModelKey() false for ollama, which needs no key")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Provider.Model = "llama-3.3-70b-versatile"
	cfg.Search.MaxResults = 5
	cfg.ModelAPIKey = "must-not-persist"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var loaded Config
	if _, err := toml.DecodeFile(GetSettingsFilePath(), &loaded); err != nil {
		t.Fatalf("failed to parse saved settings: %v", err)
	}
	if loaded.Provider.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Provider.Model = %q", loaded.Provider.Model)
	}
	if loaded.Search.MaxResults != 5 {
		t.Errorf("Search.MaxResults = %d", loaded.Search.MaxResults)
	}

	raw, err := os.ReadFile(filepath.Join(GetConfigDir(), "settings.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "must-not-persist") {
		t.Error("credential leaked into settings file")
	}
}
