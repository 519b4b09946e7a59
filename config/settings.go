package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// loadSettings reads settings.toml, creating it from the template on first
// run so users have a commented file to edit.
func loadSettings() (*Config, error) {
	cfg := DefaultConfig()
	settingsPath := GetSettingsFilePath()

	if !FileExists(settingsPath) {
		if err := createDefaultSettings(); err != nil {
			return nil, fmt.Errorf("failed to create settings file: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(settingsPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", settingsPath, err)
	}

	return cfg, nil
}

func createDefaultSettings() error {
	if err := EnsureDir(GetConfigDir()); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600: the file holds no secrets, but match the directory policy.
	return os.WriteFile(GetSettingsFilePath(), []byte(GenerateSettingsTemplate()), 0600)
}

// Save writes the current settings back to settings.toml. Credentials are
// excluded via struct tags; they only ever live in the environment.
func Save(cfg *Config) error {
	if err := EnsureDir(GetConfigDir()); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(GetSettingsFilePath(), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return nil
}
