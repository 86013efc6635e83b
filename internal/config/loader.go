package config

import (
	"fmt"
	"os"
)

// Loader resolves the config file location and applies environment overrides
type Loader struct {
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{lookupEnv: os.LookupEnv}
}

// ResolveStore returns the store for customPath, or the default store when
// customPath is empty.
func (l *Loader) ResolveStore(customPath string) (*Store, error) {
	if customPath == "" {
		return DefaultStore()
	}

	path := expandPath(customPath)
	if err := validateConfigPath(path); err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}
	return NewStore(path), nil
}

// LoadConfig loads configuration with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. The config file (customPath or the default location)
// 4. Built-in defaults
//
// Environment overrides only affect the returned value and are never saved.
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	store, err := l.ResolveStore(customPath)
	if err != nil {
		return nil, err
	}

	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"MAHORAGA_PROVIDER": func(v string) error {
			p, err := ParseProvider(v)
			if err != nil {
				return err
			}
			config.Provider.Active = p
			return nil
		},

		"MAHORAGA_AZURE_URL":         func(v string) error { config.Azure.URL = v; return nil },
		"MAHORAGA_AZURE_API_KEY":     func(v string) error { config.Azure.APIKey = v; return nil },
		"MAHORAGA_AZURE_DEPLOYMENT":  func(v string) error { config.Azure.Deployment = v; return nil },
		"MAHORAGA_AZURE_API_VERSION": func(v string) error { config.Azure.APIVersion = v; return nil },

		"MAHORAGA_OPENAI_API_KEY": func(v string) error { config.OpenAI.APIKey = v; return nil },
		"MAHORAGA_OPENAI_MODEL":   func(v string) error { config.OpenAI.Model = v; return nil },

		"MAHORAGA_ANTHROPIC_API_KEY": func(v string) error { config.Anthropic.APIKey = v; return nil },
		"MAHORAGA_ANTHROPIC_MODEL":   func(v string) error { config.Anthropic.Model = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value, ok := l.lookupEnv(envVar); ok && value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}
