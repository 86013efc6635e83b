package anthropic

import (
	"fmt"
	"net/url"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/config"
)

const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = config.DefaultAnthropicModel

	// APIVersion is sent as the anthropic-version header
	APIVersion = "2023-06-01"
)

type Config struct {
	APIKey    string `json:"api_key"`
	BaseURL   string `json:"base_url"`
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Model:     DefaultModel,
		MaxTokens: ai.MaxTokens,
	}
}

// FromSettings builds a provider config from the persisted settings
func FromSettings(s config.AnthropicConfig) *Config {
	c := DefaultConfig()
	c.APIKey = s.APIKey
	if s.Model != "" {
		c.Model = s.Model
	}
	return c
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ai.NewConfigurationError("anthropic", "api_key", "Anthropic API key is not configured")
	}

	if c.BaseURL == "" {
		return ai.NewConfigurationError("anthropic", "base_url", "Anthropic base URL is not configured")
	}

	if _, err := url.Parse(c.BaseURL); err != nil {
		return ai.NewConfigurationError("anthropic", "base_url", fmt.Sprintf("invalid Anthropic base URL: %v", err))
	}

	if c.Model == "" {
		return ai.NewConfigurationError("anthropic", "model", "Anthropic model is not configured")
	}

	if c.MaxTokens <= 0 {
		return ai.NewConfigurationError("anthropic", "max_tokens", "Anthropic max tokens must be positive")
	}

	return nil
}
