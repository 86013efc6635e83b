package openai

import (
	"fmt"
	"net/url"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/config"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = config.DefaultOpenAIModel
)

type Config struct {
	APIKey      string  `json:"api_key"`
	BaseURL     string  `json:"base_url"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		MaxTokens:   ai.MaxTokens,
		Temperature: ai.Temperature,
	}
}

// FromSettings builds a provider config from the persisted settings
func FromSettings(s config.OpenAIConfig) *Config {
	c := DefaultConfig()
	c.APIKey = s.APIKey
	if s.Model != "" {
		c.Model = s.Model
	}
	return c
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ai.NewConfigurationError("openai", "api_key", "OpenAI API key is not configured")
	}

	if c.BaseURL == "" {
		return ai.NewConfigurationError("openai", "base_url", "OpenAI base URL is not configured")
	}

	if _, err := url.Parse(c.BaseURL); err != nil {
		return ai.NewConfigurationError("openai", "base_url", fmt.Sprintf("invalid OpenAI base URL: %v", err))
	}

	if c.Model == "" {
		return ai.NewConfigurationError("openai", "model", "OpenAI model is not configured")
	}

	return nil
}
