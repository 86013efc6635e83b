package azure

import (
	"fmt"
	"net/url"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/config"
)

const DefaultAPIVersion = config.DefaultAzureAPIVersion

type Config struct {
	URL         string  `json:"url"`
	APIKey      string  `json:"api_key"`
	Deployment  string  `json:"deployment"`
	APIVersion  string  `json:"api_version"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

func DefaultConfig() *Config {
	return &Config{
		APIVersion:  DefaultAPIVersion,
		MaxTokens:   ai.MaxTokens,
		Temperature: ai.Temperature,
	}
}

// FromSettings builds a provider config from the persisted settings
func FromSettings(s config.AzureConfig) *Config {
	c := DefaultConfig()
	c.URL = s.URL
	c.APIKey = s.APIKey
	c.Deployment = s.Deployment
	if s.APIVersion != "" {
		c.APIVersion = s.APIVersion
	}
	return c
}

// Validate reports the first missing setting, checked in the order the
// settings screen lists them
func (c *Config) Validate() error {
	if c.URL == "" {
		return ai.NewConfigurationError("azure", "url", "Azure URL is not configured")
	}

	if c.APIKey == "" {
		return ai.NewConfigurationError("azure", "api_key", "Azure API key is not configured")
	}

	if c.Deployment == "" {
		return ai.NewConfigurationError("azure", "deployment", "Azure deployment is not configured")
	}

	if c.APIVersion == "" {
		return ai.NewConfigurationError("azure", "api_version", "Azure API version is not configured")
	}

	if _, err := url.Parse(c.URL); err != nil {
		return ai.NewConfigurationError("azure", "url", fmt.Sprintf("invalid Azure URL: %v", err))
	}

	return nil
}
