package config

import (
	"fmt"
	"strings"
)

// ProviderType identifies one of the supported analysis backends
type ProviderType string

const (
	ProviderAzure     ProviderType = "azure"
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
)

// providerOrder is the fixed cycle used by /provider and the settings selector
var providerOrder = []ProviderType{ProviderAzure, ProviderOpenAI, ProviderAnthropic}

// Providers returns all supported providers in cycle order
func Providers() []ProviderType {
	out := make([]ProviderType, len(providerOrder))
	copy(out, providerOrder)
	return out
}

// ParseProvider converts a user supplied name into a ProviderType
func ParseProvider(name string) (ProviderType, error) {
	p := ProviderType(strings.ToLower(strings.TrimSpace(name)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid provider: %s (must be one of: azure, openai, anthropic)", name)
	}
	return p, nil
}

// IsValid reports whether p is a known provider
func (p ProviderType) IsValid() bool {
	return p.index() >= 0
}

func (p ProviderType) index() int {
	for i, candidate := range providerOrder {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Next returns the provider after p in the cycle
func (p ProviderType) Next() ProviderType {
	i := p.index()
	if i < 0 {
		return providerOrder[0]
	}
	return providerOrder[(i+1)%len(providerOrder)]
}

// Prev returns the provider before p in the cycle
func (p ProviderType) Prev() ProviderType {
	i := p.index()
	if i < 0 {
		return providerOrder[0]
	}
	return providerOrder[(i+len(providerOrder)-1)%len(providerOrder)]
}

// DisplayName returns the human readable provider name
func (p ProviderType) DisplayName() string {
	switch p {
	case ProviderAzure:
		return "Azure OpenAI"
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	default:
		return string(p)
	}
}

const (
	DefaultAzureAPIVersion = "2024-02-15-preview"
	DefaultOpenAIModel     = "gpt-4"
	DefaultAnthropicModel  = "claude-sonnet-4-20250514"
)

// Config holds the complete application configuration.
// All fields are values, so a plain assignment produces an independent copy.
type Config struct {
	Provider  ProviderConfig  `yaml:"provider" json:"provider"`
	Azure     AzureConfig     `yaml:"azure" json:"azure"`
	OpenAI    OpenAIConfig    `yaml:"openai" json:"openai"`
	Anthropic AnthropicConfig `yaml:"anthropic" json:"anthropic"`
}

// ProviderConfig selects the active backend
type ProviderConfig struct {
	Active ProviderType `yaml:"active" json:"active"`
}

// AzureConfig configures the Azure OpenAI backend
type AzureConfig struct {
	URL        string `yaml:"url" json:"url"`
	APIKey     string `yaml:"api_key" json:"api_key"`
	Deployment string `yaml:"deployment" json:"deployment"`
	APIVersion string `yaml:"api_version" json:"api_version"`
}

// OpenAIConfig configures the OpenAI backend
type OpenAIConfig struct {
	APIKey string `yaml:"api_key" json:"api_key"`
	Model  string `yaml:"model" json:"model"`
}

// AnthropicConfig configures the Anthropic backend
type AnthropicConfig struct {
	APIKey string `yaml:"api_key" json:"api_key"`
	Model  string `yaml:"model" json:"model"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{Active: ProviderAzure},
		Azure: AzureConfig{
			APIVersion: DefaultAzureAPIVersion,
		},
		OpenAI: OpenAIConfig{
			Model: DefaultOpenAIModel,
		},
		Anthropic: AnthropicConfig{
			Model: DefaultAnthropicModel,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !c.Provider.Active.IsValid() {
		return fmt.Errorf("invalid provider: %s (must be one of: azure, openai, anthropic)", c.Provider.Active)
	}
	return nil
}

// MissingFields lists the settings the active provider needs before it can be used
func (c *Config) MissingFields() []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch c.Provider.Active {
	case ProviderAzure:
		check("url", c.Azure.URL)
		check("api_key", c.Azure.APIKey)
		check("deployment", c.Azure.Deployment)
	case ProviderOpenAI:
		check("api_key", c.OpenAI.APIKey)
	case ProviderAnthropic:
		check("api_key", c.Anthropic.APIKey)
	}

	return missing
}
