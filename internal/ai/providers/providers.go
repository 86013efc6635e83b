// Package providers constructs the analysis backend selected by configuration
package providers

import (
	"fmt"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/ai/providers/anthropic"
	"github.com/yildizm/mahoraga/internal/ai/providers/azure"
	"github.com/yildizm/mahoraga/internal/ai/providers/openai"
	"github.com/yildizm/mahoraga/internal/config"
)

// Factory builds an analyzer from a configuration snapshot
type Factory func(cfg *config.Config) (ai.Analyzer, error)

// New builds the analyzer for cfg's active provider. Missing credentials are
// reported as configuration errors rather than deferred to the first request.
func New(cfg *config.Config) (ai.Analyzer, error) {
	if cfg == nil {
		return nil, ai.NewConfigurationError("", "config", "configuration is not loaded")
	}

	switch cfg.Provider.Active {
	case config.ProviderAzure:
		p, err := azure.New(azure.FromSettings(cfg.Azure))
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderOpenAI:
		p, err := openai.New(openai.FromSettings(cfg.OpenAI))
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderAnthropic:
		p, err := anthropic.New(anthropic.FromSettings(cfg.Anthropic))
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, ai.NewConfigurationError(string(cfg.Provider.Active), "provider",
			fmt.Sprintf("unsupported provider: %s", cfg.Provider.Active))
	}
}
