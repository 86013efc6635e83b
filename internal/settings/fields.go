// Package settings implements the settings overlay: a field list derived
// from the active provider, edited against a working copy of the
// configuration.
package settings

import "github.com/yildizm/mahoraga/internal/config"

// Field identifies one row of the settings list
type Field int

const (
	FieldProvider Field = iota
	FieldAzureURL
	FieldAzureAPIKey
	FieldAzureDeployment
	FieldAzureAPIVersion
	FieldOpenAIAPIKey
	FieldOpenAIModel
	FieldAnthropicAPIKey
	FieldAnthropicModel
	FieldSave
	FieldCancel
)

// FieldsFor returns the rows shown for provider: the provider selector, the
// provider's own settings, then Save and Cancel
func FieldsFor(provider config.ProviderType) []Field {
	fields := []Field{FieldProvider}

	switch provider {
	case config.ProviderAzure:
		fields = append(fields, FieldAzureURL, FieldAzureAPIKey, FieldAzureDeployment, FieldAzureAPIVersion)
	case config.ProviderOpenAI:
		fields = append(fields, FieldOpenAIAPIKey, FieldOpenAIModel)
	case config.ProviderAnthropic:
		fields = append(fields, FieldAnthropicAPIKey, FieldAnthropicModel)
	}

	return append(fields, FieldSave, FieldCancel)
}

func (f Field) Label() string {
	switch f {
	case FieldProvider:
		return "Provider"
	case FieldAzureURL:
		return "Azure URL"
	case FieldAzureAPIKey, FieldOpenAIAPIKey, FieldAnthropicAPIKey:
		return "API Key"
	case FieldAzureDeployment:
		return "Deployment"
	case FieldAzureAPIVersion:
		return "API Version"
	case FieldOpenAIModel, FieldAnthropicModel:
		return "Model"
	case FieldSave:
		return "Save"
	case FieldCancel:
		return "Cancel"
	default:
		return ""
	}
}

func (f Field) IsButton() bool {
	return f == FieldSave || f == FieldCancel
}

func (f Field) IsProviderSelector() bool {
	return f == FieldProvider
}

// IsSecret marks fields whose value is masked when displayed
func (f Field) IsSecret() bool {
	return f == FieldAzureAPIKey || f == FieldOpenAIAPIKey || f == FieldAnthropicAPIKey
}

// IsText reports whether the field is edited through the line editor
func (f Field) IsText() bool {
	return !f.IsButton() && !f.IsProviderSelector()
}

// Value reads the field from cfg. The selector yields the provider display
// name and buttons yield "".
func (f Field) Value(cfg *config.Config) string {
	switch f {
	case FieldProvider:
		return cfg.Provider.Active.DisplayName()
	case FieldAzureURL:
		return cfg.Azure.URL
	case FieldAzureAPIKey:
		return cfg.Azure.APIKey
	case FieldAzureDeployment:
		return cfg.Azure.Deployment
	case FieldAzureAPIVersion:
		return cfg.Azure.APIVersion
	case FieldOpenAIAPIKey:
		return cfg.OpenAI.APIKey
	case FieldOpenAIModel:
		return cfg.OpenAI.Model
	case FieldAnthropicAPIKey:
		return cfg.Anthropic.APIKey
	case FieldAnthropicModel:
		return cfg.Anthropic.Model
	default:
		return ""
	}
}

// Set writes value into cfg. It is a no-op for non-text fields.
func (f Field) Set(cfg *config.Config, value string) {
	switch f {
	case FieldAzureURL:
		cfg.Azure.URL = value
	case FieldAzureAPIKey:
		cfg.Azure.APIKey = value
	case FieldAzureDeployment:
		cfg.Azure.Deployment = value
	case FieldAzureAPIVersion:
		cfg.Azure.APIVersion = value
	case FieldOpenAIAPIKey:
		cfg.OpenAI.APIKey = value
	case FieldOpenAIModel:
		cfg.OpenAI.Model = value
	case FieldAnthropicAPIKey:
		cfg.Anthropic.APIKey = value
	case FieldAnthropicModel:
		cfg.Anthropic.Model = value
	}
}
