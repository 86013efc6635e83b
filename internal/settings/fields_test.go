package settings

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yildizm/mahoraga/internal/config"
)

func TestFieldsFor(t *testing.T) {
	tests := []struct {
		provider config.ProviderType
		want     []Field
	}{
		{
			provider: config.ProviderAzure,
			want: []Field{FieldProvider, FieldAzureURL, FieldAzureAPIKey, FieldAzureDeployment,
				FieldAzureAPIVersion, FieldSave, FieldCancel},
		},
		{
			provider: config.ProviderOpenAI,
			want:     []Field{FieldProvider, FieldOpenAIAPIKey, FieldOpenAIModel, FieldSave, FieldCancel},
		},
		{
			provider: config.ProviderAnthropic,
			want:     []Field{FieldProvider, FieldAnthropicAPIKey, FieldAnthropicModel, FieldSave, FieldCancel},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FieldsFor(tt.provider)); diff != "" {
				t.Errorf("FieldsFor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestField_Metadata(t *testing.T) {
	for _, f := range []Field{FieldAzureAPIKey, FieldOpenAIAPIKey, FieldAnthropicAPIKey} {
		if !f.IsSecret() || !f.IsText() || f.Label() != "API Key" {
			t.Errorf("field %d should be a secret text field labelled API Key", f)
		}
	}

	if FieldAzureURL.IsSecret() {
		t.Error("URL must not be masked")
	}
	if FieldProvider.IsText() || !FieldProvider.IsProviderSelector() {
		t.Error("provider selector is not a text field")
	}
	if !FieldSave.IsButton() || !FieldCancel.IsButton() || FieldSave.IsText() {
		t.Error("Save and Cancel are buttons")
	}
}

func TestField_ValueAndSet(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, f := range []Field{FieldAzureURL, FieldAzureAPIKey, FieldAzureDeployment, FieldAzureAPIVersion,
		FieldOpenAIAPIKey, FieldOpenAIModel, FieldAnthropicAPIKey, FieldAnthropicModel} {
		value := "value-for-" + f.Label()
		f.Set(cfg, value)
		if got := f.Value(cfg); got != value {
			t.Errorf("field %d: Value() = %q after Set(%q)", f, got, value)
		}
	}

	FieldSave.Set(cfg, "ignored")
	if FieldSave.Value(cfg) != "" {
		t.Error("buttons carry no value")
	}
	if FieldProvider.Value(cfg) != "Azure OpenAI" {
		t.Errorf("selector value = %q", FieldProvider.Value(cfg))
	}
}
