package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreLoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if store.Exists() {
		t.Error("Load() must not create the config file")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{
			name: "defaults",
			cfg:  DefaultConfig(),
		},
		{
			name: "all fields set",
			cfg: &Config{
				Provider: ProviderConfig{Active: ProviderAnthropic},
				Azure: AzureConfig{
					URL:        "https://example.openai.azure.com",
					APIKey:     "azure-key",
					Deployment: "gpt-4o",
					APIVersion: "2024-06-01",
				},
				OpenAI:    OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"},
				Anthropic: AnthropicConfig{APIKey: "sk-ant", Model: "claude-3-haiku"},
			},
		},
		{
			name: "empty strings survive",
			cfg: &Config{
				Provider:  ProviderConfig{Active: ProviderOpenAI},
				Azure:     AzureConfig{APIVersion: ""},
				OpenAI:    OpenAIConfig{Model: ""},
				Anthropic: AnthropicConfig{Model: ""},
			},
		},
		{
			name: "special characters",
			cfg: &Config{
				Provider: ProviderConfig{Active: ProviderAzure},
				Azure: AzureConfig{
					URL:    "https://host/path?x=1#frag",
					APIKey: "key: with 'quotes' and \"double\" # hash",
				},
				OpenAI:    OpenAIConfig{Model: "multi\nline"},
				Anthropic: AnthropicConfig{APIKey: "ünïcødé"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(filepath.Join(t.TempDir(), "nested", "config.yaml"))

			if err := store.Save(tt.cfg); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(tt.cfg, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStoreLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestStoreLoadUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider:\n  active: ollama\n"), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestStoreLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "provider:\n  active: openai\nopenai:\n  api_key: sk-test\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	cfg, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("Expected api key sk-test, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != DefaultOpenAIModel {
		t.Errorf("Expected default model to be kept, got %q", cfg.OpenAI.Model)
	}
	if cfg.Azure.APIVersion != DefaultAzureAPIVersion {
		t.Errorf("Expected default Azure API version to be kept, got %q", cfg.Azure.APIVersion)
	}
}

func TestStoreSaveFailureLeavesFileIntact(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "config.yaml"))

	original := DefaultConfig()
	original.OpenAI.APIKey = "keep-me"
	if err := store.Save(original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Save(nil); err == nil {
		t.Fatal("Expected error when saving nil config")
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(original, got); diff != "" {
		t.Errorf("config changed after failed save (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the config file in %s, found %d entries", dir, len(entries))
	}
}

func TestStoreSaveToUnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to write blocker file: %v", err)
	}

	// a regular file in place of the parent directory makes MkdirAll fail
	store := NewStore(filepath.Join(blocker, "config.yaml"))
	if err := store.Save(DefaultConfig()); err == nil {
		t.Error("Expected error saving below a regular file")
	}
}

func TestStoreReset(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.yaml"))

	custom := DefaultConfig()
	custom.Provider.Active = ProviderAnthropic
	custom.Anthropic.APIKey = "sk-ant"
	if err := store.Save(custom); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cfg, err := store.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Reset() mismatch (-want +got):\n%s", diff)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), loaded); diff != "" {
		t.Errorf("persisted config after Reset() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreSavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := NewStore(path).Save(DefaultConfig()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Errorf("Expected config file to be private, got %v", perm)
	}
}
