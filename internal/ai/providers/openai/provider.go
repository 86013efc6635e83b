package openai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yildizm/mahoraga/internal/ai"
)

type Provider struct {
	config  *Config
	client  *http.Client
	baseURL *url.URL
}

// New validates config and creates the provider. No client timeout is set;
// callers bound requests through the context.
func New(config *Config) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, ai.NewConfigurationError("openai", "base_url", fmt.Sprintf("invalid OpenAI base URL: %v", err))
	}

	return &Provider{
		config:  config,
		client:  &http.Client{},
		baseURL: baseURL,
	}, nil
}

func (p *Provider) Name() string {
	return "openai"
}

func (p *Provider) Analyze(ctx context.Context, prompt string) (*ai.AnalysisResult, error) {
	built := ai.BuildPrompt(prompt)

	req := &ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: built.SystemPrompt},
			{Role: "user", Content: ai.UserMessage(built)},
		},
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
		User:        ai.RequestIDFromContext(ctx),
	}

	var resp ChatCompletionResponse
	if err := ai.PostJSON(ctx, p.client, p.endpoint(), req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, ai.NewProviderError(ai.ErrTypeParse, "No response from OpenAI", "openai")
	}

	return ai.ParseAnalysis(resp.Choices[0].Message.Content, "openai")
}

func (p *Provider) endpoint() ai.Endpoint {
	return ai.Endpoint{
		URL: p.baseURL.JoinPath("/v1/chat/completions").String(),
		Headers: map[string]string{
			"Authorization": "Bearer " + p.config.APIKey,
		},
		Provider:    "openai",
		DisplayName: "OpenAI",
	}
}
