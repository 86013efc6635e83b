package anthropic

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

func New(config *Config) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, ai.NewConfigurationError("anthropic", "base_url", fmt.Sprintf("invalid Anthropic base URL: %v", err))
	}

	return &Provider{
		config:  config,
		client:  &http.Client{},
		baseURL: baseURL,
	}, nil
}

func (p *Provider) Name() string {
	return "anthropic"
}

func (p *Provider) Analyze(ctx context.Context, prompt string) (*ai.AnalysisResult, error) {
	built := ai.BuildPrompt(prompt)

	req := &messagesRequest{
		Model:     p.config.Model,
		MaxTokens: p.config.MaxTokens,
		System:    built.SystemPrompt,
		Messages: []message{
			{Role: "user", Content: ai.UserMessage(built)},
		},
	}
	if id := ai.RequestIDFromContext(ctx); id != "" {
		req.Metadata = &metadata{UserID: id}
	}

	var resp messagesResponse
	if err := ai.PostJSON(ctx, p.client, p.endpoint(), req, &resp); err != nil {
		return nil, err
	}

	// Only the first block is read; the system prompt asks for a single JSON object
	if len(resp.Content) == 0 || resp.Content[0].Text == "" {
		return nil, ai.NewProviderError(ai.ErrTypeParse, "No content in Anthropic response", "anthropic")
	}

	return ai.ParseAnalysis(resp.Content[0].Text, "anthropic")
}

func (p *Provider) endpoint() ai.Endpoint {
	return ai.Endpoint{
		URL: p.baseURL.JoinPath("/v1/messages").String(),
		Headers: map[string]string{
			"x-api-key":         p.config.APIKey,
			"anthropic-version": APIVersion,
		},
		Provider:    "anthropic",
		DisplayName: "Anthropic",
	}
}
