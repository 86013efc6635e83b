package azure

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/yildizm/mahoraga/internal/ai"
)

type Provider struct {
	config *Config
	client *http.Client
}

func New(config *Config) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Provider{
		config: config,
		client: &http.Client{},
	}, nil
}

func (p *Provider) Name() string {
	return "azure"
}

func (p *Provider) Analyze(ctx context.Context, prompt string) (*ai.AnalysisResult, error) {
	built := ai.BuildPrompt(prompt)

	req := &chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: built.SystemPrompt},
			{Role: "user", Content: ai.UserMessage(built)},
		},
		Temperature: p.config.Temperature,
		MaxTokens:   p.config.MaxTokens,
		User:        ai.RequestIDFromContext(ctx),
	}

	var resp chatResponse
	if err := ai.PostJSON(ctx, p.client, p.endpoint(), req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ai.NewProviderError(ai.ErrTypeParse, "No content in Azure response", "azure")
	}

	return ai.ParseAnalysis(resp.Choices[0].Message.Content, "azure")
}

// URL returns the deployment's chat completions endpoint
func (p *Provider) URL() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(p.config.URL, "/"),
		url.PathEscape(p.config.Deployment),
		url.QueryEscape(p.config.APIVersion))
}

func (p *Provider) endpoint() ai.Endpoint {
	return ai.Endpoint{
		URL: p.URL(),
		Headers: map[string]string{
			"api-key": p.config.APIKey,
		},
		Provider:    "azure",
		DisplayName: "Azure",
	}
}
