package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "configuration error is shown verbatim",
			err:  NewConfigurationError("openai", "api_key", "OpenAI API key is not configured"),
			want: "OpenAI API key is not configured",
		},
		{
			name: "http error",
			err:  NewHTTPError("anthropic", "Anthropic", 500, `{"error":"overloaded"}`),
			want: `Anthropic API error (500): {"error":"overloaded"}`,
		},
		{
			name: "provider error with cause",
			err:  NewProviderErrorWithCause(ErrTypeNetwork, "Request failed", "azure", errors.New("connection refused")),
			want: "Request failed: connection refused",
		},
		{
			name: "validation error",
			err:  NewValidationError("prompt", "prompt is empty"),
			want: "validation error for field 'prompt': prompt is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	configErr := fmt.Errorf("wrapped: %w", NewConfigurationError("azure", "url", "Azure URL is not configured"))
	if !IsConfigurationError(configErr) {
		t.Error("Expected wrapped configuration error to be detected")
	}

	authErr := NewHTTPError("openai", "OpenAI", 401, "invalid key")
	if !IsAuthenticationError(authErr) {
		t.Error("Expected 401 to classify as authentication error")
	}
	if authErr.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", authErr.StatusCode)
	}

	rateErr := NewHTTPError("openai", "OpenAI", 429, "slow down")
	if rateErr.Type != ErrTypeRateLimit {
		t.Errorf("Expected rate limit type, got %s", rateErr.Type)
	}

	if !errors.Is(authErr, &ProviderError{Type: ErrTypeAuthentication}) {
		t.Error("Expected errors.Is to match on error type")
	}

	cause := context.Canceled
	canceled := NewProviderErrorWithCause(ErrTypeCanceled, "Request canceled", "openai", cause)
	if !errors.Is(canceled, context.Canceled) {
		t.Error("Expected Unwrap to expose the cause")
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("Expected empty request id, got %q", got)
	}

	ctx = WithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want req-123", got)
	}
}
