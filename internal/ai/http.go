package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response is echoed back to the user
const maxErrorBody = 4096

// Endpoint describes where and how a backend receives requests
type Endpoint struct {
	URL         string
	Headers     map[string]string
	Provider    string
	DisplayName string
}

// PostJSON sends payload to the endpoint and decodes a successful reply into
// out. Non-2xx statuses become a ProviderError carrying the response body.
func PostJSON(ctx context.Context, client *http.Client, ep Endpoint, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return NewProviderErrorWithCause(ErrTypeInternal, "Failed to marshal request", ep.Provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL, bytes.NewReader(body))
	if err != nil {
		return NewProviderErrorWithCause(ErrTypeNetwork, "Failed to create request", ep.Provider, err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range ep.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return NewProviderErrorWithCause(ErrTypeCanceled, "Request canceled", ep.Provider, err)
		}
		return NewProviderErrorWithCause(ErrTypeNetwork, "Failed to send request to "+ep.DisplayName, ep.Provider, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return NewHTTPError(ep.Provider, ep.DisplayName, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewProviderErrorWithCause(ErrTypeParse, "Failed to parse "+ep.DisplayName+" response", ep.Provider, err)
	}

	return nil
}
