package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
	"github.com/peakstock/stockdeck/pkg/logger"
)

// Client is the shared HTTP transport for all catalog resource clients. Every
// call hits the upstream directly; there is no local caching.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a catalog client for the given base URL. The timeout is
// the transport-level policy for every request issued through this client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	logger.Logger.Info().
		Str("base_url", baseURL).
		Dur("timeout", timeout).
		Msg("Catalog client initialized")

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// envelope is the upstream response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// do executes one catalog request. Non-2xx responses become a
// *domain.RequestError carrying the upstream status and message body; when out
// is non-nil the response payload is decoded into it, unwrapping the standard
// envelope if present.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read catalog response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		reqErr := &domain.RequestError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
		logger.Logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("Catalog request failed")
		return reqErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode catalog response: %w", err)
		}
		return nil
	}

	// Some endpoints respond with the bare resource instead of the envelope.
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}

// errorMessage extracts the server-supplied message from an error body.
func errorMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
		return ""
	}
	return strings.TrimSpace(string(raw))
}
