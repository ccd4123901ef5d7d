package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the typed HTTP client for the commerce backend. Every store and
// manager in this process goes through it; it owns no state beyond the
// connection pool.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError carries the backend's structured error payload. Callers surface
// Message verbatim; the backend is the authority on wording.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues exactly one request. Mutations are deliberately single-shot: no
// retry, no replay. A non-2xx response is decoded into *APIError so callers
// can surface the server's message; transport errors come back unwrapped.
func (c *Client) do(ctx context.Context, method, path, token string, body, target any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			if envelope.Message != "" {
				apiErr.Message = envelope.Message
			} else if envelope.Error != "" {
				apiErr.Message = envelope.Error
			}
		}
		return apiErr
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string, target any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, target)
}

func (c *Client) post(ctx context.Context, path, token string, body, target any) error {
	return c.do(ctx, http.MethodPost, path, token, body, target)
}

func (c *Client) put(ctx context.Context, path, token string, body, target any) error {
	return c.do(ctx, http.MethodPut, path, token, body, target)
}

func (c *Client) delete(ctx context.Context, path, token string, target any) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, target)
}
