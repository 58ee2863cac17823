// Package cloudflare is a typed client for the Cloudflare v4 API, covering
// the resources cfai manages: DNS records, zone/TLS settings, cache purge,
// and firewall access rules.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/doeshing/cfai-go/internal/domain"
	"github.com/doeshing/cfai-go/internal/ports"
)

const apiBase = "https://api.cloudflare.com/client/v4"

// Client talks to the Cloudflare v4 API. All mutations go through the
// envelope decoder, so API-level failures surface as *APIError values with
// the remote error messages attached.
type Client struct {
	httpClient *http.Client
	baseURL    string

	apiToken string
	email    string
	apiKey   string
}

// envelope is the common Cloudflare response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Errors  []apiMessage    `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type apiMessage struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// APIError is a structured failure reported by the Cloudflare API.
type APIError struct {
	StatusCode int
	Messages   []apiMessage
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("cloudflare api: HTTP %d", e.StatusCode)
	}
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		parts = append(parts, fmt.Sprintf("[%d] %s", m.Code, m.Message))
	}
	return "cloudflare api: " + strings.Join(parts, "; ")
}

// Option tweaks client construction.
type Option func(*Client)

// WithBaseURL overrides the API base, mainly for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient builds a client from the configured credentials. An API token is
// preferred; email plus global API key is the fallback.
func NewClient(settings domain.CloudflareSettings, opts ...Option) (*Client, error) {
	if !settings.HasAuth() {
		return nil, errors.New("cloudflare credentials not configured: set cloudflare.api_token or CLOUDFLARE_API_TOKEN")
	}
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    apiBase,
		apiToken:   settings.APIToken,
		email:      settings.Email,
		apiKey:     settings.APIKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("content-type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("authorization", "Bearer "+c.apiToken)
	} else {
		req.Header.Set("x-auth-email", c.email)
		req.Header.Set("x-auth-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}

	if !env.Success || resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Messages: env.Errors}
	}

	if out != nil && len(env.Result) > 0 && string(env.Result) != "null" {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return fmt.Errorf("%s %s: decode result: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func queryString(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

var _ ports.ResourceClient = (*Client)(nil)
