// HTTP client for the streaming catalog backend
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/quaverlabs/quaver/internal/shared"
)

const defaultBaseURL = "http://localhost:3000"

// Client is the shared HTTP client for all catalog resources.
//
// A bearer token, when set, is attached to every request. Requests are
// throttled through a [rate.Limiter] so bulk operations stay inside the
// backend's informal limits.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     oauth2.TokenSource
}

// NewClient creates a new catalog API client.
//
// A rateLimit of 0 or less disables throttling.
func NewClient(baseURL string, client *http.Client, rateLimit float64) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), 1)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

// SetToken installs the access token attached as a bearer header on subsequent requests.
//
// An empty token clears authentication.
func (c *Client) SetToken(token string) {
	if token == "" {
		c.tokens = nil
		return
	}
	c.tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// doRequest performs an HTTP request against the backend and returns the raw body.
//
// Non-2xx responses are returned as errors wrapping [shared.ErrAPIRequest]
// with the status code and body preserved in the message.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrNotAuthenticated, err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return data, fmt.Errorf("%w: %w", shared.ErrAPIRequest, &StatusError{Code: resp.StatusCode, Body: truncate(data, 200)})
	}

	return data, nil
}

// StatusError carries the HTTP status of a failed request.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// IsNotFound reports whether err stems from a 404 response.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

func asStatus(err error, target **StatusError) bool {
	return errors.As(err, target)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) post(ctx context.Context, endpoint string, body any) ([]byte, error) {
	return c.doRequest(ctx, http.MethodPost, endpoint, body)
}

func (c *Client) patch(ctx context.Context, endpoint string, body any) ([]byte, error) {
	return c.doRequest(ctx, http.MethodPatch, endpoint, body)
}

func (c *Client) put(ctx context.Context, endpoint string, body any) ([]byte, error) {
	return c.doRequest(ctx, http.MethodPut, endpoint, body)
}

func (c *Client) delete(ctx context.Context, endpoint string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodDelete, endpoint, nil)
}

func truncate(data []byte, n int) string {
	if len(data) > n {
		return string(data[:n]) + "..."
	}
	return string(data)
}
