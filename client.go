package g4fclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the address of a locally running conversation backend.
	DefaultBaseURL = "http://127.0.0.1:8080"

	// DefaultTimeout bounds the wait for response headers on each call.
	DefaultTimeout = 30 * time.Second

	// conversationPath is the backend's streaming conversation endpoint.
	conversationPath = "/backend-api/v2/conversation"
)

// Sender issues a conversation request and returns the live response with
// headers received but the body still streaming. The single production
// implementation is Client; tests substitute a stub.
type Sender interface {
	// SendRequest posts the payload and returns the in-progress response.
	// The caller owns the response body and must close it.
	SendRequest(ctx context.Context, req *ConversationRequest) (*http.Response, error)
}

// ClientConfig configures a Client. Zero values fall back to the package
// defaults, so ClientConfig{} is a working local-backend configuration.
type ClientConfig struct {
	// BaseURL is the backend root, without the conversation path
	BaseURL string

	// Timeout bounds connection establishment and the wait for response
	// headers. It deliberately does not cover reading the streamed body,
	// which can legitimately stay open for much longer.
	Timeout time.Duration

	// HTTPClient overrides the underlying HTTP client (primarily for tests)
	HTTPClient *http.Client
}

// Client sends conversation requests to a backend over HTTP.
// It implements Sender.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the configured backend.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// Bound the dial and the wait for headers, but not the body:
		// the streamed response must be allowed to outlive the
		// handshake by an arbitrary amount.
		httpClient = &http.Client{
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
				ResponseHeaderTimeout: timeout,
			},
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// BaseURL returns the backend root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SendRequest posts the JSON payload to the conversation endpoint and
// returns the response as soon as headers arrive, leaving the body open for
// incremental reading. Connection or timeout failures surface as
// *TransportError.
func (c *Client) SendRequest(ctx context.Context, req *ConversationRequest) (*http.Response, error) {
	url := c.baseURL + conversationPath

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal conversation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create conversation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: url, Op: "send", Err: classifyTransport(err)}
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{
			URL: url,
			Op:  "send",
			Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(payload)),
		}
	}

	return resp, nil
}

// classifyTransport maps low-level HTTP client failures onto the package
// sentinels so callers can use errors.Is without knowing net/http internals.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
