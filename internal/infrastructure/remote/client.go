package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/credentials"
	"github.com/bexiiiii/euroline-sub001/internal/observability"
)

const (
	peerAPI                   = "catalog_api"
	defaultTimeout            = 10 * time.Second
	errorBodyReadLimit  int64 = 4096
	defaultSearchPath         = "/api/search"
	defaultCartPath           = "/api/cart/items"
	defaultFinancePath        = "/api/finance/customers"
)

var (
	errBaseURLRequired = errors.New("remote: base url is required")
	// ErrTransport marks failures where no response was received.
	ErrTransport = errors.New("remote: transport failure")
)

// Error is a non-2xx answer from the collaborator. Message is the server's
// human readable message when it sent one.
type Error struct {
	Status   int
	Message  string
	Endpoint string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote: %s: status %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("remote: %s: status %d", e.Endpoint, e.Status)
}

// UserMessage is the message to show the shopper, empty when the server sent none.
func (e *Error) UserMessage() string { return e.Message }

// Paths holds the collaborator routes; empty entries keep their defaults.
type Paths struct {
	Search  string
	Cart    string
	Finance string
}

// Client talks to the storefront REST API on behalf of every use case.
type Client struct {
	httpClient *http.Client
	baseURL    string
	paths      Paths
	creds      credentials.Provider

	extCounter   observability.Counter   // external_requests_total{peer,endpoint,outcome}
	extHistogram observability.Histogram // external_request_duration_seconds{peer,endpoint}
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d, Transport: c.httpClient.Transport}
		}
	}
}

func WithPaths(p Paths) Option {
	return func(c *Client) {
		if s := strings.TrimSpace(p.Search); s != "" {
			c.paths.Search = s
		}
		if s := strings.TrimSpace(p.Cart); s != "" {
			c.paths.Cart = s
		}
		if s := strings.TrimSpace(p.Finance); s != "" {
			c.paths.Finance = s
		}
	}
}

func WithCredentials(p credentials.Provider) Option {
	return func(c *Client) {
		if p != nil {
			c.creds = p
		}
	}
}

// WithObservability records external request metrics for every call.
func WithObservability(tel observability.Observability) Option {
	return func(c *Client) {
		if tel == nil {
			return
		}
		c.extCounter = tel.Metrics().Counter(observability.MExternalRequests)
		c.extHistogram = tel.Metrics().Histogram(observability.MExternalRequestDuration)
	}
}

// NewClient builds a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    trimmed,
		paths: Paths{
			Search:  defaultSearchPath,
			Cart:    defaultCartPath,
			Finance: defaultFinancePath,
		},
		creds:        credentials.NewContextProvider(""),
		extCounter:   observability.NopCounter(),
		extHistogram: observability.NopHistogram(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// do sends one request and decodes a 2xx JSON body into out (when non-nil).
func (c *Client) do(ctx context.Context, endpoint, method, url string, body, out any) (err error) {
	start := time.Now()
	outcome := "success"
	defer func() {
		if err != nil {
			outcome = "error"
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				outcome = "canceled"
			}
		}
		c.extCounter.Add(1,
			observability.L("peer", peerAPI),
			observability.L("endpoint", endpoint),
			observability.L("outcome", outcome),
		)
		c.extHistogram.Observe(time.Since(start).Seconds(),
			observability.L("peer", peerAPI),
			observability.L("endpoint", endpoint),
		)
	}()

	var reader io.Reader
	if body != nil {
		payload, merr := json.Marshal(body)
		if merr != nil {
			return fmt.Errorf("remote: %s: marshal request: %w", endpoint, merr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("remote: %s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.creds.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTransport, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return &Error{Status: resp.StatusCode, Message: errorMessage(raw), Endpoint: endpoint}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: %s: decode response: %w", endpoint, err)
	}
	return nil
}

// errorMessage pulls {"message": "..."} (or {"error": "..."}) out of an error body.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if m := strings.TrimSpace(body.Message); m != "" {
		return m
	}
	return strings.TrimSpace(body.Error)
}
