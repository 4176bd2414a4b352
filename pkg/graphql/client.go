// Package graphql is a small JSON-over-HTTP client for GraphQL endpoints.
//
// It only moves documents and variables to the server and hands back the raw
// response envelope. Interpreting data and errors is left to the caller.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HTTPDoer is satisfied by *http.Client and by anything wrapping one.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Request is the POST body. Documents sent by this package carry a single
// named operation, so no operationName member is needed.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors Errors          `json:"errors,omitempty"`
}

// Decode unmarshals the data member into out. A null or absent data member
// leaves out untouched.
func (r *Response) Decode(out any) error {
	if len(r.Data) == 0 || bytes.Equal(r.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(r.Data, out); err != nil {
		return fmt.Errorf("graphql: decode data: %w", err)
	}
	return nil
}

type Client struct {
	endpoint string
	doer     HTTPDoer
	headers  http.Header
	log      *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.doer = doer }
}

func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		doer:     http.DefaultClient,
		headers:  make(http.Header),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts the document and variables to the endpoint. GraphQL errors in a
// 2xx reply are returned inside the Response, not as an error.
func (c *Client) Send(ctx context.Context, query string, variables map[string]any) (*Response, error) {
	body, err := json.Marshal(Request{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("graphql: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("graphql: build request: %w", err)
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql: post %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("graphql: read response: %w", err)
	}

	c.log.Debug("graphql request",
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	var out Response
	if resp.StatusCode/100 != 2 {
		// error bodies are often still GraphQL envelopes
		_ = json.Unmarshal(raw, &out)
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Errors: out.Errors}
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("graphql: decode response: %w", err)
	}
	return &out, nil
}
