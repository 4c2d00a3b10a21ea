// Package api implements the REST client for the finance tracker backend.
//
// Each resource (accounts, categories, transactions) gets list, create,
// update, and delete calls plus a single-item lookup where the backend
// offers one. Every call issues exactly one request; any non-2xx response
// fails with a fixed, user-facing message and is never retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"duit/internal/common"
)

const defaultTimeout = 30 * time.Second

// Client talks to the finance tracker REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client rooted at baseURL (e.g. "http://127.0.0.1:8000").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestError is the sole failure signal for an API operation. Error()
// returns the fixed human-readable message so callers can surface it
// verbatim.
type RequestError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError reports a 2xx response whose body did not match the
// resource schema.
type DecodeError struct {
	Err      error
	Resource string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s response from server: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// do issues one request. When out is non-nil the response body is checked
// against schema and decoded into out; resource names the schema for
// decode errors. failMsg is the fixed message for any request failure.
func (c *Client) do(ctx context.Context, method, path string, payload, out any, schema *gojsonschema.Schema, resource, failMsg string) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &RequestError{Message: failMsg, Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &RequestError{Message: failMsg, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	common.LogDebug("api request", common.Fields{"method": method, "path": path})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Message: failMsg, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		common.LogDebug("api request failed", common.Fields{
			"method": method, "path": path, "status": resp.StatusCode,
		})
		// Error bodies carry no structured detail worth parsing.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RequestError{Message: failMsg, StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Message: failMsg, Err: err}
	}

	if schema != nil {
		if err := validateDocument(schema, data); err != nil {
			return &DecodeError{Resource: resource, Err: err}
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Resource: resource, Err: err}
	}

	return nil
}
