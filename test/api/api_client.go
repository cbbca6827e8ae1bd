/*
Copyright 2026 the ReqRes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/onsi/ginkgo/v2"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type APIClient struct {
	baseURL     string
	client      HTTPDoer
	apiKey      string
	config      *TestConfig
	endpoints   *Endpoints
	diagnostics Logger
}

// Option customises an APIClient.
type Option func(*APIClient)

// WithDiagnostics records every exchange in logger, typically a per-spec
// Diagnostics buffer.
func WithDiagnostics(logger Logger) Option {
	return func(c *APIClient) {
		c.diagnostics = logger
	}
}

// WithHTTPDoer replaces the underlying transport.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *APIClient) {
		c.client = doer
	}
}

// NewAPIClient returns a client for the configured base URL.  Requests are
// attempted exactly once and bounded by the configured request timeout.
func NewAPIClient(config *TestConfig, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		apiKey:    config.APIKey,
		config:    config,
		endpoints: NewEndpoints(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

// record appends a line to the diagnostics buffer, if one is attached.
func (c *APIClient) record(format string, args ...any) {
	if c.diagnostics != nil {
		c.diagnostics.Printf(format, args...)
	}
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	c.record("[%s %s] ERROR %s duration=%s traceparent=%s error=%v", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	c.record("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	c.record("TRACE CONTEXT: Use trace ID '%s' to search logs for this request", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	id := make([]byte, 16)
	_, _ = rand.Read(id)

	return hex.EncodeToString(id)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	id := make([]byte, 8)
	_, _ = rand.Read(id)

	return hex.EncodeToString(id)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// encodeBody turns a request body into bytes.  Strings and byte slices are
// sent verbatim so malformed payloads can be tested, anything else is
// encoded as JSON.
func encodeBody(body any) ([]byte, error) {
	switch t := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*Response, error) {
	fullURL := c.baseURL + path

	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	c.record("[%s %s] request traceparent=%s", method, fullURL, traceParent)

	if payload != nil {
		c.record("[%s %s] request body: %s", method, path, payload)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("%s %s: http request failed (trace ID: %s): %w", method, path, extractTraceID(traceParent), err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("%s %s: reading response body: %w", method, path, err)
	}

	c.record("[%s %s] status=%d duration=%s", method, path, resp.StatusCode, duration)

	if len(respBody) > 0 {
		c.record("[%s %s] response body: %s", method, path, respBody)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
	}, nil
}

// Get issues a GET request against a path relative to the base URL.
func (c *APIClient) Get(ctx context.Context, path string) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body.
func (c *APIClient) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *APIClient) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.doRequest(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *APIClient) Delete(ctx context.Context, path string) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil)
}

func (c *APIClient) GetUser(ctx context.Context, userID string) (*Response, error) {
	return c.Get(ctx, c.endpoints.GetUser(userID))
}

// ListUsers requests a page of users; page 0 leaves the page to the server.
func (c *APIClient) ListUsers(ctx context.Context, page int) (*Response, error) {
	return c.Get(ctx, c.endpoints.ListUsers(page))
}

// ListUsersPage requests and decodes a page of users, failing on any
// status other than 200.
func (c *APIClient) ListUsersPage(ctx context.Context, page int) (*Page, error) {
	resp, err := c.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing users: %w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, http.StatusOK, resp.StatusCode, string(resp.Body), resp.TraceID)
	}

	var result Page
	if err := resp.Decode(&result); err != nil {
		return nil, fmt.Errorf("unmarshaling users response: %w", err)
	}

	return &result, nil
}

// CreateUser posts a new user.
func (c *APIClient) CreateUser(ctx context.Context, body map[string]any) (*Response, error) {
	return c.Post(ctx, c.endpoints.CreateUser(), body)
}

func (c *APIClient) UpdateUser(ctx context.Context, userID string, body map[string]any) (*Response, error) {
	return c.Put(ctx, c.endpoints.UpdateUser(userID), body)
}

func (c *APIClient) DeleteUser(ctx context.Context, userID string) (*Response, error) {
	return c.Delete(ctx, c.endpoints.DeleteUser(userID))
}

// Login posts credentials.  Empty fields are sent as empty strings.
func (c *APIClient) Login(ctx context.Context, credentials Credentials) (*Response, error) {
	return c.Post(ctx, c.endpoints.Login(), credentials)
}
