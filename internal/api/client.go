// Package api implements the HTTP client for the WMS backend.
//
// Every call goes through a single request path that injects the bearer
// credential, normalizes the JSON response envelope, and converts non-2xx
// statuses into *model.RequestError. CSV imports use a separate multipart
// path that mirrors the backend's upload endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// CredentialSource supplies the current bearer token. An empty string means
// no credential, in which case no Authorization header is sent.
type CredentialSource interface {
	Credential() string
}

// Client talks to the WMS backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to install an
// instrumented transport or shorten timeouts in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a WMS API client with connection pooling. The credential
// source is attached later, once the session store exists.
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger.With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetCredentialSource attaches the supplier of the active bearer token.
// Once set, every request carries the token unconditionally.
func (c *Client) SetCredentialSource(src CredentialSource) {
	c.creds = src
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes a JSON request and decodes the response into out (when non-nil).
//
// The response body is always treated as JSON; an empty or non-JSON body
// decodes as an empty object rather than failing. A non-2xx status returns a
// *model.RequestError carrying the parsed error envelope and the raw body.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token := c.creds.Credential(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("HTTP request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("HTTP response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 || !json.Valid(respBody) {
		// Empty or non-JSON success bodies decode as an empty object.
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, nil, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, nil, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// upload posts a single file as a multipart form under the field "file".
// Import endpoints take the raw upload directly: no bearer injection and no
// manual content-type beyond the multipart boundary set by the writer.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.logger.Debug("HTTP upload", "path", path, "filename", filename)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(resp.StatusCode, respBody)
	}
	if out == nil || len(respBody) == 0 || !json.Valid(respBody) {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// newRequestError builds a RequestError from a non-2xx response, parsing the
// error envelope when the body is valid JSON.
func newRequestError(status int, body []byte) *model.RequestError {
	reqErr := &model.RequestError{StatusCode: status, Body: body}

	if len(body) > 0 && json.Valid(body) {
		var envelope struct {
			Success bool                `json:"success"`
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil {
			reqErr.Success = envelope.Success
			reqErr.Message = envelope.Message
			reqErr.Errors = envelope.Errors
		}
	}
	return reqErr
}

// requestID generates a request identifier for log correlation.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}
