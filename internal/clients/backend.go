package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// APIError is a non-2xx answer from the external backend. Body holds the
// response text, or the status line when the body was empty.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Body)
}

// BackendClient talks JSON to the external furnishing backend. One
// best-effort call per invocation: no retries.
type BackendClient interface {
	Do(ctx context.Context, method, path string, body any) (*http.Response, error)
	DoJSON(ctx context.Context, method, path string, body, out any) error
}

type backendHTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewBackendHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) BackendClient {
	return &backendHTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

// Do performs a single request. Absolute paths are used as-is, anything else
// is resolved against the configured base origin. The caller owns the
// response body on success.
func (c *backendHTTPClient) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	fullURL := path
	if !strings.HasPrefix(path, "http") {
		fullURL = c.baseURL + path
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			c.log.Errorf("BackendClient: Failed to marshal request body for %s %s: %v", method, fullURL, err)
			return nil, fmt.Errorf("failed to prepare backend request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		c.log.Errorf("BackendClient: Failed to create request %s %s: %v", method, fullURL, err)
		return nil, fmt.Errorf("failed to create backend request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debugf("BackendClient: %s %s", method, fullURL)
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("BackendClient: Failed to execute %s %s: %v", method, fullURL, err)
		return nil, fmt.Errorf("failed to communicate with backend: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		text := strings.TrimSpace(string(bodyBytes))
		if text == "" {
			text = resp.Status
		}
		c.log.Warnf("BackendClient: %s %s returned status %d: %s", method, fullURL, resp.StatusCode, text)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: text}
	}

	return resp, nil
}

// DoJSON performs the request and decodes the response body into out when out
// is non-nil.
func (c *backendHTTPClient) DoJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Errorf("BackendClient: Failed to decode response for %s %s: %v", method, path, err)
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}
