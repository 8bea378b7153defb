// Package transport provides the authenticated HTTP client used to reach
// the Quant Cloud API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/constants"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http   *http.Client
	auth   Authenticator
	apiKey string
}

// New creates a new transport client with the specified authenticator and
// API key.
func New(auth Authenticator, apiKey string) *Client {
	return &Client{
		http:   &http.Client{Timeout: DefaultHTTPTimeout},
		auth:   auth,
		apiKey: apiKey,
	}
}

// Do performs an HTTP request with authentication and common headers
// applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// DoJSON builds a request with an optional JSON body, performs it, and
// decodes the response into target when target is non-nil. Non-2xx
// responses are returned as APIErrors carrying the status code, which is
// the only place status codes are inspected.
func (c *Client) DoJSON(ctx context.Context, method, url string, body, target any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WrapParse("json", "", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.NewConfigError("transport", "building request for "+url, err)
	}

	resp, err := c.Do(req)
	if err != nil {
		switch ctx.Err() {
		case context.DeadlineExceeded:
			return errors.ErrTimeout
		case context.Canceled:
			return errors.ErrCanceled
		}
		return &errors.APIError{Endpoint: url, Message: "request failed", Err: err}
	}

	return DecodeResponse(resp, url, target)
}

// DecodeResponse reads a response, maps non-2xx statuses to APIErrors, and
// decodes the body into target when requested.
func DecodeResponse(resp *http.Response, endpoint string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if target == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}
	return nil
}
