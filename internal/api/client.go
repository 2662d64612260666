package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	// ErrRequestFailed covers transport-level failures: the request never
	// produced a backend response. The text is operator-facing.
	ErrRequestFailed = errors.New("no se pudo completar la solicitud")
)

// Error is a backend-reported failure: a non-2xx response, optionally
// carrying a {"detail": "..."} reason meant to be shown to the user
// verbatim.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("el servidor respondió con estado %d", e.StatusCode)
}

// tokenSource supplies the bearer token for authenticated calls.
// *session.Store satisfies it.
type tokenSource interface {
	Token() string
}

// Client is a typed HTTP client for the gym backend. Every persisted
// entity is owned by the backend; the values returned here are disposable,
// re-fetchable copies.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    tokenSource
}

// NewClient creates a backend client. The *http.Client is injected so
// callers control timeouts (and tests can point at a fake backend).
func NewClient(baseURL string, httpClient *http.Client, session tokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		session:    session,
	}
}

// do issues one JSON request and decodes the response into out (when out
// is non-nil and the response has a body). Non-2xx responses come back as
// *Error with the backend's detail string when present.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debugf("api call: %s %s", method, reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("api call %s %s: %s", method, reqURL, err)
		return fmt.Errorf("%w: %s %s", ErrRequestFailed, method, path)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, respBytes)
	}

	if out == nil || len(respBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// apiError extracts the backend's {"detail": ...} reason if the error
// body carries one.
func apiError(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
