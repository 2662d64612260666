package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates with the backend and returns the access token.
// The login endpoint takes form-encoded credentials, not JSON, and is the
// one call made without a bearer header.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/auth/login",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("login call failed: %s", err)
		return "", fmt.Errorf("%w: login", ErrRequestFailed)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read login response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apiError(resp.StatusCode, respBytes)
	}

	var loginResp loginResponse
	if err := json.Unmarshal(respBytes, &loginResp); err != nil {
		return "", fmt.Errorf("unmarshal login response: %w", err)
	}
	return loginResp.AccessToken, nil
}
