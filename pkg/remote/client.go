package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAPIBase is the Browserbase REST API base.
const DefaultAPIBase = "https://api.browserbase.com"

// SessionInfo is the provider's record of one ephemeral browser session.
type SessionInfo struct {
	ID         string `json:"id"`
	ConnectURL string `json:"connectUrl"`
}

// Client is a minimal Browserbase REST client covering session creation.
type Client struct {
	hc      *http.Client
	apiBase string
	apiKey  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIBase overrides the API base URL (used in tests).
func WithAPIBase(base string) ClientOption {
	return func(c *Client) { c.apiBase = base }
}

// NewClient creates a provider client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		hc:      &http.Client{Timeout: 30 * time.Second},
		apiBase: DefaultAPIBase,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createSessionRequest struct {
	ProjectID string `json:"projectId"`
}

// CreateSession opens one remote browser session under the given project
// and returns its id and CDP connect URL.
func (c *Client) CreateSession(ctx context.Context, projectID string) (SessionInfo, error) {
	payload, err := json.Marshal(createSessionRequest{ProjectID: projectID})
	if err != nil {
		return SessionInfo{}, fmt.Errorf("failed to encode session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v1/sessions", bytes.NewReader(payload))
	if err != nil {
		return SessionInfo{}, fmt.Errorf("failed to build session request: %w", err)
	}
	req.Header.Set("X-BB-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return SessionInfo{}, fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return SessionInfo{}, fmt.Errorf("failed to read session response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return SessionInfo{}, fmt.Errorf("session creation failed (status=%d): %s", resp.StatusCode, string(body))
	}

	var info SessionInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return SessionInfo{}, fmt.Errorf("failed to decode session response: %w", err)
	}
	if info.ID == "" || info.ConnectURL == "" {
		return SessionInfo{}, fmt.Errorf("session response missing id or connect URL")
	}

	return info, nil
}
