// Package search provides a minimal client for the Exa web-search API,
// used to locate candidate booking URLs for a venue.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAPIBase is the Exa search endpoint base.
const DefaultAPIBase = "https://api.exa.ai"

// Result is one ranked search hit. The reservation engine only reads URL;
// Title and Snippet are carried for logging and debugging.
type Result struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Client is a minimal Exa search client.
type Client struct {
	hc      *http.Client
	apiBase string
	apiKey  string
}

// Option configures a Client.
type Option func(*Client)

// WithAPIBase overrides the API base URL (used in tests).
func WithAPIBase(base string) Option {
	return func(c *Client) { c.apiBase = base }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// NewClient creates a search client. The API key may be empty; the search
// call will then fail with the provider's auth error, which the engine
// reports as a system fault.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		hc:      &http.Client{Timeout: 15 * time.Second},
		apiBase: DefaultAPIBase,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchRequest struct {
	Query      string `json:"query"`
	NumResults int    `json:"numResults"`
	Text       bool   `json:"text"`
}

type searchResponse struct {
	Results []struct {
		URL   string `json:"url"`
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"results"`
}

// Search returns up to numResults hits for the query, in rank order.
func (c *Client) Search(ctx context.Context, query string, numResults int) ([]Result, error) {
	payload, err := json.Marshal(searchRequest{
		Query:      query,
		NumResults: numResults,
		Text:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("search failed (status=%d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]Result, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, Result{URL: r.URL, Title: r.Title, Snippet: r.Text})
	}
	return results, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
