// Package fetch retrieves a page over plain HTTP and reduces it to
// readable text. It is the lightweight companion to the browser-driven
// engine, useful for quickly inspecting a candidate URL without spending a
// provider session.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultMaxLength caps extracted text when the caller passes 0.
const DefaultMaxLength = 2000

var client = &http.Client{Timeout: 10 * time.Second}

// Extract fetches rawURL and returns its visible text, capped at maxLen
// characters (DefaultMaxLength when 0). Scripts, styles and comments are
// dropped; block boundaries collapse to single newlines.
func Extract(ctx context.Context, rawURL string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch %s failed (status=%d)", rawURL, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var builder strings.Builder
	collectText(doc, &builder)

	text := strings.TrimSpace(builder.String())
	if len(text) > maxLen {
		text = text[:maxLen]
	}
	return text, nil
}

// collectText walks the parsed tree appending visible text, skipping
// script, style and comment nodes.
func collectText(n *html.Node, builder *strings.Builder) {
	if n.Type == html.CommentNode {
		return
	}
	if n.Type == html.ElementNode && isSkippedElement(strings.ToLower(n.Data)) {
		return
	}

	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text != "" {
			builder.WriteString(text)
			builder.WriteString("\n")
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, builder)
	}
}

func isSkippedElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "iframe", "svg", "head":
		return true
	}
	return false
}
