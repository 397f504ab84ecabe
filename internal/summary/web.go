package summary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

// WebSource fetches a web page for the keyword and keeps the leading part of
// its readable article text
type WebSource struct {
	urlTemplate string
	maxChars    int
	httpClient  *http.Client
}

// NewWebSource creates a new web page summary source
func NewWebSource(config *Config) (*WebSource, error) {
	if !strings.Contains(config.WebURLTemplate, "{keyword}") {
		return nil, fmt.Errorf("web URL template must contain {keyword}: %q", config.WebURLTemplate)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	maxChars := config.WebMaxChars
	if maxChars <= 0 {
		maxChars = 600
	}

	return &WebSource{
		urlTemplate: config.WebURLTemplate,
		maxChars:    maxChars,
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

// Summarize extracts the article text of the keyword page
func (s *WebSource) Summarize(ctx context.Context, keyword string) (string, error) {
	rawURL := strings.ReplaceAll(s.urlTemplate, "{keyword}", url.PathEscape(keyword))
	pageURL, err := url.Parse(rawURL)
	if err != nil || pageURL.Scheme == "" || pageURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; slidedeck/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &SourceError{
			Source:  "web",
			Code:    fmt.Sprintf("%d", resp.StatusCode),
			Message: fmt.Sprintf("unexpected status %d for %s", resp.StatusCode, rawURL),
		}
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}

	text := leadingText(article.TextContent, s.maxChars)
	if text == "" {
		return "", &SourceError{Source: "web", Message: "no readable text at " + rawURL}
	}
	return text, nil
}

// Name returns the source name
func (s *WebSource) Name() string {
	return "web"
}

// leadingText collapses whitespace and cuts text to at most maxChars runes,
// preferring to end on the last full sentence inside the limit
func leadingText(text string, maxChars int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	cut := string(runes[:maxChars])
	if i := strings.LastIndex(cut, "."); i > 0 {
		return cut[:i+1]
	}
	return cut
}
