package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// WikipediaSource reads the lead extract of a Wikipedia article through the
// REST page summary endpoint
type WikipediaSource struct {
	baseURL    string
	httpClient *http.Client
}

// wikipediaSummary is the subset of the page summary response we use
type wikipediaSummary struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// NewWikipediaSource creates a new Wikipedia summary source
func NewWikipediaSource(config *Config) *WikipediaSource {
	baseURL := strings.TrimSuffix(config.WikipediaURL, "/")
	if baseURL == "" {
		baseURL = "https://" + defaultLanguage(config.Language) + ".wikipedia.org"
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &WikipediaSource{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Summarize fetches the article extract for keyword
func (s *WikipediaSource) Summarize(ctx context.Context, keyword string) (string, error) {
	title := strings.ReplaceAll(strings.TrimSpace(keyword), " ", "_")
	reqURL := s.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "slidedeck/1.0 (keyword slide generator)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", &SourceError{Source: "wikipedia", Code: "404", Message: "no article for " + keyword}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &SourceError{
			Source:  "wikipedia",
			Code:    fmt.Sprintf("%d", resp.StatusCode),
			Message: string(body),
		}
	}

	var summary wikipediaSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if summary.Type == "disambiguation" {
		return "", &SourceError{Source: "wikipedia", Message: "ambiguous keyword " + keyword}
	}

	extract := strings.TrimSpace(summary.Extract)
	if extract == "" {
		return "", &SourceError{Source: "wikipedia", Message: "empty extract for " + keyword}
	}
	return extract, nil
}

// Name returns the source name
func (s *WikipediaSource) Name() string {
	return "wikipedia"
}

func defaultLanguage(language string) string {
	if language == "" {
		return "ko"
	}
	return language
}
