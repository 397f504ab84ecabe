package image

import (
	"context"
	"fmt"
	"io"
	"time"
)

// defaultTimeout bounds every HTTP call made by the image sources
const defaultTimeout = 10 * time.Second

// SearchResult represents a single image search result
type SearchResult struct {
	ID           string // Unique identifier
	URL          string // Direct URL to the image
	ThumbnailURL string // URL to thumbnail version
	Width        int    // Image width in pixels, 0 if unknown
	Height       int    // Image height in pixels, 0 if unknown
	Description  string // Image description or tags
	Attribution  string // Attribution text if required
	Source       string // Source provider (e.g., "pixabay", "unsplash")
}

// SearchOptions configures the image search
type SearchOptions struct {
	Query       string // Search query (the keyword)
	Index       int    // Candidate index (0-based), each index asks for a different photo
	Language    string // Language code (default: "ko")
	SafeSearch  bool   // Enable safe search filtering
	ImageType   string // Type: "photo", "illustration", "vector", "all"
	Orientation string // Orientation: "horizontal", "vertical", "all"
}

// DefaultSearchOptions returns sensible defaults for keyword photo searches
func DefaultSearchOptions(query string) *SearchOptions {
	return &SearchOptions{
		Query:       query,
		Language:    "ko",
		SafeSearch:  true,
		ImageType:   "photo",
		Orientation: "all",
	}
}

// ImageSearcher defines the interface for image search providers
type ImageSearcher interface {
	// Search returns the candidates for opts.Index, best first
	Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error)

	// Download downloads an image from the given URL
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// GetAttribution returns the required attribution text for an image
	GetAttribution(result *SearchResult) string

	// Name returns the name of the search provider
	Name() string
}

// Config selects and configures an image provider
type Config struct {
	Provider    string // "featured", "unsplash" or "pixabay"
	UnsplashKey string
	PixabayKey  string
	BaseURL     string // Optional API base URL override
}

// NewSearcher creates the image provider named in the configuration
func NewSearcher(config *Config) (ImageSearcher, error) {
	if config == nil {
		config = &Config{Provider: "featured"}
	}

	switch config.Provider {
	case "featured", "":
		return NewFeaturedClient(config.BaseURL), nil
	case "unsplash":
		client, err := NewUnsplashClient(config.UnsplashKey)
		if err != nil {
			return nil, err
		}
		if config.BaseURL != "" {
			client.baseURL = config.BaseURL
		}
		return client, nil
	case "pixabay":
		client := NewPixabayClient(config.PixabayKey)
		if config.BaseURL != "" {
			client.baseURL = config.BaseURL
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown image provider: %s", config.Provider)
	}
}

// SearchError represents an error from an image search provider
type SearchError struct {
	Provider string
	Code     string
	Message  string
}

func (e *SearchError) Error() string {
	return e.Provider + ": " + e.Message
}

// RateLimitError indicates that the API rate limit has been exceeded
type RateLimitError struct {
	Provider     string
	RetryAfter   int // Seconds to wait before retry
	LimitPerHour int
	LimitPerDay  int
}

func (e *RateLimitError) Error() string {
	return e.Provider + ": rate limit exceeded"
}
