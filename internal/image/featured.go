package image

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const featuredBaseURL = "https://source.unsplash.com"

// FeaturedClient implements ImageSearcher for keyless featured-photo URLs.
// The provider answers one URL with a random matching photo; the sig
// parameter makes the candidates of one keyword differ.
type FeaturedClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFeaturedClient creates a new featured photo client
func NewFeaturedClient(baseURL string) *FeaturedClient {
	if baseURL == "" {
		baseURL = featuredBaseURL
	}
	return &FeaturedClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Search returns the single featured URL for the query and index
func (f *FeaturedClient) Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error) {
	if strings.TrimSpace(opts.Query) == "" {
		return nil, &SearchError{Provider: "featured", Code: "400", Message: "empty query"}
	}

	query := strings.ReplaceAll(url.QueryEscape(opts.Query), "+", "%20")
	return []SearchResult{
		{
			ID:     fmt.Sprintf("%d", opts.Index),
			URL:    fmt.Sprintf("%s/featured/?%s&sig=%d", f.baseURL, query, opts.Index),
			Source: "featured",
		},
	}, nil
}

// Download downloads an image from the given URL
func (f *FeaturedClient) Download(ctx context.Context, imageURL string) (io.ReadCloser, error) {
	return httpGet(ctx, f.httpClient, imageURL, nil)
}

// GetAttribution returns the required attribution text for an image
func (f *FeaturedClient) GetAttribution(result *SearchResult) string {
	return ""
}

// Name returns the name of the search provider
func (f *FeaturedClient) Name() string {
	return "featured"
}

// httpGet issues a GET request and returns the body of a 200 response
func httpGet(ctx context.Context, client *http.Client, rawURL string, header http.Header) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	return resp.Body, nil
}
