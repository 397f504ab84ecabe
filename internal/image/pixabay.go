package image

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const pixabayAPIURL = "https://pixabay.com/api/"

// pixabayPageSize is the smallest per_page value the API accepts
const pixabayPageSize = 3

// PixabayClient implements ImageSearcher for the Pixabay API. Candidate i
// is the first hit of result page i+1, so each candidate costs one request
// and no two candidates of a keyword share a photo.
type PixabayClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	rateLimit  *rateLimiter
}

type pixabayResponse struct {
	TotalHits int `json:"totalHits"`
	Hits      []struct {
		ID              int    `json:"id"`
		Tags            string `json:"tags"`
		PreviewURL      string `json:"previewURL"`
		WebformatURL    string `json:"webformatURL"`
		WebformatWidth  int    `json:"webformatWidth"`
		WebformatHeight int    `json:"webformatHeight"`
		User            string `json:"user"`
	} `json:"hits"`
}

// NewPixabayClient creates a new Pixabay API client
func NewPixabayClient(apiKey string) *PixabayClient {
	return &PixabayClient{
		apiKey:     apiKey,
		baseURL:    pixabayAPIURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		rateLimit:  newRateLimiter(100, time.Minute),
	}
}

// Search returns the candidate photo for opts.Index
func (p *PixabayClient) Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error) {
	if err := p.rateLimit.wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	if p.apiKey != "" {
		params.Set("key", p.apiKey)
	}
	params.Set("q", opts.Query)
	params.Set("lang", opts.Language)
	params.Set("image_type", opts.ImageType)
	params.Set("safesearch", strconv.FormatBool(opts.SafeSearch))
	params.Set("per_page", strconv.Itoa(pixabayPageSize))
	params.Set("page", strconv.Itoa(opts.Index+1))
	if opts.Orientation != "all" && opts.Orientation != "" {
		params.Set("orientation", opts.Orientation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var page pixabayResponse
	if err := getJSON(p.httpClient, req, "pixabay", apiLimits{retryAfter: 60, limitPerHour: 5000}, &page); err != nil {
		return nil, err
	}
	if len(page.Hits) == 0 {
		return nil, nil
	}

	hit := page.Hits[0]
	return []SearchResult{{
		ID:           strconv.Itoa(hit.ID),
		URL:          hit.WebformatURL,
		ThumbnailURL: hit.PreviewURL,
		Width:        hit.WebformatWidth,
		Height:       hit.WebformatHeight,
		Description:  hit.Tags,
		Attribution:  fmt.Sprintf("Image by %s from Pixabay", hit.User),
		Source:       "pixabay",
	}}, nil
}

// Download downloads an image from the given URL
func (p *PixabayClient) Download(ctx context.Context, imageURL string) (io.ReadCloser, error) {
	return httpGet(ctx, p.httpClient, imageURL, nil)
}

// GetAttribution returns the required attribution text for an image
func (p *PixabayClient) GetAttribution(result *SearchResult) string {
	return result.Attribution
}

// Name returns the name of the search provider
func (p *PixabayClient) Name() string {
	return "pixabay"
}
