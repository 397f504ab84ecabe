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

const unsplashAPIURL = "https://api.unsplash.com"

// UnsplashClient implements ImageSearcher for the Unsplash API. Pages hold
// a single photo, so page i+1 is candidate i.
type UnsplashClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
	rateLimit  *rateLimiter
}

type unsplashSearchResponse struct {
	Results []struct {
		ID          string `json:"id"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		Description string `json:"description"`
		AltDesc     string `json:"alt_description"`
		URLs        struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

// NewUnsplashClient creates a new Unsplash API client
func NewUnsplashClient(accessKey string) (*UnsplashClient, error) {
	if accessKey == "" {
		return nil, fmt.Errorf("Unsplash access key is required")
	}

	return &UnsplashClient{
		accessKey:  accessKey,
		baseURL:    unsplashAPIURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		rateLimit:  newRateLimiter(50, time.Hour), // Demo application limit
	}, nil
}

// Search returns the candidate photo for opts.Index
func (u *UnsplashClient) Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error) {
	if err := u.rateLimit.wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", opts.Query)
	params.Set("per_page", "1")
	params.Set("page", strconv.Itoa(opts.Index+1))
	if opts.Language != "" {
		params.Set("lang", opts.Language)
	}
	if opts.SafeSearch {
		params.Set("content_filter", "high")
	}
	if orientation := mapOrientation(opts.Orientation); orientation != "" {
		params.Set("orientation", orientation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.accessKey)
	req.Header.Set("Accept-Version", "v1")

	var page unsplashSearchResponse
	if err := getJSON(u.httpClient, req, "unsplash", apiLimits{retryAfter: 3600, limitPerHour: 50}, &page); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(page.Results))
	for _, photo := range page.Results {
		description := photo.Description
		if description == "" {
			description = photo.AltDesc
		}

		results = append(results, SearchResult{
			ID:           photo.ID,
			URL:          photo.URLs.Regular,
			ThumbnailURL: photo.URLs.Thumb,
			Width:        photo.Width,
			Height:       photo.Height,
			Description:  description,
			Attribution:  fmt.Sprintf("Photo by %s on Unsplash", photo.User.Name),
			Source:       "unsplash",
		})
	}

	return results, nil
}

// Download downloads an image from the given URL
func (u *UnsplashClient) Download(ctx context.Context, imageURL string) (io.ReadCloser, error) {
	return httpGet(ctx, u.httpClient, imageURL, nil)
}

// GetAttribution returns the required attribution text for an image
func (u *UnsplashClient) GetAttribution(result *SearchResult) string {
	// Unsplash always requires attribution
	return result.Attribution
}

// Name returns the name of the search provider
func (u *UnsplashClient) Name() string {
	return "unsplash"
}

// mapOrientation maps our orientation values to Unsplash API values
func mapOrientation(orientation string) string {
	switch orientation {
	case "horizontal":
		return "landscape"
	case "vertical":
		return "portrait"
	case "square":
		return "squarish"
	default:
		return ""
	}
}
