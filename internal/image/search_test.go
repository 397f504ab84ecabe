package image

import (
	"bytes"
	"context"
	"fmt"
	stdimage "image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// mockSearcher implements ImageSearcher for testing
type mockSearcher struct {
	name          string
	searchResults []SearchResult
	searchErr     error
	downloadErr   error
	data          []byte
	lastOpts      *SearchOptions
}

func (m *mockSearcher) Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error) {
	m.lastOpts = opts
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if opts.Index >= len(m.searchResults) {
		return nil, nil
	}
	return m.searchResults[opts.Index:], nil
}

func (m *mockSearcher) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	if m.downloadErr != nil {
		return nil, m.downloadErr
	}
	if m.data != nil {
		return io.NopCloser(bytes.NewReader(m.data)), nil
	}
	return io.NopCloser(strings.NewReader("mock image data")), nil
}

func (m *mockSearcher) GetAttribution(result *SearchResult) string {
	return result.Attribution
}

func (m *mockSearcher) Name() string {
	return m.name
}

// pngBytes encodes a blank PNG of the given size
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, stdimage.NewGray(stdimage.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDefaultSearchOptions(t *testing.T) {
	opts := DefaultSearchOptions("인공지능")

	if opts.Query != "인공지능" {
		t.Errorf("Expected query '인공지능', got '%s'", opts.Query)
	}
	if opts.Language != "ko" {
		t.Errorf("Expected language 'ko', got '%s'", opts.Language)
	}
	if !opts.SafeSearch {
		t.Error("Expected SafeSearch to be true")
	}
	if opts.Index != 0 {
		t.Errorf("Expected Index 0, got %d", opts.Index)
	}
	if opts.ImageType != "photo" {
		t.Errorf("Expected ImageType 'photo', got '%s'", opts.ImageType)
	}
}

func TestSearchError(t *testing.T) {
	err := &SearchError{
		Provider: "test",
		Code:     "404",
		Message:  "Not found",
	}

	expected := "test: Not found"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestRateLimitError(t *testing.T) {
	err := &RateLimitError{
		Provider:     "test",
		RetryAfter:   60,
		LimitPerHour: 100,
	}

	expected := "test: rate limit exceeded"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestNewSearcher(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  bool
	}{
		{"nil config", nil, "featured", false},
		{"featured", &Config{Provider: "featured"}, "featured", false},
		{"unsplash", &Config{Provider: "unsplash", UnsplashKey: "key"}, "unsplash", false},
		{"unsplash without key", &Config{Provider: "unsplash"}, "", true},
		{"pixabay", &Config{Provider: "pixabay", PixabayKey: "key"}, "pixabay", false},
		{"unknown", &Config{Provider: "flickr"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher, err := NewSearcher(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSearcher() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && searcher.Name() != tt.wantName {
				t.Errorf("Expected provider %q, got %q", tt.wantName, searcher.Name())
			}
		})
	}
}

func TestFeaturedClient_Search(t *testing.T) {
	client := NewFeaturedClient("")

	opts := DefaultSearchOptions("machine learning")
	opts.Index = 1
	results, err := client.Search(context.Background(), opts)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	want := "https://source.unsplash.com/featured/?machine%20learning&sig=1"
	if results[0].URL != want {
		t.Errorf("Expected URL %s, got %s", want, results[0].URL)
	}

	if _, err := client.Search(context.Background(), DefaultSearchOptions("  ")); err == nil {
		t.Error("Expected error for empty query")
	}
}

func TestFeaturedClient_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sig") == "9" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, "jpeg bytes")
	}))
	defer server.Close()

	client := NewFeaturedClient(server.URL)

	body, err := client.Download(context.Background(), server.URL+"/featured/?x&sig=0")
	if err != nil {
		t.Fatalf("Download() failed: %v", err)
	}
	data, _ := io.ReadAll(body)
	body.Close()
	if string(data) != "jpeg bytes" {
		t.Errorf("Unexpected body %q", data)
	}

	if _, err := client.Download(context.Background(), server.URL+"/featured/?x&sig=9"); err == nil {
		t.Error("Expected error for non-200 status")
	}
}

func TestPixabayClient_Search(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"total": 1, "totalHits": 1, "hits": [
			{"id": 42, "tags": "cloud, sky", "previewURL": "https://cdn.example/p.jpg",
			 "webformatURL": "https://cdn.example/w.jpg", "webformatWidth": 640, "webformatHeight": 427, "user": "alice"}
		]}`)
	}))
	defer server.Close()

	client, err := NewSearcher(&Config{Provider: "pixabay", PixabayKey: "key", BaseURL: server.URL + "/api/"})
	if err != nil {
		t.Fatalf("NewSearcher() failed: %v", err)
	}

	results, err := client.Search(context.Background(), DefaultSearchOptions("클라우드"))
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if gotQuery != "클라우드" {
		t.Errorf("Expected query 클라우드, got %s", gotQuery)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Width != 640 || results[0].Height != 427 {
		t.Errorf("Unexpected size %dx%d", results[0].Width, results[0].Height)
	}
	if results[0].ID != "42" || results[0].URL != "https://cdn.example/w.jpg" {
		t.Errorf("Unexpected result %+v", results[0])
	}
	if results[0].Attribution != "Image by alice from Pixabay" {
		t.Errorf("Unexpected attribution %q", results[0].Attribution)
	}
}

func TestPixabayClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewPixabayClient("key")
	client.baseURL = server.URL

	_, err := client.Search(context.Background(), DefaultSearchOptions("x"))
	if _, ok := err.(*RateLimitError); !ok {
		t.Errorf("Expected RateLimitError, got %v", err)
	}
}

func TestUnsplashClient_Search(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/search/photos" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"total": 2, "total_pages": 1, "results": [
			{"id": "a1", "width": 4000, "height": 3000, "alt_description": "desk",
			 "urls": {"regular": "https://images.example/a1.jpg", "thumb": "https://images.example/a1_t.jpg"},
			 "user": {"name": "Bob"}},
			{"id": "b2", "width": 3000, "height": 4500, "description": "tower",
			 "urls": {"regular": "https://images.example/b2.jpg"}, "user": {"name": "Eve"}}
		]}`)
	}))
	defer server.Close()

	client, err := NewSearcher(&Config{Provider: "unsplash", UnsplashKey: "secret", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewSearcher() failed: %v", err)
	}

	results, err := client.Search(context.Background(), DefaultSearchOptions("office"))
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if gotAuth != "Client-ID secret" {
		t.Errorf("Expected Client-ID authorization, got %q", gotAuth)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Description != "desk" || results[1].Description != "tower" {
		t.Errorf("Unexpected descriptions %q, %q", results[0].Description, results[1].Description)
	}
	if results[1].Attribution != "Photo by Eve on Unsplash" {
		t.Errorf("Unexpected attribution %q", results[1].Attribution)
	}
}

func TestClients_CandidateIndexSelectsPage(t *testing.T) {
	tests := []struct {
		name        string
		newSearcher func(baseURL string) ImageSearcher
		wantPerPage string
	}{
		{
			name: "pixabay",
			newSearcher: func(baseURL string) ImageSearcher {
				client := NewPixabayClient("key")
				client.baseURL = baseURL
				return client
			},
			wantPerPage: "3",
		},
		{
			name: "unsplash",
			newSearcher: func(baseURL string) ImageSearcher {
				client, _ := NewUnsplashClient("key")
				client.baseURL = baseURL
				return client
			},
			wantPerPage: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pages, perPages []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query := r.URL.Query()
				pages = append(pages, query.Get("page"))
				perPages = append(perPages, query.Get("per_page"))
				page := query.Get("page")
				fmt.Fprintf(w, `{"hits": [{"id": %[1]s, "webformatURL": "https://cdn.example/%[1]s.jpg", "user": "u"}],
					"results": [{"id": "p%[1]s", "urls": {"regular": "https://cdn.example/%[1]s.jpg"}, "user": {"name": "u"}}]}`, page)
			}))
			defer server.Close()

			searcher := tt.newSearcher(server.URL)
			var urls []string
			for index := 0; index < 2; index++ {
				opts := DefaultSearchOptions("바다")
				opts.Index = index
				results, err := searcher.Search(context.Background(), opts)
				if err != nil {
					t.Fatalf("Search(%d) failed: %v", index, err)
				}
				if len(results) != 1 {
					t.Fatalf("Search(%d) returned %d results, want 1", index, len(results))
				}
				urls = append(urls, results[0].URL)
			}

			if strings.Join(pages, ",") != "1,2" {
				t.Errorf("Expected pages 1,2 for candidates 0,1, got %v", pages)
			}
			for _, perPage := range perPages {
				if perPage != tt.wantPerPage {
					t.Errorf("Expected per_page %s, got %s", tt.wantPerPage, perPage)
				}
			}
			if urls[0] == urls[1] {
				t.Errorf("Expected different photos per candidate, got %v", urls)
			}
		})
	}
}

func TestPixabayClient_NoHits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"totalHits": 0, "hits": []}`)
	}))
	defer server.Close()

	client := NewPixabayClient("key")
	client.baseURL = server.URL

	results, err := client.Search(context.Background(), DefaultSearchOptions("없는말"))
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestRateLimitError_RetryAfterHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, _ := NewUnsplashClient("key")
	client.baseURL = server.URL

	_, err := client.Search(context.Background(), DefaultSearchOptions("x"))
	rateErr, ok := err.(*RateLimitError)
	if !ok {
		t.Fatalf("Expected RateLimitError, got %v", err)
	}
	if rateErr.RetryAfter != 120 {
		t.Errorf("Expected RetryAfter 120, got %d", rateErr.RetryAfter)
	}
}

func TestUnsplashClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, _ := NewUnsplashClient("bad")
	client.baseURL = server.URL

	_, err := client.Search(context.Background(), DefaultSearchOptions("x"))
	searchErr, ok := err.(*SearchError)
	if !ok {
		t.Fatalf("Expected SearchError, got %v", err)
	}
	if searchErr.Code != "401" {
		t.Errorf("Expected code 401, got %s", searchErr.Code)
	}
}

func TestMapOrientation(t *testing.T) {
	tests := map[string]string{
		"horizontal": "landscape",
		"vertical":   "portrait",
		"square":     "squarish",
		"all":        "",
	}
	for in, want := range tests {
		if got := mapOrientation(in); got != want {
			t.Errorf("mapOrientation(%q) = %q, want %q", in, got, want)
		}
	}
}
