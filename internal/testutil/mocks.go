package testutil

import (
	"context"
	"fmt"
	stdimage "image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/snonux/slidedeck/internal"
	"codeberg.org/snonux/slidedeck/internal/image"
)

// MockSummarizer mocks a summary source
type MockSummarizer struct {
	Summaries map[string]string
	Errors    map[string]error

	mu    sync.Mutex
	Calls []string
}

// Summarize returns the configured summary or a default one
func (m *MockSummarizer) Summarize(ctx context.Context, keyword string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, keyword)
	m.mu.Unlock()

	if err, ok := m.Errors[keyword]; ok {
		return "", err
	}

	if text, ok := m.Summaries[keyword]; ok {
		return text, nil
	}

	// Default response
	return fmt.Sprintf("%s is a test keyword. It has two sentences.", keyword), nil
}

// Name returns the mock source name
func (m *MockSummarizer) Name() string {
	return "mock"
}

// CallCount returns how often Summarize was called
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// ImageSize is the pixel size of a generated candidate image
type ImageSize struct {
	Width, Height int
}

// MockImageFetcher writes real PNG files so orientation detection and
// existence checks behave like they do for downloaded images.
type MockImageFetcher struct {
	Dir    string
	Sizes  map[string][]ImageSize // Per keyword, per candidate index
	Errors map[string]error       // Keyed by "keyword/index"

	mu    sync.Mutex
	Calls []string
}

// FetchCandidate creates the candidate image file or returns the configured error
func (m *MockImageFetcher) FetchCandidate(ctx context.Context, keyword string, index int) (image.Fetched, error) {
	key := fmt.Sprintf("%s/%d", keyword, index)
	m.mu.Lock()
	m.Calls = append(m.Calls, key)
	m.mu.Unlock()

	url := fmt.Sprintf("https://images.example/%s/%d", internal.SanitizeFilename(keyword), index)
	if err, ok := m.Errors[key]; ok {
		return image.Fetched{URL: url, Orientation: image.Unknown}, err
	}

	size := ImageSize{Width: 1000, Height: 800}
	if sizes, ok := m.Sizes[keyword]; ok && index < len(sizes) {
		size = sizes[index]
	}

	path := filepath.Join(m.Dir, fmt.Sprintf("%s_%d.png", internal.SanitizeFilename(keyword), index))
	if err := WritePNG(path, size.Width, size.Height); err != nil {
		return image.Fetched{URL: url, Orientation: image.Unknown}, err
	}

	return image.Fetched{
		Path:        path,
		URL:         url,
		Orientation: image.Classify(size.Width, size.Height),
	}, nil
}

// WritePNG writes a blank PNG of the given size, creating parent directories
func WritePNG(path string, width, height int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, stdimage.NewGray(stdimage.Rect(0, 0, width, height))); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
