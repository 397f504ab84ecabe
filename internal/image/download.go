package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"codeberg.org/snonux/slidedeck/internal"
)

// DownloadOptions configures image download behavior
type DownloadOptions struct {
	OutputDir         string // Directory to save images
	OverwriteExisting bool   // Whether to overwrite existing files
	CreateDir         bool   // Create output directory if it doesn't exist
	MaxSizeBytes      int64  // Maximum file size to download (0 = no limit)
}

// DefaultDownloadOptions returns sensible defaults for image downloads
func DefaultDownloadOptions() *DownloadOptions {
	return &DownloadOptions{
		OutputDir:         "images",
		OverwriteExisting: true,
		CreateDir:         true,
		MaxSizeBytes:      10 * 1024 * 1024, // 10MB
	}
}

// Fetched describes the outcome of fetching one candidate image.
// URL is always set when a candidate was located, even if the fetch failed.
type Fetched struct {
	Path        string
	URL         string
	Orientation Orientation
}

// Downloader handles image downloads from search results
type Downloader struct {
	searcher ImageSearcher
	options  *DownloadOptions
	logger   *zap.Logger
}

// NewDownloader creates a new image downloader
func NewDownloader(searcher ImageSearcher, options *DownloadOptions, logger *zap.Logger) *Downloader {
	if options == nil {
		options = DefaultDownloadOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Downloader{
		searcher: searcher,
		options:  options,
		logger:   logger,
	}
}

// DownloadImage downloads a single image to the specified path. A partially
// written file is removed before an error is returned.
func (d *Downloader) DownloadImage(ctx context.Context, result *SearchResult, outputPath string) error {
	// Ensure directory exists
	if d.options.CreateDir {
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
		}
	}

	// Check if file already exists
	if !d.options.OverwriteExisting {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("file already exists: %s", outputPath)
		}
	}

	reader, err := d.searcher.Download(ctx, result.URL)
	if err != nil {
		return fmt.Errorf("failed to download image: %w", err)
	}
	defer reader.Close()

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := d.copyLimited(file, reader); err != nil {
		file.Close()
		os.Remove(outputPath)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	// Save attribution if required
	if attribution := d.searcher.GetAttribution(result); attribution != "" {
		attrPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + "_attribution.txt"
		if err := os.WriteFile(attrPath, []byte(attribution), 0644); err != nil {
			d.logger.Warn("failed to save attribution", zap.String("path", attrPath), zap.Error(err))
		}
	}

	return nil
}

// copyLimited copies reader into file honouring MaxSizeBytes
func (d *Downloader) copyLimited(file io.Writer, reader io.Reader) error {
	if d.options.MaxSizeBytes <= 0 {
		if _, err := io.Copy(file, reader); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	}

	written, err := io.CopyN(file, reader, d.options.MaxSizeBytes)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to write file: %w", err)
	}

	// Check if we hit the size limit
	if written == d.options.MaxSizeBytes {
		if _, err := reader.Read(make([]byte, 1)); err != io.EOF {
			return fmt.Errorf("image exceeds maximum size of %d bytes", d.options.MaxSizeBytes)
		}
	}
	return nil
}

// FetchCandidate locates candidate number index for keyword, downloads it
// and detects its orientation. On failure the returned Fetched carries the
// source locator (if one was found) and no path; nothing is left on disk.
func (d *Downloader) FetchCandidate(ctx context.Context, keyword string, index int) (Fetched, error) {
	opts := DefaultSearchOptions(keyword)
	opts.Index = index

	results, err := d.searcher.Search(ctx, opts)
	if err != nil {
		return Fetched{Orientation: Unknown}, fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return Fetched{Orientation: Unknown}, fmt.Errorf("no images found for query: %s", keyword)
	}

	result := results[0]
	fetched := Fetched{URL: result.URL, Orientation: Unknown}

	outputPath := filepath.Join(d.options.OutputDir, candidateFileName(keyword, result.URL, index))
	if err := d.DownloadImage(ctx, &result, outputPath); err != nil {
		return fetched, err
	}

	orientation, err := DetectOrientation(outputPath)
	if err != nil {
		d.removeCandidate(outputPath)
		return fetched, err
	}

	fetched.Path = outputPath
	fetched.Orientation = orientation
	return fetched, nil
}

// removeCandidate deletes a downloaded file and its attribution sidecar
func (d *Downloader) removeCandidate(outputPath string) {
	attrPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + "_attribution.txt"
	for _, p := range []string{outputPath, attrPath} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			d.logger.Warn("failed to remove partial image", zap.String("path", p), zap.Error(err))
		}
	}
}

// candidateFileName names the file of candidate index, e.g. "인공_지능_0.jpg"
func candidateFileName(keyword, imageURL string, index int) string {
	return fmt.Sprintf("%s_%d%s", internal.SanitizeFilename(keyword), index, extensionFromURL(imageURL))
}

// extensionFromURL returns the image extension of a URL path, or ".jpg"
func extensionFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".jpg"
	}

	switch ext := strings.ToLower(path.Ext(u.Path)); ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".jpg"
	}
}
