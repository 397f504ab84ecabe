// Package report writes the plain-text companions of a deck: a metadata
// log with every summary and image outcome, and a one-line-per-keyword
// summary file.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/slidedeck/internal/content"
)

// PlaceholderPath is printed instead of a local path for missing images
const PlaceholderPath = "placeholder"

// WriteMetadata writes one block per record to path. Image lines are only
// written when withImages is set.
func WriteMetadata(path string, records []content.ContentRecord, withImages bool) error {
	return writeFile(path, func(w io.Writer) error {
		return FormatMetadata(w, records, withImages)
	})
}

// FormatMetadata writes the metadata blocks to w
func FormatMetadata(w io.Writer, records []content.ContentRecord, withImages bool) error {
	for _, record := range records {
		if _, err := fmt.Fprintf(w, "[%s]\n요약: %s\n", record.Keyword, record.Summary); err != nil {
			return err
		}
		if withImages {
			for i, img := range record.Images {
				localPath := img.Path
				if localPath == "" {
					localPath = PlaceholderPath
				}
				if _, err := fmt.Fprintf(w, "이미지%d: %s | 원본: %s | 상태: %s\n", i+1, localPath, img.URL, img.Status); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes one "[keyword] summary" line per record to path
func WriteSummary(path string, records []content.ContentRecord) error {
	return writeFile(path, func(w io.Writer) error {
		return FormatSummary(w, records)
	})
}

// FormatSummary writes the summary lines to w
func FormatSummary(w io.Writer, records []content.ContentRecord) error {
	for _, record := range records {
		if _, err := fmt.Fprintf(w, "[%s] %s\n", record.Keyword, singleLine(record.Summary)); err != nil {
			return err
		}
	}
	return nil
}

// singleLine joins the lines of text with single spaces
func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	buf := bufio.NewWriter(file)
	if err := write(buf); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
