// Package archive moves the outputs of a previous run out of the way
// before a new deck is generated.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNothingToArchive is returned when none of the outputs exist
var ErrNothingToArchive = errors.New("nothing to archive")

// ArchiveOutputs moves every existing path into a new timestamped
// directory below archiveDir and returns that directory. Paths are stored
// under their base names, so they must not share one.
func ArchiveOutputs(archiveDir string, paths ...string) (string, error) {
	var existing []string
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return "", ErrNothingToArchive
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	runDir := filepath.Join(archiveDir, fmt.Sprintf("run-%s", timestamp))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(runDir); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		runDir = filepath.Join(archiveDir, fmt.Sprintf("run-%s", timestamp))
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	for _, path := range existing {
		target := filepath.Join(runDir, filepath.Base(path))
		if err := os.Rename(path, target); err != nil {
			return runDir, fmt.Errorf("failed to archive %s: %w", path, err)
		}
	}

	return runDir, nil
}
