package image

import (
	"fmt"
	stdimage "image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"
)

// Orientation classifies the aspect ratio of an image
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
	Square     Orientation = "square"
	Unknown    Orientation = "unknown"
)

// aspectThreshold is how much longer one side must be to count as non-square
const aspectThreshold = 1.1

// Classify maps pixel dimensions to an orientation. A side has to exceed
// the other by more than 10% to make the image horizontal or vertical.
func Classify(width, height int) Orientation {
	if width <= 0 || height <= 0 {
		return Unknown
	}
	w, h := float64(width), float64(height)
	if h > w*aspectThreshold {
		return Vertical
	}
	if w > h*aspectThreshold {
		return Horizontal
	}
	return Square
}

// DetectOrientation reads the image header of path and classifies it.
// JPEG, PNG, GIF and WebP are supported.
func DetectOrientation(path string) (Orientation, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	cfg, _, err := stdimage.DecodeConfig(f)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read image header: %w", err)
	}
	return Classify(cfg.Width, cfg.Height), nil
}
