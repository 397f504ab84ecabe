package layout

import (
	"os"

	"codeberg.org/snonux/slidedeck/internal/content"
	"codeberg.org/snonux/slidedeck/internal/image"
)

// Picture is an image file positioned on a slide
type Picture struct {
	Path  string
	Frame Rect
}

// Placement is the result of positioning a record's images. When
// Unavailable is set, Region holds the placeholder box and Pictures is
// empty.
type Placement struct {
	Dominant    image.Orientation
	Pictures    []Picture
	Unavailable bool
	Region      Rect
}

// gridPositions is the number of cells of the 2x2 grid that receive pictures
const gridPositions = 2

// FileExists reports whether path names an existing file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// PlaceImages positions the usable images inside region. An image is usable
// when it has a path and exists reports true for it; a nil exists checks
// the file system.
//
// If any usable image is horizontal or square the images are stacked in
// equal-height slots spanning the full region width. Otherwise they go on
// the diagonal of a 2x2 grid, which holds two pictures; further images
// are dropped.
func PlaceImages(images []content.ImageRef, region Rect, exists func(string) bool) Placement {
	if exists == nil {
		exists = FileExists
	}

	var valid []content.ImageRef
	for _, img := range images {
		if img.Path != "" && exists(img.Path) {
			valid = append(valid, img)
		}
	}

	if len(valid) == 0 {
		return Placement{Dominant: image.Unknown, Unavailable: true, Region: region}
	}

	dominant := image.Vertical
	for _, img := range valid {
		if img.Orientation == image.Horizontal || img.Orientation == image.Square {
			dominant = image.Horizontal
			break
		}
	}

	placement := Placement{Dominant: dominant, Region: region}
	if dominant == image.Horizontal {
		placement.Pictures = stack(valid, region)
	} else {
		placement.Pictures = diagonal(valid, region)
	}
	return placement
}

func stack(images []content.ImageRef, region Rect) []Picture {
	slot := region.H / EMU(len(images))
	pictures := make([]Picture, 0, len(images))
	for i, img := range images {
		pictures = append(pictures, Picture{
			Path: img.Path,
			Frame: Rect{
				X: region.X,
				Y: region.Y + slot*EMU(i),
				W: region.W,
				H: slot - Inches(0.2),
			},
		})
	}
	return pictures
}

func diagonal(images []content.ImageRef, region Rect) []Picture {
	cellW := region.W / 2
	cellH := region.H / 2
	positions := [gridPositions][2]EMU{
		{region.X, region.Y},
		{region.X + cellW, region.Y + cellH},
	}

	pictures := make([]Picture, 0, gridPositions)
	for i, img := range images {
		if i >= len(positions) {
			break
		}
		pictures = append(pictures, Picture{
			Path: img.Path,
			Frame: Rect{
				X: positions[i][0],
				Y: positions[i][1],
				W: cellW - Inches(0.1),
				H: cellH - Inches(0.1),
			},
		})
	}
	return pictures
}
