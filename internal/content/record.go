package content

import (
	"codeberg.org/snonux/slidedeck/internal/image"
)

// ImageStatus tells whether an image slot holds a usable local file
type ImageStatus int

const (
	StatusPlaceholder ImageStatus = iota
	StatusFetched
)

// String returns the wording used in the metadata file
func (s ImageStatus) String() string {
	if s == StatusFetched {
		return "downloaded"
	}
	return "placeholder"
}

// ImageRef is one image slot of a record. An empty Path means placeholder.
type ImageRef struct {
	Path        string
	URL         string
	Orientation image.Orientation
	Status      ImageStatus
}

// Placeholder reports whether the slot has no usable file
func (r ImageRef) Placeholder() bool {
	return r.Path == "" || r.Status == StatusPlaceholder
}

// ContentRecord is everything prepared for one keyword. It is built once
// by the Preparer and not changed afterwards.
type ContentRecord struct {
	Keyword string
	Summary string
	Images  []ImageRef
}
