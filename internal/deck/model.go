package deck

import (
	"strings"

	"codeberg.org/snonux/slidedeck/internal/layout"
)

// Styling constants shared by every deck
const (
	FontFamily = "맑은 고딕"

	HeadlineSize = 40.0 // Title and closing slide headline
	HeadingSize  = 32.0 // Slide heading
	EntrySize    = 24.0 // Table of contents entries
	BodySize     = 18.0 // Body text

	HeadingColor = "1F3864"
	BodyColor    = "333333"
	AccentColor  = "2E75B6"
)

// Fixed slide texts
const (
	TOCTitle         = "목차"
	SummaryTitle     = "전체 요약"
	QATitle          = "Q&A"
	ClosingText      = "감사합니다"
	ImageUnavailable = "이미지를 불러올 수 없습니다."
)

// SlideKind identifies the role of a slide in the deck
type SlideKind string

const (
	KindTitle   SlideKind = "title"
	KindTOC     SlideKind = "toc"
	KindContent SlideKind = "content"
	KindSummary SlideKind = "summary"
	KindClosing SlideKind = "closing"
)

// ShapeKind identifies what a shape draws
type ShapeKind string

const (
	ShapeText    ShapeKind = "text"
	ShapePicture ShapeKind = "picture"
)

// Alignment of a paragraph
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// Run is a piece of text with uniform styling
type Run struct {
	Text  string `yaml:"text"`
	Bold  bool   `yaml:"bold,omitempty"`
	Color string `yaml:"color,omitempty"` // RRGGBB, BodyColor if empty
}

// Paragraph is a line of runs. Size and SpaceAfter are in points.
type Paragraph struct {
	Runs       []Run     `yaml:"runs"`
	Size       float64   `yaml:"size"`
	SpaceAfter float64   `yaml:"space_after,omitempty"`
	Align      Alignment `yaml:"align,omitempty"`
}

// Text returns the concatenated text of all runs
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Shape is a text box or a picture positioned on a slide
type Shape struct {
	Kind       ShapeKind   `yaml:"kind"`
	Name       string      `yaml:"name"`
	Frame      layout.Rect `yaml:"frame"`
	Paragraphs []Paragraph `yaml:"paragraphs,omitempty"`
	Image      string      `yaml:"image,omitempty"` // Local file of a picture
}

// Slide is one slide of the deck
type Slide struct {
	Kind    SlideKind `yaml:"kind"`
	Keyword string    `yaml:"keyword,omitempty"`
	Shapes  []Shape   `yaml:"shapes"`
}

// Texts returns the text of every paragraph on the slide in shape order
func (s Slide) Texts() []string {
	var texts []string
	for _, shape := range s.Shapes {
		for _, p := range shape.Paragraphs {
			texts = append(texts, p.Text())
		}
	}
	return texts
}

// Pictures returns the picture shapes of the slide
func (s Slide) Pictures() []Shape {
	var pictures []Shape
	for _, shape := range s.Shapes {
		if shape.Kind == ShapePicture {
			pictures = append(pictures, shape)
		}
	}
	return pictures
}

// Deck is an ordered list of slides of one size
type Deck struct {
	Size   layout.SlideSize `yaml:"size"`
	Slides []Slide          `yaml:"slides"`
}

// Count returns the number of slides per kind
func (d *Deck) Count(kind SlideKind) int {
	n := 0
	for _, s := range d.Slides {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

func textShape(name string, frame layout.Rect, paragraphs ...Paragraph) Shape {
	return Shape{Kind: ShapeText, Name: name, Frame: frame, Paragraphs: paragraphs}
}

func pictureShape(name string, picture layout.Picture) Shape {
	return Shape{Kind: ShapePicture, Name: name, Frame: picture.Frame, Image: picture.Path}
}

func plain(text string, size float64) Paragraph {
	return Paragraph{Runs: []Run{{Text: text}}, Size: size}
}
