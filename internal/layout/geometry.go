package layout

import "math"

// EMU is a length in English Metric Units
type EMU int64

const (
	Inch  EMU = 914400
	Point EMU = 12700
)

// Inches converts a length in inches to EMU
func Inches(in float64) EMU {
	return EMU(math.Round(in * float64(Inch)))
}

// Pt converts a font or spacing size in points to EMU
func Pt(pt float64) EMU {
	return EMU(math.Round(pt * float64(Point)))
}

// Scale multiplies the length by f, rounded to a whole EMU
func (e EMU) Scale(f float64) EMU {
	return EMU(math.Round(float64(e) * f))
}

// Rect is a positioned box on a slide
type Rect struct {
	X, Y, W, H EMU
}

// SlideSize is the width and height of every slide in a deck
type SlideSize struct {
	W, H EMU
}

// DefaultSlideSize is the 4:3 10in x 7.5in slide
var DefaultSlideSize = SlideSize{W: 10 * Inch, H: Inches(7.5)}

// TextRegion is the left-hand block used for a heading and summary text
func TextRegion(size SlideSize) Rect {
	margin := Inches(0.5)
	return Rect{
		X: margin,
		Y: margin,
		W: size.W.Scale(0.4),
		H: size.H - 2*margin,
	}
}

// ImageRegion is the right-hand block available to pictures
func ImageRegion(size SlideSize) Rect {
	top := Inches(0.5)
	bottom := Inches(0.5)
	return Rect{
		X: size.W.Scale(0.45) + Inches(0.2),
		Y: top,
		W: size.W.Scale(0.55),
		H: size.H - top - bottom,
	}
}

// FullRegion is the slide area inside a uniform margin
func FullRegion(size SlideSize, margin EMU) Rect {
	return Rect{X: margin, Y: margin, W: size.W - 2*margin, H: size.H - 2*margin}
}
