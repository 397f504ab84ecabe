package deck

import (
	"fmt"

	"codeberg.org/snonux/slidedeck/internal/content"
	"codeberg.org/snonux/slidedeck/internal/layout"
)

// Preset selects how content records become slides
type Preset string

const (
	// PresetText paginates each summary over content slides and frames
	// them with title, table of contents, summary and closing slides.
	PresetText Preset = "text"

	// PresetPhoto renders one slide per keyword with its summary on the
	// left and its images on the right.
	PresetPhoto Preset = "photo"
)

// ParsePreset validates a preset name
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case PresetText, "":
		return PresetText, nil
	case PresetPhoto:
		return PresetPhoto, nil
	default:
		return "", fmt.Errorf("unknown preset: %s (want %s or %s)", name, PresetText, PresetPhoto)
	}
}

// Options configures an Assembler
type Options struct {
	Preset    Preset
	Title     bool // Include the title slide (text preset)
	TOC       bool // Include the table of contents slide (text preset)
	CharLimit int  // Sentence length cap per content slide, layout.DefaultCharLimit if 0
	Size      layout.SlideSize

	// Exists reports whether an image file is usable; nil checks the file system
	Exists func(string) bool
}

// DefaultOptions returns the text preset with every optional slide enabled
func DefaultOptions() Options {
	return Options{
		Preset:    PresetText,
		Title:     true,
		TOC:       true,
		CharLimit: layout.DefaultCharLimit,
		Size:      layout.DefaultSlideSize,
	}
}

// Assembler builds decks from content records
type Assembler struct {
	options Options
}

// NewAssembler creates an assembler, filling unset sizes and limits
func NewAssembler(options Options) *Assembler {
	if options.Preset == "" {
		options.Preset = PresetText
	}
	if options.CharLimit <= 0 {
		options.CharLimit = layout.DefaultCharLimit
	}
	if options.Size.W == 0 || options.Size.H == 0 {
		options.Size = layout.DefaultSlideSize
	}
	return &Assembler{options: options}
}

// Assemble builds the deck for records in their given order
func (a *Assembler) Assemble(records []content.ContentRecord) *Deck {
	d := &Deck{Size: a.options.Size}
	if a.options.Preset == PresetPhoto {
		for _, record := range records {
			d.Slides = append(d.Slides, a.photoSlide(record))
		}
		return d
	}

	if a.options.Title && len(records) > 0 {
		d.Slides = append(d.Slides, a.titleSlide(records[0].Keyword))
	}
	if a.options.TOC {
		d.Slides = append(d.Slides, a.tocSlide(records))
	}
	for _, record := range records {
		for i, group := range layout.Allocate(record, a.options.CharLimit) {
			d.Slides = append(d.Slides, a.contentSlide(record.Keyword, group, i == 0))
		}
	}
	d.Slides = append(d.Slides, a.summarySlide(records), a.closingSlide())

	return d
}

func (a *Assembler) heading(text string) Shape {
	frame := layout.Rect{
		X: layout.Inches(0.5),
		Y: layout.Inches(0.4),
		W: a.options.Size.W - layout.Inches(1),
		H: layout.Inches(1),
	}
	p := Paragraph{Runs: []Run{{Text: text, Bold: true, Color: HeadingColor}}, Size: HeadingSize}
	return textShape("Title", frame, p)
}

// body is the area below the heading
func (a *Assembler) body() layout.Rect {
	top := layout.Inches(1.6)
	return layout.Rect{
		X: layout.Inches(0.5),
		Y: top,
		W: a.options.Size.W - layout.Inches(1),
		H: a.options.Size.H - top - layout.Inches(0.5),
	}
}

// centered is a band across the middle of the slide
func (a *Assembler) centered(height layout.EMU) layout.Rect {
	return layout.Rect{
		X: layout.Inches(0.5),
		Y: (a.options.Size.H - height) / 2,
		W: a.options.Size.W - layout.Inches(1),
		H: height,
	}
}

func (a *Assembler) titleSlide(keyword string) Slide {
	p := Paragraph{
		Runs:  []Run{{Text: keyword, Bold: true, Color: HeadingColor}},
		Size:  HeadlineSize,
		Align: AlignCenter,
	}
	return Slide{
		Kind:    KindTitle,
		Keyword: keyword,
		Shapes:  []Shape{textShape("Headline", a.centered(layout.Inches(1.5)), p)},
	}
}

func (a *Assembler) tocSlide(records []content.ContentRecord) Slide {
	entries := make([]string, 0, len(records)+2)
	for _, record := range records {
		entries = append(entries, record.Keyword)
	}
	entries = append(entries, SummaryTitle, QATitle)

	paragraphs := make([]Paragraph, 0, len(entries))
	for i, entry := range entries {
		p := Paragraph{
			Runs: []Run{
				{Text: fmt.Sprintf("%d. ", i+1), Bold: true, Color: AccentColor},
				{Text: entry},
			},
			Size:       EntrySize,
			SpaceAfter: 6,
		}
		paragraphs = append(paragraphs, p)
	}

	return Slide{
		Kind:   KindTOC,
		Shapes: []Shape{a.heading(TOCTitle), textShape("Entries", a.body(), paragraphs...)},
	}
}

func (a *Assembler) contentSlide(keyword string, group layout.SlideGroup, first bool) Slide {
	paragraphs := make([]Paragraph, 0, len(group))
	for i, sentence := range group {
		p := Paragraph{Size: BodySize, SpaceAfter: 12}
		if first && i == 0 {
			p.Runs = append(p.Runs, Run{Text: layout.Lead(keyword), Bold: true, Color: AccentColor})
		}
		p.Runs = append(p.Runs, Run{Text: sentence})
		paragraphs = append(paragraphs, p)
	}

	return Slide{
		Kind:    KindContent,
		Keyword: keyword,
		Shapes:  []Shape{a.heading(keyword), textShape("Body", a.body(), paragraphs...)},
	}
}

func (a *Assembler) summarySlide(records []content.ContentRecord) Slide {
	paragraphs := make([]Paragraph, 0, len(records))
	for _, record := range records {
		p := Paragraph{
			Runs: []Run{
				{Text: layout.Lead(record.Keyword), Bold: true, Color: AccentColor},
				{Text: content.FirstSentence(record.Summary)},
			},
			Size:       BodySize,
			SpaceAfter: 6,
		}
		paragraphs = append(paragraphs, p)
	}

	return Slide{
		Kind:   KindSummary,
		Shapes: []Shape{a.heading(SummaryTitle), textShape("Body", a.body(), paragraphs...)},
	}
}

func (a *Assembler) closingSlide() Slide {
	p := Paragraph{
		Runs:  []Run{{Text: ClosingText, Bold: true, Color: HeadingColor}},
		Size:  HeadlineSize,
		Align: AlignCenter,
	}
	return Slide{
		Kind:   KindClosing,
		Shapes: []Shape{textShape("Closing", a.centered(layout.Inches(1.5)), p)},
	}
}

func (a *Assembler) photoSlide(record content.ContentRecord) Slide {
	heading := Paragraph{Runs: []Run{{Text: record.Keyword, Bold: true, Color: HeadingColor}}, Size: HeadingSize}
	summary := Paragraph{Runs: []Run{{Text: record.Summary}}, Size: BodySize, SpaceAfter: 12}

	slide := Slide{
		Kind:    KindContent,
		Keyword: record.Keyword,
		Shapes:  []Shape{textShape("Text", layout.TextRegion(a.options.Size), heading, summary)},
	}

	placement := layout.PlaceImages(record.Images, layout.ImageRegion(a.options.Size), a.options.Exists)
	if placement.Unavailable {
		slide.Shapes = append(slide.Shapes, textShape("Placeholder", placement.Region, plain(ImageUnavailable, BodySize)))
		return slide
	}
	for i, picture := range placement.Pictures {
		slide.Shapes = append(slide.Shapes, pictureShape(fmt.Sprintf("Picture %d", i+1), picture))
	}
	return slide
}
