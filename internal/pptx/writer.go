package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/snonux/slidedeck/internal/deck"
)

// mediaTypes maps picture file extensions to content types
var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// mediaPart is a picture file stored in the package
type mediaPart struct {
	source string // Local file
	name   string // Part name below ppt/media
}

// part is an XML part of the package
type part struct {
	name string
	data string
}

// Writer renders one deck into a .pptx package
type Writer struct {
	deck  *deck.Deck
	title string
	now   func() time.Time

	media      map[string]*mediaPart
	mediaOrder []*mediaPart
}

// NewWriter creates a writer for the deck
func NewWriter(d *deck.Deck) *Writer {
	return &Writer{
		deck:  d,
		title: "slidedeck",
		now:   time.Now,
		media: make(map[string]*mediaPart),
	}
}

// SetTitle sets the document title stored in the core properties
func (w *Writer) SetTitle(title string) {
	if title != "" {
		w.title = title
	}
}

// Write renders the deck into outputPath
func Write(outputPath string, d *deck.Deck) error {
	return NewWriter(d).Write(outputPath)
}

// Write renders the deck into outputPath. On error no file is left behind.
func (w *Writer) Write(outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create presentation file: %w", err)
	}

	if err := w.writePackage(file); err != nil {
		file.Close()
		os.Remove(outputPath)
		return fmt.Errorf("failed to write presentation: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("failed to write presentation: %w", err)
	}
	return nil
}

func (w *Writer) writePackage(out io.Writer) error {
	archive := zip.NewWriter(out)

	// Slides first: they register the media the other parts refer to
	slides := make([]string, len(w.deck.Slides))
	slideRels := make([]string, len(w.deck.Slides))
	for i, slide := range w.deck.Slides {
		xmlText, rels, err := w.renderSlide(slide)
		if err != nil {
			archive.Close()
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
		slides[i] = xmlText
		slideRels[i] = rels
	}

	parts := []part{
		{"[Content_Types].xml", w.contentTypes()},
		{"_rels/.rels", rootRels()},
		{"docProps/app.xml", w.appProps()},
		{"docProps/core.xml", w.coreProps()},
		{"ppt/presentation.xml", w.presentation()},
		{"ppt/_rels/presentation.xml.rels", w.presentationRels()},
		{"ppt/presProps.xml", presPropsXML},
		{"ppt/viewProps.xml", viewPropsXML},
		{"ppt/tableStyles.xml", tableStylesXML},
		{"ppt/theme/theme1.xml", strings.ReplaceAll(themeXML, "{{FONT}}", escape(deck.FontFamily))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", relationships(
			relationship{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"},
			relationship{"rId2", relTheme, "../theme/theme1.xml"},
		)},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", relationships(
			relationship{"rId1", relSlideMaster, "../slideMasters/slideMaster1.xml"},
		)},
	}
	for i := range slides {
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slides[i]},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRels[i]},
		)
	}

	for _, p := range parts {
		writer, err := archive.Create(p.name)
		if err != nil {
			archive.Close()
			return err
		}
		if _, err := io.WriteString(writer, p.data); err != nil {
			archive.Close()
			return err
		}
	}

	for _, m := range w.mediaOrder {
		if err := copyMedia(archive, m); err != nil {
			archive.Close()
			return err
		}
	}

	return archive.Close()
}

// copyMedia stores a picture file in the package
func copyMedia(archive *zip.Writer, m *mediaPart) error {
	file, err := os.Open(m.source)
	if err != nil {
		return fmt.Errorf("failed to open picture: %w", err)
	}
	defer file.Close()

	// Pictures are already compressed
	writer, err := archive.CreateHeader(&zip.FileHeader{Name: "ppt/media/" + m.name, Method: zip.Store})
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, file)
	return err
}

// addMedia registers a picture and returns its part name
func (w *Writer) addMedia(source string) (string, error) {
	if m, ok := w.media[source]; ok {
		return m.name, nil
	}

	ext := strings.ToLower(filepath.Ext(source))
	if _, ok := mediaTypes[ext]; !ok {
		return "", fmt.Errorf("unsupported picture format: %s", source)
	}
	if _, err := os.Stat(source); err != nil {
		return "", fmt.Errorf("picture not found: %w", err)
	}

	m := &mediaPart{source: source, name: fmt.Sprintf("image%d%s", len(w.mediaOrder)+1, ext)}
	w.media[source] = m
	w.mediaOrder = append(w.mediaOrder, m)
	return m.name, nil
}

type relationship struct {
	id     string
	typ    string
	target string
}

func relationships(rels ...relationship) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + nsRel + `">`)
	for _, r := range rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.id, r.typ, escape(r.target))
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func rootRels() string {
	return relationships(
		relationship{"rId1", relOfficeDocument, "ppt/presentation.xml"},
		relationship{"rId2", relCore, "docProps/core.xml"},
		relationship{"rId3", relExtended, "docProps/app.xml"},
	)
}

func (w *Writer) contentTypes() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)

	seen := make(map[string]bool)
	for _, m := range w.mediaOrder {
		ext := strings.TrimPrefix(filepath.Ext(m.name), ".")
		if seen[ext] {
			continue
		}
		seen[ext] = true
		fmt.Fprintf(&b, `<Default Extension="%s" ContentType="%s"/>`, ext, mediaTypes["."+ext])
	}

	overrides := []struct {
		part string
		ct   string
	}{
		{"/ppt/presentation.xml", ctPresentation},
		{"/ppt/slideMasters/slideMaster1.xml", ctSlideMaster},
		{"/ppt/slideLayouts/slideLayout1.xml", ctSlideLayout},
		{"/ppt/theme/theme1.xml", ctTheme},
		{"/ppt/presProps.xml", ctPresProps},
		{"/ppt/viewProps.xml", ctViewProps},
		{"/ppt/tableStyles.xml", ctTableStyles},
		{"/docProps/core.xml", ctCore},
		{"/docProps/app.xml", ctExtended},
	}
	for _, o := range overrides {
		fmt.Fprintf(&b, `<Override PartName="%s" ContentType="%s"/>`, o.part, o.ct)
	}
	for i := range w.deck.Slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="%s"/>`, i+1, ctSlide)
	}

	b.WriteString(`</Types>`)
	return b.String()
}

// Presentation relationships: rId1 master, rId2 theme, rId3.. slides, then properties
func (w *Writer) presentationRels() string {
	rels := []relationship{
		{"rId1", relSlideMaster, "slideMasters/slideMaster1.xml"},
		{"rId2", relTheme, "theme/theme1.xml"},
	}
	for i := range w.deck.Slides {
		rels = append(rels, relationship{slideRelID(i), relSlide, fmt.Sprintf("slides/slide%d.xml", i+1)})
	}
	n := len(w.deck.Slides) + 3
	rels = append(rels,
		relationship{fmt.Sprintf("rId%d", n), relPresProps, "presProps.xml"},
		relationship{fmt.Sprintf("rId%d", n+1), relViewProps, "viewProps.xml"},
		relationship{fmt.Sprintf("rId%d", n+2), relTableStyles, "tableStyles.xml"},
	)
	return relationships(rels...)
}

func slideRelID(i int) string {
	return fmt.Sprintf("rId%d", i+3)
}

func (w *Writer) presentation() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + pmlNamespaces + ` saveSubsetFonts="1">`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	if len(w.deck.Slides) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := range w.deck.Slides {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="%s"/>`, 256+i, slideRelID(i))
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, w.deck.Size.W, w.deck.Size.H)
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, w.deck.Size.H, w.deck.Size.W)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (w *Writer) appProps() string {
	return xmlHeader + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
		`<Application>slidedeck</Application>` +
		fmt.Sprintf(`<Slides>%d</Slides>`, len(w.deck.Slides)) +
		`</Properties>`
}

func (w *Writer) coreProps() string {
	created := w.now().UTC().Format(time.RFC3339)
	return xmlHeader + `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + escape(w.title) + `</dc:title>` +
		`<dc:creator>slidedeck</dc:creator>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + created + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + created + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

// escape returns s with XML special characters escaped
func escape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return ""
	}
	return b.String()
}
