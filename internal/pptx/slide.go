package pptx

import (
	"fmt"
	"math"
	"strings"

	"codeberg.org/snonux/slidedeck/internal/deck"
)

// renderSlide returns the slide XML and its relationships part
func (w *Writer) renderSlide(slide deck.Slide) (string, string, error) {
	rels := []relationship{{"rId1", relSlideLayout, "../slideLayouts/slideLayout1.xml"}}

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + pmlNamespaces + `><p:cSld><p:spTree>`)
	b.WriteString(emptyGroup)

	for i, shape := range slide.Shapes {
		id := i + 2 // 1 is the shape tree itself
		switch shape.Kind {
		case deck.ShapeText:
			writeTextShape(&b, id, shape)
		case deck.ShapePicture:
			name, err := w.addMedia(shape.Image)
			if err != nil {
				return "", "", err
			}
			relID := fmt.Sprintf("rId%d", len(rels)+1)
			rels = append(rels, relationship{relID, relImage, "../media/" + name})
			writePicture(&b, id, relID, shape)
		default:
			return "", "", fmt.Errorf("unknown shape kind: %s", shape.Kind)
		}
	}

	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String(), relationships(rels...), nil
}

func writeXfrm(b *strings.Builder, shape deck.Shape) {
	f := shape.Frame
	fmt.Fprintf(b, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, f.X, f.Y, f.W, f.H)
}

func writeTextShape(b *strings.Builder, id int, shape deck.Shape) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, escape(shape.Name))
	b.WriteString(`<p:spPr>`)
	writeXfrm(b, shape)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
	b.WriteString(`<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)

	if len(shape.Paragraphs) == 0 {
		fmt.Fprintf(b, `<a:p><a:endParaRPr lang="ko-KR" sz="%d"/></a:p>`, hundredths(deck.BodySize))
	}
	for _, p := range shape.Paragraphs {
		writeParagraph(b, p)
	}

	b.WriteString(`</p:txBody></p:sp>`)
}

func writeParagraph(b *strings.Builder, p deck.Paragraph) {
	b.WriteString(`<a:p>`)
	if p.Align == deck.AlignCenter || p.SpaceAfter > 0 {
		b.WriteString(`<a:pPr`)
		if p.Align == deck.AlignCenter {
			b.WriteString(` algn="ctr"`)
		}
		b.WriteString(`>`)
		if p.SpaceAfter > 0 {
			fmt.Fprintf(b, `<a:spcAft><a:spcPts val="%d"/></a:spcAft>`, hundredths(p.SpaceAfter))
		}
		b.WriteString(`</a:pPr>`)
	}

	size := p.Size
	if size <= 0 {
		size = deck.BodySize
	}
	for _, r := range p.Runs {
		color := r.Color
		if color == "" {
			color = deck.BodyColor
		}
		bold := 0
		if r.Bold {
			bold = 1
		}
		fmt.Fprintf(b, `<a:r><a:rPr lang="ko-KR" sz="%d" b="%d" dirty="0">`, hundredths(size), bold)
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, escape(color))
		fmt.Fprintf(b, `<a:latin typeface="%[1]s"/><a:ea typeface="%[1]s"/>`, escape(deck.FontFamily))
		fmt.Fprintf(b, `</a:rPr><a:t>%s</a:t></a:r>`, escape(r.Text))
	}

	b.WriteString(`</a:p>`)
}

func writePicture(b *strings.Builder, id int, relID string, shape deck.Shape) {
	fmt.Fprintf(b, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="%s"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`, id, escape(shape.Name))
	fmt.Fprintf(b, `<p:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, relID)
	b.WriteString(`<p:spPr>`)
	writeXfrm(b, shape)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`)
}

// hundredths converts points to the 1/100 pt units of sz and spcPts
func hundredths(pt float64) int {
	return int(math.Round(pt * 100))
}
