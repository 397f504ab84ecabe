package deck

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"codeberg.org/snonux/slidedeck/internal/content"
	"codeberg.org/snonux/slidedeck/internal/image"
	"codeberg.org/snonux/slidedeck/internal/layout"
)

func kinds(d *Deck) []SlideKind {
	var out []SlideKind
	for _, s := range d.Slides {
		out = append(out, s.Kind)
	}
	return out
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name    string
		want    Preset
		wantErr bool
	}{
		{"", PresetText, false},
		{"text", PresetText, false},
		{"photo", PresetPhoto, false},
		{"video", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAssemble_TextOrder(t *testing.T) {
	long := strings.Repeat("가", 150) + "."
	records := []content.ContentRecord{
		{Keyword: "AI", Summary: long + " " + strings.Repeat("나", 80) + ". 끝."},
		{Keyword: "클라우드", Summary: "클라우드는 서비스입니다. 두 번째 문장."},
	}

	d := NewAssembler(DefaultOptions()).Assemble(records)

	want := []SlideKind{KindTitle, KindTOC, KindContent, KindContent, KindContent, KindSummary, KindClosing}
	if diff := cmp.Diff(want, kinds(d)); diff != "" {
		t.Fatalf("Slide order mismatch (-want +got):\n%s", diff)
	}

	if got := d.Slides[0].Texts(); len(got) != 1 || got[0] != "AI" {
		t.Errorf("Expected title headline 'AI', got %v", got)
	}

	wantTOC := []string{TOCTitle, "1. AI", "2. 클라우드", "3. 전체 요약", "4. Q&A"}
	if diff := cmp.Diff(wantTOC, d.Slides[1].Texts()); diff != "" {
		t.Errorf("TOC mismatch (-want +got):\n%s", diff)
	}

	// First group of a keyword carries the bold lead, later groups do not
	first := d.Slides[2].Shapes[1].Paragraphs[0]
	if first.Runs[0].Text != "AI — " || !first.Runs[0].Bold {
		t.Errorf("Expected bold lead on first group, got %+v", first.Runs)
	}
	second := d.Slides[3].Shapes[1].Paragraphs[0]
	if len(second.Runs) != 1 || second.Runs[0].Bold {
		t.Errorf("Expected no lead on second group, got %+v", second.Runs)
	}
	if d.Slides[3].Keyword != "AI" || d.Slides[4].Keyword != "클라우드" {
		t.Errorf("Unexpected content slide keywords %q, %q", d.Slides[3].Keyword, d.Slides[4].Keyword)
	}

	wantSummary := []string{SummaryTitle, "AI — " + long, "클라우드 — 클라우드는 서비스입니다."}
	if diff := cmp.Diff(wantSummary, d.Slides[5].Texts()); diff != "" {
		t.Errorf("Summary slide mismatch (-want +got):\n%s", diff)
	}

	if got := d.Slides[6].Texts(); len(got) != 1 || got[0] != ClosingText {
		t.Errorf("Expected closing text, got %v", got)
	}
}

func TestAssemble_TextOptionalSlides(t *testing.T) {
	records := []content.ContentRecord{{Keyword: "Go", Summary: "Go is fun."}}

	opts := DefaultOptions()
	opts.Title = false
	opts.TOC = false
	d := NewAssembler(opts).Assemble(records)

	want := []SlideKind{KindContent, KindSummary, KindClosing}
	if diff := cmp.Diff(want, kinds(d)); diff != "" {
		t.Errorf("Slide order mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_TextEmptySummary(t *testing.T) {
	d := NewAssembler(DefaultOptions()).Assemble([]content.ContentRecord{{Keyword: "Empty"}})

	if n := d.Count(KindContent); n != 1 {
		t.Fatalf("Expected one content slide for an empty summary, got %d", n)
	}
	if paragraphs := d.Slides[2].Shapes[1].Paragraphs; len(paragraphs) != 0 {
		t.Errorf("Expected no body paragraphs, got %d", len(paragraphs))
	}
}

func TestAssemble_NoRecordsSkipsTitle(t *testing.T) {
	d := NewAssembler(DefaultOptions()).Assemble(nil)
	want := []SlideKind{KindTOC, KindSummary, KindClosing}
	if diff := cmp.Diff(want, kinds(d)); diff != "" {
		t.Errorf("Slide order mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_Photo(t *testing.T) {
	records := []content.ContentRecord{
		{
			Keyword: "산",
			Summary: "산은 높습니다.",
			Images: []content.ImageRef{
				{Path: "a.png", Orientation: image.Vertical, Status: content.StatusFetched},
				{Path: "b.png", Orientation: image.Vertical, Status: content.StatusFetched},
			},
		},
		{
			Keyword: "바다",
			Summary: "바다는 넓습니다.",
			Images: []content.ImageRef{
				{URL: "https://x/0", Orientation: image.Unknown, Status: content.StatusPlaceholder},
				{URL: "https://x/1", Orientation: image.Unknown, Status: content.StatusPlaceholder},
			},
		},
	}

	opts := Options{Preset: PresetPhoto, Title: true, TOC: true, Exists: func(string) bool { return true }}
	d := NewAssembler(opts).Assemble(records)

	if len(d.Slides) != len(records) {
		t.Fatalf("Expected one slide per keyword, got %d", len(d.Slides))
	}

	first := d.Slides[0]
	if diff := cmp.Diff([]string{"산", "산은 높습니다."}, first.Texts()); diff != "" {
		t.Errorf("Text mismatch (-want +got):\n%s", diff)
	}
	if first.Shapes[0].Frame != layout.TextRegion(layout.DefaultSlideSize) {
		t.Errorf("Expected text in the left region, got %+v", first.Shapes[0].Frame)
	}
	pictures := first.Pictures()
	if len(pictures) != 2 {
		t.Fatalf("Expected 2 pictures, got %d", len(pictures))
	}
	if pictures[1].Frame.X <= pictures[0].Frame.X || pictures[1].Frame.Y <= pictures[0].Frame.Y {
		t.Errorf("Expected diagonal placement, got %+v and %+v", pictures[0].Frame, pictures[1].Frame)
	}

	second := d.Slides[1]
	if len(second.Pictures()) != 0 {
		t.Errorf("Expected no pictures, got %d", len(second.Pictures()))
	}
	texts := second.Texts()
	if texts[len(texts)-1] != ImageUnavailable {
		t.Errorf("Expected placeholder text, got %v", texts)
	}
}

func TestPlanRoundTrip(t *testing.T) {
	records := []content.ContentRecord{{Keyword: "Go", Summary: "Go is fun. Go is fast."}}
	d := NewAssembler(DefaultOptions()).Assemble(records)

	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := d.WritePlan(path); err != nil {
		t.Fatalf("WritePlan() failed: %v", err)
	}

	data, err := d.Plan()
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	for _, want := range []string{"kind: title", "kind: toc", "Go — ", "kind: closing"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Plan does not contain %q", want)
		}
	}

	loaded, err := ReadPlan(path)
	if err != nil {
		t.Fatalf("ReadPlan() failed: %v", err)
	}
	if diff := cmp.Diff(d, loaded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Plan mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPlan_Errors(t *testing.T) {
	if _, err := ReadPlan(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing plan")
	}
}
