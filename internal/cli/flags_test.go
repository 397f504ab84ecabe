package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"InputFile", flags.InputFile, "input.txt"},
		{"OutputFile", flags.OutputFile, "output.pptx"},
		{"MetaFile", flags.MetaFile, "meta.txt"},
		{"SummaryFile", flags.SummaryFile, "summary.txt"},
		{"ImagesDir", flags.ImagesDir, "images"},
		{"Preset", flags.Preset, "text"},
		{"CharLimit", flags.CharLimit, 200},
		{"ImageAPI", flags.ImageAPI, "featured"},
		{"ImagesPerSlot", flags.ImagesPerSlot, 2},
		{"SummarySource", flags.SummarySource, "template"},
		{"Language", flags.Language, "ko"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
		{"Parallel", flags.Parallel, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Verbose", flags.Verbose},
		{"Archive", flags.Archive},
		{"ListModels", flags.ListModels},
		{"NoTitle", flags.NoTitle},
		{"NoTOC", flags.NoTOC},
		{"Dedupe", flags.Dedupe},
		{"DedupeSet", flags.DedupeSet},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"DumpPlan", flags.DumpPlan},
		{"FromPlan", flags.FromPlan},
		{"OpenAIBaseURL", flags.OpenAIBaseURL},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}
