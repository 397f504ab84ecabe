package processor

import (
	"path/filepath"

	"codeberg.org/snonux/slidedeck/internal/cli"
	"codeberg.org/snonux/slidedeck/internal/content"
	"codeberg.org/snonux/slidedeck/internal/deck"
	"codeberg.org/snonux/slidedeck/internal/image"
	"codeberg.org/snonux/slidedeck/internal/layout"
	"codeberg.org/snonux/slidedeck/internal/summary"
)

// Config holds everything one run needs
type Config struct {
	InputFile   string
	OutputFile  string
	MetaFile    string
	SummaryFile string
	ImagesDir   string
	PlanFile    string // Optional YAML plan output
	FromPlan    string // Render this plan instead of reading InputFile
	ArchiveDir  string // Previous outputs are moved here first when set

	Preset           deck.Preset
	Title            bool
	TOC              bool
	Dedupe           bool
	CharLimit        int
	ImagesPerKeyword int
	Parallel         int

	Summary *summary.Config
	Image   *image.Config
}

// DefaultConfig returns the configuration of a run without flags
func DefaultConfig() *Config {
	return &Config{
		InputFile:        "input.txt",
		OutputFile:       "output.pptx",
		MetaFile:         "meta.txt",
		SummaryFile:      "summary.txt",
		ImagesDir:        "images",
		Preset:           deck.PresetText,
		Title:            true,
		TOC:              true,
		Dedupe:           true,
		CharLimit:        layout.DefaultCharLimit,
		ImagesPerKeyword: content.DefaultImagesPerKeyword,
		Parallel:         1,
		Summary:          summary.DefaultConfig(),
		Image:            &image.Config{Provider: "featured"},
	}
}

// ConfigFromFlags builds the run configuration from parsed flags
func ConfigFromFlags(flags *cli.Flags) (*Config, error) {
	preset, err := deck.ParsePreset(flags.Preset)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	config.InputFile = flags.InputFile
	config.OutputFile = flags.OutputFile
	config.MetaFile = flags.MetaFile
	config.SummaryFile = flags.SummaryFile
	config.ImagesDir = flags.ImagesDir
	config.PlanFile = flags.DumpPlan
	config.FromPlan = flags.FromPlan
	config.Preset = preset
	config.Title = !flags.NoTitle
	config.TOC = !flags.NoTOC
	config.CharLimit = flags.CharLimit
	config.ImagesPerKeyword = flags.ImagesPerSlot
	config.Parallel = flags.Parallel

	// Repeated keywords make sense as repeated photo slides only
	config.Dedupe = preset == deck.PresetText
	if flags.DedupeSet {
		config.Dedupe = flags.Dedupe
	}

	if flags.Archive {
		config.ArchiveDir = filepath.Join(filepath.Dir(flags.OutputFile), "archive")
	}

	config.Summary.Source = flags.SummarySource
	config.Summary.Language = flags.Language
	config.Summary.OpenAIKey = cli.GetOpenAIKey()
	config.Summary.OpenAIModel = flags.OpenAIModel
	config.Summary.OpenAIBaseURL = flags.OpenAIBaseURL
	config.Summary.GeminiKey = cli.GetGeminiKey()
	config.Summary.GeminiModel = flags.GeminiModel
	config.Summary.WikipediaURL = flags.WikipediaURL
	config.Summary.WebURLTemplate = flags.WebURL

	config.Image = &image.Config{
		Provider:    flags.ImageAPI,
		UnsplashKey: cli.GetUnsplashKey(),
		PixabayKey:  cli.GetPixabayKey(),
	}

	return config, nil
}

// withImages reports whether the run fetches pictures
func (c *Config) withImages() bool {
	return c.Preset == deck.PresetPhoto && c.ImagesPerKeyword > 0
}
