package processor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"codeberg.org/snonux/slidedeck/internal/archive"
	"codeberg.org/snonux/slidedeck/internal/content"
	"codeberg.org/snonux/slidedeck/internal/deck"
	"codeberg.org/snonux/slidedeck/internal/image"
	"codeberg.org/snonux/slidedeck/internal/keywords"
	"codeberg.org/snonux/slidedeck/internal/pptx"
	"codeberg.org/snonux/slidedeck/internal/report"
	"codeberg.org/snonux/slidedeck/internal/summary"
)

// NoKeywordsMessage is printed when the input holds no [keyword] tags
const NoKeywordsMessage = "입력 파일에서 키워드를 찾을 수 없습니다."

// Result describes what a run produced
type Result struct {
	Keywords []string
	Records  []content.ContentRecord
	Slides   int
	Files    []string
}

// Processor handles the main deck generation logic
type Processor struct {
	config *Config
	source summary.Source
	images content.ImageFetcher
	logger *zap.Logger
}

// NewProcessor creates a processor with the summary and image sources
// named in config
func NewProcessor(ctx context.Context, config *Config, logger *zap.Logger) (*Processor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	source, err := summary.NewSource(ctx, config.Summary)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary source: %w", err)
	}

	var images content.ImageFetcher
	if config.withImages() {
		searcher, err := image.NewSearcher(config.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to create image source: %w", err)
		}
		options := image.DefaultDownloadOptions()
		options.OutputDir = config.ImagesDir
		images = image.NewDownloader(searcher, options, logger)
	}

	return NewProcessorWithSources(config, source, images, logger), nil
}

// NewProcessorWithSources creates a processor around the given sources.
// images may be nil for decks without pictures.
func NewProcessorWithSources(config *Config, source summary.Source, images content.ImageFetcher, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		config: config,
		source: source,
		images: images,
		logger: logger,
	}
}

// Run generates the deck and its text files
func (p *Processor) Run(ctx context.Context) (*Result, error) {
	if p.config.ArchiveDir != "" {
		if err := p.archivePrevious(); err != nil {
			return nil, err
		}
	}

	if p.config.FromPlan != "" {
		return p.renderPlan()
	}

	found, err := keywords.ReadFile(p.config.InputFile, p.config.Dedupe)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		fmt.Println(NoKeywordsMessage)
		return &Result{}, nil
	}

	fmt.Printf("Found %d keywords in %s\n", len(found), p.config.InputFile)
	p.logger.Debug("keywords read",
		zap.Strings("keywords", found),
		zap.Bool("dedupe", p.config.Dedupe))

	fmt.Printf("Preparing content (summary source: %s", p.source.Name())
	if p.config.withImages() {
		fmt.Printf(", %d images per keyword", p.config.ImagesPerKeyword)
	}
	fmt.Printf(")...\n")

	preparer := content.NewPreparer(p.source, p.fetcher(), content.Options{
		ImagesPerKeyword: p.imagesPerKeyword(),
		Parallel:         p.config.Parallel,
	}, p.logger)
	records := preparer.PrepareAll(ctx, found)

	assembler := deck.NewAssembler(deck.Options{
		Preset:    p.config.Preset,
		Title:     p.config.Title,
		TOC:       p.config.TOC,
		CharLimit: p.config.CharLimit,
	})
	d := assembler.Assemble(records)

	result := &Result{Keywords: found, Records: records, Slides: len(d.Slides)}

	writer := pptx.NewWriter(d)
	writer.SetTitle(found[0])
	if err := writer.Write(p.config.OutputFile); err != nil {
		return result, err
	}
	result.Files = append(result.Files, p.config.OutputFile)

	if p.config.PlanFile != "" {
		if err := d.WritePlan(p.config.PlanFile); err != nil {
			return result, err
		}
		result.Files = append(result.Files, p.config.PlanFile)
	}

	if err := report.WriteMetadata(p.config.MetaFile, records, p.config.withImages()); err != nil {
		return result, err
	}
	result.Files = append(result.Files, p.config.MetaFile)

	if err := report.WriteSummary(p.config.SummaryFile, records); err != nil {
		return result, err
	}
	result.Files = append(result.Files, p.config.SummaryFile)

	p.printDone(result)
	return result, nil
}

// fetcher returns the image source, or nil when the run has no pictures
func (p *Processor) fetcher() content.ImageFetcher {
	if !p.config.withImages() {
		return nil
	}
	return p.images
}

func (p *Processor) imagesPerKeyword() int {
	if !p.config.withImages() {
		return 0
	}
	return p.config.ImagesPerKeyword
}

// renderPlan writes the presentation of a previously dumped plan
func (p *Processor) renderPlan() (*Result, error) {
	d, err := deck.ReadPlan(p.config.FromPlan)
	if err != nil {
		return nil, err
	}
	if d.Size.W == 0 || d.Size.H == 0 {
		return nil, fmt.Errorf("plan %s has no slide size", p.config.FromPlan)
	}

	if err := pptx.Write(p.config.OutputFile, d); err != nil {
		return nil, err
	}

	result := &Result{Slides: len(d.Slides), Files: []string{p.config.OutputFile}}
	p.printDone(result)
	return result, nil
}

func (p *Processor) archivePrevious() error {
	runDir, err := archive.ArchiveOutputs(p.config.ArchiveDir,
		p.config.OutputFile, p.config.MetaFile, p.config.SummaryFile, p.config.PlanFile, p.config.ImagesDir)
	if errors.Is(err, archive.ErrNothingToArchive) {
		fmt.Println("No previous outputs to archive")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to archive previous outputs: %w", err)
	}

	fmt.Printf("Previous outputs archived to: %s\n", runDir)
	return nil
}

func (p *Processor) printDone(result *Result) {
	fmt.Printf("Slides generated: %d\n", result.Slides)
	for _, file := range result.Files {
		fmt.Printf("- %s\n", file)
	}
}
