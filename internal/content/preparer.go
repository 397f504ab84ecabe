package content

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/slidedeck/internal/image"
	"codeberg.org/snonux/slidedeck/internal/summary"
)

// FallbackSummary is used when no summary could be obtained for a keyword
const FallbackSummary = "요약 정보를 가져오지 못했습니다."

// DefaultImagesPerKeyword is the number of image slots in the photo preset
const DefaultImagesPerKeyword = 2

// ImageFetcher fetches candidate number index for a keyword.
// *image.Downloader implements it.
type ImageFetcher interface {
	FetchCandidate(ctx context.Context, keyword string, index int) (image.Fetched, error)
}

// Options configures a Preparer
type Options struct {
	ImagesPerKeyword int    // 0 disables images
	Fallback         string // Summary used on failure, FallbackSummary if empty
	Parallel         int    // Keywords prepared concurrently by PrepareAll, 1 if < 1
}

// Preparer builds ContentRecords. It never fails: summary errors turn into
// the fallback text and image errors into placeholder slots.
type Preparer struct {
	source  summary.Source
	images  ImageFetcher
	options Options
	logger  *zap.Logger
}

// NewPreparer creates a preparer. images may be nil when ImagesPerKeyword is 0.
func NewPreparer(source summary.Source, images ImageFetcher, options Options, logger *zap.Logger) *Preparer {
	if options.Fallback == "" {
		options.Fallback = FallbackSummary
	}
	if options.Parallel < 1 {
		options.Parallel = 1
	}
	if images == nil {
		options.ImagesPerKeyword = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Preparer{
		source:  source,
		images:  images,
		options: options,
		logger:  logger,
	}
}

// Prepare builds the record for one keyword
func (p *Preparer) Prepare(ctx context.Context, keyword string) ContentRecord {
	record := ContentRecord{
		Keyword: keyword,
		Summary: p.summarize(ctx, keyword),
	}

	for i := 0; i < p.options.ImagesPerKeyword; i++ {
		record.Images = append(record.Images, p.fetchImage(ctx, keyword, i))
	}

	return record
}

func (p *Preparer) summarize(ctx context.Context, keyword string) string {
	if p.source == nil {
		return p.options.Fallback
	}

	text, err := p.source.Summarize(ctx, keyword)
	if err != nil {
		p.logger.Warn("summary failed, using fallback",
			zap.String("keyword", keyword),
			zap.String("source", p.source.Name()),
			zap.Error(err))
		return p.options.Fallback
	}

	text = Normalize(text)
	if strings.TrimSpace(text) == "" {
		p.logger.Warn("empty summary, using fallback",
			zap.String("keyword", keyword),
			zap.String("source", p.source.Name()))
		return p.options.Fallback
	}
	return text
}

func (p *Preparer) fetchImage(ctx context.Context, keyword string, index int) ImageRef {
	fetched, err := p.images.FetchCandidate(ctx, keyword, index)
	if err != nil || fetched.Path == "" {
		p.logger.Warn("image unavailable, using placeholder",
			zap.String("keyword", keyword),
			zap.Int("index", index),
			zap.String("url", fetched.URL),
			zap.Error(err))
		return ImageRef{
			URL:         fetched.URL,
			Orientation: image.Unknown,
			Status:      StatusPlaceholder,
		}
	}

	p.logger.Debug("image fetched",
		zap.String("keyword", keyword),
		zap.Int("index", index),
		zap.String("path", fetched.Path),
		zap.String("orientation", string(fetched.Orientation)))

	return ImageRef{
		Path:        fetched.Path,
		URL:         fetched.URL,
		Orientation: fetched.Orientation,
		Status:      StatusFetched,
	}
}

// PrepareAll prepares every keyword and returns the records in input order.
// With Parallel > 1 keywords are prepared concurrently.
func (p *Preparer) PrepareAll(ctx context.Context, keywords []string) []ContentRecord {
	records := make([]ContentRecord, len(keywords))

	if p.options.Parallel == 1 {
		for i, keyword := range keywords {
			records[i] = p.Prepare(ctx, keyword)
		}
		return records
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.options.Parallel)
	for i, keyword := range keywords {
		g.Go(func() error {
			records[i] = p.Prepare(gctx, keyword)
			return nil
		})
	}
	_ = g.Wait() // Prepare never fails

	return records
}
