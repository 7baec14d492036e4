package pagelens

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tsawler/pagelens/analysis"
	"github.com/tsawler/pagelens/blocks"
	"github.com/tsawler/pagelens/classify"
	"github.com/tsawler/pagelens/images"
	"github.com/tsawler/pagelens/layout"
	"github.com/tsawler/pagelens/model"
	"github.com/tsawler/pagelens/tables"
)

// ProgressFunc is invoked after each page completes. It is observation only:
// it must not mutate the record and should return promptly, since the next
// page does not start until it returns.
type ProgressFunc func(completed, total int)

// Analyzer provides a fluent interface for running the structure-inference
// pipeline over a document. Each configuration method returns a new Analyzer
// instance, making a configured chain safe for concurrent reuse.
type Analyzer struct {
	source Source

	// Optional table-extraction backends
	ruled  tables.RuledTables
	scored tables.ScoredTables

	options  AnalyzeOptions
	log      zerolog.Logger
	progress ProgressFunc
}

// New creates an Analyzer over a page source with default options, a no-op
// logger, and no table backends; without backends, table extraction relies
// on the manual structural fallback alone.
func New(source Source) *Analyzer {
	return &Analyzer{
		source:  source,
		options: defaultOptions(),
		log:     zerolog.Nop(),
	}
}

// clone creates a shallow copy of the Analyzer with a deep copy of options.
// This keeps each chain method immutable.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		source:   a.source,
		ruled:    a.ruled,
		scored:   a.scored,
		options:  a.options.clone(),
		log:      a.log,
		progress: a.progress,
	}
}

// Pages restricts the run to the given zero-based page indices, in the order
// given. Out-of-range indices are ignored.
func (a *Analyzer) Pages(indices ...int) *Analyzer {
	c := a.clone()
	c.options.pages = append([]int(nil), indices...)
	return c
}

// SkipTables disables the table-extraction pipeline.
func (a *Analyzer) SkipTables() *Analyzer {
	c := a.clone()
	c.options.skipTables = true
	return c
}

// SkipImages disables image description and classification.
func (a *Analyzer) SkipImages() *Analyzer {
	c := a.clone()
	c.options.skipImages = true
	return c
}

// WithTableBackends sets the external table-extraction backends. Either may
// be nil to disable its strategies.
func (a *Analyzer) WithTableBackends(ruled tables.RuledTables, scored tables.ScoredTables) *Analyzer {
	c := a.clone()
	c.ruled = ruled
	c.scored = scored
	return c
}

// WithLogger sets the diagnostic logger. The default discards everything.
func (a *Analyzer) WithLogger(log zerolog.Logger) *Analyzer {
	c := a.clone()
	c.log = log
	return c
}

// OnProgress sets the progress callback.
func (a *Analyzer) OnProgress(fn ProgressFunc) *Analyzer {
	c := a.clone()
	c.progress = fn
	return c
}

// WithSegmenterConfig overrides the zone segmentation thresholds.
func (a *Analyzer) WithSegmenterConfig(cfg layout.SegmenterConfig) *Analyzer {
	c := a.clone()
	c.options.segmenter = cfg
	return c
}

// WithGridConfig overrides the grid detection thresholds.
func (a *Analyzer) WithGridConfig(cfg layout.GridConfig) *Analyzer {
	c := a.clone()
	c.options.grid = cfg
	return c
}

// WithBoxConfig overrides the visual box filters.
func (a *Analyzer) WithBoxConfig(cfg layout.BoxConfig) *Analyzer {
	c := a.clone()
	c.options.boxes = cfg
	return c
}

// Run processes the selected pages strictly in sequence and returns the
// ordered page records plus the document-level analysis.
//
// Cancellation is honored between pages, never mid-page, so the result never
// contains a half-populated record. Page-level failures (a backend error or
// a panic inside a stage) degrade that page to its best-effort partial state
// and are logged; they do not abort the run.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	if a.source == nil {
		return nil, errors.New("pagelens: nil source")
	}

	indices := a.pageIndices()
	pipeline := tables.NewPipeline(a.ruled, a.scored, a.log)

	pages := make([]*model.PageRecord, 0, len(indices))
	for n, index := range indices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a.log.Debug().Int("page", index).Msg("analyzing page")
		pages = append(pages, a.analyzePage(pipeline, index))

		if a.progress != nil {
			a.progress(n+1, len(indices))
		}
	}

	a.log.Info().Int("pages", len(pages)).Msg("analysis complete")

	return &Result{
		Pages:    pages,
		Analysis: analysis.Analyze(pages),
	}, nil
}

// pageIndices resolves the page selection against the source's page count.
func (a *Analyzer) pageIndices() []int {
	total := a.source.PageCount()

	if a.options.pages == nil {
		indices := make([]int, total)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	indices := make([]int, 0, len(a.options.pages))
	for _, i := range a.options.pages {
		if i >= 0 && i < total {
			indices = append(indices, i)
		}
	}
	return indices
}

// analyzePage runs every stage for one page. The record is built
// incrementally so a recovered panic still yields whatever stages completed.
func (a *Analyzer) analyzePage(pipeline *tables.Pipeline, index int) (record *model.PageRecord) {
	record = &model.PageRecord{Index: index}

	defer func() {
		if r := recover(); r != nil {
			a.log.Error().
				Int("page", index).
				Interface("panic", r).
				Msg("page analysis failed; emitting partial record")
		}
	}()

	data, err := a.source.Page(index)
	if err != nil {
		a.log.Warn().Err(err).Int("page", index).Msg("backend failed to load page")
		return record
	}

	record.Width = data.Width
	record.Height = data.Height
	record.Text = data.Text

	textBlocks := blocks.Aggregate(data.Blocks)
	record.Blocks = textBlocks

	record.Margins = layout.DetectMargins(textBlocks, data.Width, data.Height)
	record.Grid = layout.DetectGrid(textBlocks, a.options.grid)
	record.VisualBoxes = layout.DetectBoxes(data.Drawings, data.Width, data.Height, a.options.boxes)

	segmenter := layout.NewSegmenterWithConfig(a.options.segmenter)
	zones := segmenter.Zones(textBlocks, data.Width)
	for i := range zones {
		classify.Classify(&zones[i])
	}
	record.Zones = zones

	if !a.options.skipTables {
		record.Tables = pipeline.ExtractPage(index, data.Blocks)
	}

	if !a.options.skipImages && len(data.Images) > 0 {
		record.Images = make([]model.Image, 0, len(data.Images))
		for _, obj := range data.Images {
			record.Images = append(record.Images, images.Describe(obj))
		}
	}

	record.Header, record.Footer = layout.DetectHeaderFooter(textBlocks, data.Height)
	record.DominantFontSize = analysis.DominantFontSize(textBlocks)

	return record
}
