package pagelens

import "github.com/tsawler/pagelens/layout"

// AnalyzeOptions holds configuration for an analysis run.
type AnalyzeOptions struct {
	// Page selection (zero-based; nil means all pages)
	pages []int

	// Stage toggles
	skipTables bool
	skipImages bool

	// Layout thresholds
	segmenter layout.SegmenterConfig
	grid      layout.GridConfig
	boxes     layout.BoxConfig
}

// defaultOptions returns the default analysis options.
func defaultOptions() AnalyzeOptions {
	return AnalyzeOptions{
		pages:     nil, // nil means all pages
		segmenter: layout.DefaultSegmenterConfig(),
		grid:      layout.DefaultGridConfig(),
		boxes:     layout.DefaultBoxConfig(),
	}
}

// clone creates a deep copy of AnalyzeOptions.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	newOpts := AnalyzeOptions{
		skipTables: o.skipTables,
		skipImages: o.skipImages,
		segmenter:  o.segmenter,
		grid:       o.grid,
		boxes:      o.boxes,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
