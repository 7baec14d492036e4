package tables

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/pagelens/model"
)

// ManualConfig holds the thresholds for the manual structural fallback.
type ManualConfig struct {
	// BandSize quantizes line top edges into horizontal bands, in page units.
	// Default: 5
	BandSize float64

	// MinRowItems is the minimum number of horizontally aligned items for a
	// band to qualify as a table-row candidate.
	// Default: 3
	MinRowItems int

	// MinRows is the minimum number of consecutive qualifying bands that
	// form a table.
	// Default: 3
	MinRows int

	// MinColumns is the minimum column count for a detected table.
	// Default: 2
	MinColumns int
}

// DefaultManualConfig returns the default fallback thresholds.
func DefaultManualConfig() ManualConfig {
	return ManualConfig{
		BandSize:    5.0,
		MinRowItems: 3,
		MinRows:     3,
		MinColumns:  2,
	}
}

// ManualDetector finds tabular structure directly in the page's raw text
// spans. It is the last-resort strategy when both extraction backends come
// up empty.
type ManualDetector struct {
	config ManualConfig
}

// NewManualDetector creates a detector with default configuration.
func NewManualDetector() *ManualDetector {
	return &ManualDetector{config: DefaultManualConfig()}
}

// NewManualDetectorWithConfig creates a detector with custom configuration.
func NewManualDetectorWithConfig(config ManualConfig) *ManualDetector {
	return &ManualDetector{config: config}
}

// bandItem is one span's contribution to a horizontal band.
type bandItem struct {
	x    float64
	text string
}

// Detect groups spans into horizontal bands by quantizing line top edges,
// then collects runs of consecutive bands that each hold MinRowItems or
// more horizontally sorted items. Every run of MinRows or more bands is
// structured into a raw candidate grid (first band as header, rounded mean
// item count as column count). Candidates still pass through Validate like
// any backend result.
func (d *ManualDetector) Detect(rawBlocks []model.RawBlock) [][][]string {
	bands := d.collectBands(rawBlocks)
	if len(bands) == 0 {
		return nil
	}

	keys := make([]float64, 0, len(bands))
	for k := range bands {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	var grids [][][]string
	var run [][]bandItem

	flush := func() {
		if len(run) >= d.config.MinRows {
			if grid := d.structure(run); grid != nil {
				grids = append(grids, grid)
			}
		}
		run = nil
	}

	for _, k := range keys {
		items := bands[k]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].x < items[j].x
		})

		if len(items) >= d.config.MinRowItems {
			run = append(run, items)
		} else {
			flush()
		}
	}
	flush()

	return grids
}

// collectBands buckets every span by its line's quantized top edge.
func (d *ManualDetector) collectBands(rawBlocks []model.RawBlock) map[float64][]bandItem {
	bands := make(map[float64][]bandItem)

	for _, block := range rawBlocks {
		for _, line := range block.Lines {
			band := math.Floor(line.Rect.Y0/d.config.BandSize) * d.config.BandSize

			for _, span := range line.Spans {
				bands[band] = append(bands[band], bandItem{
					x:    span.Rect.X0,
					text: strings.TrimSpace(span.Text),
				})
			}
		}
	}

	return bands
}

// structure turns a run of qualifying bands into a raw grid. The column
// count is the rounded mean item count across the run's bands; runs narrower
// than MinColumns are rejected.
func (d *ManualDetector) structure(run [][]bandItem) [][]string {
	total := 0
	for _, band := range run {
		total += len(band)
	}
	cols := int(math.Round(float64(total) / float64(len(run))))
	if cols < d.config.MinColumns {
		return nil
	}

	grid := make([][]string, 0, len(run))
	for _, band := range run {
		row := make([]string, 0, cols)
		for i, item := range band {
			if i >= cols {
				break
			}
			row = append(row, item.text)
		}
		grid = append(grid, row)
	}

	return grid
}
