package layout

import (
	"sort"

	"github.com/tsawler/pagelens/model"
)

// GridConfig holds the thresholds for coarse grid detection.
type GridConfig struct {
	// ClusterTolerance is the maximum distance between a position and the
	// running mean of a cluster for the position to join it.
	// Default: 5
	ClusterTolerance float64

	// MinColumns is the column-cluster count above which a grid is flagged.
	// Default: 1
	MinColumns int

	// MinRows is the row-cluster count above which a grid is flagged.
	// Default: 3
	MinRows int
}

// DefaultGridConfig returns the default grid detection thresholds.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		ClusterTolerance: 5.0,
		MinColumns:       1,
		MinRows:          3,
	}
}

// DetectMargins derives the page content margins from the extreme edges of
// its text blocks. A page with no blocks yields margins covering the full
// page rectangle.
func DetectMargins(textBlocks []model.TextBlock, pageWidth, pageHeight float64) model.Margins {
	if len(textBlocks) == 0 {
		return model.Margins{Left: 0, Top: 0, Right: pageWidth, Bottom: pageHeight}
	}

	m := model.Margins{
		Left:   textBlocks[0].Rect.X0,
		Top:    textBlocks[0].Rect.Y0,
		Right:  textBlocks[0].Rect.X1,
		Bottom: textBlocks[0].Rect.Y1,
	}

	for _, b := range textBlocks[1:] {
		if b.Rect.X0 < m.Left {
			m.Left = b.Rect.X0
		}
		if b.Rect.Y0 < m.Top {
			m.Top = b.Rect.Y0
		}
		if b.Rect.X1 > m.Right {
			m.Right = b.Rect.X1
		}
		if b.Rect.Y1 > m.Bottom {
			m.Bottom = b.Rect.Y1
		}
	}

	return m
}

// DetectGrid clusters block left-edge and top-edge positions independently to
// describe the coarse column/row structure of a page. The grid is flagged as
// detected when more than MinColumns column clusters or more than MinRows row
// clusters exist.
func DetectGrid(textBlocks []model.TextBlock, config GridConfig) model.Grid {
	if len(textBlocks) == 0 {
		return model.Grid{}
	}

	xs := make([]float64, len(textBlocks))
	ys := make([]float64, len(textBlocks))
	for i, b := range textBlocks {
		xs[i] = b.Rect.X0
		ys[i] = b.Rect.Y0
	}

	columns := clusterPositions(xs, config.ClusterTolerance)
	rows := clusterPositions(ys, config.ClusterTolerance)

	return model.Grid{
		Columns:  columns,
		Rows:     rows,
		Detected: len(columns) > config.MinColumns || len(rows) > config.MinRows,
	}
}

// clusterPositions groups nearby positions with 1-D clustering: a sorted
// position joins the current cluster when it is within tolerance of the
// cluster's running mean, and the cluster's value is that mean.
func clusterPositions(positions []float64, tolerance float64) []float64 {
	if len(positions) == 0 {
		return nil
	}

	sorted := make([]float64, len(positions))
	copy(sorted, positions)
	sort.Float64s(sorted)

	var clusters []float64
	sum := sorted[0]
	count := 1

	for _, pos := range sorted[1:] {
		mean := sum / float64(count)
		if pos-mean <= tolerance {
			sum += pos
			count++
		} else {
			clusters = append(clusters, mean)
			sum = pos
			count = 1
		}
	}

	clusters = append(clusters, sum/float64(count))
	return clusters
}
