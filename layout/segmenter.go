package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/pagelens/model"
)

// SegmenterConfig holds the thresholds for reading-order zone segmentation.
// These gap and overlap rules are the tunable core of the segmenter.
type SegmenterConfig struct {
	// VerticalTolerance is the maximum vertical gap (in page units) between a
	// zone's last block and the next block for them to merge when the blocks
	// overlap horizontally.
	// Default: 15
	VerticalTolerance float64

	// RelaxedVerticalFactor multiplies VerticalTolerance for the relaxed rule
	// that merges blocks sharing a left edge, e.g. consecutive lines of the
	// same column.
	// Default: 2
	RelaxedVerticalFactor float64

	// OverlapThreshold is the minimum horizontal overlap ratio (overlap width
	// over the narrower block's width) for the strict merge rule.
	// Default: 0.5
	OverlapThreshold float64

	// LeftEdgeToleranceRatio is the maximum left-edge difference for the
	// relaxed merge rule, as a fraction of the page width. Keeping this
	// relative to page width lets the rule respect column boundaries without
	// a full column-detection pass.
	// Default: 0.15
	LeftEdgeToleranceRatio float64
}

// DefaultSegmenterConfig returns the default segmentation thresholds.
func DefaultSegmenterConfig() SegmenterConfig {
	return SegmenterConfig{
		VerticalTolerance:      15.0,
		RelaxedVerticalFactor:  2.0,
		OverlapThreshold:       0.5,
		LeftEdgeToleranceRatio: 0.15,
	}
}

// Segmenter groups text blocks into reading-order zones.
type Segmenter struct {
	config SegmenterConfig
}

// NewSegmenter creates a segmenter with default configuration.
func NewSegmenter() *Segmenter {
	return &Segmenter{config: DefaultSegmenterConfig()}
}

// NewSegmenterWithConfig creates a segmenter with custom configuration.
func NewSegmenterWithConfig(config SegmenterConfig) *Segmenter {
	return &Segmenter{config: config}
}

// Zones segments blocks into zones in reading order (top-to-bottom,
// left-to-right). A block joins the current zone when either
//
//   - the vertical gap to the zone's last block is below VerticalTolerance
//     and the horizontal overlap ratio exceeds OverlapThreshold, or
//   - the vertical gap is below VerticalTolerance*RelaxedVerticalFactor and
//     the left-edge difference is below LeftEdgeToleranceRatio of the page
//     width.
//
// Otherwise the current zone is closed and a new one starts. Every block ends
// up in exactly one zone; no blocks means no zones. The result is
// deterministic for identical input.
func (s *Segmenter) Zones(textBlocks []model.TextBlock, pageWidth float64) []model.Zone {
	if len(textBlocks) == 0 {
		return nil
	}

	sorted := make([]model.TextBlock, len(textBlocks))
	copy(sorted, textBlocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rect.Y0 != sorted[j].Rect.Y0 {
			return sorted[i].Rect.Y0 < sorted[j].Rect.Y0
		}
		return sorted[i].Rect.X0 < sorted[j].Rect.X0
	})

	leftTolerance := pageWidth * s.config.LeftEdgeToleranceRatio
	relaxedGap := s.config.VerticalTolerance * s.config.RelaxedVerticalFactor

	var zones []model.Zone
	var current []model.TextBlock

	for _, block := range sorted {
		if len(current) == 0 {
			current = append(current, block)
			continue
		}

		last := current[len(current)-1]
		verticalGap := block.Rect.Y0 - last.Rect.Y1
		overlap := last.Rect.HorizontalOverlap(block.Rect)
		leftDiff := math.Abs(block.Rect.X0 - last.Rect.X0)

		switch {
		case verticalGap < s.config.VerticalTolerance && overlap > s.config.OverlapThreshold:
			current = append(current, block)
		case verticalGap < relaxedGap && leftDiff < leftTolerance:
			current = append(current, block)
		default:
			zones = append(zones, buildZone(current))
			current = []model.TextBlock{block}
		}
	}

	if len(current) > 0 {
		zones = append(zones, buildZone(current))
	}

	return zones
}

// buildZone creates a zone from a contiguous group of blocks, deriving the
// enclosing rectangle, concatenated text, and font statistics.
func buildZone(group []model.TextBlock) model.Zone {
	rect := group[0].Rect
	texts := make([]string, 0, len(group))

	totalSize := 0.0
	maxSize := 0.0
	hasBold := false
	hasItalic := false

	for _, b := range group {
		rect = rect.Union(b.Rect)

		if t := strings.TrimSpace(b.Text); t != "" {
			texts = append(texts, t)
		}

		totalSize += b.FontSize
		if b.FontSize > maxSize {
			maxSize = b.FontSize
		}
		if b.Bold {
			hasBold = true
		}
		if b.Italic {
			hasItalic = true
		}
	}

	zoneBlocks := make([]model.TextBlock, len(group))
	copy(zoneBlocks, group)

	return model.Zone{
		Rect:        rect,
		Text:        strings.Join(texts, "\n"),
		Blocks:      zoneBlocks,
		AvgFontSize: totalSize / float64(len(group)),
		MaxFontSize: maxSize,
		HasBold:     hasBold,
		HasItalic:   hasItalic,
		BlockCount:  len(group),
	}
}
