// Package blocks aggregates raw backend text spans into typographically
// homogeneous text blocks.
package blocks

import (
	"strings"

	"github.com/tsawler/pagelens/model"
)

// Aggregate collapses each raw backend block into a single TextBlock carrying
// the block's text and dominant font metadata. Blocks without any span are
// skipped. The output preserves the input order.
func Aggregate(raw []model.RawBlock) []model.TextBlock {
	result := make([]model.TextBlock, 0, len(raw))

	for _, rb := range raw {
		spans := collectSpans(rb)
		if len(spans) == 0 {
			continue
		}

		result = append(result, buildBlock(rb.Rect, spans))
	}

	return result
}

// collectSpans flattens the lines of a raw block into a single span list.
func collectSpans(rb model.RawBlock) []model.Span {
	var spans []model.Span
	for _, line := range rb.Lines {
		spans = append(spans, line.Spans...)
	}
	return spans
}

// buildBlock derives a TextBlock from a raw block's spans.
func buildBlock(rect model.Rect, spans []model.Span) model.TextBlock {
	texts := make([]string, 0, len(spans))
	totalSize := 0.0
	bold := false
	italic := false

	for _, s := range spans {
		texts = append(texts, s.Text)
		totalSize += s.Size
		if s.Bold {
			bold = true
		}
		if s.Italic {
			italic = true
		}
	}

	return model.TextBlock{
		Rect:     rect,
		Text:     strings.Join(texts, " "),
		FontSize: totalSize / float64(len(spans)),
		FontName: dominantFont(spans),
		Color:    dominantColor(spans),
		Bold:     bold,
		Italic:   italic,
	}
}

// dominantFont returns the most frequent span font name. Ties go to the
// font seen first.
func dominantFont(spans []model.Span) string {
	counts := make(map[string]int, len(spans))
	best := ""
	bestCount := 0

	for _, s := range spans {
		counts[s.Font]++
		if counts[s.Font] > bestCount {
			bestCount = counts[s.Font]
			best = s.Font
		}
	}

	return best
}

// dominantColor returns the most frequent span color. Ties go to the
// color seen first.
func dominantColor(spans []model.Span) int {
	counts := make(map[int]int, len(spans))
	best := 0
	bestCount := 0

	for _, s := range spans {
		counts[s.Color]++
		if counts[s.Color] > bestCount {
			bestCount = counts[s.Color]
			best = s.Color
		}
	}

	return best
}
