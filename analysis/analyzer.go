// Package analysis aggregates per-page structural findings into a
// document-level profile: totals, zone-type distribution, a typography
// summary, and an inferred document archetype.
package analysis

import (
	"sort"

	"github.com/tsawler/pagelens/model"
)

// commonSizeLimit is how many of the most frequent font sizes the typography
// summary retains.
const commonSizeLimit = 5

// Analyze aggregates all page records of a document. The result is advisory
// metadata and never feeds back into extraction.
func Analyze(pages []*model.PageRecord) *model.DocumentAnalysis {
	a := &model.DocumentAnalysis{
		TotalPages:       len(pages),
		ZoneDistribution: make(map[model.ZoneType]int),
	}

	var allBlocks []model.TextBlock
	for _, page := range pages {
		a.TotalZones += len(page.Zones)
		a.TotalTables += len(page.Tables)
		a.TotalImages += len(page.Images)

		for _, z := range page.Zones {
			a.ZoneDistribution[z.Type]++
		}
		allBlocks = append(allBlocks, page.Blocks...)
	}

	if a.TotalPages > 0 {
		a.AvgZonesPerPage = float64(a.TotalZones) / float64(a.TotalPages)
	}
	a.HasTables = a.TotalTables > 0
	a.HasImages = a.TotalImages > 0

	a.Typography = summarizeTypography(allBlocks)
	a.DocumentType = InferType(a.ZoneDistribution, a.TotalTables, a.TotalImages)

	return a
}

// InferType infers the document archetype from aggregate statistics. The
// rules are ordered and the first match wins, so the result is deterministic
// for identical inputs.
func InferType(dist map[model.ZoneType]int, tableCount, imageCount int) model.DocumentType {
	paragraphs := dist[model.ZoneParagraph]

	switch {
	case tableCount > 5 || (tableCount > 2 && paragraphs > 10):
		return model.DocScientificPaper
	case dist[model.ZoneTitle] > 5 && imageCount > 5:
		return model.DocPresentation
	case dist[model.ZoneList] > 10 || dist[model.ZoneHeader] > 10:
		return model.DocManual
	case tableCount > 0 && paragraphs > 5:
		return model.DocReport
	case paragraphs > 20:
		return model.DocBook
	default:
		return model.DocGeneric
	}
}

// summarizeTypography computes font statistics across all text blocks.
func summarizeTypography(textBlocks []model.TextBlock) model.Typography {
	if len(textBlocks) == 0 {
		return model.Typography{}
	}

	t := model.Typography{
		MinFontSize: textBlocks[0].FontSize,
		MaxFontSize: textBlocks[0].FontSize,
	}

	total := 0.0
	counts := make(map[float64]int)
	for _, b := range textBlocks {
		if b.FontSize < t.MinFontSize {
			t.MinFontSize = b.FontSize
		}
		if b.FontSize > t.MaxFontSize {
			t.MaxFontSize = b.FontSize
		}
		total += b.FontSize
		counts[b.FontSize]++
	}
	t.AvgFontSize = total / float64(len(textBlocks))

	t.CommonSizes = commonSizes(counts, commonSizeLimit)
	return t
}

// commonSizes returns up to limit entries ordered by count descending then
// size ascending, keeping the summary deterministic.
func commonSizes(counts map[float64]int, limit int) []model.FontSizeCount {
	entries := make([]model.FontSizeCount, 0, len(counts))
	for size, count := range counts {
		entries = append(entries, model.FontSizeCount{Size: size, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Size < entries[j].Size
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// DominantFontSize returns the most common block font size on a page,
// preferring the smaller size on a tie. Pages without blocks default to 12.
func DominantFontSize(textBlocks []model.TextBlock) float64 {
	if len(textBlocks) == 0 {
		return 12.0
	}

	counts := make(map[float64]int)
	for _, b := range textBlocks {
		counts[b.FontSize]++
	}

	best := commonSizes(counts, 1)
	return best[0].Size
}
