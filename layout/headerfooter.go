package layout

import (
	"strings"

	"github.com/tsawler/pagelens/model"
)

// Fraction of the page height treated as the header band (from the top) and
// the footer band (from the bottom).
const edgeBandRatio = 0.1

// DetectHeaderFooter extracts the header and footer bands of a page: blocks
// lying entirely within the top 10% of the page form the header, blocks
// entirely within the bottom 10% form the footer. Either band is nil when it
// holds no blocks. A page with non-positive height has no bands.
func DetectHeaderFooter(textBlocks []model.TextBlock, pageHeight float64) (header, footer *model.Band) {
	if pageHeight <= 0 {
		return nil, nil
	}

	headerLimit := pageHeight * edgeBandRatio
	footerLimit := pageHeight * (1 - edgeBandRatio)

	var headerBlocks, footerBlocks []model.TextBlock
	for _, b := range textBlocks {
		if b.Rect.Y1 < headerLimit {
			headerBlocks = append(headerBlocks, b)
		}
		if b.Rect.Y0 > footerLimit {
			footerBlocks = append(footerBlocks, b)
		}
	}

	return buildBand(headerBlocks), buildBand(footerBlocks)
}

// buildBand joins band block texts with spaces; nil for an empty band.
func buildBand(bandBlocks []model.TextBlock) *model.Band {
	if len(bandBlocks) == 0 {
		return nil
	}

	texts := make([]string, len(bandBlocks))
	for i, b := range bandBlocks {
		texts[i] = b.Text
	}

	return &model.Band{
		Text:   strings.Join(texts, " "),
		Blocks: bandBlocks,
	}
}
