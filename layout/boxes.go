package layout

import (
	"sort"

	"github.com/tsawler/pagelens/model"
)

// BoxConfig holds the filters for visual box detection.
type BoxConfig struct {
	// MinAreaRatio excludes rectangles too small relative to the page, such
	// as underlines and cell borders.
	// Default: 0.005
	MinAreaRatio float64

	// MaxAreaRatio excludes rectangles covering nearly the whole page, such
	// as page borders and backgrounds.
	// Default: 0.95
	MaxAreaRatio float64

	// MinWidth is the minimum rectangle width in page units.
	// Default: 50
	MinWidth float64

	// MinHeight is the minimum rectangle height in page units.
	// Default: 30
	MinHeight float64
}

// DefaultBoxConfig returns the default visual box filters.
func DefaultBoxConfig() BoxConfig {
	return BoxConfig{
		MinAreaRatio: 0.005,
		MaxAreaRatio: 0.95,
		MinWidth:     50.0,
		MinHeight:    30.0,
	}
}

// DetectBoxes finds rectangular visual containers (cards, call-out boxes,
// sidebars) among the page's drawing primitives. Only rectangle drawings are
// considered; candidates outside the configured area and size bounds are
// dropped. The result is sorted by descending area.
func DetectBoxes(drawings []model.Drawing, pageWidth, pageHeight float64, config BoxConfig) []model.VisualBox {
	pageArea := pageWidth * pageHeight
	if pageArea <= 0 {
		return nil
	}

	var boxes []model.VisualBox
	for _, d := range drawings {
		if d.Kind != model.DrawingRect {
			continue
		}

		area := d.Rect.Area()
		areaRatio := area / pageArea

		if areaRatio <= config.MinAreaRatio || areaRatio >= config.MaxAreaRatio {
			continue
		}
		if d.Rect.Width() <= config.MinWidth || d.Rect.Height() <= config.MinHeight {
			continue
		}

		boxes = append(boxes, model.VisualBox{
			Rect:        d.Rect,
			AreaRatio:   areaRatio,
			AspectRatio: d.Rect.AspectRatio(),
			Color:       d.Color,
			Fill:        d.Fill,
			StrokeWidth: d.StrokeWidth,
		})
	}

	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].Rect.Area() > boxes[j].Rect.Area()
	})

	return boxes
}
