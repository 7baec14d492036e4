package model

// Margins are the content margins of a page, derived from the extreme edges
// of its text blocks. A page with no blocks has margins covering the full
// page rectangle.
type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Grid describes the coarse column/row structure of a page: clustered block
// left-edge and top-edge positions. Detected is true when more than one
// column cluster or more than three row clusters exist.
type Grid struct {
	Columns  []float64
	Rows     []float64
	Detected bool
}

// VisualBox is a rectangular visual container detected from page drawing
// primitives. Boxes are independent of text zones and are never merged with
// them.
type VisualBox struct {
	Rect        Rect
	AreaRatio   float64 // box area relative to page area
	AspectRatio float64
	Color       *RGB // stroke color, nil if none
	Fill        *RGB // fill color, nil if none
	StrokeWidth float64
}

// Band is the text content of a page-edge band (header or footer).
type Band struct {
	Text   string
	Blocks []TextBlock
}

// PageRecord is the complete structural profile of one page. All fields are
// populated by the analysis pipeline and read-only thereafter.
type PageRecord struct {
	Index  int // zero-based page index
	Width  float64
	Height float64

	Margins Margins
	Grid    Grid

	Blocks      []TextBlock
	Zones       []Zone // in reading order
	VisualBoxes []VisualBox
	Tables      []Table
	Images      []Image

	Header *Band // nil when the top band holds no blocks
	Footer *Band // nil when the bottom band holds no blocks

	Text             string // full page text as reported by the backend
	DominantFontSize float64
}

// HasTables reports whether any table was extracted from the page.
func (p *PageRecord) HasTables() bool {
	return len(p.Tables) > 0
}

// HasImages reports whether the page carries any embedded image.
func (p *PageRecord) HasImages() bool {
	return len(p.Images) > 0
}

// ZonesOfType returns the page zones classified as the given type, in
// reading order.
func (p *PageRecord) ZonesOfType(t ZoneType) []Zone {
	var result []Zone
	for _, z := range p.Zones {
		if z.Type == t {
			result = append(result, z)
		}
	}
	return result
}
