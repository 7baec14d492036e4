package model

// Span is the smallest styled run of text reported by the PDF backend:
// a single run with one font, size, and color.
type Span struct {
	Rect   Rect
	Text   string
	Font   string
	Size   float64
	Color  int
	Bold   bool
	Italic bool
}

// RawLine is a single line of spans within a raw backend block.
type RawLine struct {
	Rect  Rect
	Spans []Span
}

/// RawBlock is a text block as reported by the PDF backend: a group of lines
// that the backend laid out together. The span aggregator collapses each raw
// block into a single TextBlock.
type RawBlock struct {
	Rect  Rect
	Lines []RawLine
}

// DrawingKind identifies the shape of a vector drawing primitive.
type DrawingKind int

const (
	DrawingRect DrawingKind = iota
	DrawingLine
	DrawingCurve
)

// RGB is a stroke or fill color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Drawing is a vector drawing primitive reported by the PDF backend.
// Only rectangle drawings participate in visual box detection.
type Drawing struct {
	Kind        DrawingKind
	Rect        Rect
	Color       *RGB // stroke color, nil if none
	Fill        *RGB // fill color, nil if none
	StrokeWidth float64
}

// ImageObject is one embedded image occurrence reported by the PDF backend.
// Format and Colorspace may be empty when the backend does not report them;
// the image classifier can sniff them from Data.
type ImageObject struct {
	Rect       Rect
	Format     string
	Colorspace string
	Data       []byte
}

// PageData is the raw content of one page as supplied by the PDF backend.
// It is the sole input to the per-page analysis pipeline.
type PageData struct {
	Index    int // zero-based page index
	Width    float64
	Height   float64
	Blocks   []RawBlock
	Drawings []Drawing
	Images   []ImageObject
	Text     string // full page text as reported by the backend
}
