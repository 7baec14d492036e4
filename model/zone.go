package model

// ZoneType is the inferred content type of a zone.
type ZoneType int

const (
	// ZoneParagraph is the fallback type: ordinary body text. It is the zero
	// value so an unclassified zone reads as a paragraph.
	ZoneParagraph ZoneType = iota
	ZoneTitle
	ZoneSubtitle
	ZoneHeader
	ZoneList
	ZoneTableLike
	ZoneCard
	ZoneCaption
	ZoneFootnote
)

// String returns the string representation of the zone type.
func (t ZoneType) String() string {
	switch t {
	case ZoneTitle:
		return "title"
	case ZoneSubtitle:
		return "subtitle"
	case ZoneHeader:
		return "header"
	case ZoneList:
		return "list"
	case ZoneTableLike:
		return "table_like"
	case ZoneCard:
		return "card"
	case ZoneCaption:
		return "caption"
	case ZoneFootnote:
		return "footnote"
	default:
		return "paragraph"
	}
}

// ZoneTypes lists all zone types in classifier priority order: on an exact
// score tie the earlier type wins. Paragraph is last because it carries a
// non-zero base score and must not upstage a more specific match.
var ZoneTypes = []ZoneType{
	ZoneTitle,
	ZoneHeader,
	ZoneSubtitle,
	ZoneList,
	ZoneTableLike,
	ZoneCard,
	ZoneCaption,
	ZoneFootnote,
	ZoneParagraph,
}

// Zone is a maximal spatially coherent group of text blocks inferred to be one
// reading unit. Zones are produced by the segmenter in reading order and then
// annotated (not restructured) by the content classifier.
type Zone struct {
	Rect   Rect
	Text   string      // non-empty block texts joined with newlines
	Blocks []TextBlock // constituent blocks in reading order

	// Font statistics over the constituent blocks.
	AvgFontSize float64
	MaxFontSize float64
	HasBold     bool
	HasItalic   bool
	BlockCount  int

	// Set by the classifier.
	Type       ZoneType
	Confidence float64              // winning score, in [0, 1]
	Scores     map[ZoneType]float64 // full score vector for diagnostics
}

// Width returns the zone width.
func (z *Zone) Width() float64 {
	return z.Rect.Width()
}

// Height returns the zone height.
func (z *Zone) Height() float64 {
	return z.Rect.Height()
}
