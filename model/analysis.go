package model

// DocumentType is a coarse document-genre label inferred from aggregate
// structural statistics. It is advisory metadata only and never alters
// extraction behavior.
type DocumentType int

const (
	DocGeneric DocumentType = iota
	DocScientificPaper
	DocPresentation
	DocManual
	DocReport
	DocBook
)

// String returns the string representation of the document type.
func (t DocumentType) String() string {
	switch t {
	case DocScientificPaper:
		return "scientific_paper"
	case DocPresentation:
		return "presentation"
	case DocManual:
		return "manual"
	case DocReport:
		return "report"
	case DocBook:
		return "book"
	default:
		return "generic_document"
	}
}

// FontSizeCount is one entry in the typography summary: a font size and the
// number of blocks using it.
type FontSizeCount struct {
	Size  float64
	Count int
}

// Typography summarizes font usage across all text blocks of a document.
type Typography struct {
	MinFontSize float64
	MaxFontSize float64
	AvgFontSize float64

	// CommonSizes holds up to the five most frequent font sizes, ordered by
	// count descending then size ascending.
	CommonSizes []FontSizeCount
}

// DocumentAnalysis is the corpus-wide structural profile aggregated over all
// page records of a document.
type DocumentAnalysis struct {
	TotalPages  int
	TotalZones  int
	TotalTables int
	TotalImages int

	ZoneDistribution map[ZoneType]int
	AvgZonesPerPage  float64

	HasTables bool
	HasImages bool

	Typography   Typography
	DocumentType DocumentType
}
