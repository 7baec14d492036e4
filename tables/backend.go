package tables

// LineStrategy selects how the ruled-table backend finds cell boundaries.
type LineStrategy string

const (
	// StrategyLines uses drawn ruling lines.
	StrategyLines LineStrategy = "lines"

	// StrategyLinesStrict uses ruling lines without snapping tolerance.
	StrategyLinesStrict LineStrategy = "lines_strict"

	// StrategyText infers boundaries from text alignment alone.
	StrategyText LineStrategy = "text"
)

// lineStrategies is the fixed order in which ruled-table strategies are
// attempted. The first variant yielding a validated table wins.
var lineStrategies = []LineStrategy{StrategyLines, StrategyLinesStrict, StrategyText}

// RuledTables is the line/structure based table-extraction backend. It
// returns zero or more raw 2-D string grids for a page.
type RuledTables interface {
	ExtractTables(pageIndex int, strategy LineStrategy) ([][][]string, error)
}

// ScoredGrid is a raw table candidate tagged with the backend's reported
// accuracy in [0, 100].
type ScoredGrid struct {
	Cells    [][]string
	Accuracy float64
}

// ScoredTables is the border-analysis table-extraction backend with a
// bordered (lattice) and a borderless (stream) flavor.
type ScoredTables interface {
	Lattice(pageIndex int) ([]ScoredGrid, error)
	Stream(pageIndex int) ([]ScoredGrid, error)
}
