package tables

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/pagelens/model"
)

// Quality scores assigned when the backend does not report its own accuracy.
const (
	ruledQuality  = 90 // ruled-table backend results
	manualQuality = 70 // manual structural fallback results
)

// Pipeline runs the ordered table-extraction strategy chain for a page:
// the ruled backend's strategy variants, then the scored backend's lattice
// and stream flavors, then the manual structural fallback. The chain
// short-circuits on the first strategy producing at least one validated
// table, so later strategies can never contribute duplicate or conflicting
// tables for the same page. Either backend may be nil, in which case its
// strategies are skipped.
type Pipeline struct {
	ruled  RuledTables
	scored ScoredTables
	manual *ManualDetector
	log    zerolog.Logger
}

// NewPipeline creates a pipeline over the given backends. A nil backend
// disables its strategies. Backend failures are logged on the given logger
// and never abort the page.
func NewPipeline(ruled RuledTables, scored ScoredTables, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		ruled:  ruled,
		scored: scored,
		manual: NewManualDetector(),
		log:    log,
	}
}

// SetManualDetector replaces the manual fallback detector, e.g. to tune its
// band thresholds.
func (p *Pipeline) SetManualDetector(d *ManualDetector) {
	p.manual = d
}

// ExtractPage runs the strategy chain for one page. rawBlocks feeds the
// manual fallback only; the backends work from the page index. Total failure
// of all strategies yields zero tables, not an error.
func (p *Pipeline) ExtractPage(pageIndex int, rawBlocks []model.RawBlock) []model.Table {
	if found := p.tryRuled(pageIndex); len(found) > 0 {
		return found
	}
	if found := p.tryScored(pageIndex); len(found) > 0 {
		return found
	}
	return p.tryManual(rawBlocks)
}

// tryRuled attempts the ruled backend's strategy variants in fixed order,
// stopping at the first variant with a validated result.
func (p *Pipeline) tryRuled(pageIndex int) []model.Table {
	if p.ruled == nil {
		return nil
	}

	for _, strategy := range lineStrategies {
		grids, err := p.ruled.ExtractTables(pageIndex, strategy)
		if err != nil {
			p.log.Warn().Err(err).
				Int("page", pageIndex).
				Str("strategy", string(strategy)).
				Msg("ruled table backend failed")
			continue
		}

		var found []model.Table
		for _, grid := range grids {
			if headers, rows, ok := Validate(grid); ok {
				found = append(found, model.Table{
					Method:  "structured_" + string(strategy),
					Headers: headers,
					Rows:    rows,
					Quality: ruledQuality,
				})
			}
		}

		if len(found) > 0 {
			return found
		}
	}

	return nil
}

// tryScored attempts the scored backend's lattice flavor, then stream only
// if lattice found nothing.
func (p *Pipeline) tryScored(pageIndex int) []model.Table {
	if p.scored == nil {
		return nil
	}

	if found := p.scoredFlavor(pageIndex, "lattice", p.scored.Lattice); len(found) > 0 {
		return found
	}
	return p.scoredFlavor(pageIndex, "stream", p.scored.Stream)
}

func (p *Pipeline) scoredFlavor(pageIndex int, method string, extract func(int) ([]ScoredGrid, error)) []model.Table {
	grids, err := extract(pageIndex)
	if err != nil {
		p.log.Warn().Err(err).
			Int("page", pageIndex).
			Str("flavor", method).
			Msg("scored table backend failed")
		return nil
	}

	var found []model.Table
	for _, grid := range grids {
		if headers, rows, ok := Validate(grid.Cells); ok {
			found = append(found, model.Table{
				Method:  method,
				Headers: headers,
				Rows:    rows,
				Quality: int(grid.Accuracy),
			})
		}
	}

	return found
}

// tryManual runs the structural fallback over the page's raw spans.
func (p *Pipeline) tryManual(rawBlocks []model.RawBlock) []model.Table {
	var found []model.Table
	for _, grid := range p.manual.Detect(rawBlocks) {
		if headers, rows, ok := Validate(grid); ok {
			found = append(found, model.Table{
				Method:  "manual_structure",
				Headers: headers,
				Rows:    rows,
				Quality: manualQuality,
			})
		}
	}
	return found
}
