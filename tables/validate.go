package tables

import "strings"

// Validate cleans and normalizes a raw candidate grid. It drops fully blank
// rows, requires at least two surviving rows, takes the first as the header,
// and pads or truncates every other row to the header's width.
//
// The returned ok is false when the candidate cannot form a valid table; such
// candidates are discarded, never surfaced as errors. A valid result always
// has a non-empty header and rows exactly as wide as the header.
func Validate(grid [][]string) (headers []string, rows [][]string, ok bool) {
	if len(grid) < 2 {
		return nil, nil, false
	}

	var cleaned [][]string
	for _, row := range grid {
		trimmed := make([]string, len(row))
		blank := true
		for i, cell := range row {
			trimmed[i] = strings.TrimSpace(cell)
			if trimmed[i] != "" {
				blank = false
			}
		}
		if !blank {
			cleaned = append(cleaned, trimmed)
		}
	}

	if len(cleaned) < 2 {
		return nil, nil, false
	}

	headers = cleaned[0]
	if len(headers) == 0 {
		return nil, nil, false
	}

	width := len(headers)
	rows = make([][]string, 0, len(cleaned)-1)
	for _, row := range cleaned[1:] {
		normalized := make([]string, width)
		copy(normalized, row)
		rows = append(rows, normalized)
	}

	return headers, rows, true
}
