package classify

import (
	"regexp"
	"strings"
)

// ListItem is one entry of a structured list with its nesting level.
type ListItem struct {
	Text  string // item text with the marker stripped
	Level int    // nesting level derived from indentation
	Raw   string // the original line
}

// spacesPerLevel is the indentation assumed per nesting level.
const spacesPerLevel = 4

// listMarkerRe strips leading bullet characters, numbering, and trailing
// punctuation from a list line.
var listMarkerRe = regexp.MustCompile(`^[•○●■□▪▫►▸⦿⦾\-*→⇒»›✓✗0-9.)\]]+\s*`)

// ExtractListItems parses the text of a list zone into structured items,
// deriving each item's nesting level from its leading indentation.
func ExtractListItems(text string) []ListItem {
	var items []ListItem

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		clean := listMarkerRe.ReplaceAllString(trimmed, "")

		if clean != "" {
			items = append(items, ListItem{
				Text:  clean,
				Level: indent / spacesPerLevel,
				Raw:   trimmed,
			})
		}
	}

	return items
}

var keyValueRe = regexp.MustCompile(`([^:\n]+):\s*([^\n]+)`)

// ExtractKeyValues extracts "Key: Value" pairs from structured text, e.g.
// the body of a card zone. Later occurrences of a key overwrite earlier ones.
func ExtractKeyValues(text string) map[string]string {
	pairs := make(map[string]string)

	for _, m := range keyValueRe.FindAllStringSubmatch(text, -1) {
		key := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		if key != "" {
			pairs[key] = value
		}
	}

	return pairs
}
