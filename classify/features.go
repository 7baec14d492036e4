package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pagelens/model"
)

// Features is the scalar/boolean feature vector extracted from one zone.
// Classification is a pure function of this record.
type Features struct {
	// Geometry
	Width       float64
	Height      float64
	Area        float64
	AspectRatio float64

	// Text
	TextLength    int // in runes
	WordCount     int
	LineCount     int
	AvgLineLength float64

	// Typography
	AvgFontSize float64
	MaxFontSize float64
	HasBold     bool
	HasItalic   bool
	BlockCount  int

	// Lexical content
	HasDigits      bool
	HasUppercase   bool
	UppercaseRatio float64
	HasListMarkers bool
	HasTableWords  bool
	IsShort        bool // fewer than 100 runes
	IsLong         bool // more than 500 runes

	// Structure
	StartsWithNumber bool
	IsAllCaps        bool
	HasColon         bool
	HasDash          bool
}

// listMarkers are the characters whose presence anywhere in the text marks a
// probable list zone.
var listMarkers = []string{
	"•", "○", "●", "■", "□", "▪", "▫", "►", "▸", "⦿", "⦾",
	"-", "*", "→", "⇒", "»", "›", "✓", "✗",
}

// tableWords are lowercase keywords common in tabular content.
var tableWords = []string{
	"total", "average", "sum", "%", "value", "amount",
	"quantity", "description", "item", "code", "name", "date",
}

var leadingNumberRe = regexp.MustCompile(`^\d+\.?\s`)

// ExtractFeatures derives the feature vector for a zone. Text is normalized
// to NFC before lexical measurement so composed and decomposed input score
// identically.
func ExtractFeatures(zone *model.Zone) Features {
	text := norm.NFC.String(zone.Text)
	lower := strings.ToLower(text)
	runes := []rune(text)

	lineCount := len(strings.Split(text, "\n"))
	textLength := len(runes)

	f := Features{
		Width:       zone.Width(),
		Height:      zone.Height(),
		Area:        zone.Width() * zone.Height(),
		AspectRatio: zone.Rect.AspectRatio(),

		TextLength:    textLength,
		WordCount:     len(strings.Fields(text)),
		LineCount:     lineCount,
		AvgLineLength: float64(textLength) / float64(maxInt(lineCount, 1)),

		AvgFontSize: zone.AvgFontSize,
		MaxFontSize: zone.MaxFontSize,
		HasBold:     zone.HasBold,
		HasItalic:   zone.HasItalic,
		BlockCount:  zone.BlockCount,

		IsShort: textLength < 100,
		IsLong:  textLength > 500,

		StartsWithNumber: leadingNumberRe.MatchString(text),
		HasColon:         strings.Contains(text, ":"),
		HasDash:          strings.Contains(text, "—") || strings.Contains(text, "–"),
	}

	upper := 0
	lowerCased := 0
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			f.HasDigits = true
		case unicode.IsUpper(r):
			f.HasUppercase = true
			upper++
		case unicode.IsLower(r):
			lowerCased++
		}
	}
	f.UppercaseRatio = float64(upper) / float64(maxInt(textLength, 1))
	f.IsAllCaps = textLength > 3 && upper > 0 && lowerCased == 0

	for _, m := range listMarkers {
		if strings.Contains(text, m) {
			f.HasListMarkers = true
			break
		}
	}
	for _, w := range tableWords {
		if strings.Contains(lower, w) {
			f.HasTableWords = true
			break
		}
	}

	return f
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
