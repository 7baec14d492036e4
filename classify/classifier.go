package classify

import "github.com/tsawler/pagelens/model"

// Classification is the result of scoring one zone against all content-type
// hypotheses.
type Classification struct {
	Type       model.ZoneType
	Confidence float64
	Scores     map[model.ZoneType]float64
	Features   Features
}

// Classify scores a zone against the nine content-type hypotheses and
// annotates it with the best-scoring type, its confidence, and the full score
// vector. The zone's blocks and geometry are never restructured.
//
// On an exact score tie the earlier type in model.ZoneTypes wins, so a
// specific type always beats the paragraph fallback.
func Classify(zone *model.Zone) Classification {
	f := ExtractFeatures(zone)

	scores := map[model.ZoneType]float64{
		model.ZoneTitle:     scoreTitle(f),
		model.ZoneSubtitle:  scoreSubtitle(f),
		model.ZoneHeader:    scoreHeader(f),
		model.ZoneParagraph: scoreParagraph(f),
		model.ZoneList:      scoreList(f),
		model.ZoneTableLike: scoreTable(f),
		model.ZoneCard:      scoreCard(f),
		model.ZoneCaption:   scoreCaption(f),
		model.ZoneFootnote:  scoreFootnote(f),
	}

	best := model.ZoneTypes[0]
	bestScore := scores[best]
	for _, t := range model.ZoneTypes[1:] {
		if scores[t] > bestScore {
			best = t
			bestScore = scores[t]
		}
	}

	zone.Type = best
	zone.Confidence = bestScore
	zone.Scores = scores

	return Classification{
		Type:       best,
		Confidence: bestScore,
		Scores:     scores,
		Features:   f,
	}
}

// clamp bounds a score to [0, 1].
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// scoreTitle scores the main-title hypothesis.
// Weights: font size (+0.4/+0.3/+0.2 for >=24/>=20/>=16), short text (+0.2),
// bold (+0.15), all caps (+0.15), tall box (+0.1); penalties for long text
// (-0.3 over 20 words) and many lines (-0.2 over 2).
func scoreTitle(f Features) float64 {
	score := 0.0

	switch {
	case f.MaxFontSize >= 24:
		score += 0.4
	case f.MaxFontSize >= 20:
		score += 0.3
	case f.MaxFontSize >= 16:
		score += 0.2
	}

	if f.WordCount <= 10 {
		score += 0.2
	}
	if f.HasBold {
		score += 0.15
	}
	if f.IsAllCaps {
		score += 0.15
	}
	if f.Height > 40 {
		score += 0.1
	}

	if f.WordCount > 20 {
		score -= 0.3
	}
	if f.LineCount > 2 {
		score -= 0.2
	}

	return clamp(score)
}

// scoreSubtitle scores the subtitle hypothesis.
// Weights: mid-range font size 14-20 (+0.3), bold (+0.2), 3-15 words (+0.2),
// leading numeral (+0.15), uppercase ratio above 0.3 (+0.15).
func scoreSubtitle(f Features) float64 {
	score := 0.0

	if f.MaxFontSize >= 14 && f.MaxFontSize < 20 {
		score += 0.3
	}
	if f.HasBold {
		score += 0.2
	}
	if f.WordCount >= 3 && f.WordCount <= 15 {
		score += 0.2
	}
	if f.StartsWithNumber {
		score += 0.15
	}
	if f.UppercaseRatio > 0.3 {
		score += 0.15
	}

	return clamp(score)
}

// scoreHeader scores the section-header hypothesis.
// Weights: bold (+0.3), leading numeral (+0.2), font size 13-18 (+0.2),
// at most 12 words (+0.15), colon (+0.15).
func scoreHeader(f Features) float64 {
	score := 0.0

	if f.HasBold {
		score += 0.3
	}
	if f.StartsWithNumber {
		score += 0.2
	}
	if f.MaxFontSize >= 13 && f.MaxFontSize <= 18 {
		score += 0.2
	}
	if f.WordCount <= 12 {
		score += 0.15
	}
	if f.HasColon {
		score += 0.15
	}

	return clamp(score)
}

// scoreParagraph scores the body-paragraph hypothesis. It carries a 0.3 base
// score so that zones matching nothing else still classify as paragraphs.
// Weights: at least 15 words (+0.2), at least 2 lines (+0.15), body font
// size 10-13 (+0.2), neither bold nor all caps (+0.15).
func scoreParagraph(f Features) float64 {
	score := 0.3

	if f.WordCount >= 15 {
		score += 0.2
	}
	if f.LineCount >= 2 {
		score += 0.15
	}
	if f.AvgFontSize >= 10 && f.AvgFontSize <= 13 {
		score += 0.2
	}
	if !f.HasBold && !f.IsAllCaps {
		score += 0.15
	}

	return clamp(score)
}

// scoreList scores the list hypothesis.
// Weights: list markers present (+0.5), at least 3 lines (+0.2), leading
// numeral (+0.15), line length 50-200 runes (+0.15).
func scoreList(f Features) float64 {
	score := 0.0

	if f.HasListMarkers {
		score += 0.5
	}
	if f.LineCount >= 3 {
		score += 0.2
	}
	if f.StartsWithNumber {
		score += 0.15
	}
	if f.AvgLineLength > 50 && f.AvgLineLength < 200 {
		score += 0.15
	}

	return clamp(score)
}

// scoreTable scores the tabular-structure hypothesis.
// Weights: table keywords (+0.25), at least 6 blocks (+0.25), digits (+0.15),
// near-square aspect ratio (+0.15), at least 4 lines (+0.1), 10 or more
// blocks (+0.1 more).
func scoreTable(f Features) float64 {
	score := 0.0

	if f.HasTableWords {
		score += 0.25
	}
	if f.BlockCount >= 6 {
		score += 0.25
	}
	if f.HasDigits {
		score += 0.15
	}
	if f.AspectRatio > 0.5 && f.AspectRatio < 2 {
		score += 0.15
	}
	if f.LineCount >= 4 {
		score += 0.1
	}
	if f.BlockCount >= 10 {
		score += 0.1
	}

	return clamp(score)
}

// scoreCard scores the highlight card/box hypothesis.
// Weights: near-square aspect ratio (+0.3), moderate area (+0.2), short text
// (+0.2), bold (+0.15), at most 50 words (+0.15).
func scoreCard(f Features) float64 {
	score := 0.0

	if f.AspectRatio > 0.7 && f.AspectRatio < 1.5 {
		score += 0.3
	}
	if f.Area > 5000 && f.Area < 100000 {
		score += 0.2
	}
	if f.IsShort {
		score += 0.2
	}
	if f.HasBold {
		score += 0.15
	}
	if f.WordCount <= 50 {
		score += 0.15
	}

	return clamp(score)
}

// scoreCaption scores the caption hypothesis.
// Weights: small font (+0.3 below 10), short text (+0.2), italic (+0.2),
// at most 20 words (+0.15).
func scoreCaption(f Features) float64 {
	score := 0.0

	if f.AvgFontSize < 10 {
		score += 0.3
	}
	if f.IsShort {
		score += 0.2
	}
	if f.HasItalic {
		score += 0.2
	}
	if f.WordCount <= 20 {
		score += 0.15
	}

	return clamp(score)
}

// scoreFootnote scores the footnote hypothesis.
// Weights: very small font (+0.4 below 9), leading numeral (+0.2), short
// text (+0.2), at most 30 words (+0.2).
func scoreFootnote(f Features) float64 {
	score := 0.0

	if f.AvgFontSize < 9 {
		score += 0.4
	}
	if f.StartsWithNumber {
		score += 0.2
	}
	if f.IsShort {
		score += 0.2
	}
	if f.WordCount <= 30 {
		score += 0.2
	}

	return clamp(score)
}
