package classify

import (
	"math"
	"strings"
	"testing"

	"github.com/tsawler/pagelens/layout"
	"github.com/tsawler/pagelens/model"
)

func TestClassify_Title(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 60, 540, 90),
		Text:        "Quarterly Business Overview Report",
		AvgFontSize: 28,
		MaxFontSize: 28,
		HasBold:     true,
		BlockCount:  1,
	}

	c := Classify(zone)

	if c.Type != model.ZoneTitle {
		t.Fatalf("classified as %s, want title (scores %v)", c.Type, c.Scores)
	}
	// Large font (0.4) + few words (0.2) + bold (0.15).
	if math.Abs(c.Confidence-0.75) > 1e-9 {
		t.Errorf("confidence = %f, want 0.75", c.Confidence)
	}
}

func TestClassify_AllCapsTitle(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 60, 500, 110),
		Text:        "EXECUTIVE BRIEFING",
		AvgFontSize: 26,
		MaxFontSize: 26,
		HasBold:     true,
		BlockCount:  1,
	}

	c := Classify(zone)

	if c.Type != model.ZoneTitle {
		t.Fatalf("classified as %s, want title (scores %v)", c.Type, c.Scores)
	}
	if c.Confidence != 1.0 {
		t.Errorf("confidence = %f, want 1.0", c.Confidence)
	}
}

func TestClassify_Header(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 200, 400, 218),
		Text:        "2. Installation Guide",
		AvgFontSize: 14,
		MaxFontSize: 14,
		HasBold:     true,
		BlockCount:  1,
	}

	c := Classify(zone)

	// Header and subtitle score identically here; header is the more specific
	// hypothesis and wins the tie.
	if c.Scores[model.ZoneHeader] != c.Scores[model.ZoneSubtitle] {
		t.Fatalf("expected a header/subtitle tie, got %f vs %f",
			c.Scores[model.ZoneHeader], c.Scores[model.ZoneSubtitle])
	}
	if c.Type != model.ZoneHeader {
		t.Errorf("classified as %s, want header (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_Subtitle(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 200, 400, 218),
		Text:        "3. Experimental Setup",
		AvgFontSize: 15,
		MaxFontSize: 15,
		BlockCount:  1,
	}

	c := Classify(zone)

	if c.Type != model.ZoneSubtitle {
		t.Errorf("classified as %s, want subtitle (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_Paragraph(t *testing.T) {
	zone := &model.Zone{
		Rect: model.NewRect(72, 100, 540, 130),
		Text: "the quick brown fox jumps over the lazy dog while the sun sets slowly\n" +
			"behind the hills and the evening light fades into a calm quiet dusk",
		AvgFontSize: 11,
		MaxFontSize: 11,
		BlockCount:  2,
	}

	c := Classify(zone)

	if c.Type != model.ZoneParagraph {
		t.Fatalf("classified as %s, want paragraph (scores %v)", c.Type, c.Scores)
	}
	if c.Confidence != 1.0 {
		t.Errorf("confidence = %f, want 1.0", c.Confidence)
	}
}

func TestClassify_SeparatedParagraphGroups(t *testing.T) {
	// Two paragraph groups with a 40-unit vertical gap between them: the
	// segmenter yields two zones and both classify as paragraphs.
	makeBlock := func(y float64, text string) model.TextBlock {
		return model.TextBlock{
			Rect:     model.NewRect(72, y, 540, y+12),
			Text:     text,
			FontSize: 11,
		}
	}
	textBlocks := []model.TextBlock{
		makeBlock(100, "the quick brown fox jumps over the lazy dog while the sun sets slowly"),
		makeBlock(114, "behind the hills and the evening light fades into a calm quiet dusk"),
		makeBlock(166, "a second group of lines sits far below the first and keeps the same"),
		makeBlock(180, "steady body style from its opening words through to its closing ones"),
	}

	zones := layout.NewSegmenter().Zones(textBlocks, 612)
	if len(zones) != 2 {
		t.Fatalf("got %d zones, want 2", len(zones))
	}

	for i := range zones {
		c := Classify(&zones[i])
		if c.Type != model.ZoneParagraph {
			t.Errorf("zone %d classified as %s, want paragraph (scores %v)", i, c.Type, c.Scores)
		}
	}
}

func TestClassify_List(t *testing.T) {
	zone := &model.Zone{
		Rect: model.NewRect(72, 100, 500, 160),
		Text: "• reading begins near the upper left corner of every page\n" +
			"• a bullet list breaks the body into separate entries\n" +
			"• each entry stands on its own line within the outline",
		AvgFontSize: 14,
		MaxFontSize: 14,
		BlockCount:  3,
	}

	c := Classify(zone)

	if c.Type != model.ZoneList {
		t.Errorf("classified as %s, want list (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_ListWinsParagraphTie(t *testing.T) {
	// Engineered so the list and paragraph hypotheses both reach the maximum
	// score; the more specific type must win.
	zone := &model.Zone{
		Rect: model.NewRect(72, 100, 500, 160),
		Text: "1. reading begins near the upper left corner of every page layout\n" +
			"• second thought continues across the middle of the body text here\n" +
			"• third idea wraps up the closing stretch of the final passage",
		AvgFontSize: 11,
		MaxFontSize: 11,
		BlockCount:  3,
	}

	c := Classify(zone)

	if c.Scores[model.ZoneList] != c.Scores[model.ZoneParagraph] {
		t.Fatalf("expected a list/paragraph tie, got %f vs %f",
			c.Scores[model.ZoneList], c.Scores[model.ZoneParagraph])
	}
	if c.Type != model.ZoneList {
		t.Errorf("classified as %s, want list (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_TableLike(t *testing.T) {
	zone := &model.Zone{
		Rect: model.NewRect(72, 100, 372, 400),
		Text: "item description quantity amount\n" +
			"12 widgets 4 99\n" +
			"13 gadgets 2 49\n" +
			"14 gizmos 7 21",
		AvgFontSize: 9.5,
		MaxFontSize: 9.5,
		BlockCount:  10,
	}

	c := Classify(zone)

	if c.Type != model.ZoneTableLike {
		t.Errorf("classified as %s, want table_like (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_Card(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 100, 322, 350),
		Text:        "Pro Tip\nRestart after installing",
		AvgFontSize: 12,
		MaxFontSize: 12,
		HasBold:     true,
		BlockCount:  2,
	}

	c := Classify(zone)

	if c.Type != model.ZoneCard {
		t.Errorf("classified as %s, want card (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_Caption(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 400, 300, 412),
		Text:        "Figure 2 shows the result",
		AvgFontSize: 9.5,
		MaxFontSize: 9.5,
		HasItalic:   true,
		BlockCount:  1,
	}

	c := Classify(zone)

	if c.Type != model.ZoneCaption {
		t.Errorf("classified as %s, want caption (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_Footnote(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 740, 400, 750),
		Text:        "1 See appendix for details",
		AvgFontSize: 8,
		MaxFontSize: 8,
		BlockCount:  1,
	}

	c := Classify(zone)

	if c.Type != model.ZoneFootnote {
		t.Errorf("classified as %s, want footnote (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_EmptyZoneFallsBackToParagraph(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 100, 500, 112),
		AvgFontSize: 11,
		MaxFontSize: 11,
		BlockCount:  1,
	}

	c := Classify(zone)

	if c.Type != model.ZoneParagraph {
		t.Errorf("classified as %s, want paragraph fallback (scores %v)", c.Type, c.Scores)
	}
}

func TestClassify_AnnotatesZone(t *testing.T) {
	zone := &model.Zone{
		Rect:        model.NewRect(72, 60, 540, 90),
		Text:        "Quarterly Business Overview Report",
		AvgFontSize: 28,
		MaxFontSize: 28,
		HasBold:     true,
		BlockCount:  1,
	}

	c := Classify(zone)

	if zone.Type != c.Type || zone.Confidence != c.Confidence {
		t.Errorf("zone annotation %s/%f does not match result %s/%f",
			zone.Type, zone.Confidence, c.Type, c.Confidence)
	}
	if len(zone.Scores) != len(model.ZoneTypes) {
		t.Errorf("score vector has %d entries, want %d", len(zone.Scores), len(model.ZoneTypes))
	}
}

func TestScores_AlwaysInUnitRange(t *testing.T) {
	zones := []*model.Zone{
		{Rect: model.NewRect(0, 0, 0, 0)},
		{Rect: model.NewRect(72, 100, 500, 700), Text: strings.Repeat("word ", 200), AvgFontSize: 11, MaxFontSize: 11, BlockCount: 12},
		{Rect: model.NewRect(72, 60, 540, 120), Text: "BIG BOLD BANNER", AvgFontSize: 30, MaxFontSize: 30, HasBold: true, BlockCount: 1},
		{Rect: model.NewRect(72, 740, 540, 748), Text: "2 tiny note", AvgFontSize: 6, MaxFontSize: 6, BlockCount: 1},
	}

	for _, zone := range zones {
		c := Classify(zone)
		for zt, score := range c.Scores {
			if score < 0 || score > 1 {
				t.Errorf("score for %s out of range: %f (zone %q)", zt, score, zone.Text)
			}
		}
		if c.Confidence < 0 || c.Confidence > 1 {
			t.Errorf("confidence out of range: %f", c.Confidence)
		}
	}
}
