package model

// TextBlock is a typographically homogeneous block of text produced by the
// span aggregator: the text of one raw backend block with its dominant font
// metadata. TextBlocks are immutable once produced and owned by the page
// that produced them.
type TextBlock struct {
	Rect     Rect
	Text     string
	FontSize float64 // average span font size
	FontName string  // most frequent span font name
	Color    int     // most frequent span color
	Bold     bool    // true if any span is bold
	Italic   bool    // true if any span is italic
}

// Width returns the block width.
func (b TextBlock) Width() float64 {
	return b.Rect.Width()
}

// Height returns the block height.
func (b TextBlock) Height() float64 {
	return b.Rect.Height()
}

// Area returns the block area.
func (b TextBlock) Area() float64 {
	return b.Rect.Area()
}

// Center returns the block center point.
func (b TextBlock) Center() Point {
	return b.Rect.Center()
}
