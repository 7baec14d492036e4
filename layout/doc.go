// Package layout provides spatial page analysis: margin detection, coarse
// grid detection, visual box detection from drawing primitives, reading-order
// zone segmentation, and header/footer band extraction.
//
// The central type is [Segmenter], which groups a page's text blocks into
// reading-order zones using vertical gap and horizontal overlap rules. All
// thresholds are carried in [SegmenterConfig] so they can be tuned and tested:
//
//	seg := layout.NewSegmenter()
//	zones := seg.Zones(textBlocks, pageWidth)
//
// Grid and visual box detection are independent passes with their own
// [GridConfig] and [BoxConfig].
package layout
