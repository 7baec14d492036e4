// Package model provides the data types shared across the analysis pipeline.
//
// The package defines both the raw input reported by the PDF backend and the
// structural output produced by the pipeline, making it the primary API for
// consuming analysis results.
//
// # Input
//
// The backend supplies one [PageData] per page: text organized as
// [RawBlock] → [RawLine] → [Span], vector [Drawing] primitives, and embedded
// [ImageObject] occurrences. All coordinates use a top-left origin with Y
// increasing downward, matching reading order.
//
// # Output
//
// The pipeline produces one [PageRecord] per page containing:
//
//   - [TextBlock] - aggregated, typographically homogeneous text blocks
//   - [Zone] - reading-order groups of blocks with an assigned [ZoneType]
//   - [VisualBox] - rectangular visual containers from drawing primitives
//   - [Table] - validated tables (header plus width-consistent rows)
//   - [Image] - embedded images with an assigned [ImageRole]
//
// A whole run additionally yields one [DocumentAnalysis] with corpus-wide
// statistics and an inferred [DocumentType].
//
// # Geometry
//
// [Rect] and [Point] support the position arithmetic used throughout:
// union, intersection tests, horizontal overlap ratios, centers, and areas.
//
// All entities are produced once per run and are read-only thereafter. The
// only exception is [Zone], which the segmenter creates and the classifier
// then annotates in place.
package model
