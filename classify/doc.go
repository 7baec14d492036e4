// Package classify assigns content types to zones.
//
// Classification is deterministic and stateless: a feature vector is
// extracted from the zone ([ExtractFeatures]) and scored by nine independent
// scoring functions, one per content-type hypothesis. Each scorer combines a
// subset of features with additive weights and is clamped to [0, 1]. The
// best-scoring type wins; exact ties resolve by the fixed priority order in
// model.ZoneTypes.
//
// The package also provides helpers for turning classified zone text into
// renderer-ready structures: [ExtractListItems] and [ExtractKeyValues].
package classify
