// Package tables extracts validated tables from a page via an ordered chain
// of extraction strategies.
//
// Two external backends are tried first, behind the [RuledTables] and
// [ScoredTables] interfaces, followed by a manual structural fallback
// ([ManualDetector]) that works directly from the page's raw text spans.
// The chain stops at the first strategy yielding at least one table that
// survives [Validate], which every candidate must pass regardless of its
// source: blank rows dropped, at least two rows remaining, and every body
// row padded or truncated to the header's width.
//
// Backend failures are logged and skipped; a page where every strategy fails
// simply has no tables.
package tables
