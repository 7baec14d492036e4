// Package pagelens infers the logical structure of document pages from the
// low-level geometric and typographic primitives produced by a PDF rendering
// backend, then aggregates per-page findings into a document-level profile.
//
// The backend itself stays external behind the [Source] interface; pagelens
// consumes its raw spans, drawing primitives, and embedded images, and
// produces one read-only [model.PageRecord] per page plus one
// [model.DocumentAnalysis] per run.
//
// Basic usage:
//
//	result, err := pagelens.New(source).Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	for _, page := range result.Pages {
//	    // page.Zones, page.Tables, page.Images ...
//	}
//
// With options:
//
//	result, err := pagelens.New(source).
//	    WithTableBackends(ruled, scored).
//	    Pages(0, 1, 2).
//	    OnProgress(func(done, total int) { fmt.Printf("%d/%d\n", done, total) }).
//	    Run(ctx)
//
// Each configuration method returns a new Analyzer, so a configured chain is
// safe to reuse and share.
package pagelens

import (
	"context"

	"github.com/tsawler/pagelens/model"
)

// Source supplies raw page content from the external PDF backend.
// Implementations must return pages by zero-based index.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the raw content of one page. An error degrades that page
	// to a partial record; it never aborts the run.
	Page(index int) (*model.PageData, error)
}

// Result is the outcome of one analysis run: the ordered page records and
// the document-level aggregate.
type Result struct {
	Pages    []*model.PageRecord
	Analysis *model.DocumentAnalysis
}

// Analyze is a convenience wrapper that runs a default-configured analyzer
// over the source.
func Analyze(ctx context.Context, source Source) (*Result, error) {
	return New(source).Run(ctx)
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for scripts and tests where
// error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
