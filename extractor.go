package tabstitch

import (
	"context"
	"fmt"
	"sort"

	"github.com/tsawler/tabstitch/model"
)

// Extractor provides a fluent interface for extracting tables from a
// document. Each configuration method returns a new Extractor instance,
// allowing method chaining without shared mutation.
type Extractor struct {
	// Source
	filename string
	opener   func(filename string, cfg Config) (Document, error)
	doc      Document

	// Lifecycle
	ownsDoc bool // true if we opened the document and should close it

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		opener:   e.opener,
		doc:      e.doc,
		ownsDoc:  e.ownsDoc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ensureDocument opens the document if not already open.
func (e *Extractor) ensureDocument() error {
	if e.doc != nil {
		return nil
	}
	if e.filename == "" || e.opener == nil {
		return ErrNoDocument
	}
	doc, err := e.opener(e.filename, e.options.config)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", e.filename, err)
	}
	e.doc = doc
	e.ownsDoc = true
	return nil
}

// Close releases the document if the Extractor opened it.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.ownsDoc = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	tables, _, err := tabstitch.Open("doc.pdf").Pages(1, 3, 5).Tables()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	tables, _, err := tabstitch.Open("doc.pdf").PageRange(5, 10).Tables()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// WithConfig replaces the configuration. An invalid config is reported by
// the terminal operation.
//
// Example:
//
//	cfg := tabstitch.DefaultConfig()
//	cfg.Tables.ColumnMinGap = 30
//	tables, _, err := tabstitch.Open("doc.pdf").WithConfig(cfg).Tables()
func (e *Extractor) WithConfig(cfg Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = cfg.clone()
	if err := cfg.Validate(); err != nil && newExt.err == nil {
		newExt.err = err
	}
	return newExt
}

// Mode selects the continuation rule.
//
// Example:
//
//	tables, _, err := tabstitch.Open("doc.pdf").Mode(tabstitch.ModeSpanning).Tables()
func (e *Extractor) Mode(mode StitchMode) *Extractor {
	newExt := e.clone()
	newExt.options.mode = mode
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Tables reconstructs and stitches the tables of the selected pages.
// Warnings describe discarded regions.
//
// Example:
//
//	tables, warnings, err := tabstitch.Open("document.pdf").Tables()
func (e *Extractor) Tables() ([]*model.LogicalTable, []Warning, error) {
	return e.TablesContext(context.Background())
}

// TablesContext is Tables with cancellation checked between pages.
func (e *Extractor) TablesContext(ctx context.Context) ([]*model.LogicalTable, []Warning, error) {
	res, err := e.run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return res.Tables, res.Warnings, nil
}

// Fragments returns the raw per-page fragments without stitching.
func (e *Extractor) Fragments() ([]*model.Fragment, []Warning, error) {
	res, err := e.run(context.Background())
	if err != nil {
		return nil, nil, err
	}
	return res.Fragments, res.Warnings, nil
}

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return 0, err
	}
	defer e.Close()
	return e.doc.NumPages(), nil
}

func (e *Extractor) run(ctx context.Context) (*Result, error) {
	if e.err != nil {
		return nil, e.err
	}

	engine, err := NewEngine(e.options.config, e.options.mode)
	if err != nil {
		return nil, err
	}

	if err := e.ensureDocument(); err != nil {
		return nil, err
	}
	defer e.Close()

	pages, err := e.resolvePages()
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx, e.doc, pages)
}

// resolvePages validates the 1-indexed selection and returns it sorted
// without duplicates. No selection means every page.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.doc.NumPages()

	if len(e.options.pages) == 0 {
		pages := make([]int, pageCount)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	seen := make(map[int]bool)
	var pages []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("%w: page %d not in 1-%d", ErrPageOutOfRange, p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	sort.Ints(pages)
	return pages, nil
}
