// Package tabstitch provides a fluent API for reconstructing tables from
// positioned text and stitching table fragments that span pages.
//
// Basic usage:
//
//	tables, warnings, err := tabstitch.Open("submission.pdf").Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tabstitch.FormatWarnings(warnings))
//	}
//	for _, t := range tables {
//	    csv, _ := t.ToCSV()
//	    fmt.Println(csv)
//	}
//
// With options:
//
//	tables, _, err := tabstitch.Open("loss-runs.pdf").
//	    PageRange(2, 6).
//	    Mode(tabstitch.ModeSpanning).
//	    Tables()
//
// Any layout provider can feed the engine by implementing [Document]; the
// pdfsource package is the PDF provider used by [Open].
package tabstitch

import (
	"github.com/tsawler/tabstitch/pdfsource"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The document is opened lazily and closed by the terminal operation.
//
// Example:
//
//	tables, warnings, err := tabstitch.Open("document.pdf").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		opener:   openPDF,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-opened Document.
// The caller is responsible for closing the document.
//
// Example:
//
//	doc := myprovider.Load(data) // any Document implementation
//	defer doc.Close()
//	tables, warnings, err := tabstitch.FromDocument(doc).Tables()
func FromDocument(doc Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

func openPDF(filename string, cfg Config) (Document, error) {
	doc, err := pdfsource.Open(filename, cfg.Ruled)
	if err != nil {
		return nil, err
	}
	return pdfDocument{doc}, nil
}

// pdfDocument adapts *pdfsource.Document to Document
type pdfDocument struct {
	*pdfsource.Document
}

func (d pdfDocument) Page(n int) (Page, error) {
	p, err := d.Document.Page(n)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	cfg := tabstitch.Must(tabstitch.LoadConfigFile("tabstitch.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables is a helper that wraps a call to Tables() or Fragments() and
// panics if the error is non-nil. It discards warnings and returns just the
// value.
//
// Example:
//
//	tables := tabstitch.MustTables(tabstitch.Open("document.pdf").Tables())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
