package pdfsource

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/tabstitch/model"
)

// Document is an open PDF file
type Document struct {
	f        *os.File
	r        *pdf.Reader
	settings model.RuledSettings
}

// Open opens a PDF file. settings are the default ruled-line settings for
// its pages.
func Open(path string, settings model.RuledSettings) (*Document, error) {
	if err := sniff(path); err != nil {
		return nil, err
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Document{f: f, r: r, settings: settings}, nil
}

// NumPages returns the page count
func (d *Document) NumPages() int {
	return d.r.NumPage()
}

// Page returns the 1-indexed page n
func (d *Document) Page(n int) (*Page, error) {
	if n < 1 || n > d.r.NumPage() {
		return nil, fmt.Errorf("page %d not in 1-%d", n, d.r.NumPage())
	}
	p := d.r.Page(n)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", n)
	}
	height, err := pageHeight(p)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	return &Page{number: n, height: height, page: p}, nil
}

// Close closes the underlying file
func (d *Document) Close() error {
	if d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	return err
}

// pageHeight reads the MediaBox, following Parent links for inherited boxes
func pageHeight(p pdf.Page) (float64, error) {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Kind() != pdf.Array || box.Len() != 4 {
			continue
		}
		lly, ury := number(box.Index(1)), number(box.Index(3))
		if ury < lly {
			lly, ury = ury, lly
		}
		if ury-lly <= 0 {
			return 0, fmt.Errorf("invalid MediaBox height %v", ury-lly)
		}
		return ury - lly, nil
	}
	return 0, fmt.Errorf("no MediaBox")
}

func number(v pdf.Value) float64 {
	switch v.Kind() {
	case pdf.Integer:
		return float64(v.Int64())
	case pdf.Real:
		return v.Float64()
	default:
		return 0
	}
}
