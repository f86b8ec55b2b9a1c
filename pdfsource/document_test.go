package pdfsource

import (
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsawler/tabstitch/model"
)

// writeFixture writes a two-page Letter PDF. Page 1 holds a ruled 3x3 grid
// with one word per cell; page 2 holds a single line of text.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetFont("Helvetica", "", 10)

	doc.AddPage()
	cells := [][]string{
		{"Year", "Claims", "Amount"},
		{"2021", "3", "1200"},
		{"2022", "5", "3400"},
	}
	for r, row := range cells {
		for c, word := range row {
			x := 72 + float64(c)*120
			y := 100 + float64(r)*24
			doc.Rect(x, y, 120, 24, "D")
			doc.Text(x+8, y+16, word)
		}
	}

	doc.AddPage()
	doc.Text(72, 100, "Notes")

	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestOpen_Missing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.pdf"), model.DefaultRuledSettings()); err == nil {
		t.Error("Expected error opening a missing file")
	}
}

func TestDocument_Pages(t *testing.T) {
	doc, err := Open(writeFixture(t), model.DefaultRuledSettings())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer doc.Close()

	if doc.NumPages() != 2 {
		t.Fatalf("Expected 2 pages, got %d", doc.NumPages())
	}
	if _, err := doc.Page(3); err == nil {
		t.Error("Expected error for page 3")
	}

	p, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}
	if p.Number() != 1 {
		t.Errorf("Expected page number 1, got %d", p.Number())
	}
	if p.Height() != 792 {
		t.Errorf("Expected Letter height 792, got %v", p.Height())
	}
}

func TestPage_Tokens(t *testing.T) {
	doc, err := Open(writeFixture(t), model.DefaultRuledSettings())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer doc.Close()

	p, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}
	tokens, err := p.Tokens()
	if err != nil {
		t.Fatalf("Tokens() error: %v", err)
	}

	found := map[string]model.Token{}
	for _, tok := range tokens {
		found[tok.Text] = tok
	}
	for _, w := range []string{"Year", "Claims", "Amount", "2021", "3400"} {
		if _, ok := found[w]; !ok {
			t.Errorf("Expected token %q, got %v", w, tokens)
		}
	}
	if year, ok := found["Year"]; ok && year.BBox.Top > found["2021"].BBox.Top {
		t.Error("Expected 'Year' above '2021' in top-down coordinates")
	}
}

func TestPage_RuledRegions(t *testing.T) {
	doc, err := Open(writeFixture(t), model.DefaultRuledSettings())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer doc.Close()

	p, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}
	regions, err := p.RuledRegions(model.DefaultRuledSettings())
	if err != nil {
		t.Fatalf("RuledRegions() error: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("Expected 1 region, got %d", len(regions))
	}
	if len(regions[0].ColumnBounds) != 3 {
		t.Errorf("Expected 3 column bounds, got %d", len(regions[0].ColumnBounds))
	}

	text := model.DefaultRuledSettings()
	text.Strategy = model.StrategyText
	regions, err = p.RuledRegions(text)
	if err != nil || regions != nil {
		t.Errorf("Expected no regions for the text strategy, got %v, %v", regions, err)
	}

	p2, err := doc.Page(2)
	if err != nil {
		t.Fatalf("Page(2) error: %v", err)
	}
	regions, err = p2.RuledRegions(model.DefaultRuledSettings())
	if err != nil || len(regions) != 0 {
		t.Errorf("Expected no regions on page 2, got %v, %v", regions, err)
	}
}
