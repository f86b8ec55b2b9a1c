package tables

import (
	"reflect"
	"testing"

	"github.com/tsawler/tabstitch/model"
)

// ruledPage lays out a 3x2 ruled table at y=100..190 with a caption above
func ruledPage() PageInput {
	region := model.RuledRegion{
		BBox:         model.NewBBox(0, 100, 200, 190),
		ColumnBounds: []model.Interval{{X0: 0, X1: 100}, {X0: 100, X1: 200}},
	}
	for _, top := range []float64{100, 130, 160} {
		region.Cells = append(region.Cells,
			model.NewBBox(0, top, 100, top+30),
			model.NewBBox(100, top, 200, top+30),
		)
	}
	return PageInput{
		Number: 1,
		Height: 792,
		Tokens: []model.Token{
			tok("Schedule A", 10, 70),
			tok("Name", 10, 105),
			tok("Amt", 110, 105),
			tok("x", 10, 135),
			tok("100", 110, 135),
			tok("y", 10, 165),
			tok("250", 110, 165),
		},
		Regions: []model.RuledRegion{region},
	}
}

func TestBorderedDetector_Detect(t *testing.T) {
	d, err := NewBorderedDetector(testConfig())
	if err != nil {
		t.Fatalf("NewBorderedDetector() error: %v", err)
	}
	if d.Name() != "bordered" {
		t.Errorf("Expected name 'bordered', got '%s'", d.Name())
	}

	results := d.Detect(ruledPage())
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	res := results[0]
	if res.Outcome != Found {
		t.Fatalf("Expected found, got %v (%s)", res.Outcome, res.Reason)
	}

	f := res.Fragment
	if f.Kind != model.KindBordered || f.Page != 1 {
		t.Errorf("Unexpected fragment metadata %+v", f)
	}
	if !f.HasHeader || !reflect.DeepEqual(f.Header, []string{"Name", "Amt"}) {
		t.Errorf("Expected header [Name Amt], got %v (has=%v)", f.Header, f.HasHeader)
	}
	want := [][]string{{"Name", "Amt"}, {"x", "100"}, {"y", "250"}}
	if !reflect.DeepEqual(f.Rows, want) {
		t.Errorf("Expected rows %v, got %v", want, f.Rows)
	}
	if !reflect.DeepEqual(f.Titles, []string{"Schedule A"}) {
		t.Errorf("Expected titles [Schedule A], got %v", f.Titles)
	}
}

func TestBorderedDetector_Malformed(t *testing.T) {
	page := ruledPage()
	page.Regions[0].Cells = page.Regions[0].Cells[:2]

	d, _ := NewBorderedDetector(testConfig())
	res := d.Detect(page)[0]
	if res.Outcome != Malformed {
		t.Errorf("Expected malformed, got %v", res.Outcome)
	}
	if res.Fragment != nil {
		t.Error("Expected no fragment for a malformed result")
	}
}

func TestBorderedDetector_EmptyRegion(t *testing.T) {
	page := ruledPage()
	page.Tokens = nil

	d, _ := NewBorderedDetector(testConfig())
	if res := d.Detect(page)[0]; res.Outcome != NoTable {
		t.Errorf("Expected no table, got %v", res.Outcome)
	}
}

func TestBorderedDetector_NoRegions(t *testing.T) {
	d, _ := NewBorderedDetector(testConfig())
	results := d.Detect(PageInput{Number: 1})
	if len(results) != 1 || results[0].Outcome != NoTable {
		t.Errorf("Expected a single no-table result, got %v", results)
	}
}

func TestBorderedDetector_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ColumnMergeThreshold = 2
	if _, err := NewBorderedDetector(cfg); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestPageDetector_PicksPath(t *testing.T) {
	d, err := NewPageDetector(testConfig())
	if err != nil {
		t.Fatalf("NewPageDetector() error: %v", err)
	}
	frags := Fragments(d.Detect(ruledPage()))
	if len(frags) != 1 || frags[0].Kind != model.KindBordered {
		t.Errorf("Expected one bordered fragment, got %v", frags)
	}
}
