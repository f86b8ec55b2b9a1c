package tables

import (
	"reflect"
	"testing"

	"github.com/tsawler/tabstitch/model"
)

func hSeg(y, x1, x2 float64) model.Segment {
	return model.Segment{Start: model.Point{X: x1, Y: y}, End: model.Point{X: x2, Y: y}}
}

func vSeg(x, y1, y2 float64) model.Segment {
	return model.Segment{Start: model.Point{X: x, Y: y1}, End: model.Point{X: x, Y: y2}}
}

func TestNewGridDetector(t *testing.T) {
	gd := NewGridDetector(model.DefaultRuledSettings())
	if gd.SnapTolerance != 3 || gd.JoinTolerance != 3 || gd.IntersectionTolerance != 3 {
		t.Errorf("Unexpected tolerances %+v", gd)
	}
	if gd.MinLineLength != 3 {
		t.Errorf("Expected MinLineLength 3, got %f", gd.MinLineLength)
	}
	if gd.MinAlignedLines != 2 {
		t.Errorf("Expected MinAlignedLines 2, got %d", gd.MinAlignedLines)
	}
}

func TestGridDetector_SimpleGrid(t *testing.T) {
	gd := NewGridDetector(model.DefaultRuledSettings())
	regions := gd.Detect([]model.Segment{
		hSeg(100, 0, 200), hSeg(150, 0, 200), hSeg(200, 0, 200),
		vSeg(0, 100, 200), vSeg(100, 100, 200), vSeg(200, 100, 200),
	})

	if len(regions) != 1 {
		t.Fatalf("Expected 1 region, got %d", len(regions))
	}
	r := regions[0]
	if r.BBox != model.NewBBox(0, 100, 200, 200) {
		t.Errorf("Unexpected bbox %+v", r.BBox)
	}
	wantBounds := []model.Interval{{X0: 0, X1: 100}, {X0: 100, X1: 200}}
	if !reflect.DeepEqual(r.ColumnBounds, wantBounds) {
		t.Errorf("Expected bounds %v, got %v", wantBounds, r.ColumnBounds)
	}
	if len(r.Cells) != 4 {
		t.Errorf("Expected 4 cells, got %d", len(r.Cells))
	}
}

func TestGridDetector_SpanningCell(t *testing.T) {
	gd := NewGridDetector(model.DefaultRuledSettings())
	regions := gd.Detect([]model.Segment{
		hSeg(100, 0, 200), hSeg(150, 0, 200), hSeg(200, 0, 200),
		vSeg(0, 100, 200), vSeg(100, 150, 200), vSeg(200, 100, 200),
	})

	if len(regions) != 1 {
		t.Fatalf("Expected 1 region, got %d", len(regions))
	}
	cells := regions[0].Cells
	if len(cells) != 3 {
		t.Fatalf("Expected 3 cells, got %d", len(cells))
	}
	if cells[0] != model.NewBBox(0, 100, 200, 150) {
		t.Errorf("Expected the first row to be one spanning cell, got %+v", cells[0])
	}
}

func TestGridDetector_JoinsCollinearPieces(t *testing.T) {
	gd := NewGridDetector(model.DefaultRuledSettings())
	regions := gd.Detect([]model.Segment{
		hSeg(100, 0, 98), hSeg(101, 100, 200),
		hSeg(200, 0, 200),
		vSeg(0, 100, 200), vSeg(200, 100, 200),
	})

	if len(regions) != 1 {
		t.Fatalf("Expected 1 region, got %d", len(regions))
	}
	if len(regions[0].Cells) != 1 {
		t.Errorf("Expected 1 cell, got %d", len(regions[0].Cells))
	}
}

func TestGridDetector_SeparateGrids(t *testing.T) {
	gd := NewGridDetector(model.DefaultRuledSettings())
	hyps := gd.DetectHypotheses([]model.Segment{
		hSeg(400, 0, 100), hSeg(450, 0, 100),
		vSeg(0, 400, 450), vSeg(100, 400, 450),
		hSeg(100, 0, 200), hSeg(150, 0, 200),
		vSeg(0, 100, 150), vSeg(200, 100, 150),
	})

	if len(hyps) != 2 {
		t.Fatalf("Expected 2 grids, got %d", len(hyps))
	}
	if hyps[0].BBox.Top != 100 || hyps[1].BBox.Top != 400 {
		t.Errorf("Expected grids ordered top to bottom, got %v then %v", hyps[0].BBox.Top, hyps[1].BBox.Top)
	}
}

func TestGridDetector_ShortLinesFiltered(t *testing.T) {
	gd := NewGridDetector(model.DefaultRuledSettings())
	regions := gd.Detect([]model.Segment{
		hSeg(100, 0, 2), hSeg(200, 0, 2),
		vSeg(0, 100, 101), vSeg(2, 100, 101),
	})
	if len(regions) != 0 {
		t.Errorf("Expected no regions, got %d", len(regions))
	}
}

func TestGridDetector_EmptyInput(t *testing.T) {
	gd := NewGridDetector(model.DefaultRuledSettings())
	if regions := gd.Detect(nil); regions != nil {
		t.Errorf("Expected nil, got %v", regions)
	}
}

func TestFilterRegionsByWords(t *testing.T) {
	region := model.RuledRegion{
		BBox: model.NewBBox(0, 100, 200, 160),
		Cells: []model.BBox{
			model.NewBBox(0, 100, 100, 130), model.NewBBox(100, 100, 200, 130),
			model.NewBBox(0, 130, 100, 160), model.NewBBox(100, 130, 200, 160),
		},
	}
	tokens := []model.Token{tok("a", 10, 105), tok("b", 110, 105), tok("c", 10, 135)}

	if got := FilterRegionsByWords([]model.RuledRegion{region}, tokens, 3, 1); len(got) != 1 {
		t.Errorf("Expected region to be kept, got %d", len(got))
	}
	if got := FilterRegionsByWords([]model.RuledRegion{region}, tokens, 4, 1); len(got) != 0 {
		t.Errorf("Expected region to be dropped, got %d", len(got))
	}
}
