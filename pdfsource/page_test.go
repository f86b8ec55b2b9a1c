package pdfsource

import (
	"math"
	"testing"

	"github.com/ledongthuc/pdf"
)

func glyphs(s string, x, y, size float64) []pdf.Text {
	var out []pdf.Text
	for _, r := range s {
		out = append(out, pdf.Text{X: x, Y: y, W: size / 2, FontSize: size, S: string(r)})
		x += size / 2
	}
	return out
}

func TestMergeGlyphs_SplitsOnSpaceAndGap(t *testing.T) {
	var in []pdf.Text
	in = append(in, glyphs("Net Premium", 100, 700, 10)...)
	in = append(in, glyphs("2024", 300, 700, 10)...)

	tokens := mergeGlyphs(in, 792)

	want := []string{"Net", "Premium", "2024"}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("Token %d: expected %q, got %q", i, w, tokens[i].Text)
		}
	}
	if tokens[0].BBox.X0 != 100 || tokens[0].BBox.X1 != 115 {
		t.Errorf("Unexpected extent for 'Net': %v-%v", tokens[0].BBox.X0, tokens[0].BBox.X1)
	}
}

func TestMergeGlyphs_TopDownCoordinates(t *testing.T) {
	tokens := mergeGlyphs(glyphs("Year", 50, 692, 10), 792)
	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d", len(tokens))
	}
	box := tokens[0].BBox
	if math.Abs(box.Top-92) > 1e-9 || math.Abs(box.Bottom-102) > 1e-9 {
		t.Errorf("Expected top 92 and bottom 102, got %v and %v", box.Top, box.Bottom)
	}
}

func TestMergeGlyphs_SeparatesLines(t *testing.T) {
	var in []pdf.Text
	in = append(in, glyphs("Lower", 50, 600, 10)...)
	in = append(in, glyphs("Upper", 50, 700, 10)...)

	tokens := mergeGlyphs(in, 792)
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Text != "Upper" || tokens[1].Text != "Lower" {
		t.Errorf("Expected top-down order, got %q then %q", tokens[0].Text, tokens[1].Text)
	}
}

func TestMergeGlyphs_ZeroWidthGlyphs(t *testing.T) {
	// fonts without a width table report W == 0 and no advance
	var in []pdf.Text
	for _, r := range "Claims" {
		in = append(in, pdf.Text{X: 40, Y: 500, FontSize: 10, S: string(r)})
	}
	tokens := mergeGlyphs(in, 792)
	if len(tokens) != 1 || tokens[0].Text != "Claims" {
		t.Fatalf("Expected a single 'Claims' token, got %v", tokens)
	}
}

func TestRectSegments(t *testing.T) {
	rects := []pdf.Rect{
		// thin horizontal rule
		{Min: pdf.Point{X: 10, Y: 700}, Max: pdf.Point{X: 200, Y: 701}},
		// thin vertical rule
		{Min: pdf.Point{X: 50, Y: 600}, Max: pdf.Point{X: 51, Y: 700}},
		// cell outline, drawn with a negative height
		{Min: pdf.Point{X: 10, Y: 500}, Max: pdf.Point{X: 110, Y: 480}},
		// dot
		{Min: pdf.Point{X: 0, Y: 0}, Max: pdf.Point{X: 1, Y: 1}},
	}
	segs := rectSegments(rects, 792, 3)

	if len(segs) != 6 {
		t.Fatalf("Expected 6 segments, got %d", len(segs))
	}
	if !segs[0].IsHorizontal(0.01) || math.Abs(segs[0].Start.Y-91.5) > 1e-9 {
		t.Errorf("Expected horizontal rule at 91.5, got %+v", segs[0])
	}
	if !segs[1].IsVertical(0.01) || segs[1].Start.Y != 92 || segs[1].End.Y != 192 {
		t.Errorf("Expected vertical rule from 92 to 192, got %+v", segs[1])
	}
	if segs[2].Start.Y != 292 || segs[3].Start.Y != 312 {
		t.Errorf("Expected outline edges at 292 and 312, got %v and %v", segs[2].Start.Y, segs[3].Start.Y)
	}
}
