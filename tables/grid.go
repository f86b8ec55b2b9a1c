package tables

import (
	"math"
	"sort"

	"github.com/tsawler/tabstitch/model"
)

// GridDetector turns ruled line segments into table regions
type GridDetector struct {
	// Segments whose positions differ by less than this share an axis line
	SnapTolerance float64

	// Collinear pieces separated by at most this gap are joined
	JoinTolerance float64

	// Slack allowed when testing whether two lines cross
	IntersectionTolerance float64

	// Segments shorter than this are ignored
	MinLineLength float64

	// Minimum number of aligned lines on each axis to form a grid
	MinAlignedLines int
}

// NewGridDetector creates a grid detector from provider settings
func NewGridDetector(settings model.RuledSettings) *GridDetector {
	return &GridDetector{
		SnapTolerance:         settings.SnapTolerance,
		JoinTolerance:         settings.JoinTolerance,
		IntersectionTolerance: settings.IntersectionTolerance,
		MinLineLength:         settings.EdgeMinLength,
		MinAlignedLines:       2,
	}
}

// GridHypothesis is one connected set of ruled lines
type GridHypothesis struct {
	BBox model.BBox

	// Horizontal line positions (top-down Y, ascending)
	HorizontalLines []float64

	// Vertical line positions (X, ascending)
	VerticalLines []float64

	Rows int
	Cols int

	horizontals []AlignedLineGroup
	verticals   []AlignedLineGroup
}

// AlignedLineGroup represents a group of lines aligned on an axis
type AlignedLineGroup struct {
	// Position on the alignment axis (X for vertical lines, Y for horizontal)
	Position float64

	// Spans are the joined pieces along the other axis, sorted
	Spans []model.Interval

	// Span of the lines (min to max on the perpendicular axis)
	MinExtent float64
	MaxExtent float64
}

// Covers reports whether a single joined piece covers [from, to] within tol
func (g AlignedLineGroup) Covers(from, to, tol float64) bool {
	for _, s := range g.Spans {
		if s.X0 <= from+tol && s.X1 >= to-tol {
			return true
		}
	}
	return false
}

// Detect finds every ruled grid in the segments and returns it as a region
func (gd *GridDetector) Detect(segments []model.Segment) []model.RuledRegion {
	var regions []model.RuledRegion
	for _, h := range gd.DetectHypotheses(segments) {
		if r, ok := h.ToRegion(gd.IntersectionTolerance); ok {
			regions = append(regions, r)
		}
	}
	return regions
}

// DetectHypotheses groups the segments into grids, top to bottom
func (gd *GridDetector) DetectHypotheses(segments []model.Segment) []*GridHypothesis {
	var horizontals, verticals []model.Segment
	for _, s := range segments {
		if s.Length() < gd.MinLineLength {
			continue
		}
		switch {
		case s.IsHorizontal(gd.SnapTolerance):
			horizontals = append(horizontals, s)
		case s.IsVertical(gd.SnapTolerance):
			verticals = append(verticals, s)
		}
	}

	if len(horizontals) < gd.MinAlignedLines || len(verticals) < gd.MinAlignedLines {
		return nil
	}

	hGroups := gd.groupAlignedLines(horizontals, true)
	vGroups := gd.groupAlignedLines(verticals, false)

	if len(hGroups) < gd.MinAlignedLines || len(vGroups) < gd.MinAlignedLines {
		return nil
	}

	return gd.findGrids(hGroups, vGroups)
}

// groupAlignedLines groups lines that are aligned on the same axis
func (gd *GridDetector) groupAlignedLines(lines []model.Segment, isHorizontal bool) []AlignedLineGroup {
	if len(lines) == 0 {
		return nil
	}

	positions := make([]float64, len(lines))
	spans := make([]model.Interval, len(lines))
	for i, line := range lines {
		if isHorizontal {
			positions[i] = (line.Start.Y + line.End.Y) / 2
			spans[i] = model.Interval{X0: math.Min(line.Start.X, line.End.X), X1: math.Max(line.Start.X, line.End.X)}
		} else {
			positions[i] = (line.Start.X + line.End.X) / 2
			spans[i] = model.Interval{X0: math.Min(line.Start.Y, line.End.Y), X1: math.Max(line.Start.Y, line.End.Y)}
		}
	}

	indices := make([]int, len(lines))
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool {
		return positions[indices[i]] < positions[indices[j]]
	})

	var groups []AlignedLineGroup
	var members []model.Interval
	current := AlignedLineGroup{Position: positions[indices[0]]}

	for n, idx := range indices {
		pos := positions[idx]
		if n > 0 && pos-current.Position > gd.SnapTolerance {
			gd.finalizeGroup(&current, members)
			groups = append(groups, current)
			current = AlignedLineGroup{Position: pos}
			members = nil
		}
		members = append(members, spans[idx])
		current.Position += (pos - current.Position) / float64(len(members))
	}
	gd.finalizeGroup(&current, members)
	groups = append(groups, current)

	return groups
}

// finalizeGroup joins collinear pieces and records the extent
func (gd *GridDetector) finalizeGroup(group *AlignedLineGroup, members []model.Interval) {
	sort.Slice(members, func(i, j int) bool {
		return members[i].X0 < members[j].X0
	})

	group.Spans = nil
	for _, m := range members {
		last := len(group.Spans) - 1
		if last >= 0 && m.X0-group.Spans[last].X1 <= gd.JoinTolerance {
			group.Spans[last] = group.Spans[last].Union(m)
			continue
		}
		group.Spans = append(group.Spans, m)
	}

	group.MinExtent = group.Spans[0].X0
	group.MaxExtent = group.Spans[0].X1
	for _, s := range group.Spans[1:] {
		group.MaxExtent = math.Max(group.MaxExtent, s.X1)
	}
}

// findGrids splits the line groups into connected components. Every joined
// piece is a node; a horizontal and a vertical piece are connected when they
// cross within the intersection tolerance. Pieces that share a position
// inside one component are folded back into one line. Components with
// enough lines on both axes become hypotheses.
func (gd *GridDetector) findGrids(hGroups, vGroups []AlignedLineGroup) []*GridHypothesis {
	hPieces := explode(hGroups)
	vPieces := explode(vGroups)

	parent := make([]int, len(hPieces)+len(vPieces))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	tol := gd.IntersectionTolerance
	for i, h := range hPieces {
		for j, v := range vPieces {
			if h.reaches(v.Position, tol) && v.reaches(h.Position, tol) {
				parent[find(i)] = find(len(hPieces) + j)
			}
		}
	}

	components := map[int]*GridHypothesis{}
	var order []int
	for i, h := range hPieces {
		root := find(i)
		if components[root] == nil {
			components[root] = &GridHypothesis{}
			order = append(order, root)
		}
		components[root].horizontals = append(components[root].horizontals, h)
	}
	for j, v := range vPieces {
		if c := components[find(len(hPieces)+j)]; c != nil {
			c.verticals = append(c.verticals, v)
		}
	}

	var hypotheses []*GridHypothesis
	for _, root := range order {
		h := components[root]
		h.horizontals = fold(h.horizontals)
		h.verticals = fold(h.verticals)
		if len(h.horizontals) < gd.MinAlignedLines || len(h.verticals) < gd.MinAlignedLines {
			continue
		}
		h.finish()
		if h.Rows > 0 && h.Cols > 0 {
			hypotheses = append(hypotheses, h)
		}
	}

	sort.SliceStable(hypotheses, func(i, j int) bool {
		return hypotheses[i].BBox.Top < hypotheses[j].BBox.Top
	})
	return hypotheses
}

func (g AlignedLineGroup) reaches(pos, tol float64) bool {
	for _, s := range g.Spans {
		if pos >= s.X0-tol && pos <= s.X1+tol {
			return true
		}
	}
	return false
}

// explode returns one single-piece group per joined span
func explode(groups []AlignedLineGroup) []AlignedLineGroup {
	var out []AlignedLineGroup
	for _, g := range groups {
		for _, s := range g.Spans {
			out = append(out, AlignedLineGroup{
				Position:  g.Position,
				Spans:     []model.Interval{s},
				MinExtent: s.X0,
				MaxExtent: s.X1,
			})
		}
	}
	return out
}

// fold merges pieces at the same position and sorts them by position
func fold(pieces []AlignedLineGroup) []AlignedLineGroup {
	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].Position < pieces[j].Position
	})
	var out []AlignedLineGroup
	for _, p := range pieces {
		last := len(out) - 1
		if last >= 0 && out[last].Position == p.Position {
			out[last].Spans = append(out[last].Spans, p.Spans...)
			out[last].MinExtent = math.Min(out[last].MinExtent, p.MinExtent)
			out[last].MaxExtent = math.Max(out[last].MaxExtent, p.MaxExtent)
			continue
		}
		out = append(out, p)
	}
	return out
}

func (h *GridHypothesis) finish() {
	h.HorizontalLines = make([]float64, len(h.horizontals))
	for i, g := range h.horizontals {
		h.HorizontalLines[i] = g.Position
	}
	h.VerticalLines = make([]float64, len(h.verticals))
	for i, g := range h.verticals {
		h.VerticalLines[i] = g.Position
	}

	h.Rows = len(h.HorizontalLines) - 1
	h.Cols = len(h.VerticalLines) - 1
	h.BBox = model.NewBBox(
		h.VerticalLines[0], h.HorizontalLines[0],
		h.VerticalLines[len(h.VerticalLines)-1], h.HorizontalLines[len(h.HorizontalLines)-1],
	)
}

// ToRegion converts the hypothesis into a ruled region. Within each row,
// a cell ends at the next vertical line that actually crosses the row, so
// spanning cells come out as one wide box. Column bounds are the gaps
// between neighbouring vertical lines.
func (h *GridHypothesis) ToRegion(tol float64) (model.RuledRegion, bool) {
	if h.Rows <= 0 || h.Cols <= 0 {
		return model.RuledRegion{}, false
	}

	region := model.RuledRegion{BBox: h.BBox}
	for c := 0; c < h.Cols; c++ {
		region.ColumnBounds = append(region.ColumnBounds, model.Interval{
			X0: h.VerticalLines[c],
			X1: h.VerticalLines[c+1],
		})
	}

	for r := 0; r < h.Rows; r++ {
		top, bottom := h.HorizontalLines[r], h.HorizontalLines[r+1]
		left := h.VerticalLines[0]
		for c := 1; c <= h.Cols; c++ {
			if c < h.Cols && !h.verticals[c].Covers(top, bottom, tol) {
				continue
			}
			right := h.VerticalLines[c]
			region.Cells = append(region.Cells, model.NewBBox(left, top, right, bottom))
			left = right
		}
	}
	return region, true
}

// FilterRegionsByWords keeps regions holding at least minVertical words in
// total and at least one cell row with minHorizontal words
func FilterRegionsByWords(regions []model.RuledRegion, tokens []model.Token, minVertical, minHorizontal int) []model.RuledRegion {
	idx := NewTokenIndex(tokens)
	var kept []model.RuledRegion
	for _, r := range regions {
		if len(idx.Within(r.BBox)) < minVertical {
			continue
		}
		perRow := map[float64]int{}
		for _, c := range r.Cells {
			perRow[c.Top] += len(idx.Within(c))
		}
		for _, n := range perRow {
			if n >= minHorizontal {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept
}
