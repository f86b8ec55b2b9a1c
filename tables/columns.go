package tables

import (
	"sort"

	"github.com/tsawler/tabstitch/layout"
	"github.com/tsawler/tabstitch/model"
)

// Origin tells where a column bound came from
type Origin int

const (
	// Explicit bounds come from ruled-line geometry
	Explicit Origin = iota

	// Inferred bounds come from gap-clustered token positions
	Inferred
)

func (o Origin) String() string {
	if o == Explicit {
		return "explicit"
	}
	return "inferred"
}

// ColumnBound is one column's horizontal extent, half-open [X0, X1)
type ColumnBound struct {
	model.Interval
	Origin Origin

	// Center is the cluster centroid for inferred bounds and the interval
	// midpoint for explicit ones
	Center float64
}

// MergeColumnBounds sorts raw ruled column boundaries and unions neighbours
// whose overlap fraction exceeds threshold, repeating until nothing changes.
// Remaining partial overlaps are split at their midpoint so the output is
// ordered and non-overlapping. Merging a merged list returns it unchanged.
func MergeColumnBounds(raw []model.Interval, threshold float64) []ColumnBound {
	ivs := make([]model.Interval, 0, len(raw))
	for _, iv := range raw {
		if iv.X1 < iv.X0 {
			iv.X0, iv.X1 = iv.X1, iv.X0
		}
		ivs = append(ivs, iv)
	}
	if len(ivs) == 0 {
		return nil
	}
	sort.SliceStable(ivs, func(i, j int) bool {
		if ivs[i].X0 != ivs[j].X0 {
			return ivs[i].X0 < ivs[j].X0
		}
		return ivs[i].X1 < ivs[j].X1
	})

	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(ivs); i++ {
			if ivs[i].OverlapFraction(ivs[i+1]) > threshold {
				ivs[i] = ivs[i].Union(ivs[i+1])
				ivs = append(ivs[:i+1], ivs[i+2:]...)
				changed = true
				i--
			}
		}
	}

	for i := 0; i+1 < len(ivs); i++ {
		if ivs[i].X1 > ivs[i+1].X0 {
			mid := (ivs[i].X1 + ivs[i+1].X0) / 2
			ivs[i].X1 = mid
			ivs[i+1].X0 = mid
		}
	}

	bounds := make([]ColumnBound, 0, len(ivs))
	for _, iv := range ivs {
		if iv.Width() <= 0 {
			continue
		}
		bounds = append(bounds, ColumnBound{Interval: iv, Origin: Explicit, Center: iv.Center()})
	}
	return bounds
}

// InferColumns clusters left-edge x positions by gap. Each cluster's
// centroid becomes a column centre; neighbouring bounds meet halfway between
// centres and the outer bounds reach half a gap past the extreme members.
// Fewer than two clusters is not a table.
func InferColumns(xs []float64, minGap float64) ([]ColumnBound, bool) {
	clusters := layout.ClusterByGap(xs, minGap)
	if len(clusters) < 2 {
		return nil, false
	}

	bounds := make([]ColumnBound, len(clusters))
	for i, c := range clusters {
		x0 := c.Min() - minGap/2
		if i > 0 {
			x0 = (clusters[i-1].Centroid + c.Centroid) / 2
		}
		x1 := c.Max() + minGap/2
		if i+1 < len(clusters) {
			x1 = (c.Centroid + clusters[i+1].Centroid) / 2
		}
		bounds[i] = ColumnBound{
			Interval: model.Interval{X0: x0, X1: x1},
			Origin:   Inferred,
			Center:   c.Centroid,
		}
	}
	return bounds, true
}

// NearestColumn returns the index of the bound whose centre is closest to
// x. Ties go to the leftmost column. Returns -1 for an empty list.
func NearestColumn(bounds []ColumnBound, x float64) int {
	best := -1
	bestDist := 0.0
	for i, b := range bounds {
		d := b.Center - x
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Intervals returns the bare intervals of a bound list
func Intervals(bounds []ColumnBound) []model.Interval {
	out := make([]model.Interval, len(bounds))
	for i, b := range bounds {
		out[i] = b.Interval
	}
	return out
}
