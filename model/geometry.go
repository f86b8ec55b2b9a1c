package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box in top-down page coordinates: Top is the
// smaller Y value and Bottom the larger one.
type BBox struct {
	X0     float64 // Left
	Top    float64
	X1     float64 // Right
	Bottom float64
}

// NewBBox creates a bounding box from its four edges, normalising swapped edges
func NewBBox(x0, top, x1, bottom float64) BBox {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if bottom < top {
		top, bottom = bottom, top
	}
	return BBox{X0: x0, Top: top, X1: x1, Bottom: bottom}
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.X0 + b.X1) / 2,
		Y: (b.Top + b.Bottom) / 2,
	}
}

// Horizontal returns the horizontal extent as an interval
func (b BBox) Horizontal() Interval {
	return Interval{X0: b.X0, X1: b.X1}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X0 && p.X <= b.X1 &&
		p.Y >= b.Top && p.Y <= b.Bottom
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Bottom < other.Top ||
		b.Top > other.Bottom)
}

// Union returns the smallest box containing both boxes. A zero box is treated
// as empty so that unions can be accumulated from BBox{}.
func (b BBox) Union(other BBox) BBox {
	if b.IsZero() {
		return other
	}
	if other.IsZero() {
		return b
	}
	return BBox{
		X0:     math.Min(b.X0, other.X0),
		Top:    math.Min(b.Top, other.Top),
		X1:     math.Max(b.X1, other.X1),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X0:     b.X0 - margin,
		Top:    b.Top - margin,
		X1:     b.X1 + margin,
		Bottom: b.Bottom + margin,
	}
}

// IsZero reports whether all edges are zero
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// Interval is a half-open range [X0, X1) on the horizontal axis.
type Interval struct {
	X0, X1 float64
}

// Width returns the interval length
func (iv Interval) Width() float64 {
	return iv.X1 - iv.X0
}

// Center returns the interval midpoint
func (iv Interval) Center() float64 {
	return (iv.X0 + iv.X1) / 2
}

// Overlap returns the length shared by both intervals (0 when disjoint)
func (iv Interval) Overlap(other Interval) float64 {
	return math.Max(0, math.Min(iv.X1, other.X1)-math.Max(iv.X0, other.X0))
}

// OverlapFraction returns overlap length divided by the shorter width.
// Degenerate intervals never overlap.
func (iv Interval) OverlapFraction(other Interval) float64 {
	shorter := math.Min(iv.Width(), other.Width())
	if shorter <= 0 {
		return 0
	}
	return iv.Overlap(other) / shorter
}

// Intersects reports whether the intervals share a non-empty range
func (iv Interval) Intersects(other Interval) bool {
	return iv.X0 < other.X1 && other.X0 < iv.X1
}

// Union returns the smallest interval covering both
func (iv Interval) Union(other Interval) Interval {
	return Interval{X0: math.Min(iv.X0, other.X0), X1: math.Max(iv.X1, other.X1)}
}

// Segment is a straight ruled line on the page
type Segment struct {
	Start, End Point
}

// IsHorizontal reports whether the segment is flat within tolerance
func (s Segment) IsHorizontal(tolerance float64) bool {
	return math.Abs(s.End.Y-s.Start.Y) <= tolerance
}

// IsVertical reports whether the segment is upright within tolerance
func (s Segment) IsVertical(tolerance float64) bool {
	return math.Abs(s.End.X-s.Start.X) <= tolerance
}

// Length returns the segment length
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}
