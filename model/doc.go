// Package model defines the data structures shared by the table
// reconstruction engine.
//
// # Geometry
//
// Coordinates are top-down: Y grows toward the bottom of the page, so a
// [BBox] has Top <= Bottom. Geometric primitives:
//
//   - [BBox] - bounding box with intersection, union and containment tests
//   - [Interval] - half-open horizontal range with overlap measures
//   - [Segment] - a ruled line used for grid detection
//
// # Input
//
// A layout provider produces [Token] values (text plus bounding box) and,
// when a page has drawn table borders, [RuledRegion] values detected with
// [RuledSettings].
//
// # Output
//
// The engine reconstructs [Fragment] grids per page and stitches them into
// [LogicalTable] values:
//
//	grid := table.Grid()
//	names := table.ColumnNames() // header or Column1..ColumnN
//	csv, err := table.ToCSV()
//	md := table.ToMarkdown()
package model
