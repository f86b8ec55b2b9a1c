// Package stitch assembles table fragments into logical tables.
//
// A [Stitcher] consumes fragments in page order and owns the table in
// progress. Two continuation rules are available:
//
//   - [Stitcher.Push] appends a bordered fragment to the table in progress
//     when the fragment has no header row of its own and the column counts
//     match. A header starts a new table.
//   - [Stitcher.PushSpanning] compares the fragment's first row with the
//     table's header. An exact or case-folded match continues the table and
//     drops the repeated header; a partial match of at least
//     [Config.HeaderSimilarity] continues it and keeps the row.
//
// Borderless fragments are never stitched. Each one becomes its own table
// as soon as it arrives, and the table in progress is left alone.
//
// A Stitcher is not safe for concurrent use. Run one per document.
package stitch
