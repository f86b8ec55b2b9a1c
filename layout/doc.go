// Package layout groups positioned tokens into the line structure the
// table detectors work on.
//
//	bands := layout.GroupRows(tokens, 3)      // first-token-wins row bands
//	blocks := layout.SplitBlocks(bands, 50)   // vertical blocks split on large gaps
//	clusters := layout.ClusterByGap(xs, 45)   // 1-D gap clustering for columns
//
// [FilterMargins] drops running headers and footers by position and
// [NoiseFilter] drops boilerplate lines such as page numbers by pattern.
package layout
