// Package tables reconstructs table fragments from positioned text tokens.
//
// A page is handled by one of two paths, selected by whether the layout
// provider found ruled-line geometry on it.
//
// # Bordered path
//
// The [BorderedDetector] works from [model.RuledRegion] values:
//
//  1. Raw column boundaries are merged into ordered, non-overlapping
//     [ColumnBound] values ([MergeColumnBounds])
//  2. Each ruled cell's tokens are cropped through a [TokenIndex], grouped
//     into sub-rows and joined with "; "
//  3. Cells are placed by nearest row top and first intersecting column
//
// # Borderless path
//
// The [BorderlessDetector] infers columns from whitespace:
//
//  1. Tokens near the top and bottom page edges are dropped
//  2. Tokens are grouped into row bands and split into vertical blocks
//  3. Left edges of data-like bands are gap-clustered into column centres
//     ([InferColumns])
//  4. Every token goes to its nearest centre; sparse rows are pruned
//
// Both paths then label rows ([LabelRows]) and collect caption lines above
// the fragment ([TitleExtractor]).
//
// # Results
//
// Every attempt yields a [Result]. Only [Found] results carry a fragment;
// [NoTable] and [Malformed] explain why nothing was produced:
//
//	det, err := tables.NewPageDetector(tables.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	for _, frag := range tables.Fragments(det.Detect(page)) {
//		fmt.Println(frag.RowCount(), frag.ColCount())
//	}
//
// # Ruled grids
//
// [GridDetector] converts ruled line segments into regions. Layout
// providers call it with the segments they extract from a page.
package tables
