package stitch

import (
	"strings"

	"github.com/tsawler/tabstitch/model"
	"github.com/tsawler/tabstitch/text"
)

// Similarity returns the fraction of header cells equal to the row cell at
// the same position, case-folded after trimming. Empty cells never match.
// Rows of different length have similarity 0.
func Similarity(header, row []string) float64 {
	if len(header) == 0 || len(header) != len(row) {
		return 0
	}
	matches := 0
	for i, h := range header {
		if strings.TrimSpace(h) == "" || strings.TrimSpace(row[i]) == "" {
			continue
		}
		if text.EqualFold(h, row[i]) {
			matches++
		}
	}
	return float64(matches) / float64(len(header))
}

// Identical reports whether two rows are equal cell by cell after trimming
func Identical(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.TrimSpace(a[i]) != strings.TrimSpace(b[i]) {
			return false
		}
	}
	return true
}

// Continues applies the spanning rule: the column counts must match, the
// fragment must be on an allowed page, and its first row must equal the
// table's header (the first row when the table has none) exactly or with
// at least HeaderSimilarity of the cells matching. dropFirst is set when
// the first row is a repeat of the header: identical, or matching on every
// cell case-folded.
func Continues(t *model.LogicalTable, f *model.Fragment, config Config) (ok, dropFirst bool) {
	if len(f.Rows) == 0 || f.ColCount() != t.ColCount() {
		return false, false
	}
	if config.RequireAdjacentPages && f.Page > t.EndPage+1 {
		return false, false
	}

	ref := t.Header
	if !t.HasHeader {
		if len(t.Rows) == 0 {
			return false, false
		}
		ref = t.Rows[0]
	}
	first := f.Rows[0]

	if Identical(ref, first) {
		return true, true
	}
	sim := Similarity(ref, first)
	if sim >= 1 {
		return true, true
	}
	return sim >= config.HeaderSimilarity, false
}
