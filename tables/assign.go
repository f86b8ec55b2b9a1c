package tables

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/tabstitch/layout"
	"github.com/tsawler/tabstitch/model"
	"github.com/tsawler/tabstitch/text"
)

// CellText crops the tokens of one ruled cell, groups them into sub-rows and
// joins the sub-rows with "; " so multi-line cells stay one string.
func CellText(idx *TokenIndex, cell model.BBox, subRowTol float64) string {
	bands := layout.GroupRows(idx.Within(cell), subRowTol)
	lines := make([]string, len(bands))
	for i, b := range bands {
		lines[i] = b.Text()
	}
	return text.JoinNonEmpty(lines, "; ")
}

// AssignRuledCells places the text of every ruled cell into a grid. The row
// is the nearest distinct cell top; the text goes to every column bound the
// cell's horizontal extent intersects once edgeTol is shaved off both sides,
// so a merged cell repeats under each column it spans. Only non-empty text
// claims a position, and the first claim wins. Empty rows are dropped.
func AssignRuledCells(idx *TokenIndex, cells []model.BBox, bounds []ColumnBound, cfg Config) [][]string {
	if len(cells) == 0 || len(bounds) == 0 {
		return nil
	}

	tops := rowTops(cells, cfg.RowTolerance)
	grid := make([][]string, len(tops))
	claimed := make([][]bool, len(tops))
	for i := range grid {
		grid[i] = make([]string, len(bounds))
		claimed[i] = make([]bool, len(bounds))
	}

	for _, cell := range cells {
		row := nearestTop(tops, cell.Top)
		if row < 0 {
			continue
		}
		txt := CellText(idx, cell, cfg.SubRowTolerance)
		if txt == "" {
			continue
		}
		for _, col := range spannedColumns(cell.Horizontal(), bounds, cfg.CellEdgeTolerance) {
			if claimed[row][col] {
				continue
			}
			claimed[row][col] = true
			grid[row][col] = txt
		}
	}

	return dropEmptyRows(grid)
}

// rowTops groups cell tops first-wins within tol and returns the sorted
// representative tops
func rowTops(cells []model.BBox, tol float64) []float64 {
	ys := make([]float64, len(cells))
	for i, c := range cells {
		ys[i] = c.Top
	}
	sort.Float64s(ys)

	var tops []float64
	for _, y := range ys {
		if len(tops) > 0 && math.Abs(y-tops[len(tops)-1]) <= tol {
			continue
		}
		tops = append(tops, y)
	}
	return tops
}

func nearestTop(tops []float64, y float64) int {
	best, bestDist := -1, math.Inf(1)
	for i, t := range tops {
		if d := math.Abs(t - y); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// spannedColumns returns the indices of the bounds the shaved extent
// intersects, left to right
func spannedColumns(extent model.Interval, bounds []ColumnBound, edgeTol float64) []int {
	shaved := model.Interval{X0: extent.X0 + edgeTol, X1: extent.X1 - edgeTol}
	if shaved.Width() <= 0 {
		shaved = extent
	}
	var cols []int
	for i, b := range bounds {
		if shaved.Intersects(b.Interval) {
			cols = append(cols, i)
		}
	}
	return cols
}

// AssignBorderless assigns every band token to the column whose centre is
// nearest its left edge. Tokens sharing a cell are joined with single spaces
// left to right. One row is returned per band.
func AssignBorderless(bands []layout.RowBand, bounds []ColumnBound) [][]string {
	rows := make([][]string, len(bands))
	for r, band := range bands {
		parts := make([][]string, len(bounds))
		for _, tok := range band.Tokens {
			s := strings.TrimSpace(tok.Text)
			if s == "" {
				continue
			}
			if c := NearestColumn(bounds, tok.BBox.X0); c >= 0 {
				parts[c] = append(parts[c], s)
			}
		}
		row := make([]string, len(bounds))
		for c, p := range parts {
			row[c] = strings.Join(p, " ")
		}
		rows[r] = row
	}
	return rows
}

// NonEmptyCells counts cells holding text after trimming
func NonEmptyCells(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

// PruneSparseRows keeps rows with at least minCells non-empty cells and
// returns the indices of the kept rows alongside them
func PruneSparseRows(rows [][]string, minCells int) ([][]string, []int) {
	var kept [][]string
	var idx []int
	for i, row := range rows {
		if NonEmptyCells(row) >= minCells {
			kept = append(kept, row)
			idx = append(idx, i)
		}
	}
	return kept, idx
}

// DropEmptyColumns removes columns that are blank in every row
func DropEmptyColumns(rows [][]string) [][]string {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	keep := make([]bool, cols)
	for _, row := range rows {
		for c, cell := range row {
			if strings.TrimSpace(cell) != "" {
				keep[c] = true
			}
		}
	}

	out := make([][]string, len(rows))
	for r, row := range rows {
		nr := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			if !keep[c] {
				continue
			}
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			nr = append(nr, cell)
		}
		out[r] = nr
	}
	return out
}

// DropSparseColumns removes columns whose share of empty cells across
// rows[from:] is at least threshold. Rows above from (a header, say) are kept
// but not counted. When every column would go the rows are returned as is.
func DropSparseColumns(rows [][]string, from int, threshold float64) [][]string {
	if from < 0 || from >= len(rows) {
		from = 0
	}
	base := rows[from:]
	if len(base) == 0 {
		return rows
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	keep := make([]int, 0, cols)
	for c := 0; c < cols; c++ {
		empty := 0
		for _, row := range base {
			if c >= len(row) || strings.TrimSpace(row[c]) == "" {
				empty++
			}
		}
		if float64(empty)/float64(len(base)) < threshold {
			keep = append(keep, c)
		}
	}
	if len(keep) == 0 {
		return rows
	}

	out := make([][]string, len(rows))
	for r, row := range rows {
		nr := make([]string, len(keep))
		for i, c := range keep {
			if c < len(row) {
				nr[i] = row[c]
			}
		}
		out[r] = nr
	}
	return out
}

func dropEmptyRows(rows [][]string) [][]string {
	var out [][]string
	for _, row := range rows {
		if NonEmptyCells(row) > 0 {
			out = append(out, row)
		}
	}
	return out
}
