package tables

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabstitch/layout"
	"github.com/tsawler/tabstitch/model"
)

// BorderlessDetector reconstructs fragments from whitespace alignment alone.
// Columns are inferred from the left edges of data-like rows.
type BorderlessDetector struct {
	config Config
	titles *TitleExtractor
}

// NewBorderlessDetector creates a borderless detector. It fails when the
// config does not validate.
func NewBorderlessDetector(config Config) (*BorderlessDetector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	titles, err := NewTitleExtractor(config)
	if err != nil {
		return nil, err
	}
	return &BorderlessDetector{config: config, titles: titles}, nil
}

// Name returns the detector's identifier ("borderless").
func (d *BorderlessDetector) Name() string {
	return "borderless"
}

// Detect splits the page into vertical blocks and attempts one fragment per
// block. Tokens inside ruled regions are ignored.
func (d *BorderlessDetector) Detect(page PageInput) []Result {
	// Step 1: Drop running headers and footers, then group rows
	tokens := layout.FilterMargins(tokensOutside(page.Tokens, page.Regions), page.Height, d.config.MarginExclusion)
	bands := layout.GroupRows(tokens, d.config.RowTolerance)
	if len(bands) == 0 {
		return []Result{noTable("no text")}
	}

	// Step 2: Blocks separated by wide vertical gaps are separate candidates
	consumed := make([]bool, len(bands))
	var results []Result
	offset := 0
	for _, block := range layout.SplitBlocks(bands, d.config.BlockGap) {
		res, used := d.buildBlock(page.Number, len(results), block)
		for _, i := range used {
			consumed[offset+i] = true
		}
		if res.Outcome == Found {
			d.addTitles(res.Fragment, bands, consumed, block, used)
		}
		results = append(results, res)
		offset += len(block)
	}
	return results
}

// minDataBands is the number of data-like bands a block needs before
// columns are inferred from it
const minDataBands = 2

// buildBlock reconstructs one block and returns the indices, within the
// block, of the bands that became fragment rows
func (d *BorderlessDetector) buildBlock(page, index int, block []layout.RowBand) (Result, []int) {
	// Step 3: Split bands into cells on wide gaps. A data band has at least
	// two cells; each of its cells contributes its left edge to the column
	// centres.
	var xs []float64
	var dataTops []float64
	for _, band := range block {
		cells := band.Cells(d.config.CellGap)
		if len(cells) < 2 || !AnalyzeRow(cellTexts(cells)).DataLike {
			continue
		}
		dataTops = append(dataTops, band.Top)
		for _, cell := range cells {
			xs = append(xs, cell[0].BBox.X0)
		}
	}
	if len(dataTops) < minDataBands {
		return noTable(fmt.Sprintf("%d data rows", len(dataTops))), nil
	}
	bounds, ok := InferColumns(xs, d.config.ColumnMinGap)
	if !ok {
		return noTable("single column"), nil
	}

	// Step 4: Keep the bands around the data rows; the rest stay free for
	// the title scan
	lo := dataTops[0] - d.config.RowWindowAbove
	hi := dataTops[len(dataTops)-1] + d.config.RowWindowBelow
	var window []layout.RowBand
	var windowIdx []int
	firstData := -1
	for i, band := range block {
		if band.Top < lo || band.Top > hi {
			continue
		}
		if firstData < 0 && band.Top == dataTops[0] {
			firstData = len(window)
		}
		window = append(window, band)
		windowIdx = append(windowIdx, i)
	}

	// Step 5: Assign tokens, drop sparse columns, then sparse rows
	rows := AssignBorderless(window, bounds)
	rows = DropSparseColumns(rows, firstData, d.config.SparseColumnThreshold)
	rows, kept := PruneSparseRows(rows, 2)

	frag := &model.Fragment{
		Page:  page,
		Index: index,
		Kind:  model.KindBorderless,
	}
	used := make([]int, len(kept))
	for k, i := range kept {
		used[k] = windowIdx[i]
		frag.BBox = frag.BBox.Union(block[used[k]].BBox())
	}

	// Step 6: Label rows
	rows, inner := applyLabels(frag, rows, d.config.HeaderLikeness)
	frag.Titles = inner
	if len(rows) < d.config.MinRows || frag.ColCount() < d.config.MinCols {
		return malformed(fmt.Sprintf("%dx%d grid after pruning", len(rows), frag.ColCount())), nil
	}
	return found(frag), used
}

// addTitles scans the page bands that no fragment consumed for caption
// lines above the fragment's first row
func (d *BorderlessDetector) addTitles(frag *model.Fragment, bands []layout.RowBand, consumed []bool, block []layout.RowBand, used []int) {
	if len(used) == 0 {
		return
	}
	var free []layout.RowBand
	for i, b := range bands {
		if !consumed[i] {
			free = append(free, b)
		}
	}
	above := d.titles.Extract(free, block[used[0]].Top, frag.Header)
	frag.Titles = append(above, frag.Titles...)
}

// cellTexts joins the tokens of each cell with single spaces
func cellTexts(cells [][]model.Token) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		parts := make([]string, len(cell))
		for j, t := range cell {
			parts[j] = t.Text
		}
		out[i] = strings.Join(parts, " ")
	}
	return out
}
