package tables

import (
	"fmt"

	"github.com/tsawler/tabstitch/layout"
	"github.com/tsawler/tabstitch/model"
)

// BorderedDetector reconstructs fragments from ruled table regions
type BorderedDetector struct {
	config Config
	titles *TitleExtractor
}

// NewBorderedDetector creates a bordered detector. It fails when the config
// does not validate.
func NewBorderedDetector(config Config) (*BorderedDetector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	titles, err := NewTitleExtractor(config)
	if err != nil {
		return nil, err
	}
	return &BorderedDetector{config: config, titles: titles}, nil
}

// Name returns the detector's identifier ("bordered").
func (d *BorderedDetector) Name() string {
	return "bordered"
}

// Detect builds one Result per ruled region on the page
func (d *BorderedDetector) Detect(page PageInput) []Result {
	if len(page.Regions) == 0 {
		return []Result{noTable("no ruled regions")}
	}

	idx := NewTokenIndex(page.Tokens)
	outside := layout.GroupRows(tokensOutside(page.Tokens, page.Regions), d.config.RowTolerance)

	results := make([]Result, 0, len(page.Regions))
	for i, region := range page.Regions {
		results = append(results, d.Build(page.Number, i, region, idx, outside))
	}
	return results
}

// Build reconstructs one ruled region. lines are the text lines outside any
// ruled region, used for the title scan.
func (d *BorderedDetector) Build(page, index int, region model.RuledRegion, idx *TokenIndex, lines []layout.RowBand) Result {
	// Step 1: Column bounds from the ruled geometry, or from the cell
	// extents when the provider gave none
	raw := region.ColumnBounds
	if len(raw) == 0 {
		for _, c := range region.Cells {
			raw = append(raw, c.Horizontal())
		}
	}
	bounds := MergeColumnBounds(raw, d.config.ColumnMergeThreshold)
	if len(bounds) == 0 || len(region.Cells) == 0 {
		return noTable("region has no cells")
	}

	// Step 2: Aggregate cell text into the grid
	rows := DropEmptyColumns(AssignRuledCells(idx, region.Cells, bounds, d.config))
	if len(rows) == 0 {
		return noTable("region holds no text")
	}

	// Step 3: Label rows and lift title rows out of the grid
	frag := &model.Fragment{
		Page:  page,
		Index: index,
		Kind:  model.KindBordered,
		BBox:  region.BBox,
	}
	rows, inner := applyLabels(frag, rows, d.config.HeaderLikeness)
	if len(rows) < d.config.MinRows || frag.ColCount() < d.config.MinCols {
		return malformed(fmt.Sprintf("%dx%d grid after pruning", len(rows), frag.ColCount()))
	}

	// Step 4: Caption lines above the region
	frag.Titles = append(d.titles.Extract(lines, region.BBox.Top, frag.Header), inner...)

	return found(frag)
}

// applyLabels classifies rows, stores the kept rows and header on frag and
// returns the kept rows plus the text of the rows labelled Title
func applyLabels(frag *model.Fragment, rows [][]string, headerLikeness float64) ([][]string, []string) {
	labels := LabelRows(rows, headerLikeness)

	var titles []string
	var kept [][]string
	for i, row := range rows {
		if labels.Kinds[i] == Title {
			if s := rowText(row); s != "" {
				titles = append(titles, s)
			}
			continue
		}
		kept = append(kept, row)
	}

	frag.Rows = kept
	if labels.Header >= 0 {
		frag.HasHeader = true
		frag.Header = append([]string(nil), rows[labels.Header]...)
	}
	return kept, titles
}

// tokensOutside returns the tokens whose centre is not inside any region
func tokensOutside(tokens []model.Token, regions []model.RuledRegion) []model.Token {
	if len(regions) == 0 {
		return tokens
	}
	var out []model.Token
	for _, t := range tokens {
		c := t.BBox.Center()
		inside := false
		for _, r := range regions {
			if r.BBox.Contains(c) {
				inside = true
				break
			}
		}
		if !inside {
			out = append(out, t)
		}
	}
	return out
}
