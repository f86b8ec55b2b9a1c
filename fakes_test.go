package tabstitch

import (
	"errors"

	"github.com/tsawler/tabstitch/model"
)

// fakePage is an in-memory Page
type fakePage struct {
	number  int
	height  float64
	tokens  []model.Token
	regions []model.RuledRegion
	err     error

	regionCalls int
}

func (p *fakePage) Number() int     { return p.number }
func (p *fakePage) Height() float64 { return p.height }

func (p *fakePage) Tokens() ([]model.Token, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.tokens, nil
}

func (p *fakePage) RuledRegions(model.RuledSettings) ([]model.RuledRegion, error) {
	p.regionCalls++
	return p.regions, nil
}

// fakeDoc is an in-memory Document
type fakeDoc struct {
	pages  []*fakePage
	closed bool
}

func (d *fakeDoc) NumPages() int { return len(d.pages) }

func (d *fakeDoc) Page(n int) (Page, error) {
	if n < 1 || n > len(d.pages) {
		return nil, errors.New("no such page")
	}
	return d.pages[n-1], nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return nil
}

// tok creates a 10pt-high token 5pt wide per character
func tok(text string, x, top float64) model.Token {
	return model.NewToken(text, x, top, x+float64(len(text))*5, top+10)
}

// ruledPage lays rows out as a ruled grid of 100x30 cells starting at y=100
func ruledPage(number int, rows [][]string) *fakePage {
	p := &fakePage{number: number, height: 792}
	region := model.RuledRegion{}
	for r, row := range rows {
		top := 100 + float64(r)*30
		for c, cell := range row {
			x := float64(c) * 100
			if r == 0 {
				region.ColumnBounds = append(region.ColumnBounds, model.Interval{X0: x, X1: x + 100})
			}
			region.Cells = append(region.Cells, model.NewBBox(x, top, x+100, top+30))
			if cell != "" {
				p.tokens = append(p.tokens, tok(cell, x+10, top+5))
			}
		}
	}
	region.BBox = model.NewBBox(0, 100, float64(len(rows[0]))*100, 100+float64(len(rows))*30)
	p.regions = []model.RuledRegion{region}
	return p
}

// lossRunPage is a borderless page with a caption and a three-column table
func lossRunPage(number int) *fakePage {
	return &fakePage{
		number: number,
		height: 792,
		tokens: []model.Token{
			tok("Loss", 50, 100),
			tok("History", 75, 100),
			tok("Year", 50, 130),
			tok("Type", 200, 130),
			tok("Amount", 350, 130),
			tok("2021", 50, 145),
			tok("Fire", 200, 145),
			tok("1,000", 350, 145),
			tok("2022", 50, 160),
			tok("Flood", 200, 160),
			tok("2,500", 350, 160),
		},
	}
}

// twoPageDoc is a bordered table whose second page repeats the header
func twoPageDoc() *fakeDoc {
	return &fakeDoc{pages: []*fakePage{
		ruledPage(1, [][]string{{"Name", "Amt"}, {"x", "100"}, {"y", "250"}}),
		ruledPage(2, [][]string{{"Name", "Amt"}, {"z", "300"}, {"w", "400"}}),
	}}
}

// continuedDoc is a bordered table whose second page has no header
func continuedDoc() *fakeDoc {
	return &fakeDoc{pages: []*fakePage{
		ruledPage(1, [][]string{{"Name", "Amt"}, {"x", "100"}, {"y", "250"}}),
		ruledPage(2, [][]string{{"z", "300"}, {"w", "400"}}),
	}}
}
