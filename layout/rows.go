package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/tabstitch/model"
)

// RowBand is a group of tokens sharing an approximate vertical position
type RowBand struct {
	// Top is the representative top: the top of the first token assigned
	Top float64

	// Bottom is the lowest bottom edge among member tokens
	Bottom float64

	// Tokens are the member tokens sorted left to right
	Tokens []model.Token
}

// Text returns the member token texts joined by single spaces
func (b RowBand) Text() string {
	parts := make([]string, 0, len(b.Tokens))
	for _, t := range b.Tokens {
		if s := strings.TrimSpace(t.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// BBox returns the union of the member token boxes
func (b RowBand) BBox() model.BBox {
	var box model.BBox
	for _, t := range b.Tokens {
		box = box.Union(t.BBox)
	}
	return box
}

// Left returns the leftmost token edge
func (b RowBand) Left() float64 {
	if len(b.Tokens) == 0 {
		return 0
	}
	return b.Tokens[0].BBox.X0
}

// Cells splits the band's tokens into cells wherever the horizontal gap
// between one token's right edge and the next token's left edge exceeds
// gap. Each cell holds its tokens left to right.
func (b RowBand) Cells(gap float64) [][]model.Token {
	if len(b.Tokens) == 0 {
		return nil
	}

	var cells [][]model.Token
	current := []model.Token{b.Tokens[0]}
	for i := 1; i < len(b.Tokens); i++ {
		if b.Tokens[i].BBox.X0-b.Tokens[i-1].BBox.X1 > gap {
			cells = append(cells, current)
			current = nil
		}
		current = append(current, b.Tokens[i])
	}
	return append(cells, current)
}

// GroupRows clusters tokens into horizontal bands. A token joins the first
// band whose representative top lies within yTol of its own top, otherwise
// it opens a new band. Every token ends up in exactly one band; bands are
// returned top to bottom.
func GroupRows(tokens []model.Token, yTol float64) []RowBand {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	model.SortReadingOrder(sorted)

	var bands []RowBand
	for _, tok := range sorted {
		placed := false
		for i := range bands {
			if math.Abs(tok.BBox.Top-bands[i].Top) <= yTol {
				bands[i].Tokens = append(bands[i].Tokens, tok)
				if tok.BBox.Bottom > bands[i].Bottom {
					bands[i].Bottom = tok.BBox.Bottom
				}
				placed = true
				break
			}
		}
		if !placed {
			bands = append(bands, RowBand{
				Top:    tok.BBox.Top,
				Bottom: tok.BBox.Bottom,
				Tokens: []model.Token{tok},
			})
		}
	}

	for i := range bands {
		toks := bands[i].Tokens
		sort.SliceStable(toks, func(a, b int) bool {
			return toks[a].BBox.X0 < toks[b].BBox.X0
		})
	}
	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].Top < bands[j].Top
	})

	return bands
}

// SplitBlocks splits top-to-bottom bands into vertical blocks wherever the
// gap between one band's bottom and the next band's top exceeds maxGap.
func SplitBlocks(bands []RowBand, maxGap float64) [][]RowBand {
	if len(bands) == 0 {
		return nil
	}

	var blocks [][]RowBand
	current := []RowBand{bands[0]}
	for i := 1; i < len(bands); i++ {
		gap := bands[i].Top - current[len(current)-1].Bottom
		if gap > maxGap {
			blocks = append(blocks, current)
			current = []RowBand{bands[i]}
		} else {
			current = append(current, bands[i])
		}
	}
	blocks = append(blocks, current)

	return blocks
}
