package tables

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/tsawler/tabstitch/model"
)

// TokenIndex is a spatial index of token centres
type TokenIndex struct {
	tokens []model.Token
	tree   rtree.RTreeG[int]
}

// NewTokenIndex indexes every token by its centre point
func NewTokenIndex(tokens []model.Token) *TokenIndex {
	idx := &TokenIndex{tokens: tokens}
	for i, t := range tokens {
		c := t.BBox.Center()
		p := [2]float64{c.X, c.Y}
		idx.tree.Insert(p, p, i)
	}
	return idx
}

// Len returns the number of indexed tokens
func (idx *TokenIndex) Len() int {
	return len(idx.tokens)
}

// Within returns the tokens whose centre lies inside box, in the order they
// were indexed
func (idx *TokenIndex) Within(box model.BBox) []model.Token {
	var hits []int
	idx.tree.Search(
		[2]float64{box.X0, box.Top},
		[2]float64{box.X1, box.Bottom},
		func(_, _ [2]float64, i int) bool {
			hits = append(hits, i)
			return true
		},
	)
	sort.Ints(hits)

	out := make([]model.Token, 0, len(hits))
	for _, i := range hits {
		out = append(out, idx.tokens[i])
	}
	return out
}
