package model

import "sort"

// Token is a positioned unit of text produced by a layout provider.
type Token struct {
	Text string
	BBox BBox
}

// NewToken creates a token from its text and edges
func NewToken(text string, x0, top, x1, bottom float64) Token {
	return Token{Text: text, BBox: NewBBox(x0, top, x1, bottom)}
}

// SortReadingOrder sorts tokens top-to-bottom, then left-to-right, in place
func SortReadingOrder(tokens []Token) {
	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].BBox.Top != tokens[j].BBox.Top {
			return tokens[i].BBox.Top < tokens[j].BBox.Top
		}
		return tokens[i].BBox.X0 < tokens[j].BBox.X0
	})
}

// RuledRegion is one table region found from ruled-line geometry: the raw
// column boundary pairs and the bounding box of every ruled cell.
type RuledRegion struct {
	BBox         BBox
	ColumnBounds []Interval
	Cells        []BBox
}

// Strategy names for ruled-line detection
const (
	StrategyLines = "lines"
	StrategyText  = "text"
)

// RuledSettings holds the parameters a layout provider uses to detect ruled
// table regions.
type RuledSettings struct {
	// Strategy is "lines" (use drawn lines) or "text" (no ruled regions;
	// the borderless path handles the page)
	Strategy string `yaml:"strategy" json:"strategy"`

	// SnapTolerance merges parallel segments closer than this (points)
	SnapTolerance float64 `yaml:"snapTolerance" json:"snapTolerance"`

	// JoinTolerance joins collinear segments separated by a smaller gap
	JoinTolerance float64 `yaml:"joinTolerance" json:"joinTolerance"`

	// IntersectionTolerance is the slack allowed when testing whether a
	// horizontal and a vertical segment cross
	IntersectionTolerance float64 `yaml:"intersectionTolerance" json:"intersectionTolerance"`

	// EdgeMinLength discards segments shorter than this
	EdgeMinLength float64 `yaml:"edgeMinLength" json:"edgeMinLength"`

	// MinWordsVertical is the minimum number of words a region must hold
	MinWordsVertical int `yaml:"minWordsVertical" json:"minWordsVertical"`

	// MinWordsHorizontal is the minimum number of words per region row
	MinWordsHorizontal int `yaml:"minWordsHorizontal" json:"minWordsHorizontal"`
}

// DefaultRuledSettings returns the line-based detection defaults
func DefaultRuledSettings() RuledSettings {
	return RuledSettings{
		Strategy:              StrategyLines,
		SnapTolerance:         3,
		JoinTolerance:         3,
		IntersectionTolerance: 3,
		EdgeMinLength:         3,
		MinWordsVertical:      3,
		MinWordsHorizontal:    1,
	}
}
