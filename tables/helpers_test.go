package tables

import (
	"github.com/tsawler/tabstitch/layout"
	"github.com/tsawler/tabstitch/model"
)

// tok creates a 10pt-high token 5pt wide per character
func tok(text string, x, top float64) model.Token {
	return model.NewToken(text, x, top, x+float64(len(text))*5, top+10)
}

// line creates a single-token row band
func line(text string, top float64) layout.RowBand {
	return layout.RowBand{
		Top:    top,
		Bottom: top + 10,
		Tokens: []model.Token{tok(text, 10, top)},
	}
}

// testConfig is the default config; tests tweak their own copy
func testConfig() Config {
	return DefaultConfig()
}
