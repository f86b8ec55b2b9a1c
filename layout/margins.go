package layout

import "github.com/tsawler/tabstitch/model"

// FilterMargins drops tokens lying within margin of the top or bottom page
// edge, where running headers and footers live. A non-positive margin or
// page height keeps everything.
func FilterMargins(tokens []model.Token, pageHeight, margin float64) []model.Token {
	if margin <= 0 || pageHeight <= 0 {
		return tokens
	}

	kept := make([]model.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.BBox.Top < margin || tok.BBox.Bottom > pageHeight-margin {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
