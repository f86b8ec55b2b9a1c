package pdfsource

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/tabstitch/model"
	"github.com/tsawler/tabstitch/tables"
)

const (
	// wordGapRatio splits glyph runs whose gap exceeds this share of the
	// font size
	wordGapRatio = 0.3

	// glyphWidthRatio estimates a glyph's width when the font has no
	// width table
	glyphWidthRatio = 0.5

	ascentRatio  = 0.8
	descentRatio = 0.2
)

// Page is one PDF page
type Page struct {
	number int
	height float64
	page   pdf.Page

	content *pdf.Content
}

// Number returns the 1-indexed page number
func (p *Page) Number() int {
	return p.number
}

// Height returns the MediaBox height in points
func (p *Page) Height() float64 {
	return p.height
}

// Tokens returns the words on the page in top-down coordinates
func (p *Page) Tokens() ([]model.Token, error) {
	c, err := p.load()
	if err != nil {
		return nil, err
	}
	return mergeGlyphs(c.Text, p.height), nil
}

// Segments returns the edges of every rectangle drawn on the page. A
// rectangle thinner than snap on one axis is a single ruled line.
func (p *Page) Segments(snap float64) ([]model.Segment, error) {
	c, err := p.load()
	if err != nil {
		return nil, err
	}
	return rectSegments(c.Rect, p.height, snap), nil
}

// RuledRegions detects ruled table regions. The text strategy finds none.
func (p *Page) RuledRegions(settings model.RuledSettings) ([]model.RuledRegion, error) {
	if settings.Strategy == model.StrategyText {
		return nil, nil
	}
	segs, err := p.Segments(settings.SnapTolerance)
	if err != nil {
		return nil, err
	}
	regions := tables.NewGridDetector(settings).Detect(segs)
	if len(regions) == 0 {
		return nil, nil
	}
	tokens, err := p.Tokens()
	if err != nil {
		return nil, err
	}
	return tables.FilterRegionsByWords(regions, tokens, settings.MinWordsVertical, settings.MinWordsHorizontal), nil
}

// load parses the content stream once. The PDF library panics on some
// malformed streams; that is reported as an error.
func (p *Page) load() (c *pdf.Content, err error) {
	if p.content != nil {
		return p.content, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: malformed content: %v", p.number, r)
		}
	}()
	content := p.page.Content()
	p.content = &content
	return p.content, nil
}

// mergeGlyphs joins glyphs sharing a baseline into words. A space glyph or
// a horizontal gap wider than wordGapRatio of the font size ends a word.
func mergeGlyphs(glyphs []pdf.Text, pageHeight float64) []model.Token {
	sorted := make([]pdf.Text, 0, len(glyphs))
	for _, g := range glyphs {
		if g.S != "" {
			sorted = append(sorted, g)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y-sorted[j].Y) > baselineTolerance(sorted[i], sorted[j]) {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var tokens []model.Token
	var word strings.Builder
	var first, last pdf.Text
	flush := func() {
		if word.Len() == 0 {
			return
		}
		size := first.FontSize
		if size <= 0 {
			size = 1
		}
		right := last.X + glyphWidth(last)
		baseline := pageHeight - first.Y
		tokens = append(tokens, model.NewToken(
			word.String(),
			first.X, baseline-ascentRatio*size,
			right, baseline+descentRatio*size,
		))
		word.Reset()
	}

	for _, g := range sorted {
		if strings.TrimFunc(g.S, unicode.IsSpace) == "" {
			flush()
			continue
		}
		if word.Len() > 0 {
			gap := g.X - (last.X + glyphWidth(last))
			sameLine := math.Abs(g.Y-last.Y) <= baselineTolerance(g, last)
			if !sameLine || gap > wordGapRatio*math.Max(g.FontSize, last.FontSize) {
				flush()
			}
		}
		if word.Len() == 0 {
			first = g
		}
		word.WriteString(g.S)
		last = g
	}
	flush()

	return tokens
}

func glyphWidth(g pdf.Text) float64 {
	if g.W > 0 {
		return g.W
	}
	return glyphWidthRatio * g.FontSize * float64(len([]rune(g.S)))
}

func baselineTolerance(a, b pdf.Text) float64 {
	return 0.2 * math.Max(1, math.Min(a.FontSize, b.FontSize))
}

// rectSegments converts rectangles to top-down segments
func rectSegments(rects []pdf.Rect, pageHeight, snap float64) []model.Segment {
	var segs []model.Segment
	for _, r := range rects {
		x0, x1 := math.Min(r.Min.X, r.Max.X), math.Max(r.Min.X, r.Max.X)
		top := pageHeight - math.Max(r.Min.Y, r.Max.Y)
		bottom := pageHeight - math.Min(r.Min.Y, r.Max.Y)

		switch {
		case bottom-top <= snap && x1-x0 > snap:
			y := (top + bottom) / 2
			segs = append(segs, seg(x0, y, x1, y))
		case x1-x0 <= snap && bottom-top > snap:
			x := (x0 + x1) / 2
			segs = append(segs, seg(x, top, x, bottom))
		case x1-x0 > snap && bottom-top > snap:
			segs = append(segs,
				seg(x0, top, x1, top),
				seg(x0, bottom, x1, bottom),
				seg(x0, top, x0, bottom),
				seg(x1, top, x1, bottom),
			)
		}
	}
	return segs
}

func seg(x0, y0, x1, y1 float64) model.Segment {
	return model.Segment{
		Start: model.Point{X: x0, Y: y0},
		End:   model.Point{X: x1, Y: y1},
	}
}
