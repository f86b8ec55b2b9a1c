package tables

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/tabstitch/layout"
	"github.com/tsawler/tabstitch/text"
)

// TitleExtractor collects caption lines above a table boundary
type TitleExtractor struct {
	cfg    Config
	noise  *layout.NoiseFilter
	header *regexp.Regexp
}

// NewTitleExtractor compiles the noise and header-phrase patterns of cfg
func NewTitleExtractor(cfg Config) (*TitleExtractor, error) {
	noise, err := layout.NewNoiseFilter(cfg.NoisePatterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	te := &TitleExtractor{cfg: cfg, noise: noise}
	if cfg.HeaderPhrasePattern != "" {
		te.header, err = regexp.Compile(cfg.HeaderPhrasePattern)
		if err != nil {
			return nil, fmt.Errorf("%w: headerPhrasePattern: %v", ErrInvalidConfig, err)
		}
	}
	return te, nil
}

// ExtractTitle is a one-shot helper around TitleExtractor.Extract
func ExtractTitle(lines []layout.RowBand, boundaryTop float64, header []string, cfg Config) ([]string, error) {
	te, err := NewTitleExtractor(cfg)
	if err != nil {
		return nil, err
	}
	return te.Extract(lines, boundaryTop, header), nil
}

// Extract scans lines upward from boundaryTop and returns the caption block
// in top-to-bottom order. Noise lines are skipped. A column-header line is
// skipped while nothing has been collected and ends the scan afterwards.
// The scan also ends on a line without letters, on a top-to-top gap wider
// than allowed or once TitleMaxLines lines are collected.
func (te *TitleExtractor) Extract(lines []layout.RowBand, boundaryTop float64, header []string) []string {
	if te.cfg.TitleMaxLines <= 0 {
		return nil
	}

	var above []layout.RowBand
	for _, l := range lines {
		if l.Bottom <= boundaryTop && boundaryTop-l.Top <= te.cfg.TitleMaxDistance {
			above = append(above, l)
		}
	}
	sort.SliceStable(above, func(i, j int) bool {
		return above[i].Top > above[j].Top
	})

	headerText := text.Fold(strings.Join(header, " "))
	anchor := boundaryTop
	var collected []string
	for _, l := range above {
		s := text.Normalize(l.Text())
		if s == "" || te.noise.IsNoise(s) {
			continue
		}
		if te.isHeaderPhrase(s, headerText) {
			if len(collected) > 0 {
				break
			}
			anchor = l.Top
			continue
		}
		if !text.HasLetter(s) {
			break
		}

		limit := te.cfg.TitleLineGap
		if len(collected) == 0 {
			limit = te.cfg.TitleFirstGap
		}
		if anchor-l.Top > limit {
			break
		}

		collected = append(collected, s)
		anchor = l.Top
		if len(collected) >= te.cfg.TitleMaxLines {
			break
		}
	}

	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return collected
}

func (te *TitleExtractor) isHeaderPhrase(line, foldedHeader string) bool {
	if foldedHeader != "" && text.Fold(line) == foldedHeader {
		return true
	}
	return te.header != nil && te.header.MatchString(line)
}
