package tabstitch

import (
	"context"
	"fmt"

	"github.com/tsawler/tabstitch/internal/logging"
	"github.com/tsawler/tabstitch/model"
	"github.com/tsawler/tabstitch/stitch"
	"github.com/tsawler/tabstitch/tables"
)

// Result is everything one document run produced
type Result struct {
	// Tables are the finalized logical tables in emission order
	Tables []*model.LogicalTable

	// Fragments are the raw fragments in page order
	Fragments []*model.Fragment

	Warnings []Warning
}

// Engine runs reconstruction and stitching over a document. An Engine
// holds no per-document state and may be shared; every Run owns its own
// stitcher.
type Engine struct {
	config   Config
	mode     StitchMode
	detector *tables.PageDetector
}

// NewEngine validates config and builds the detectors
func NewEngine(config Config, mode StitchMode) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	detector, err := tables.NewPageDetector(config.Tables)
	if err != nil {
		return nil, err
	}
	return &Engine{config: config, mode: mode, detector: detector}, nil
}

// Run processes pages in increasing order. pages are 1-indexed; nil means
// every page. Provider errors stop the run and are returned with the page
// number; tables finalized before the failure are discarded.
func (e *Engine) Run(ctx context.Context, doc Document, pages []int) (*Result, error) {
	if pages == nil {
		pages = make([]int, doc.NumPages())
		for i := range pages {
			pages[i] = i + 1
		}
	}

	s := stitch.NewStitcher(e.config.Stitch)
	res := &Result{}

	for _, n := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frags, warnings, err := e.processPage(doc, n)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", n, err)
		}
		res.Warnings = append(res.Warnings, warnings...)

		for _, f := range frags {
			res.Fragments = append(res.Fragments, f)
			if e.mode == ModeSpanning {
				res.Tables = append(res.Tables, s.PushSpanning(f)...)
			} else {
				res.Tables = append(res.Tables, s.Push(f)...)
			}
		}
	}

	res.Tables = append(res.Tables, s.Finish()...)
	return res, nil
}

// processPage reconstructs the fragments of page n
func (e *Engine) processPage(doc Document, n int) ([]*model.Fragment, []Warning, error) {
	p, err := doc.Page(n)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := p.Tokens()
	if err != nil {
		return nil, nil, err
	}

	var regions []model.RuledRegion
	if e.config.Ruled.Strategy == model.StrategyLines {
		regions, err = p.RuledRegions(e.config.Ruled)
		if err != nil {
			return nil, nil, err
		}
	}

	results := e.detector.Detect(tables.PageInput{
		Number:  p.Number(),
		Height:  p.Height(),
		Tokens:  tokens,
		Regions: regions,
	})

	frags := tables.Fragments(results)
	for i, f := range frags {
		f.Index = i
	}

	logging.Logger().Debug().
		Int("page", p.Number()).
		Int("tokens", len(tokens)).
		Int("regions", len(regions)).
		Int("attempts", len(results)).
		Int("fragments", len(frags)).
		Msg("page processed")

	return frags, warningsFor(p.Number(), results), nil
}
