package tabstitch

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar"

	"github.com/tsawler/tabstitch/internal/logging"
	"github.com/tsawler/tabstitch/model"
)

// BatchResult is the outcome for one file of a batch
type BatchResult struct {
	Path     string
	Tables   []*model.LogicalTable
	Warnings []Warning

	// Err is the error that stopped this file; other files are unaffected
	Err error
}

// ExpandPatterns returns the regular files matched by the doublestar
// patterns, sorted and without duplicates
func ExpandPatterns(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var paths []string
	for _, pattern := range patterns {
		files, err := doublestar.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, f := range files {
			info, err := os.Stat(f)
			if err != nil {
				return nil, err
			}
			if !info.Mode().IsRegular() || seen[f] {
				continue
			}
			seen[f] = true
			paths = append(paths, f)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ExtractGlob extracts the tables of every PDF matched by patterns. Each
// file gets its own engine run, so no stitching state crosses files. Up to
// workers files are processed at once (at least one). Results keep the
// sorted path order. Cancellation is checked before each file and between
// pages.
func ExtractGlob(ctx context.Context, patterns []string, cfg Config, mode StitchMode, workers int) ([]BatchResult, error) {
	paths, err := ExpandPatterns(patterns)
	if err != nil {
		return nil, err
	}
	return extractPaths(ctx, paths, cfg, mode, workers, openPDF)
}

func extractPaths(ctx context.Context, paths []string, cfg Config, mode StitchMode, workers int, opener func(string, Config) (Document, error)) ([]BatchResult, error) {
	engine, err := NewEngine(cfg, mode)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]BatchResult, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = extractOne(ctx, engine, path, cfg, opener)
		}(i, path)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func extractOne(ctx context.Context, engine *Engine, path string, cfg Config, opener func(string, Config) (Document, error)) BatchResult {
	res := BatchResult{Path: path}
	doc, err := opener(path, cfg)
	if err != nil {
		res.Err = fmt.Errorf("open %s: %w", path, err)
		return res
	}
	defer doc.Close()

	run, err := engine.Run(ctx, doc, nil)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", path, err)
		return res
	}
	res.Tables = run.Tables
	res.Warnings = run.Warnings

	logging.Logger().Debug().
		Str("path", path).
		Int("tables", len(run.Tables)).
		Int("warnings", len(run.Warnings)).
		Msg("document processed")
	return res
}
