package tables

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/tsawler/tabstitch/model"
)

// ErrInvalidConfig is returned when a Config fails validation
var ErrInvalidConfig = errors.New("invalid table config")

// PageInput is everything a detector needs from one page
type PageInput struct {
	// Number is the 1-indexed page number
	Number int

	// Height is the page height in points
	Height float64

	// Tokens are the positioned words on the page, in any order
	Tokens []model.Token

	// Regions are the ruled table regions, if the page has drawn borders
	Regions []model.RuledRegion
}

// Detector is the interface for fragment reconstruction strategies
type Detector interface {
	// Detect reconstructs fragments on a page. Every attempted region yields
	// one Result, including the regions that held no table.
	Detect(page PageInput) []Result

	// Name returns the detector name
	Name() string
}

// Config holds the reconstruction tunables. Every threshold is an empirical
// default, not a guarantee; tests override them freely.
type Config struct {
	// RowTolerance is the vertical distance within which tokens share a row band (points)
	RowTolerance float64 `yaml:"rowTolerance" json:"rowTolerance"`

	// SubRowTolerance groups lines inside one ruled cell (points)
	SubRowTolerance float64 `yaml:"subRowTolerance" json:"subRowTolerance"`

	// ColumnMergeThreshold is the overlap fraction above which explicit
	// column bounds are unioned (0-1)
	ColumnMergeThreshold float64 `yaml:"columnMergeThreshold" json:"columnMergeThreshold"`

	// ColumnMinGap is the x gap that starts a new inferred column (points)
	ColumnMinGap float64 `yaml:"columnMinGap" json:"columnMinGap"`

	// CellGap is the horizontal gap between words that starts a new cell
	// when borderless rows are split for column inference (points)
	CellGap float64 `yaml:"cellGap" json:"cellGap"`

	// SparseColumnThreshold drops a borderless column whose share of empty
	// cells, from the first data row down, is at least this (0-1)
	SparseColumnThreshold float64 `yaml:"sparseColumnThreshold" json:"sparseColumnThreshold"`

	// RowWindowAbove and RowWindowBelow limit a borderless fragment to rows
	// between the first data row's top minus RowWindowAbove and the last
	// data row's top plus RowWindowBelow (points)
	RowWindowAbove float64 `yaml:"rowWindowAbove" json:"rowWindowAbove"`
	RowWindowBelow float64 `yaml:"rowWindowBelow" json:"rowWindowBelow"`

	// CellEdgeTolerance is ignored at ruled cell edges when testing which
	// column bounds a cell spans (points)
	CellEdgeTolerance float64 `yaml:"cellEdgeTolerance" json:"cellEdgeTolerance"`

	// HeaderLikeness is the letter ratio a row must exceed to be header-like (0-1)
	HeaderLikeness float64 `yaml:"headerLikeness" json:"headerLikeness"`

	// TitleMaxDistance bounds the upward title scan (points)
	TitleMaxDistance float64 `yaml:"titleMaxDistance" json:"titleMaxDistance"`

	// TitleFirstGap is the allowed gap between the table and the nearest title line
	TitleFirstGap float64 `yaml:"titleFirstGap" json:"titleFirstGap"`

	// TitleLineGap is the allowed gap between consecutive title lines
	TitleLineGap float64 `yaml:"titleLineGap" json:"titleLineGap"`

	// TitleMaxLines caps the number of collected title lines
	TitleMaxLines int `yaml:"titleMaxLines" json:"titleMaxLines"`

	// MarginExclusion drops tokens this close to the top or bottom edge
	// before borderless detection (points)
	MarginExclusion float64 `yaml:"marginExclusion" json:"marginExclusion"`

	// BlockGap splits a page into separate borderless candidates (points)
	BlockGap float64 `yaml:"blockGap" json:"blockGap"`

	// MinRows and MinCols are the smallest fragment kept
	MinRows int `yaml:"minRows" json:"minRows"`
	MinCols int `yaml:"minCols" json:"minCols"`

	// HeaderPhrasePattern recognises a column-header line met during the title scan
	HeaderPhrasePattern string `yaml:"headerPhrasePattern" json:"headerPhrasePattern"`

	// NoisePatterns are extra boilerplate patterns skipped during the title scan
	NoisePatterns []string `yaml:"noisePatterns" json:"noisePatterns"`
}

// DefaultHeaderPhrasePattern matches lines that open with a common column
// heading and carry at least two more words.
const DefaultHeaderPhrasePattern = `(?i)^(no\.?|#|date|year|description|name|type|amount|item|qty|quantity|location|policy|claim)(\s+\S+){2,}$`

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		RowTolerance:          3.0,
		SubRowTolerance:       1.5,
		ColumnMergeThreshold:  0.6,
		ColumnMinGap:          45.0,
		CellGap:               25.0,
		SparseColumnThreshold: 0.9,
		RowWindowAbove:        25.0,
		RowWindowBelow:        5.0,
		CellEdgeTolerance:     2.0,
		HeaderLikeness:        0.65,
		TitleMaxDistance:      180.0,
		TitleFirstGap:         70.0,
		TitleLineGap:          45.0,
		TitleMaxLines:         4,
		MarginExclusion:       50.0,
		BlockGap:              50.0,
		MinRows:               2,
		MinCols:               2,
		HeaderPhrasePattern:   DefaultHeaderPhrasePattern,
	}
}

// Validate checks ranges and compiles the patterns
func (c Config) Validate() error {
	switch {
	case c.RowTolerance < 0 || c.SubRowTolerance < 0 || c.CellEdgeTolerance < 0:
		return fmt.Errorf("%w: negative tolerance", ErrInvalidConfig)
	case c.ColumnMergeThreshold < 0 || c.ColumnMergeThreshold > 1:
		return fmt.Errorf("%w: columnMergeThreshold %v outside [0,1]", ErrInvalidConfig, c.ColumnMergeThreshold)
	case c.HeaderLikeness < 0 || c.HeaderLikeness > 1:
		return fmt.Errorf("%w: headerLikeness %v outside [0,1]", ErrInvalidConfig, c.HeaderLikeness)
	case c.SparseColumnThreshold <= 0 || c.SparseColumnThreshold > 1:
		return fmt.Errorf("%w: sparseColumnThreshold %v outside (0,1]", ErrInvalidConfig, c.SparseColumnThreshold)
	case c.CellGap < 0 || c.RowWindowAbove < 0 || c.RowWindowBelow < 0:
		return fmt.Errorf("%w: negative cell gap or row window", ErrInvalidConfig)
	case c.ColumnMinGap <= 0:
		return fmt.Errorf("%w: columnMinGap must be positive", ErrInvalidConfig)
	case c.MinRows < 1 || c.MinCols < 1:
		return fmt.Errorf("%w: minRows and minCols must be at least 1", ErrInvalidConfig)
	case c.TitleMaxLines < 0:
		return fmt.Errorf("%w: negative titleMaxLines", ErrInvalidConfig)
	}
	if c.HeaderPhrasePattern != "" {
		if _, err := regexp.Compile(c.HeaderPhrasePattern); err != nil {
			return fmt.Errorf("%w: headerPhrasePattern: %v", ErrInvalidConfig, err)
		}
	}
	for _, p := range c.NoisePatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: noise pattern %q: %v", ErrInvalidConfig, p, err)
		}
	}
	return nil
}

// PageDetector picks the reconstruction path per page: the bordered path
// when the page has ruled regions, the borderless path otherwise.
type PageDetector struct {
	bordered   *BorderedDetector
	borderless *BorderlessDetector
}

// NewPageDetector creates both detectors from one config
func NewPageDetector(config Config) (*PageDetector, error) {
	bordered, err := NewBorderedDetector(config)
	if err != nil {
		return nil, err
	}
	borderless, err := NewBorderlessDetector(config)
	if err != nil {
		return nil, err
	}
	return &PageDetector{bordered: bordered, borderless: borderless}, nil
}

// Name returns the detector's identifier ("page").
func (d *PageDetector) Name() string {
	return "page"
}

// Detect runs the path that fits the page
func (d *PageDetector) Detect(page PageInput) []Result {
	if len(page.Regions) > 0 {
		return d.bordered.Detect(page)
	}
	return d.borderless.Detect(page)
}

var (
	_ Detector = (*BorderedDetector)(nil)
	_ Detector = (*BorderlessDetector)(nil)
	_ Detector = (*PageDetector)(nil)
)
