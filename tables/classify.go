package tables

import (
	"regexp"
	"strings"

	"github.com/tsawler/tabstitch/text"
)

// RowKind is the role a row plays in a fragment
type RowKind int

const (
	Data RowKind = iota
	Header
	Title
)

func (k RowKind) String() string {
	switch k {
	case Data:
		return "data"
	case Header:
		return "header"
	case Title:
		return "title"
	default:
		return "unknown"
	}
}

var (
	datePattern   = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
	numberPattern = regexp.MustCompile(`^[-+(]?[$€£¥]?\s?\d[\d,]*(\.\d+)?\s?%?\)?$`)
)

const likenessEpsilon = 1e-9

// RowStats are the character statistics of one row
type RowStats struct {
	Letters        int
	Digits         int
	HeaderLikeness float64

	// DataLike is set when the first non-empty cell is a date or a number,
	// or the row holds at least two digits
	DataLike bool
}

// AnalyzeRow computes the statistics of a row of cells
func AnalyzeRow(cells []string) RowStats {
	var stats RowStats
	first := ""
	for _, cell := range cells {
		s := text.Normalize(cell)
		if s == "" {
			continue
		}
		if first == "" {
			first = s
		}
		c := text.Count(s)
		stats.Letters += c.Letters
		stats.Digits += c.Digits
	}

	stats.HeaderLikeness = float64(stats.Letters) / (float64(stats.Letters+stats.Digits) + likenessEpsilon)
	stats.DataLike = stats.Digits >= 2 ||
		datePattern.MatchString(first) ||
		numberPattern.MatchString(first)
	return stats
}

// HeaderLike reports whether stats describe a header candidate. Data-likeness
// takes precedence.
func (s RowStats) HeaderLike(threshold float64) bool {
	return !s.DataLike && s.HeaderLikeness > threshold
}

// Labels is the classification of a fragment's rows
type Labels struct {
	Kinds []RowKind

	// Header is the header row index, or -1
	Header int

	// FirstData is the first data-like row index, or -1
	FirstData int
}

// TitleRows returns the indices of rows labelled Title
func (l Labels) TitleRows() []int {
	var out []int
	for i, k := range l.Kinds {
		if k == Title {
			out = append(out, i)
		}
	}
	return out
}

// LabelRows scans rows top to bottom. The first data-like row sets the
// boundary. When the row just above it is header-like it becomes the header
// and every row above the header is a title. Without a header, rows above
// the boundary stay data; without any data-like row there is no header.
func LabelRows(rows [][]string, headerLikeness float64) Labels {
	labels := Labels{
		Kinds:     make([]RowKind, len(rows)),
		Header:    -1,
		FirstData: -1,
	}

	stats := make([]RowStats, len(rows))
	for i, row := range rows {
		stats[i] = AnalyzeRow(row)
		if labels.FirstData < 0 && stats[i].DataLike {
			labels.FirstData = i
		}
	}

	if labels.FirstData > 0 && stats[labels.FirstData-1].HeaderLike(headerLikeness) {
		labels.Header = labels.FirstData - 1
		labels.Kinds[labels.Header] = Header
		for i := 0; i < labels.Header; i++ {
			labels.Kinds[i] = Title
		}
	}
	return labels
}

// rowText joins the non-empty cells of a row with single spaces
func rowText(row []string) string {
	parts := make([]string, 0, len(row))
	for _, cell := range row {
		if s := strings.TrimSpace(cell); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
