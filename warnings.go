package tabstitch

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabstitch/tables"
)

// Warning reports a region that looked like a table but was discarded.
// Warnings never stop extraction.
type Warning struct {
	Page    int
	Index   int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d, region %d: %s", w.Page, w.Index, w.Message)
}

// FormatWarnings joins warnings one per line
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// warningsFor converts malformed results into warnings. NoTable results
// are the normal empty case and are not reported.
func warningsFor(page int, results []tables.Result) []Warning {
	var out []Warning
	for i, r := range results {
		if r.Outcome == tables.Malformed {
			out = append(out, Warning{Page: page, Index: i, Message: "discarded malformed table: " + r.Reason})
		}
	}
	return out
}
