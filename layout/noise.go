package layout

import (
	"fmt"
	"regexp"

	"github.com/tsawler/tabstitch/text"
)

// DefaultNoisePatterns match page furniture that repeats on every page:
// page numbers, continuation markers, confidentiality stamps, print dates.
// Copyright notices match anywhere in the line.
var DefaultNoisePatterns = []string{
	`(?i)^page\s*\d+(\s*(of|/)\s*\d+)?$`,
	`^[-–—\s]*\d+[-–—\s]*$`,
	`(?i)^\(?continued\)?\.?$`,
	`(?i)^continued (on|from) (the )?(next|previous) page\.?$`,
	`(?i)^(strictly )?(confidential|proprietary)( and (confidential|proprietary))?\.?$`,
	`(?i)^printed( on)?:?\s+\d{1,2}/\d{1,2}/\d{2,4}`,
	`(?i)(©|\bcopyright\b)`,
	`(?i)\ball\s+rights\s+reserved\b`,
}

// NoiseFilter recognises boilerplate lines by regular expression
type NoiseFilter struct {
	patterns []*regexp.Regexp
}

// NewNoiseFilter compiles the default patterns plus any extra ones
func NewNoiseFilter(extra ...string) (*NoiseFilter, error) {
	f := &NoiseFilter{}
	for _, p := range append(append([]string(nil), DefaultNoisePatterns...), extra...) {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("noise pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// IsNoise reports whether the normalized line matches any pattern
func (f *NoiseFilter) IsNoise(line string) bool {
	if f == nil {
		return false
	}
	s := text.Normalize(line)
	for _, re := range f.patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
