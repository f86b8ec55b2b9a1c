package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC, folds every run of whitespace (including
// non-breaking spaces) into one space and trims the result.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}

// Fold returns the normalized, case-folded form used for case-insensitive
// comparisons.
func Fold(s string) string {
	return cases.Fold().String(Normalize(s))
}

// EqualFold reports whether two cell strings match after trimming and
// case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Counts holds character class tallies
type Counts struct {
	Letters int
	Digits  int
}

// Count tallies letters and digits in s
func Count(s string) Counts {
	var c Counts
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			c.Letters++
		case unicode.IsDigit(r):
			c.Digits++
		}
	}
	return c
}

// HasLetter reports whether s contains at least one letter
func HasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// JoinNonEmpty joins the non-empty, trimmed parts with sep
func JoinNonEmpty(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
