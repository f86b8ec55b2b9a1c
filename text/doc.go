// Package text normalizes cell and line strings before they are compared.
//
// [Normalize] applies Unicode compatibility folding (ligatures, full-width
// digits, non-breaking spaces) and collapses whitespace. [EqualFold]
// compares two strings after normalization and case folding, which is how
// header rows are matched across pages.
//
// [Count] and [HasLetter] classify characters for the row classifier and
// the title scanner.
package text
