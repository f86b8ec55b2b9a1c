package tabstitch

import "github.com/tsawler/tabstitch/model"

// Page is one page as seen through a layout provider
type Page interface {
	// Number returns the 1-indexed page number
	Number() int

	// Height returns the page height in points
	Height() float64

	// Tokens returns the positioned words on the page in any order
	Tokens() ([]model.Token, error)

	// RuledRegions returns the ruled table regions detected with settings
	RuledRegions(settings model.RuledSettings) ([]model.RuledRegion, error)
}

// Document is a paginated source of positioned text
type Document interface {
	NumPages() int

	// Page returns the 1-indexed page n
	Page(n int) (Page, error)

	Close() error
}
