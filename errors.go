package tabstitch

import (
	"errors"

	"github.com/tsawler/tabstitch/tables"
)

var (
	// ErrNoDocument is returned when an Extractor has neither a filename
	// nor a document
	ErrNoDocument = errors.New("no document specified")

	// ErrInvalidConfig is returned when a Config fails validation
	ErrInvalidConfig = tables.ErrInvalidConfig

	// ErrPageOutOfRange is returned for a page selection outside the document
	ErrPageOutOfRange = errors.New("page out of range")
)
