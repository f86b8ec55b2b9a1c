package tabstitch

// StitchMode selects the continuation rule used across fragments
type StitchMode int

const (
	// ModeStitch continues a bordered table with every following fragment
	// that has no header row of its own and the same column count
	ModeStitch StitchMode = iota

	// ModeSpanning continues a bordered table when the next fragment's
	// first row repeats or closely matches the table's header
	ModeSpanning
)

func (m StitchMode) String() string {
	switch m {
	case ModeStitch:
		return "stitch"
	case ModeSpanning:
		return "spanning"
	default:
		return "unknown"
	}
}

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Page selection (1-indexed, stored as-is)
	pages []int

	mode   StitchMode
	config Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:  nil, // nil means all pages
		mode:   ModeStitch,
		config: DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		mode:   o.mode,
		config: o.config.clone(),
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
