package tables

import "github.com/tsawler/tabstitch/model"

// Outcome classifies a reconstruction attempt
type Outcome int

const (
	// Found means a fragment with at least MinRows x MinCols was built
	Found Outcome = iota

	// NoTable means nothing table-like was present
	NoTable

	// Malformed means a grid was built but was too small after pruning
	Malformed
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NoTable:
		return "no table"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one reconstruction attempt. Fragment is set only
// when Outcome is Found.
type Result struct {
	Outcome  Outcome
	Fragment *model.Fragment
	Reason   string
}

func found(f *model.Fragment) Result {
	return Result{Outcome: Found, Fragment: f}
}

func noTable(reason string) Result {
	return Result{Outcome: NoTable, Reason: reason}
}

func malformed(reason string) Result {
	return Result{Outcome: Malformed, Reason: reason}
}

// Fragments returns the fragments of the Found results, in order
func Fragments(results []Result) []*model.Fragment {
	var out []*model.Fragment
	for _, r := range results {
		if r.Outcome == Found && r.Fragment != nil {
			out = append(out, r.Fragment)
		}
	}
	return out
}
