package stitch

import (
	"fmt"

	"github.com/tsawler/tabstitch/internal/logging"
	"github.com/tsawler/tabstitch/model"
)

// State is the assembly state
type State int

const (
	// Empty means no table is in progress
	Empty State = iota

	// Building means a table is in progress
	Building
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Building:
		return "building"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config holds the continuation settings
type Config struct {
	// HeaderSimilarity is the fraction of header cells that must match the
	// incoming first row, case-folded, for a spanning continuation
	HeaderSimilarity float64 `yaml:"headerSimilarity" json:"headerSimilarity"`

	// RequireAdjacentPages limits spanning continuations to fragments on
	// the same page as the table's last fragment or the page after it
	RequireAdjacentPages bool `yaml:"requireAdjacentPages" json:"requireAdjacentPages"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		HeaderSimilarity:     0.7,
		RequireAdjacentPages: true,
	}
}

// Validate checks the similarity range
func (c Config) Validate() error {
	if c.HeaderSimilarity < 0 || c.HeaderSimilarity > 1 {
		return fmt.Errorf("headerSimilarity %v outside [0,1]", c.HeaderSimilarity)
	}
	return nil
}

// AssemblyState is the state of one document run
type AssemblyState struct {
	State State

	// Table is the table in progress; nil when State is Empty
	Table *model.LogicalTable
}

// Stitcher turns fragments into logical tables
type Stitcher struct {
	config Config
	state  AssemblyState
}

// NewStitcher creates a stitcher in the Empty state
func NewStitcher(config Config) *Stitcher {
	return &Stitcher{config: config}
}

// State returns a copy of the assembly state
func (s *Stitcher) State() AssemblyState {
	return s.state
}

// Reset drops the table in progress without emitting it
func (s *Stitcher) Reset() {
	s.state = AssemblyState{}
}

// Push consumes a fragment with the bordered continuation rule and returns
// the tables finalized by it.
func (s *Stitcher) Push(f *model.Fragment) []*model.LogicalTable {
	if f.Kind == model.KindBorderless {
		return s.emitBorderless(f)
	}

	if s.state.State == Building {
		t := s.state.Table
		if !f.HasHeader && f.ColCount() == t.ColCount() {
			t.Append(f.Page, f.Rows)
			s.log(f, "continue")
			return nil
		}
		reason := "header"
		if f.ColCount() != t.ColCount() {
			reason = "column count"
		}
		s.log(f, "finalize: "+reason)
	}
	return s.start(f)
}

// PushSpanning consumes a fragment with the header-similarity rule and
// returns the tables finalized by it.
func (s *Stitcher) PushSpanning(f *model.Fragment) []*model.LogicalTable {
	if f.Kind == model.KindBorderless {
		return s.emitBorderless(f)
	}

	if s.state.State == Building {
		t := s.state.Table
		ok, dropFirst := Continues(t, f, s.config)
		if ok {
			rows := f.Rows
			if dropFirst {
				rows = rows[1:]
			}
			t.Append(f.Page, rows)
			s.log(f, fmt.Sprintf("continue (drop first row: %v)", dropFirst))
			return nil
		}
		s.log(f, "finalize: no continuation")
	}
	return s.start(f)
}

// Finish finalizes the table in progress, if any, and returns it
func (s *Stitcher) Finish() []*model.LogicalTable {
	if s.state.State != Building {
		return nil
	}
	t := s.state.Table
	s.state = AssemblyState{}
	return []*model.LogicalTable{t}
}

// start finalizes the table in progress and begins a new one from f
func (s *Stitcher) start(f *model.Fragment) []*model.LogicalTable {
	done := s.Finish()
	s.state = AssemblyState{State: Building, Table: model.NewLogicalTable(f)}
	s.log(f, "start")
	return done
}

func (s *Stitcher) emitBorderless(f *model.Fragment) []*model.LogicalTable {
	s.log(f, "emit borderless")
	return []*model.LogicalTable{model.NewLogicalTable(f)}
}

func (s *Stitcher) log(f *model.Fragment, decision string) {
	logging.Logger().Debug().
		Int("page", f.Page).
		Int("fragment", f.Index).
		Str("kind", f.Kind.String()).
		Int("cols", f.ColCount()).
		Str("state", s.state.State.String()).
		Msg(decision)
}

// MergeSpanning runs the spanning rule over fragments in order and returns
// every resulting table
func MergeSpanning(frags []*model.Fragment, config Config) []*model.LogicalTable {
	s := NewStitcher(config)
	var out []*model.LogicalTable
	for _, f := range frags {
		out = append(out, s.PushSpanning(f)...)
	}
	return append(out, s.Finish()...)
}
