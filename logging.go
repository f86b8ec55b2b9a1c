package tabstitch

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/tabstitch/internal/logging"
)

// SetLogger routes debug output (per-page detection counts and stitching
// decisions) to l. Pass nil to disable it. Logging is off by default.
func SetLogger(l *zerolog.Logger) {
	logging.SetLogger(l)
}
