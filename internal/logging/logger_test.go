package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogger_DefaultDiscards(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected disabled logger, got level %v", l.GetLevel())
	}
}

func TestSetLogger_CapturesOutput(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	SetLogger(&l)
	defer SetLogger(nil)

	Logger().Info().Int("page", 2).Msg("fragment found")

	out := buf.String()
	if !strings.Contains(out, `"page":2`) || !strings.Contains(out, "fragment found") {
		t.Errorf("Unexpected log output %q", out)
	}
}
