package cli

import (
	"testing"

	"github.com/tutorloop/tutorloop/internal/config"
)

func TestPaint_RespectsConfigAndEnv(t *testing.T) {
	cfg := config.DefaultGlobal()

	t.Setenv("NO_COLOR", "")
	if got := paint(cfg, cCyan, "hi"); got != cCyan+"hi"+cReset {
		t.Errorf("colour enabled: got %q", got)
	}

	cfg.Output.Color = false
	if got := paint(cfg, cCyan, "hi"); got != "hi" {
		t.Errorf("colour disabled in config: got %q", got)
	}

	cfg.Output.Color = true
	t.Setenv("NO_COLOR", "1")
	if got := paint(cfg, cCyan, "hi"); got != "hi" {
		t.Errorf("NO_COLOR set: got %q", got)
	}
}
