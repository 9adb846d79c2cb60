package cli

import (
	"fmt"
	"os"

	"github.com/tutorloop/tutorloop/internal/config"
	"github.com/tutorloop/tutorloop/internal/tutor"
)

const (
	cReset = "\033[0m"
	cCyan  = "\033[36m"
	cDim   = "\033[2m"
)

// useColor reports whether ANSI colour output is enabled. NO_COLOR always
// wins over the config setting.
func useColor(cfg config.GlobalConfig) bool {
	return cfg.Output.Color && os.Getenv("NO_COLOR") == ""
}

// paint wraps s in the given ANSI code when colour is enabled.
func paint(cfg config.GlobalConfig, code, s string) string {
	if !useColor(cfg) {
		return s
	}
	return code + s + cReset
}

// streamPrinter prints fallback tokens as they arrive, emitting the answer
// header before the first fragment. A knowledge-base hit or an exhausted
// budget never streams, so those answers reach finish untouched.
type streamPrinter struct {
	active bool
}

func (p *streamPrinter) delta(text string) {
	if !p.active {
		p.active = true
		fmt.Print("AI-Powered Answer\n\n")
	}
	fmt.Print(text)
}

// finish completes a streamed answer, or prints the full tagged answer when
// nothing was streamed, and resets the printer for the next turn.
func (p *streamPrinter) finish(ans tutor.Answer, maxCalls int) {
	switch {
	case p.active && ans.Source == tutor.SourceAI:
		fmt.Printf("\n\n(%d/%d calls used)\n\n", ans.CallsUsed, maxCalls)
	case p.active:
		// The stream broke mid-answer; the tagged form carries the apology.
		fmt.Printf("\n\n%s\n\n", ans.Tagged(maxCalls))
	default:
		fmt.Printf("%s\n\n", ans.Tagged(maxCalls))
	}
	p.active = false
}
