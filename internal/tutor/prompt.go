package tutor

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"

	"github.com/tutorloop/tutorloop/internal/adapter"
	"github.com/tutorloop/tutorloop/internal/session"
)

// Tokenizer wraps tiktoken for approximate token counting when trimming the
// history replayed to the fallback provider.
type Tokenizer struct {
	enc *tiktoken.Tiktoken
}

// NewTokenizer creates a Tokenizer using the cl100k_base encoding
// (a good approximation across providers).
func NewTokenizer() (*Tokenizer, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("tokenizer: get encoding: %w", err)
	}
	return &Tokenizer{enc: enc}, nil
}

// Count returns the approximate number of tokens in s.
func (t *Tokenizer) Count(s string) int {
	return len(t.enc.Encode(s, nil, nil))
}

// historyMessages converts the session history into provider messages,
// keeping the most recent turns that fit the configured token budget.
func (e *Engine) historyMessages(sctx *session.Context) []adapter.Message {
	budget := e.opts.HistoryTokens
	if budget <= 0 || len(sctx.History) == 0 {
		return nil
	}

	// Walk backwards so the newest turns survive truncation.
	var kept []session.Turn
	used := 0
	for i := len(sctx.History) - 1; i >= 0; i-- {
		turn := sctx.History[i]
		n := e.tokenizer.Count(turn.Content)
		if used+n > budget {
			break
		}
		used += n
		kept = append(kept, turn)
	}

	// kept is newest-first; reverse into chronological order.
	msgs := make([]adapter.Message, len(kept))
	for i, turn := range kept {
		role := adapter.RoleUser
		if turn.Role == session.RoleAI {
			role = adapter.RoleAssistant
		}
		msgs[len(kept)-1-i] = adapter.Message{Role: role, Content: turn.Content}
	}
	return msgs
}

// systemPrompt frames the fallback call so the provider answers like a tutor
// staying on the current topic and phase.
func systemPrompt(topic string, phase session.Phase) string {
	base := "You are a patient tutor for a business analysis course. " +
		"Answer the learner's question clearly and concretely, in a few short paragraphs. " +
		"Prefer plain language and one worked example over exhaustive coverage."
	if topic != "" {
		base += fmt.Sprintf(" The current topic is %q.", topic)
	}
	switch phase {
	case session.PhasePractice:
		base += " The learner is practising: end with a short exercise they can attempt."
	case session.PhaseAssess:
		base += " The learner is being assessed: after answering, pose one follow-up question that checks understanding."
	}
	return base
}
