package tutor

import (
	"strings"
	"testing"

	"github.com/tutorloop/tutorloop/internal/adapter"
	"github.com/tutorloop/tutorloop/internal/session"
)

func TestHistoryMessages_KeepsNewestWithinBudget(t *testing.T) {
	e := newTestEngine(t, nil, 3)
	e.opts.HistoryTokens = 30

	sctx := e.Sessions().Ensure("mod-1", 0)
	sctx.History = []session.Turn{
		{Role: session.RoleUser, Content: strings.Repeat("very old filler content ", 40)},
		{Role: session.RoleUser, Content: "recent question"},
		{Role: session.RoleAI, Content: "recent answer"},
	}

	msgs := e.historyMessages(sctx)
	if len(msgs) != 2 {
		t.Fatalf("kept %d messages, want the 2 newest", len(msgs))
	}
	if msgs[0].Content != "recent question" || msgs[1].Content != "recent answer" {
		t.Errorf("messages out of order: %v", msgs)
	}
	if msgs[0].Role != adapter.RoleUser || msgs[1].Role != adapter.RoleAssistant {
		t.Errorf("roles not mapped: %q, %q", msgs[0].Role, msgs[1].Role)
	}
}

func TestHistoryMessages_ZeroBudget(t *testing.T) {
	e := newTestEngine(t, nil, 3)
	e.opts.HistoryTokens = 0

	sctx := e.Sessions().Ensure("mod-1", 0)
	sctx.History = []session.Turn{{Role: session.RoleUser, Content: "hello"}}

	if msgs := e.historyMessages(sctx); msgs != nil {
		t.Errorf("zero budget returned %d messages", len(msgs))
	}
}

func TestSystemPrompt(t *testing.T) {
	base := systemPrompt("", session.PhaseTeach)
	if !strings.Contains(base, "tutor") {
		t.Errorf("prompt does not frame a tutor: %q", base)
	}

	withTopic := systemPrompt("User Stories", session.PhaseTeach)
	if !strings.Contains(withTopic, `"User Stories"`) {
		t.Errorf("topic missing: %q", withTopic)
	}

	practice := systemPrompt("User Stories", session.PhasePractice)
	if !strings.Contains(practice, "exercise") {
		t.Errorf("practice suffix missing: %q", practice)
	}

	assess := systemPrompt("User Stories", session.PhaseAssess)
	if !strings.Contains(assess, "follow-up question") {
		t.Errorf("assess suffix missing: %q", assess)
	}
}

func TestTokenizer_Count(t *testing.T) {
	tok, err := NewTokenizer()
	if err != nil {
		t.Skipf("tokenizer encoding not cached: %v", err)
	}
	if n := tok.Count("Hello, world!"); n <= 0 {
		t.Errorf("Count = %d, want positive", n)
	}
	if n := tok.Count(""); n != 0 {
		t.Errorf("Count(\"\") = %d, want 0", n)
	}
}
