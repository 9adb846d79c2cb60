package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tutorloop/tutorloop/internal/adapter"
	"github.com/tutorloop/tutorloop/internal/corpus"
	"github.com/tutorloop/tutorloop/internal/session"
)

// stubAdapter counts provider calls and replies with a fixed answer or error.
// It records the last request so tests can assert on what the engine sent.
type stubAdapter struct {
	calls   int
	reply   string
	chunks  []string // multi-chunk reply; overrides reply when set
	err     error
	lastReq adapter.CompletionRequest
}

func (s *stubAdapter) Complete(_ context.Context, req adapter.CompletionRequest) (<-chan adapter.StreamChunk, error) {
	s.calls++
	s.lastReq = req
	texts := s.chunks
	if texts == nil {
		texts = []string{s.reply}
	}
	ch := make(chan adapter.StreamChunk, len(texts)+1)
	if s.err != nil {
		ch <- adapter.StreamChunk{Error: s.err}
	} else {
		for _, text := range texts {
			ch <- adapter.StreamChunk{Text: text}
		}
	}
	close(ch)
	return ch, nil
}

func (s *stubAdapter) Info() adapter.ModelInfo {
	return adapter.ModelInfo{Name: "stub", Provider: "stub"}
}

func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	entries := []corpus.Entry{
		{
			ID:         "ba-definition",
			Topic:      "Business Analysis Definition",
			Question:   "What is business analysis?",
			Answer:     "Business analysis is the practice of identifying business needs and determining solutions to business problems.",
			Examples:   []string{"A business analyst maps the order-to-cash process before proposing changes."},
			Difficulty: corpus.Beginner,
		},
		{
			ID:         "user-stories",
			Topic:      "User Stories",
			Question:   "How do you write a user story?",
			Answer:     "A user story follows the form: as a <role>, I want <capability>, so that <benefit>.",
			Difficulty: corpus.Beginner,
		},
		{
			ID:         "risk-analysis",
			Topic:      "Risk Analysis",
			Question:   "How do you assess project threats?",
			Answer:     "Rate each threat by probability and impact, then plan mitigation for the highest exposure.",
			Difficulty: corpus.Intermediate,
		},
	}
	templates := []corpus.Template{
		{ID: "t-practical", Pattern: "How would you apply {topic} on your current project?", Difficulty: corpus.Intermediate, Type: corpus.TypePractical},
		{ID: "t-scenario", Pattern: "A project skipped {topic} entirely. What goes wrong first?", Difficulty: corpus.Intermediate, Type: corpus.TypeScenario},
		{ID: "t-concept", Pattern: "What is {topic} and why does it matter?", Difficulty: corpus.Beginner, Type: corpus.TypeConcept},
	}
	c, err := corpus.New(entries, templates)
	if err != nil {
		t.Fatalf("corpus.New: %v", err)
	}
	return c
}

func newTestEngine(t *testing.T, llm adapter.LLMAdapter, maxAICalls int) *Engine {
	t.Helper()
	opts := DefaultOptions()
	opts.Limits = session.Limits{MaxQuestions: 5, MaxAICalls: maxAICalls}
	e, err := NewEngine(testCorpus(t), session.NewManager(opts.Limits), llm, opts)
	if err != nil {
		t.Skipf("engine unavailable (tokenizer encoding not cached): %v", err)
	}
	return e
}

// unmatchable is a query with no lexical overlap with the test corpus, so it
// always misses the knowledge base.
const unmatchable = "quantum chromodynamics lattice"

func TestAsk_KnowledgeBaseHitIsFree(t *testing.T) {
	stub := &stubAdapter{reply: "provider answer"}
	e := newTestEngine(t, stub, 3)

	ans := e.Ask(context.Background(), "mod-1", "What is business analysis?")

	if ans.Source != SourceKnowledgeBase {
		t.Fatalf("Source = %q, want knowledge_base", ans.Source)
	}
	if !strings.Contains(ans.Content, "identifying business needs") {
		t.Errorf("content does not carry the corpus answer: %q", ans.Content)
	}
	if !strings.Contains(ans.Content, "Example:") {
		t.Errorf("content does not fold in the example: %q", ans.Content)
	}
	if ans.CallsUsed != 0 || ans.CallsRemaining != 3 {
		t.Errorf("budget touched by a KB hit: used=%d remaining=%d", ans.CallsUsed, ans.CallsRemaining)
	}
	if stub.calls != 0 {
		t.Errorf("provider called %d times on a KB hit", stub.calls)
	}
	if got := ans.Tagged(3); !strings.HasPrefix(got, "Knowledge Base Answer (FREE)") {
		t.Errorf("Tagged = %q", got)
	}
}

func TestAsk_MissFallsBackToAI(t *testing.T) {
	stub := &stubAdapter{reply: "provider answer"}
	e := newTestEngine(t, stub, 3)

	ans := e.Ask(context.Background(), "mod-1", unmatchable)

	if ans.Source != SourceAI {
		t.Fatalf("Source = %q, want ai", ans.Source)
	}
	if ans.Content != "provider answer" {
		t.Errorf("content = %q", ans.Content)
	}
	if ans.CallsUsed != 1 || ans.CallsRemaining != 2 {
		t.Errorf("budget: used=%d remaining=%d, want 1/2", ans.CallsUsed, ans.CallsRemaining)
	}
	if stub.calls != 1 {
		t.Errorf("provider called %d times, want 1", stub.calls)
	}
	if got := ans.Tagged(3); !strings.HasPrefix(got, "AI-Powered Answer (1/3 calls used)") {
		t.Errorf("Tagged = %q", got)
	}
}

func TestAsk_StreamsDeltasToCallback(t *testing.T) {
	stub := &stubAdapter{chunks: []string{"stream", "ed ", "answer"}}
	e := newTestEngine(t, stub, 3)
	e.opts.Stream = true

	var got []string
	e.SetOnDelta(func(text string) { got = append(got, text) })

	ans := e.Ask(context.Background(), "mod-1", unmatchable)

	if ans.Source != SourceAI {
		t.Fatalf("Source = %q, want ai", ans.Source)
	}
	if ans.Content != "streamed answer" {
		t.Errorf("assembled content = %q, want %q", ans.Content, "streamed answer")
	}
	if !stub.lastReq.Stream {
		t.Error("provider request did not ask for streaming")
	}
	if joined := strings.Join(got, ""); joined != "streamed answer" {
		t.Errorf("callback received %q, want %q", joined, "streamed answer")
	}
	if len(got) != 3 {
		t.Errorf("callback fired %d times, want 3", len(got))
	}
}

func TestAsk_KnowledgeBaseHitNeverStreams(t *testing.T) {
	stub := &stubAdapter{reply: "provider answer"}
	e := newTestEngine(t, stub, 3)
	e.opts.Stream = true

	fired := 0
	e.SetOnDelta(func(string) { fired++ })

	ans := e.Ask(context.Background(), "mod-1", "What is business analysis?")
	if ans.Source != SourceKnowledgeBase {
		t.Fatalf("Source = %q, want knowledge_base", ans.Source)
	}
	if fired != 0 {
		t.Errorf("delta callback fired %d times on a corpus hit, want 0", fired)
	}
}

func TestAsk_BudgetExhaustedSkipsProvider(t *testing.T) {
	stub := &stubAdapter{reply: "provider answer"}
	e := newTestEngine(t, stub, 1)

	first := e.Ask(context.Background(), "mod-1", unmatchable)
	if first.Source != SourceAI {
		t.Fatalf("first miss Source = %q, want ai", first.Source)
	}

	second := e.Ask(context.Background(), "mod-1", unmatchable)
	if second.Source != SourceBudgetExhausted {
		t.Fatalf("second miss Source = %q, want budget_exhausted", second.Source)
	}
	if second.Content != BudgetExhaustedNotice {
		t.Errorf("content = %q, want the fixed notice", second.Content)
	}
	if second.CallsRemaining != 0 {
		t.Errorf("CallsRemaining = %d, want 0", second.CallsRemaining)
	}
	if stub.calls != 1 {
		t.Errorf("provider called %d times after exhaustion, want 1", stub.calls)
	}

	// Knowledge-base answers stay available after exhaustion.
	kb := e.Ask(context.Background(), "mod-1", "What is business analysis?")
	if kb.Source != SourceKnowledgeBase {
		t.Errorf("KB hit after exhaustion Source = %q", kb.Source)
	}
}

func TestAsk_ProviderFailureSpendsBudget(t *testing.T) {
	stub := &stubAdapter{err: errors.New("connection refused")}
	e := newTestEngine(t, stub, 1)

	ans := e.Ask(context.Background(), "mod-1", unmatchable)
	if ans.Source != SourceAIFailed {
		t.Fatalf("Source = %q, want ai_failed", ans.Source)
	}
	if ans.CallsUsed != 1 || ans.CallsRemaining != 0 {
		t.Errorf("failed call not charged: used=%d remaining=%d", ans.CallsUsed, ans.CallsRemaining)
	}

	// The unit stays spent: the next miss hits the exhaustion path.
	next := e.Ask(context.Background(), "mod-1", unmatchable)
	if next.Source != SourceBudgetExhausted {
		t.Errorf("Source after failed call = %q, want budget_exhausted", next.Source)
	}
}

func TestAsk_NoProviderConfigured(t *testing.T) {
	e := newTestEngine(t, nil, 3)

	ans := e.Ask(context.Background(), "mod-1", unmatchable)
	if ans.Source != SourceAIFailed {
		t.Fatalf("Source = %q, want ai_failed", ans.Source)
	}
	if ans.CallsUsed != 0 || ans.CallsRemaining != 3 {
		t.Errorf("budget spent without a provider: used=%d remaining=%d", ans.CallsUsed, ans.CallsRemaining)
	}
}

func TestAsk_RecordsHistoryInOrder(t *testing.T) {
	stub := &stubAdapter{reply: "provider answer"}
	e := newTestEngine(t, stub, 3)

	e.Ask(context.Background(), "mod-1", "What is business analysis?")
	e.Ask(context.Background(), "mod-1", unmatchable)

	sctx, ok := e.Sessions().Get("mod-1")
	if !ok {
		t.Fatal("no session created")
	}
	if len(sctx.History) != 4 {
		t.Fatalf("history length = %d, want 4", len(sctx.History))
	}
	if sctx.History[0].Role != session.RoleUser || sctx.History[1].Role != session.RoleAI {
		t.Error("turn roles out of order")
	}
	if sctx.History[2].Content != unmatchable {
		t.Errorf("third turn = %q, want the second question", sctx.History[2].Content)
	}
}

func TestAsk_ModulesHaveIndependentBudgets(t *testing.T) {
	stub := &stubAdapter{reply: "provider answer"}
	e := newTestEngine(t, stub, 1)

	if ans := e.Ask(context.Background(), "mod-a", unmatchable); ans.Source != SourceAI {
		t.Fatalf("mod-a first miss = %q", ans.Source)
	}
	if ans := e.Ask(context.Background(), "mod-a", unmatchable); ans.Source != SourceBudgetExhausted {
		t.Fatalf("mod-a second miss = %q", ans.Source)
	}

	// A different module still has its full quota.
	if ans := e.Ask(context.Background(), "mod-b", unmatchable); ans.Source != SourceAI {
		t.Errorf("mod-b first miss = %q, want ai", ans.Source)
	}
}
