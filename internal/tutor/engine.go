// Package tutor orchestrates retrieval, session state, and the budgeted AI
// fallback into learner-facing responses.
package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/tutorloop/tutorloop/internal/adapter"
	"github.com/tutorloop/tutorloop/internal/corpus"
	"github.com/tutorloop/tutorloop/internal/retrieval"
	"github.com/tutorloop/tutorloop/internal/session"
)

// Source distinguishes the three mutually exclusive answer outcomes.
type Source string

const (
	// SourceKnowledgeBase is a free corpus hit; no budget was spent.
	SourceKnowledgeBase Source = "knowledge_base"
	// SourceAI is a metered provider answer; one budget unit was spent.
	SourceAI Source = "ai"
	// SourceBudgetExhausted is the fixed notice returned when the quota is
	// gone; no provider call was made.
	SourceBudgetExhausted Source = "budget_exhausted"
	// SourceAIFailed is the local apology used when the provider call fails;
	// the consumed budget unit is not refunded.
	SourceAIFailed Source = "ai_failed"
)

// BudgetExhaustedNotice is the fixed message returned once the AI quota for a
// topic is spent. Knowledge-base answers stay available.
const BudgetExhaustedNotice = "You've used all your AI-powered answers for this topic. " +
	"I can still answer questions covered by the knowledge base for free, " +
	"or you can move on to the next topic to refresh your quota."

// aiFailureApology is returned when the provider call errors or times out.
const aiFailureApology = "Sorry, I couldn't reach the AI service just now. " +
	"Please try again in a moment, or ask something from the course material."

// noProviderNotice is returned on a knowledge-base miss when no AI provider
// is configured at all. No budget is spent.
const noProviderNotice = "I don't have that in the course material, and no AI " +
	"provider is configured to help. Set an API key to enable AI-powered answers."

// Answer is the engine's response to a direct learner question.
type Answer struct {
	Content        string
	Source         Source
	Topic          string // topic of the matched entry, when Source is knowledge_base
	CallsUsed      int
	CallsRemaining int
}

// Turn is the response shape for a teaching-phase turn.
type Turn struct {
	Content            string
	Phase              session.Phase
	Topic              string
	ModuleID           string
	QuestionsRemaining int
}

// Options configures an Engine.
type Options struct {
	Weights     retrieval.Weights
	Limits      session.Limits
	TopK        int
	Model       string // provider-specific model override, "" = adapter default
	MaxTokens   int
	Temperature float64
	// HistoryTokens caps how much conversation history is replayed to the
	// provider on a fallback call.
	HistoryTokens int
	// Stream asks the provider for incremental output on fallback calls.
	Stream bool
	// OnDelta, when non-nil, receives each response fragment as it arrives
	// from the provider. Ask still returns the assembled answer.
	OnDelta func(text string)
}

// DefaultOptions returns the stock engine configuration.
func DefaultOptions() Options {
	return Options{
		Weights:       retrieval.DefaultWeights(),
		Limits:        session.DefaultLimits(),
		TopK:          5,
		MaxTokens:     1024,
		Temperature:   0.7,
		HistoryTokens: 2000,
	}
}

// Engine answers learner questions: knowledge base first, metered AI second.
// It owns no session state directly; all mutation goes through the injected
// session.Manager.
type Engine struct {
	corpus     *corpus.Corpus
	retriever  *retrieval.Retriever
	sessions   *session.Manager
	classifier session.PhaseClassifier
	llm        adapter.LLMAdapter // nil = no fallback configured
	tokenizer  *Tokenizer
	opts       Options
}

// NewEngine wires an Engine. llm may be nil, in which case a knowledge-base
// miss returns an explanatory message and no budget is spent.
func NewEngine(c *corpus.Corpus, sessions *session.Manager, llm adapter.LLMAdapter, opts Options) (*Engine, error) {
	tok, err := NewTokenizer()
	if err != nil {
		return nil, fmt.Errorf("tutor: init tokenizer: %w", err)
	}
	return &Engine{
		corpus:     c,
		retriever:  retrieval.NewRetriever(c, opts.Weights),
		sessions:   sessions,
		classifier: session.NewKeywordClassifier(),
		llm:        llm,
		tokenizer:  tok,
		opts:       opts,
	}, nil
}

// SetOnDelta registers fn to receive streamed response fragments during
// fallback calls. Pass nil to disable.
func (e *Engine) SetOnDelta(fn func(text string)) { e.opts.OnDelta = fn }

// Sessions exposes the engine's session manager for status reporting.
func (e *Engine) Sessions() *session.Manager { return e.sessions }

// Corpus exposes the loaded knowledge corpus.
func (e *Engine) Corpus() *corpus.Corpus { return e.corpus }

// Ask answers a direct learner question. The knowledge base is consulted
// first and is always free; only a miss reaches for the budgeted provider.
// History and counters are mutated only after the response is composed, so a
// failed turn cannot corrupt the session.
func (e *Engine) Ask(ctx context.Context, moduleID, question string) Answer {
	sctx := e.sessions.Ensure(moduleID, 0)

	if matches := e.retriever.Retrieve(question, e.opts.TopK); len(matches) > 0 {
		match := matches[0]
		ans := Answer{
			Content:        composeKBAnswer(match),
			Source:         SourceKnowledgeBase,
			Topic:          match.Entry.Topic,
			CallsUsed:      sctx.AICallsUsed,
			CallsRemaining: sctx.BudgetRemaining(),
		}
		e.record(moduleID, question, ans.Content)
		return ans
	}

	if e.llm == nil {
		ans := Answer{
			Content:        noProviderNotice,
			Source:         SourceAIFailed,
			CallsUsed:      sctx.AICallsUsed,
			CallsRemaining: sctx.BudgetRemaining(),
		}
		e.record(moduleID, question, ans.Content)
		return ans
	}

	// Knowledge-base miss: this is the only point where budget is charged,
	// exactly once per attempted fallback.
	budget := session.TryConsume(sctx)
	if !budget.Allowed {
		ans := Answer{
			Content:        BudgetExhaustedNotice,
			Source:         SourceBudgetExhausted,
			CallsUsed:      sctx.AICallsUsed,
			CallsRemaining: 0,
		}
		e.record(moduleID, question, ans.Content)
		return ans
	}

	text, err := e.complete(ctx, sctx, question)
	if err != nil {
		// Provider failure is recovered locally; the unit stays spent.
		ans := Answer{
			Content:        aiFailureApology,
			Source:         SourceAIFailed,
			CallsUsed:      budget.Used,
			CallsRemaining: budget.Remaining,
		}
		e.record(moduleID, question, ans.Content)
		return ans
	}

	ans := Answer{
		Content:        text,
		Source:         SourceAI,
		CallsUsed:      budget.Used,
		CallsRemaining: budget.Remaining,
	}
	e.record(moduleID, question, ans.Content)
	return ans
}

// complete performs the provider call with the trimmed conversation history.
func (e *Engine) complete(ctx context.Context, sctx *session.Context, question string) (string, error) {
	if e.llm == nil {
		return "", fmt.Errorf("tutor: no AI provider configured")
	}

	topic := e.currentTopic(sctx)
	history := e.historyMessages(sctx)

	stream, err := e.llm.Complete(ctx, adapter.CompletionRequest{
		SystemPrompt: systemPrompt(topic, sctx.CurrentPhase),
		History:      history,
		UserMessage:  question,
		Model:        e.opts.Model,
		MaxTokens:    e.opts.MaxTokens,
		Temperature:  e.opts.Temperature,
		Stream:       e.opts.Stream,
	})
	if err != nil {
		return "", err
	}
	if e.opts.OnDelta == nil {
		return adapter.Collect(stream)
	}

	var b strings.Builder
	for chunk := range stream {
		if chunk.Error != nil {
			return "", chunk.Error
		}
		b.WriteString(chunk.Text)
		e.opts.OnDelta(chunk.Text)
	}
	return b.String(), nil
}

// record appends the user and system turns after a response has been
// composed, preserving strict arrival order.
func (e *Engine) record(moduleID, question, response string) {
	e.sessions.AppendTurn(moduleID, session.RoleUser, question)
	e.sessions.AppendTurn(moduleID, session.RoleAI, response)
}

// currentTopic resolves the session's topic index against the curriculum.
func (e *Engine) currentTopic(sctx *session.Context) string {
	topics := e.corpus.Topics()
	if len(topics) == 0 {
		return ""
	}
	i := sctx.TopicIndex
	if i < 0 || i >= len(topics) {
		i = 0
	}
	return topics[i]
}

// composeKBAnswer renders a corpus hit, folding in examples when present.
func composeKBAnswer(m retrieval.Match) string {
	var b strings.Builder
	b.WriteString(m.Entry.Answer)
	if len(m.Entry.Examples) > 0 {
		b.WriteString("\n\nExample: ")
		b.WriteString(m.Entry.Examples[0])
	}
	return b.String()
}

// Tagged renders an Answer as the annotated string consumed by direct Q&A
// callers: source tag first, then the content.
func (a Answer) Tagged(maxCalls int) string {
	switch a.Source {
	case SourceKnowledgeBase:
		return "Knowledge Base Answer (FREE)\n\n" + a.Content
	case SourceAI:
		return fmt.Sprintf("AI-Powered Answer (%d/%d calls used)\n\n%s", a.CallsUsed, maxCalls, a.Content)
	case SourceAIFailed:
		return fmt.Sprintf("AI-Powered Answer (%d/%d calls used)\n\n%s", a.CallsUsed, maxCalls, a.Content)
	default:
		return a.Content
	}
}
