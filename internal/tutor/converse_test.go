package tutor

import (
	"strings"
	"testing"

	"github.com/tutorloop/tutorloop/internal/corpus"
	"github.com/tutorloop/tutorloop/internal/session"
)

func TestConverse_DefaultsToTeach(t *testing.T) {
	e := newTestEngine(t, nil, 3)

	turn := e.Converse("mod-1", "tell me about this topic")
	if turn.Phase != session.PhaseTeach {
		t.Fatalf("Phase = %q, want teach", turn.Phase)
	}
	if turn.Topic != "Business Analysis Definition" {
		t.Errorf("Topic = %q, want the first curriculum topic", turn.Topic)
	}
	if !strings.Contains(turn.Content, "What is business analysis?") {
		t.Errorf("teach content does not present the entry: %q", turn.Content)
	}
	if turn.QuestionsRemaining != 4 {
		t.Errorf("QuestionsRemaining = %d, want 4", turn.QuestionsRemaining)
	}
}

func TestConverse_PracticeKeyword(t *testing.T) {
	e := newTestEngine(t, nil, 3)

	turn := e.Converse("mod-1", "let me practice now")
	if turn.Phase != session.PhasePractice {
		t.Fatalf("Phase = %q, want practice", turn.Phase)
	}
	if !strings.Contains(turn.Content, "How would you apply Business Analysis Definition") {
		t.Errorf("practice content not rendered from the practical template: %q", turn.Content)
	}

	sctx, _ := e.Sessions().Get("mod-1")
	if sctx.CurrentPhase != session.PhasePractice {
		t.Errorf("session phase = %q, want practice", sctx.CurrentPhase)
	}
}

func TestConverse_PracticeBeatsAssess(t *testing.T) {
	e := newTestEngine(t, nil, 3)

	turn := e.Converse("mod-1", "test me after some practice")
	if turn.Phase != session.PhasePractice {
		t.Errorf("Phase = %q, want practice to outrank assess", turn.Phase)
	}
}

func TestConverse_AssessKeyword(t *testing.T) {
	e := newTestEngine(t, nil, 3)

	turn := e.Converse("mod-1", "quiz me")
	if turn.Phase != session.PhaseAssess {
		t.Fatalf("Phase = %q, want assess", turn.Phase)
	}
	if !strings.Contains(turn.Content, "A project skipped Business Analysis Definition") {
		t.Errorf("assess content not rendered from the scenario template: %q", turn.Content)
	}
}

func TestConverse_CompletesTopicAfterMaxQuestions(t *testing.T) {
	e := newTestEngine(t, nil, 3)

	var last Turn
	for i := 0; i < 5; i++ {
		last = e.Converse("mod-1", "continue")
	}
	if last.QuestionsRemaining != 0 {
		t.Errorf("QuestionsRemaining after 5 turns = %d, want 0", last.QuestionsRemaining)
	}

	sctx, _ := e.Sessions().Get("mod-1")
	if !sctx.TopicCompleted {
		t.Error("topic not marked complete after the question budget")
	}
}

func TestNextTopic_AdvancesAndResets(t *testing.T) {
	e := newTestEngine(t, nil, 1)

	// Burn the budget and some questions on topic one.
	e.Converse("mod-1", "continue")
	sctx, _ := e.Sessions().Get("mod-1")
	session.TryConsume(sctx)

	topic, advanced := e.NextTopic("mod-1")
	if !advanced {
		t.Fatal("NextTopic did not advance")
	}
	if topic != "User Stories" {
		t.Errorf("topic = %q, want User Stories", topic)
	}

	sctx, _ = e.Sessions().Get("mod-1")
	if sctx.AICallsUsed != 0 || sctx.QuestionsAsked != 0 || sctx.TopicCompleted {
		t.Error("advance did not reset the per-topic counters")
	}
	if sctx.CurrentPhase != session.PhaseTeach {
		t.Errorf("phase after advance = %q, want teach", sctx.CurrentPhase)
	}
	if len(sctx.History) == 0 {
		t.Error("advance dropped the conversation history")
	}
}

func TestNextTopic_StaysOnLastTopic(t *testing.T) {
	e := newTestEngine(t, nil, 3)

	e.NextTopic("mod-1")
	e.NextTopic("mod-1")

	topic, advanced := e.NextTopic("mod-1")
	if advanced {
		t.Error("advanced past the end of the curriculum")
	}
	if topic != "Risk Analysis" {
		t.Errorf("topic = %q, want the last topic", topic)
	}
}

func TestSuggest(t *testing.T) {
	e := newTestEngine(t, nil, 3)

	got := e.Suggest("Risk Analysis", "", "")
	if len(got) != 3 {
		t.Fatalf("Suggest returned %d questions, want 3", len(got))
	}
	for _, q := range got {
		if strings.Contains(q, "{topic}") {
			t.Errorf("placeholder not substituted: %q", q)
		}
		if !strings.Contains(q, "Risk Analysis") {
			t.Errorf("topic missing from rendered question: %q", q)
		}
	}

	practical := e.Suggest("Risk Analysis", "", corpus.TypePractical)
	if len(practical) != 1 {
		t.Errorf("type filter returned %d questions, want 1", len(practical))
	}

	beginner := e.Suggest("Risk Analysis", corpus.Beginner, "")
	if len(beginner) != 1 {
		t.Errorf("difficulty filter returned %d questions, want 1", len(beginner))
	}
}

func TestRenderTemplate(t *testing.T) {
	tpl := corpus.Template{ID: "t", Pattern: "Explain {topic} using {topic} examples.", Difficulty: corpus.Beginner, Type: corpus.TypeConcept}
	got := RenderTemplate(tpl, "Use Cases")
	if got != "Explain Use Cases using Use Cases examples." {
		t.Errorf("RenderTemplate = %q", got)
	}
}
