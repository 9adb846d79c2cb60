package tutor

import (
	"fmt"
	"strings"

	"github.com/tutorloop/tutorloop/internal/corpus"
	"github.com/tutorloop/tutorloop/internal/session"
)

// Converse handles one teaching-phase turn: classify the learner's input into
// a phase, produce the phase's content for the current topic, and advance the
// per-topic question counter. All state mutation happens after the content is
// composed.
func (e *Engine) Converse(moduleID, input string) Turn {
	sctx := e.sessions.Ensure(moduleID, 0)
	topic := e.currentTopic(sctx)

	phase := e.classifier.Classify(input)

	var content string
	switch phase {
	case session.PhasePractice:
		content = e.practiceContent(topic, sctx.QuestionsAsked)
	case session.PhaseAssess:
		content = e.assessContent(topic, sctx.QuestionsAsked)
	default:
		content = e.teachContent(topic, sctx.QuestionsAsked)
	}

	e.sessions.SetPhase(moduleID, phase)
	e.sessions.AppendTurn(moduleID, session.RoleUser, input)
	e.sessions.AppendTurn(moduleID, session.RoleAI, content)
	e.sessions.MarkQuestionAsked(moduleID)
	if sctx.QuestionsRemaining() == 0 {
		e.sessions.CompleteTopic(moduleID)
	}

	return Turn{
		Content:            content,
		Phase:              phase,
		Topic:              topic,
		ModuleID:           moduleID,
		QuestionsRemaining: sctx.QuestionsRemaining(),
	}
}

// NextTopic advances the module to the next topic in the curriculum,
// resetting the AI budget, question counter, completion flag, and phase.
// At the end of the curriculum it stays on the last topic.
func (e *Engine) NextTopic(moduleID string) (string, bool) {
	sctx := e.sessions.Ensure(moduleID, 0)
	topics := e.corpus.Topics()
	next := sctx.TopicIndex + 1
	if next >= len(topics) {
		return e.currentTopic(sctx), false
	}
	e.sessions.AdvanceTopic(moduleID, next)
	return topics[next], true
}

// teachContent walks the topic's entries in order, one per teaching turn.
func (e *Engine) teachContent(topic string, turn int) string {
	entries := e.corpus.EntriesForTopic(topic)
	if len(entries) == 0 {
		return fmt.Sprintf("We've covered everything I have on %s. Say \"practice\" to try an exercise, or move on to the next topic.", topic)
	}
	entry := entries[turn%len(entries)]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s", entry.Question, entry.Answer)
	if len(entry.Examples) > 0 {
		b.WriteString("\n\nExample: ")
		b.WriteString(entry.Examples[0])
	}
	b.WriteString("\n\nSay \"practice\" for an exercise or \"quiz\" when you're ready to be tested.")
	return b.String()
}

// practiceContent poses a hands-on question rendered from the templates.
func (e *Engine) practiceContent(topic string, turn int) string {
	qs := e.Suggest(topic, "", corpus.TypePractical)
	if len(qs) == 0 {
		qs = e.Suggest(topic, "", corpus.TypeApplication)
	}
	if len(qs) == 0 {
		return fmt.Sprintf("Try explaining %s to a colleague in two sentences, then check yourself against the course material.", topic)
	}
	return "Practice time. " + qs[turn%len(qs)]
}

// assessContent poses a scenario or comparison question to check understanding.
func (e *Engine) assessContent(topic string, turn int) string {
	qs := e.Suggest(topic, "", corpus.TypeScenario)
	if len(qs) == 0 {
		qs = e.Suggest(topic, "", corpus.TypeComparison)
	}
	if len(qs) == 0 {
		return fmt.Sprintf("Quick check: describe a situation where %s would have prevented a project failure.", topic)
	}
	return "Let's check your understanding. " + qs[turn%len(qs)]
}
