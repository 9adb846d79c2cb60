package tutor

import (
	"strings"

	"github.com/tutorloop/tutorloop/internal/corpus"
)

// Suggest renders the question templates for a topic, filtered by difficulty
// and question type (either may be empty for "any"). Templates are prompt
// text only; nothing here touches conversation state.
func (e *Engine) Suggest(topic string, d corpus.Difficulty, qt corpus.QuestionType) []string {
	var out []string
	for _, t := range e.corpus.TemplatesFor(d) {
		if qt != "" && t.Type != qt {
			continue
		}
		out = append(out, RenderTemplate(t, topic))
	}
	return out
}

// RenderTemplate substitutes the {topic} placeholder in a template pattern.
func RenderTemplate(t corpus.Template, topic string) string {
	return strings.ReplaceAll(t.Pattern, "{topic}", topic)
}
