// Package corpus defines the static knowledge dataset the tutoring engine
// searches before spending any AI budget.
package corpus

import "fmt"

// Difficulty grades a knowledge entry or question template.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// ValidDifficulty returns true if d is a recognised difficulty level.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// QuestionType classifies what a question template probes for.
type QuestionType string

const (
	TypeConcept     QuestionType = "concept"
	TypePractical   QuestionType = "practical"
	TypeScenario    QuestionType = "scenario"
	TypeComparison  QuestionType = "comparison"
	TypeApplication QuestionType = "application"
)

// ValidQuestionType returns true if t is a recognised question type.
func ValidQuestionType(t QuestionType) bool {
	switch t {
	case TypeConcept, TypePractical, TypeScenario, TypeComparison, TypeApplication:
		return true
	}
	return false
}

// Entry is a single immutable question/answer record. Entries are loaded once
// at process start and never mutated. Multiple entries may share a topic;
// IDs are unique.
type Entry struct {
	ID            string     `toml:"id"`
	Topic         string     `toml:"topic"`
	Question      string     `toml:"question"`
	Answer        string     `toml:"answer"`
	Examples      []string   `toml:"examples,omitempty"`
	RelatedTopics []string   `toml:"related_topics,omitempty"`
	Difficulty    Difficulty `toml:"difficulty"`
}

// Validate reports the first schema violation in e, if any. A corpus with an
// invalid entry must refuse to load.
func (e Entry) Validate() error {
	switch {
	case e.ID == "":
		return fmt.Errorf("corpus: entry missing id (topic %q)", e.Topic)
	case e.Topic == "":
		return fmt.Errorf("corpus: entry %q missing topic", e.ID)
	case e.Question == "":
		return fmt.Errorf("corpus: entry %q missing question", e.ID)
	case e.Answer == "":
		return fmt.Errorf("corpus: entry %q missing answer", e.ID)
	case !ValidDifficulty(e.Difficulty):
		return fmt.Errorf("corpus: entry %q has invalid difficulty %q", e.ID, e.Difficulty)
	}
	return nil
}

// Template generates learner-facing suggested questions. The pattern contains
// a "{topic}" placeholder substituted at render time; templates are never
// stored as conversation state.
type Template struct {
	ID          string       `toml:"id"`
	Pattern     string       `toml:"pattern"`
	ContextTags []string     `toml:"context_tags,omitempty"`
	Difficulty  Difficulty   `toml:"difficulty"`
	Type        QuestionType `toml:"type"`
}

// Validate reports the first schema violation in t, if any.
func (t Template) Validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("corpus: template missing id")
	case t.Pattern == "":
		return fmt.Errorf("corpus: template %q missing pattern", t.ID)
	case !ValidDifficulty(t.Difficulty):
		return fmt.Errorf("corpus: template %q has invalid difficulty %q", t.ID, t.Difficulty)
	case !ValidQuestionType(t.Type):
		return fmt.Errorf("corpus: template %q has invalid type %q", t.ID, t.Type)
	}
	return nil
}
