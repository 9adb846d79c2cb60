package session

import "strings"

// PhaseClassifier decides the next conversational phase from the learner's
// latest input. It sits behind an interface so a smarter classifier can
// replace the keyword scan without touching the state machine.
type PhaseClassifier interface {
	Classify(input string) Phase
}

// keywordClassifier is the stock classifier: a single highest-priority
// keyword scan. Practice keywords win over assess keywords; anything else
// returns (or stays in) teach. The scan is deliberately naive about negation
// ("I don't want to practice yet" still selects practice).
type keywordClassifier struct{}

// NewKeywordClassifier returns the fixed-priority keyword classifier.
func NewKeywordClassifier() PhaseClassifier { return keywordClassifier{} }

var (
	practiceKeywords = []string{"practice", "exercise", "try"}
	assessKeywords   = []string{"test", "assess", "quiz"}
)

func (keywordClassifier) Classify(input string) Phase {
	lower := strings.ToLower(input)
	for _, kw := range practiceKeywords {
		if strings.Contains(lower, kw) {
			return PhasePractice
		}
	}
	for _, kw := range assessKeywords {
		if strings.Contains(lower, kw) {
			return PhaseAssess
		}
	}
	return PhaseTeach
}
