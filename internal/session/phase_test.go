package session

import "testing"

func TestKeywordClassifier(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		input string
		want  Phase
	}{
		{"explain requirements to me", PhaseTeach},
		{"can we practice this", PhasePractice},
		{"give me an exercise", PhasePractice},
		{"let me try one", PhasePractice},
		{"test my knowledge", PhaseAssess},
		{"please assess me", PhaseAssess},
		{"quiz time", PhaseAssess},
		{"", PhaseTeach},
		{"PRACTICE NOW", PhasePractice},
		// Practice keywords outrank assess keywords.
		{"practice before you test me", PhasePractice},
		{"I want a quiz, not practice", PhasePractice},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.input); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
