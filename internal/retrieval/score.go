package retrieval

import (
	"strings"

	"github.com/tutorloop/tutorloop/internal/corpus"
)

// Weights holds the hand-tuned scoring constants. They are exported as a
// single documented structure so matching behaviour can be tuned and tested
// independently of the matching logic.
//
// Calibration rule: an exact question match must dominate every other signal
// combination, and incidental overlap (topic labels, shared stopwords, a
// single common word) must stay below MinScore so it can never surface an
// entry by itself.
type Weights struct {
	// QuestionEquals is added on top of QuestionContains when the query and
	// the entry question are equal after normalisation.
	QuestionEquals float64
	// QuestionContains applies when the raw query appears inside the question.
	QuestionContains float64
	// AnswerContains applies when the raw query appears inside the answer.
	AnswerContains float64
	// VariantInQuestion/VariantInAnswer apply per synonym-expanded variant
	// found in the question or answer.
	VariantInQuestion float64
	VariantInAnswer   float64
	// WordInQuestion/WordInAnswer apply per content token of the query
	// (length > 2, not a stopword) found in the question or answer.
	WordInQuestion float64
	WordInAnswer   float64
	// FuzzyWord applies per query token with no substring hit whose best
	// Levenshtein similarity against a question word reaches FuzzyThreshold.
	FuzzyWord      float64
	FuzzyThreshold float64
	// RelatedTopic applies per related-topics string contained in the query
	// or a variant.
	RelatedTopic float64
	// ConceptGroup applies per concept group shared by query and entry.
	ConceptGroup float64
	// Example applies per example containing the query or a variant.
	Example float64
	// MinScore is the retrieval floor: entries scoring below it never
	// surface and the caller proceeds to the AI fallback. It sits above
	// the worst-case incidental accumulation of one WordInQuestion, one
	// WordInAnswer, and one ConceptGroup hit.
	MinScore float64
}

// DefaultWeights returns the calibrated scoring constants.
func DefaultWeights() Weights {
	return Weights{
		QuestionEquals:    100,
		QuestionContains:  80,
		AnswerContains:    40,
		VariantInQuestion: 30,
		VariantInAnswer:   15,
		WordInQuestion:    10,
		WordInAnswer:      5,
		FuzzyWord:         8,
		FuzzyThreshold:    0.8,
		RelatedTopic:      5,
		ConceptGroup:      6,
		Example:           4,
		MinScore:          25,
	}
}

// Scorer computes the relevance of a knowledge entry for a query.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(w Weights) *Scorer { return &Scorer{weights: w} }

// Weights returns the scorer's weight configuration.
func (s *Scorer) Weights() Weights { return s.weights }

// Score returns a non-negative relevance score for entry against query.
// Zero means no signal at all. Matching is case-insensitive throughout.
func (s *Scorer) Score(query string, entry corpus.Entry) float64 {
	q := normalise(query)
	if q == "" {
		return 0
	}

	question := strings.ToLower(entry.Question)
	answer := strings.ToLower(entry.Answer)
	w := s.weights

	tokens := contentTokens(q)

	var score float64

	// Signals 1-2: the raw query against the question and answer text.
	// Gated on the query carrying at least one content token, otherwise
	// "what" would substring-match every question that starts with it.
	if len(tokens) > 0 {
		if strings.Contains(question, q) {
			score += w.QuestionContains
			if normalise(question) == q {
				score += w.QuestionEquals
			}
		}
		if strings.Contains(answer, q) {
			score += w.AnswerContains
		}
	}

	// Signal 3: synonym-expanded variants. Expand returns the original
	// first; it is already covered by signals 1-2.
	variants := Expand(q)
	for _, v := range variants[1:] {
		if strings.Contains(question, v) {
			score += w.VariantInQuestion
		}
		if strings.Contains(answer, v) {
			score += w.VariantInAnswer
		}
	}

	// Signal 4: per-content-token presence, with the fuzzy matcher as a
	// tertiary catch for typos that substring matching misses.
	questionWords := strings.Fields(question)
	for _, tok := range tokens {
		inQuestion := strings.Contains(question, tok)
		if inQuestion {
			score += w.WordInQuestion
		}
		if strings.Contains(answer, tok) {
			score += w.WordInAnswer
		}
		if !inQuestion && bestFuzzy(tok, questionWords) >= w.FuzzyThreshold {
			score += w.FuzzyWord
		}
	}

	// Signal 5: related-topic strings contained in the query or a variant.
	for _, rt := range entry.RelatedTopics {
		lrt := strings.ToLower(rt)
		for _, v := range variants {
			if strings.Contains(v, lrt) || strings.Contains(lrt, v) {
				score += w.RelatedTopic
				break
			}
		}
	}

	// Signal 6: shared concept groups. This is the only signal that reads
	// the topic field, so topic-label overlap alone cannot outrank real
	// question/answer matches.
	queryGroups := conceptGroupsIn(q)
	if len(queryGroups) > 0 {
		entryGroups := conceptGroupsIn(entry.Topic + " " + question + " " + answer)
		for g := range queryGroups {
			if entryGroups[g] {
				score += w.ConceptGroup
			}
		}
	}

	// Signal 7: example text containment.
	for _, ex := range entry.Examples {
		lex := strings.ToLower(ex)
		for _, v := range variants {
			if strings.Contains(lex, v) {
				score += w.Example
				break
			}
		}
	}

	return score
}

// queryStopwords are interrogatives, auxiliaries, and articles that appear in
// nearly every question. They carry no retrieval signal on their own.
var queryStopwords = map[string]bool{
	"what": true, "when": true, "where": true, "which": true,
	"who": true, "whom": true, "why": true, "how": true,
	"does": true, "did": true, "can": true, "could": true,
	"should": true, "would": true, "will": true,
	"are": true, "was": true, "were": true,
	"the": true, "and": true, "for": true, "with": true,
	"about": true, "tell": true, "explain": true, "describe": true,
	"you": true, "your": true, "please": true,
}

// contentTokens returns the query tokens that carry retrieval signal:
// longer than two characters and not a stopword.
func contentTokens(q string) []string {
	var tokens []string
	for _, tok := range strings.Fields(q) {
		if len(tok) <= 2 || queryStopwords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// bestFuzzy returns the highest similarity between tok and any candidate word
// of comparable length.
func bestFuzzy(tok string, words []string) float64 {
	best := 0.0
	for _, w := range words {
		if !comparableLength(tok, w) {
			continue
		}
		if sim := Similarity(tok, strings.Trim(w, ".,:;?!\"'()")); sim > best {
			best = sim
		}
	}
	return best
}

// normalise lower-cases, trims, and strips a trailing question mark so that
// "What is business analysis?" and "what is business analysis" compare equal.
func normalise(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return strings.TrimRight(s, "?!. ")
}
