package retrieval

import (
	"sort"

	"github.com/tutorloop/tutorloop/internal/corpus"
)

// Match pairs a corpus entry with its relevance score. Matches are transient:
// produced per query, never stored.
type Match struct {
	Entry corpus.Entry
	Score float64
}

// Retriever runs the scorer over a corpus and returns ranked matches.
type Retriever struct {
	corpus *corpus.Corpus
	scorer *Scorer
}

// NewRetriever creates a Retriever over c using the given weights.
func NewRetriever(c *corpus.Corpus, w Weights) *Retriever {
	return &Retriever{corpus: c, scorer: NewScorer(w)}
}

// Retrieve scores every corpus entry against query, drops entries below the
// minimum-score floor, and returns at most topK matches ordered by descending
// score. Ties keep corpus order. An empty result means "no knowledge-base
// match" and sends the caller to the AI path; it is not an error.
func (r *Retriever) Retrieve(query string, topK int) []Match {
	if topK <= 0 {
		topK = 5
	}

	min := r.scorer.Weights().MinScore
	var matches []Match
	for _, e := range r.corpus.Entries() {
		if s := r.scorer.Score(query, e); s >= min {
			matches = append(matches, Match{Entry: e, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// Best returns the single highest-scoring match, or ok=false when nothing
// clears the floor.
func (r *Retriever) Best(query string) (Match, bool) {
	top := r.Retrieve(query, 1)
	if len(top) == 0 {
		return Match{}, false
	}
	return top[0], true
}
