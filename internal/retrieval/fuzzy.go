// Package retrieval implements the free, deterministic knowledge-base search
// that runs before any AI budget is spent: query expansion, fuzzy word
// matching, weighted scoring, and ranked retrieval.
package retrieval

// Similarity returns the Levenshtein similarity between a and b in [0,1].
// It is symmetric and Similarity(x, x) == 1; two empty strings count as
// identical.
func Similarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return float64(longest-levenshtein(a, b)) / float64(longest)
}

// comparableLength reports whether two words are close enough in length for a
// fuzzy comparison to be meaningful. Very different lengths produce low
// similarity anyway, so skipping them contains cost and false positives.
func comparableLength(a, b string) bool {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d <= 2
}

// levenshtein computes the edit distance between a and b using the
// two-row dynamic programming formulation.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
