package retrieval

import "strings"

// synonyms maps a query term to substitutable alternatives. Keys are either
// single words (matched against whitespace tokens) or multi-word phrases
// (matched as substrings). Expansion makes a single substitution pass and
// never recurses.
var synonyms = map[string][]string{
	// Single words.
	"ba":           {"business analysis", "business analyst"},
	"analyst":      {"business analyst", "ba"},
	"requirement":  {"need", "specification"},
	"requirements": {"needs", "specifications", "specs"},
	"stakeholder":  {"user", "sponsor"},
	"stakeholders": {"users", "sponsors", "business users"},
	"elicit":       {"gather", "collect", "discover"},
	"elicitation":  {"gathering", "discovery"},
	"document":     {"record", "artefact"},
	"prioritise":   {"rank", "order"},
	"prioritize":   {"rank", "order", "prioritise"},
	"process":      {"workflow", "procedure"},
	"model":        {"diagram", "map"},
	"risk":         {"threat", "exposure"},
	"change":       {"modification", "revision"},
	"quality":      {"standard", "criteria"},
	"test":         {"verify", "validate"},
	"plan":         {"roadmap", "schedule"},

	// Multi-word phrases.
	"business analysis":   {"ba", "requirements work"},
	"business analyst":    {"ba", "analyst"},
	"use case":            {"usage scenario", "user goal"},
	"user story":          {"story", "backlog item"},
	"gap analysis":        {"current state analysis", "as-is to-be comparison"},
	"acceptance criteria": {"definition of done", "sign-off conditions"},
	"change management":   {"change control", "scope control"},
}

// Expand returns the query plus every single-substitution synonym variant,
// deduplicated. The original query is always present and always first.
func Expand(query string) []string {
	out := []string{query}
	seen := map[string]bool{query: true}

	lower := strings.ToLower(query)
	tokens := strings.Fields(lower)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	add := func(candidate string) {
		if candidate != "" && !seen[candidate] {
			seen[candidate] = true
			out = append(out, candidate)
		}
	}

	for key, alts := range synonyms {
		if strings.Contains(key, " ") {
			// Phrase key: substring containment against the whole query.
			if !strings.Contains(lower, key) {
				continue
			}
			for _, alt := range alts {
				add(strings.ReplaceAll(lower, key, alt))
			}
			continue
		}
		// Word key: must appear as a whole token.
		if !tokenSet[key] {
			continue
		}
		for _, alt := range alts {
			add(replaceToken(tokens, key, alt))
		}
	}

	return out
}

// replaceToken rebuilds the query with every occurrence of the token old
// swapped for alt.
func replaceToken(tokens []string, old, alt string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if t == old {
			parts[i] = alt
		} else {
			parts[i] = t
		}
	}
	return strings.Join(parts, " ")
}
