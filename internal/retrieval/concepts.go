package retrieval

import "strings"

// conceptGroups maps a domain concept to representative surface terms. When
// the query and an entry both mention a term from the same group, the scorer
// adds a per-group bonus. This is the only path by which topic-field text can
// contribute score: a shared topic label alone must never outrank real
// question/answer content.
var conceptGroups = map[string][]string{
	"requirements":  {"requirement", "requirements", "specification", "specs", "functional", "non-functional", "needs"},
	"stakeholders":  {"stakeholder", "stakeholders", "sponsor", "user", "users", "customer", "regulator"},
	"processes":     {"process", "workflow", "procedure", "bpmn", "flowchart", "as-is", "to-be"},
	"documentation": {"document", "documentation", "artefact", "artifact", "backlog", "matrix", "dictionary"},
	"analysis":      {"analysis", "analyse", "analyze", "gap", "current state", "future state", "investigate"},
	"communication": {"interview", "workshop", "survey", "observation", "meeting", "facilitate"},
	"quality":       {"quality", "acceptance", "criteria", "testable", "verify", "validate", "sign-off"},
	"change":        {"change", "control", "scope", "creep", "traceability", "impact"},
	"risk":          {"risk", "threat", "assumption", "mitigation", "probability", "exposure"},
	"planning":      {"plan", "planning", "prioritise", "prioritize", "moscow", "estimate", "roadmap"},
}

// conceptGroupsIn returns the names of every concept group with at least one
// term contained in text. Text is matched case-insensitively.
func conceptGroupsIn(text string) map[string]bool {
	lower := strings.ToLower(text)
	groups := make(map[string]bool)
	for name, terms := range conceptGroups {
		for _, term := range terms {
			if strings.Contains(lower, term) {
				groups[name] = true
				break
			}
		}
	}
	return groups
}
