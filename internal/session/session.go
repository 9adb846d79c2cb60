// Package session owns the per-module conversation state: the teach/practice/
// assess phase machine, turn history, and the AI-call budget.
package session

// Phase is the current conversational mode for a topic.
type Phase string

const (
	PhaseTeach    Phase = "teach"
	PhasePractice Phase = "practice"
	PhaseAssess   Phase = "assess"
)

// Role identifies the author of a history turn.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Turn is one entry in a session's conversation history.
type Turn struct {
	Role    Role
	Content string
}

// Context is the mutable conversation state for one module. It is created
// lazily by the Manager, mutated in place on every turn, and owned
// exclusively by the Manager; no other component writes to it directly.
// Concurrent turns for the same module are not supported; callers serialise
// per module.
type Context struct {
	ModuleID       string
	TopicIndex     int
	CurrentPhase   Phase
	History        []Turn
	QuestionsAsked int
	MaxQuestions   int
	AICallsUsed    int
	MaxAICalls     int
	TopicCompleted bool
}

// BudgetRemaining returns how many AI calls the context may still spend.
func (c *Context) BudgetRemaining() int {
	if r := c.MaxAICalls - c.AICallsUsed; r > 0 {
		return r
	}
	return 0
}

// QuestionsRemaining returns how many teaching questions remain for the
// current topic.
func (c *Context) QuestionsRemaining() int {
	if r := c.MaxQuestions - c.QuestionsAsked; r > 0 {
		return r
	}
	return 0
}
