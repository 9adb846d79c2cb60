package session

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Limits configures the per-topic counters applied to new contexts.
type Limits struct {
	MaxQuestions int
	MaxAICalls   int
	// TTL evicts idle sessions. Zero means sessions live for the process
	// lifetime; long-lived multi-tenant deployments should set a TTL.
	TTL time.Duration
}

// DefaultLimits returns the stock tutoring limits.
func DefaultLimits() Limits {
	return Limits{MaxQuestions: 5, MaxAICalls: 3}
}

// Manager owns the moduleID -> *Context map. It is constructor-injected so
// tests get isolated instances; there is no package-level singleton.
type Manager struct {
	limits Limits
	cache  *gocache.Cache
}

// NewManager creates a Manager applying the given limits to new contexts.
func NewManager(limits Limits) *Manager {
	ttl := limits.TTL
	cleanup := 10 * time.Minute
	if ttl <= 0 {
		ttl = gocache.NoExpiration
		cleanup = 0
	}
	return &Manager{
		limits: limits,
		cache:  gocache.New(ttl, cleanup),
	}
}

// Ensure creates the context for moduleID at topicIndex if none exists yet.
// Calling it again is a no-op: an existing context is never reset.
func (m *Manager) Ensure(moduleID string, topicIndex int) *Context {
	if ctx, ok := m.Get(moduleID); ok {
		return ctx
	}
	ctx := &Context{
		ModuleID:     moduleID,
		TopicIndex:   topicIndex,
		CurrentPhase: PhaseTeach,
		MaxQuestions: m.limits.MaxQuestions,
		MaxAICalls:   m.limits.MaxAICalls,
	}
	m.cache.Set(moduleID, ctx, gocache.DefaultExpiration)
	return ctx
}

// Get returns the context for moduleID, if one exists.
func (m *Manager) Get(moduleID string) (*Context, bool) {
	if v, ok := m.cache.Get(moduleID); ok {
		return v.(*Context), true
	}
	return nil, false
}

// AppendTurn appends one turn to the module's history. Every user and system
// turn goes through here so history order reflects real conversation order.
func (m *Manager) AppendTurn(moduleID string, role Role, content string) {
	ctx, ok := m.Get(moduleID)
	if !ok {
		return
	}
	ctx.History = append(ctx.History, Turn{Role: role, Content: content})
	m.touch(moduleID, ctx)
}

// SetPhase records the phase decided for the next system turn.
func (m *Manager) SetPhase(moduleID string, p Phase) {
	if ctx, ok := m.Get(moduleID); ok {
		ctx.CurrentPhase = p
		m.touch(moduleID, ctx)
	}
}

// MarkQuestionAsked increments the per-topic question counter, capped at the
// configured maximum.
func (m *Manager) MarkQuestionAsked(moduleID string) {
	if ctx, ok := m.Get(moduleID); ok {
		if ctx.QuestionsAsked < ctx.MaxQuestions {
			ctx.QuestionsAsked++
		}
		m.touch(moduleID, ctx)
	}
}

// CompleteTopic flags the current topic as finished without advancing.
func (m *Manager) CompleteTopic(moduleID string) {
	if ctx, ok := m.Get(moduleID); ok {
		ctx.TopicCompleted = true
		m.touch(moduleID, ctx)
	}
}

// AdvanceTopic moves the session to topicIndex and performs the only reset
// path there is: AI budget, question counter, and completion flag back to
// zero, phase back to teach. History is kept; it spans the whole module.
func (m *Manager) AdvanceTopic(moduleID string, topicIndex int) {
	ctx, ok := m.Get(moduleID)
	if !ok {
		return
	}
	ctx.TopicIndex = topicIndex
	ctx.AICallsUsed = 0
	ctx.QuestionsAsked = 0
	ctx.TopicCompleted = false
	ctx.CurrentPhase = PhaseTeach
	m.touch(moduleID, ctx)
}

// touch rewrites the entry so TTL-based eviction counts from the last
// activity, not from creation.
func (m *Manager) touch(moduleID string, ctx *Context) {
	m.cache.Set(moduleID, ctx, gocache.DefaultExpiration)
}
