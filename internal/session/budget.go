package session

// BudgetResult reports the outcome of a consumption attempt.
type BudgetResult struct {
	Allowed   bool
	Used      int
	Remaining int
}

// TryConsume spends one AI-call unit from ctx, if any remain. It must be
// called exactly once per attempted AI fallback, after a knowledge-base miss
// and before the provider call; a failed or cancelled call is not refunded.
// Once exhausted it declines without mutating state, so AICallsUsed can never
// pass MaxAICalls.
func TryConsume(ctx *Context) BudgetResult {
	if ctx.AICallsUsed >= ctx.MaxAICalls {
		return BudgetResult{Allowed: false, Used: ctx.AICallsUsed, Remaining: 0}
	}
	ctx.AICallsUsed++
	return BudgetResult{
		Allowed:   true,
		Used:      ctx.AICallsUsed,
		Remaining: ctx.MaxAICalls - ctx.AICallsUsed,
	}
}
