package domain

import "time"

// EvalHooks are optional observers invoked after each successful evaluation.
// A planner issues thousands of calls per query, so hooks must be cheap and
// must not block. Nil hooks are skipped.
type EvalHooks struct {
	// OnFunction receives the constrained link, the residual norm ‖F(q)‖ and
	// the evaluation duration.
	OnFunction func(link string, residualNorm float64, elapsed time.Duration)

	// OnJacobian receives the constrained link and the evaluation duration.
	OnJacobian func(link string, elapsed time.Duration)
}
