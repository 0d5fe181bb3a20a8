package results

import (
	assess "github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/coach"
)

// loadedMsg carries the result rebuilt from the handoff slot.
type loadedMsg struct {
	Result *assess.Result
	Err    error
}

// exportedMsg reports a finished export.
type exportedMsg struct {
	Path string
	Err  error
}

// planMsg carries a generated coach plan.
type planMsg struct {
	Plan *coach.Plan
	Err  error
}
