package assessment

import assess "github.com/abhisek/iamfit/internal/assessment"

// completedMsg is sent once a finished assessment has been persisted.
type completedMsg struct {
	Result assess.Result
	Err    error
}
