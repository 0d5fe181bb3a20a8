package store

import (
	"context"
	"errors"
	"time"
)

// ErrSlotNotFound is returned when a named slot holds no payload.
var ErrSlotNotFound = errors.New("slot not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AssessmentEventData captures a completed assessment.
type AssessmentEventData struct {
	SessionID          string
	Overall            int
	Category           string
	Will               int
	Interest           int
	Skill              int
	CognitiveReadiness int
	AbilityToLearn     int
	RealWorldAlignment int
	QuestionCount      int
	DurationSecs       int
}

// AssessmentEvent is a stored assessment row.
type AssessmentEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// AnswerEventData captures one answer of a completed assessment.
type AnswerEventData struct {
	SessionID  string
	QuestionID string
	Section    string
	Kind       string
	Value      string
	Correct    *bool // nil for questions without an answer key entry
}

// AnswerEvent is a stored answer row.
type AnswerEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request row.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls under one key (purpose or model).
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAssessment records a completed assessment.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendAnswer records one answer of a completed assessment.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryAssessments returns assessments, newest first.
	QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentEvent, error)

	// LatestAssessment returns the newest assessment, or nil if none exist.
	LatestAssessment(ctx context.Context) (*AssessmentEvent, error)

	// AnswersForSession returns the answers of one assessment in order.
	AnswersForSession(ctx context.Context, sessionID string) ([]AnswerEvent, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates LLM calls per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM calls per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// SlotRepo stores named payloads.
type SlotRepo interface {
	// Put stores payload under name, replacing any previous value.
	Put(ctx context.Context, name string, payload []byte) error

	// Get returns the payload stored under name, or ErrSlotNotFound.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes the named slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, name string) error
}
