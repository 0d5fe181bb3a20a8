package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Every event table starts with the same three columns: id, the global
// sequence number and the UTC timestamp.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	cols := []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	return append(cols, extra...)
}

func eventIndexes(prefix string, cols []*schema.Column) []*schema.Index {
	return []*schema.Index{
		{Name: prefix + "_sequence", Columns: []*schema.Column{cols[1]}},
		{Name: prefix + "_timestamp", Columns: []*schema.Column{cols[2]}},
	}
}

var (
	// AssessmentEventsColumns holds one row per completed assessment.
	AssessmentEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "overall", Type: field.TypeInt},
		&schema.Column{Name: "category", Type: field.TypeString},
		&schema.Column{Name: "will", Type: field.TypeInt},
		&schema.Column{Name: "interest", Type: field.TypeInt},
		&schema.Column{Name: "skill", Type: field.TypeInt},
		&schema.Column{Name: "cognitive_readiness", Type: field.TypeInt},
		&schema.Column{Name: "ability_to_learn", Type: field.TypeInt},
		&schema.Column{Name: "real_world_alignment", Type: field.TypeInt},
		&schema.Column{Name: "question_count", Type: field.TypeInt},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt},
	)
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: append(eventIndexes("assessmentevent", AssessmentEventsColumns),
			&schema.Index{Name: "assessmentevent_session_id", Columns: []*schema.Column{AssessmentEventsColumns[3]}},
		),
	}

	// AnswerEventsColumns holds one row per recorded answer.
	AnswerEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "question_id", Type: field.TypeString},
		&schema.Column{Name: "section", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "kind", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "value", Type: field.TypeString},
		&schema.Column{Name: "correct", Type: field.TypeBool, Nullable: true},
	)
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: append(eventIndexes("answerevent", AnswerEventsColumns),
			&schema.Index{Name: "answerevent_session_id", Columns: []*schema.Column{AnswerEventsColumns[3]}},
		),
	}

	// LLMRequestEventsColumns holds one row per LLM call.
	LLMRequestEventsColumns = eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	LLMRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LLMRequestEventsColumns,
		PrimaryKey: []*schema.Column{LLMRequestEventsColumns[0]},
		Indexes:    eventIndexes("llmrequestevent", LLMRequestEventsColumns),
	}

	// SlotsColumns holds named payloads that outlive a single process.
	SlotsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	SlotsTable = &schema.Table{
		Name:       "slots",
		Columns:    SlotsColumns,
		PrimaryKey: []*schema.Column{SlotsColumns[0]},
	}

	// Tables holds every table the store manages.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		AnswerEventsTable,
		LLMRequestEventsTable,
		SlotsTable,
	}
)
