package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var assessmentColumns = []string{
	"id", "sequence", "timestamp", "session_id", "overall", "category",
	"will", "interest", "skill", "cognitive_readiness", "ability_to_learn",
	"real_world_alignment", "question_count", "duration_secs",
}

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	err := r.insert(ctx, AssessmentEventsTable.Name, assessmentColumns[3:], []any{
		data.SessionID,
		data.Overall,
		data.Category,
		data.Will,
		data.Interest,
		data.Skill,
		data.CognitiveReadiness,
		data.AbilityToLearn,
		data.RealWorldAlignment,
		data.QuestionCount,
		data.DurationSecs,
	})
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	var correct any
	if data.Correct != nil {
		correct = *data.Correct
	}
	err := r.insert(ctx, AnswerEventsTable.Name,
		[]string{"session_id", "question_id", "section", "kind", "value", "correct"},
		[]any{data.SessionID, data.QuestionID, data.Section, data.Kind, data.Value, correct},
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentEvent, error) {
	sel := builder().Select(assessmentColumns...).From(entsql.Table(AssessmentEventsTable.Name))
	query, args := applyOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []AssessmentEvent
	for rows.Next() {
		var e AssessmentEvent
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID, &e.Overall, &e.Category,
			&e.Will, &e.Interest, &e.Skill, &e.CognitiveReadiness, &e.AbilityToLearn,
			&e.RealWorldAlignment, &e.QuestionCount, &e.DurationSecs,
		); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) LatestAssessment(ctx context.Context) (*AssessmentEvent, error) {
	events, err := r.QueryAssessments(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *eventRepo) AnswersForSession(ctx context.Context, sessionID string) ([]AnswerEvent, error) {
	query, args := builder().
		Select("id", "sequence", "timestamp", "session_id", "question_id", "section", "kind", "value", "correct").
		From(entsql.Table(AnswerEventsTable.Name)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var (
			e       AnswerEvent
			correct sql.NullBool
		)
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID, &e.QuestionID,
			&e.Section, &e.Kind, &e.Value, &correct,
		); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		if correct.Valid {
			c := correct.Bool
			e.Correct = &c
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
