package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/iamfit/internal/answers"
	"github.com/abhisek/iamfit/internal/catalog"
	"github.com/abhisek/iamfit/internal/recommend"
	"github.com/abhisek/iamfit/internal/scoring"
	"github.com/abhisek/iamfit/internal/store"
)

// Result is a scored assessment.
type Result struct {
	SessionID      string
	CompletedAt    time.Time
	Duration       time.Duration
	Answers        *answers.Set
	Scores         scoring.Vector
	Recommendation recommend.Recommendation
}

// Evaluate scores a snapshot of set and builds its recommendation.
func Evaluate(c *catalog.Catalog, set *answers.Set) Result {
	snap := set.Clone()
	v := scoring.NewEngine(c).Score(snap)
	return Result{
		SessionID:      uuid.New().String(),
		CompletedAt:    time.Now(),
		Answers:        snap,
		Scores:         v,
		Recommendation: recommend.For(v),
	}
}

// Recorder persists completed assessments.
type Recorder interface {
	AppendAssessment(ctx context.Context, data store.AssessmentEventData) error
	AppendAnswer(ctx context.Context, data store.AnswerEventData) error
}

// Record writes the assessment summary and one row per answer.
func Record(ctx context.Context, rec Recorder, c *catalog.Catalog, r Result) error {
	if c == nil {
		c = catalog.Default()
	}
	err := rec.AppendAssessment(ctx, store.AssessmentEventData{
		SessionID:          r.SessionID,
		Overall:            r.Scores.Overall,
		Category:           string(r.Recommendation.Category),
		Will:               r.Scores.Will,
		Interest:           r.Scores.Interest,
		Skill:              r.Scores.Skill,
		CognitiveReadiness: r.Scores.CognitiveReadiness,
		AbilityToLearn:     r.Scores.AbilityToLearn,
		RealWorldAlignment: r.Scores.RealWorldAlignment,
		QuestionCount:      r.Answers.Len(),
		DurationSecs:       int(r.Duration.Seconds()),
	})
	if err != nil {
		return fmt.Errorf("record assessment: %w", err)
	}

	key := c.AnswerKey()
	for a := range r.Answers.All() {
		data := store.AnswerEventData{
			SessionID:  r.SessionID,
			QuestionID: a.QuestionID,
			Value:      a.Value.String(),
		}
		if q, ok := c.Get(a.QuestionID); ok {
			data.Section = q.Section
			data.Kind = string(q.Kind)
		}
		if want, ok := key[a.QuestionID]; ok {
			correct := a.Value.String() == want
			data.Correct = &correct
		}
		if err := rec.AppendAnswer(ctx, data); err != nil {
			return fmt.Errorf("record answer %s: %w", a.QuestionID, err)
		}
	}
	return nil
}
