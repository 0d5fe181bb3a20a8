package coach

import (
	"time"

	"github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/recommend"
	"github.com/abhisek/iamfit/internal/scoring"
)

// Plan is a generated, personalized study plan.
type Plan struct {
	Summary     string      `json:"summary" yaml:"summary"`
	Strengths   []string    `json:"strengths" yaml:"strengths"`
	FocusAreas  []FocusArea `json:"focusAreas" yaml:"focusAreas"`
	Resources   []string    `json:"resources" yaml:"resources"`
	Model       string      `json:"model" yaml:"model"`
	GeneratedAt time.Time   `json:"generatedAt" yaml:"generatedAt"`
}

// FocusArea is one area to work on with a concrete action.
type FocusArea struct {
	Dimension string `json:"dimension" yaml:"dimension"`
	Action    string `json:"action" yaml:"action"`
}

// Input is the context a plan is generated from.
type Input struct {
	Scores         scoring.Vector
	Recommendation recommend.Recommendation

	// WeeklyHours is the declared study time, 0 when unknown.
	WeeklyHours int
}

// studyHoursQuestion is the range question asking for weekly study time.
const studyHoursQuestion = "learning-1"

// InputFor builds the coach input for a scored assessment.
func InputFor(r assessment.Result) Input {
	in := Input{Scores: r.Scores, Recommendation: r.Recommendation}
	if r.Answers == nil {
		return in
	}
	if a, ok := r.Answers.Get(studyHoursQuestion); ok {
		in.WeeklyHours, _ = a.Value.AsInt()
	}
	return in
}
