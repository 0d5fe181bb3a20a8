package coach

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/iamfit/internal/answers"
	"github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/llm"
	"github.com/abhisek/iamfit/internal/recommend"
	"github.com/abhisek/iamfit/internal/scoring"
)

func validPlanJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "You are close to ready. Your interest is strong but your protocol knowledge needs work.",
		"strengths": ["High interest in identity topics"],
		"focus_areas": [
			{"dimension": "skill", "action": "Set up SAML SSO between two free-tier apps"}
		],
		"resources": ["CompTIA Security+", "Okta Certified Professional"]
	}`)
}

func testInput() Input {
	v := scoring.Vector{
		Will: 70, Interest: 70, Skill: 50, CognitiveReadiness: 80,
		AbilityToLearn: 65, RealWorldAlignment: 67, Overall: 67,
	}
	return Input{Scores: v, Recommendation: recommend.For(v), WeeklyHours: 8}
}

func TestService_GeneratesPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON()})
	svc := NewService(mock, DefaultConfig(), nil)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	plan, err := svc.Plan(t.Context(), testInput())
	require.NoError(t, err)

	assert.Contains(t, plan.Summary, "close to ready")
	assert.Equal(t, []string{"High interest in identity topics"}, plan.Strengths)
	require.Len(t, plan.FocusAreas, 1)
	assert.Equal(t, "skill", plan.FocusAreas[0].Dimension)
	assert.Len(t, plan.Resources, 2)
	assert.Equal(t, "mock", plan.Model)
	assert.Equal(t, fixed, plan.GeneratedAt)
}

func TestService_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Plan(t.Context(), testInput())
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "career-plan", req.Schema.Name)
	assert.Equal(t, DefaultConfig().MaxTokens, req.MaxTokens)

	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Current Skills (skill): 50")
	assert.Contains(t, msg, "Overall: 67")
	assert.Contains(t, msg, "(conditional)")
	assert.Contains(t, msg, "8 hours per week")
}

func TestService_OmitsUnknownStudyTime(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	in := testInput()
	in.WeeklyHours = 0
	_, err := svc.Plan(t.Context(), in)
	require.NoError(t, err)
	assert.False(t, strings.Contains(mock.Calls[0].Messages[0].Content, "hours per week"))
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	svc := NewService(mock, DefaultConfig(), nil)

	plan, err := svc.Plan(t.Context(), testInput())
	require.Error(t, err)
	assert.Nil(t, plan)

	var rl *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestService_MalformedResponse(t *testing.T) {
	tests := map[string]json.RawMessage{
		"not json":       json.RawMessage(`not json`),
		"missing fields": json.RawMessage(`{"summary":"ok"}`),
		"bad dimension": json.RawMessage(`{"summary":"ok","strengths":[],"resources":[],
			"focus_areas":[{"dimension":"luck","action":"x"}]}`),
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: content})
			svc := NewService(mock, DefaultConfig(), nil)

			_, err := svc.Plan(t.Context(), testInput())
			var inv *llm.ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, PlanSchema.Name, inv.Schema)
		})
	}
}

func TestService_TruncatedPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content:    json.RawMessage(`{"summary":"You are`),
		StopReason: llm.StopMaxTokens,
	})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Plan(t.Context(), testInput())
	var maxTok *llm.ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
	assert.Equal(t, DefaultConfig().MaxTokens, maxTok.Limit)
}

func TestService_TagsCoachPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPlanJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Plan(t.Context(), testInput())
	require.NoError(t, err)
	require.Len(t, mock.Calls, 1)
	assert.Equal(t, llm.PurposeCoach, mock.Calls[0].Purpose)
}

func TestInputFor(t *testing.T) {
	set := answers.NewSet()
	set.Record("interest-1", answers.Int(5))
	set.Record("learning-1", answers.Int(12))
	r := assessment.Evaluate(nil, set)

	in := InputFor(r)
	assert.Equal(t, 12, in.WeeklyHours)
	assert.Equal(t, r.Scores, in.Scores)
	assert.Equal(t, r.Recommendation.Category, in.Recommendation.Category)

	assert.Equal(t, 0, InputFor(assessment.Result{}).WeeklyHours)
}
