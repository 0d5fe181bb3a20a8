// Package coach generates a personalized IAM study plan from assessment
// scores through an LLM provider.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/iamfit/internal/llm"
)

// Service generates career plans.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a plan generation service. A nil logger is replaced
// with a no-op logger.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger, now: time.Now}
}

type planOutput struct {
	Summary    string            `json:"summary"`
	Strengths  []string          `json:"strengths"`
	FocusAreas []focusAreaOutput `json:"focus_areas"`
	Resources  []string          `json:"resources"`
}

type focusAreaOutput struct {
	Dimension string `json:"dimension"`
	Action    string `json:"action"`
}

// Plan requests a study plan for the given input. It blocks until the
// provider answers or ctx is done.
func (s *Service) Plan(ctx context.Context, in Input) (*Plan, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCoach)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}

	plan := &Plan{
		Summary:     out.Summary,
		Strengths:   out.Strengths,
		Resources:   out.Resources,
		Model:       resp.Model,
		GeneratedAt: s.now().UTC(),
	}
	for _, f := range out.FocusAreas {
		plan.FocusAreas = append(plan.FocusAreas, FocusArea(f))
	}

	s.logger.Debug("career plan generated",
		zap.String("model", resp.Model),
		zap.Int("focus_areas", len(plan.FocusAreas)))
	return plan, nil
}
