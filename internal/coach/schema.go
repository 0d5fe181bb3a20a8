package coach

import "github.com/abhisek/iamfit/internal/llm"

// PlanSchema defines the JSON schema for a career plan response.
var PlanSchema = &llm.Schema{
	Name:        "career-plan",
	Description: "A short IAM career study plan built from assessment scores",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence assessment of the candidate's readiness",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 strengths drawn from the highest scores (5-10 words each)",
			},
			"focus_areas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"dimension": map[string]any{
							"type": "string",
							"enum": []any{
								"will", "interest", "skill",
								"cognitiveReadiness", "abilityToLearn", "realWorldAlignment",
							},
						},
						"action": map[string]any{
							"type":        "string",
							"description": "One concrete action for the next 4 weeks",
						},
					},
					"required":             []any{"dimension", "action"},
					"additionalProperties": false,
				},
				"description": "1-3 focus areas drawn from the lowest scores",
			},
			"resources": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 named certifications, courses or labs",
			},
		},
		"required":             []any{"summary", "strengths", "focus_areas", "resources"},
		"additionalProperties": false,
	},
}
