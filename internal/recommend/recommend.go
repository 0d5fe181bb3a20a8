// Package recommend maps score vectors to career recommendations.
package recommend

import "github.com/abhisek/iamfit/internal/scoring"

// Category is the recommendation outcome.
type Category string

const (
	Proceed     Category = "proceed"
	Conditional Category = "conditional"
	NotReady    Category = "not-ready"
)

// Overall score thresholds. Each is an inclusive lower bound.
const (
	ProceedThreshold     = 75
	ConditionalThreshold = 50
)

// Recommendation is the outcome for one score vector.
type Recommendation struct {
	Category   Category `json:"type" yaml:"type"`
	Confidence int      `json:"confidence" yaml:"confidence"`
	Headline   string   `json:"headline" yaml:"headline"`
	Message    string   `json:"message" yaml:"message"`
	NextSteps  []string `json:"nextSteps" yaml:"nextSteps"`
}

type outcome struct {
	headline string
	message  string
	steps    []string
}

var outcomes = map[Category]outcome{
	Proceed: {
		headline: "Highly Recommended",
		message: "Excellent! You show strong potential for becoming an IAM Specialist. " +
			"Your combination of interest, skills, and learning ability indicates you're well-suited for this career path.",
		steps: []string{
			"Start with IAM fundamentals course (CompTIA Security+)",
			"Get hands-on experience with Azure AD or Okta",
			"Join cybersecurity communities and forums",
			"Consider pursuing relevant certifications",
		},
	},
	Conditional: {
		headline: "Proceed with Caution",
		message: "You have potential for IAM roles, but some areas need development. " +
			"Focus on strengthening your weak points before fully committing to this career path.",
		steps: []string{
			"Build foundational cybersecurity knowledge",
			"Improve technical skills through online courses",
			"Network with IAM professionals",
			"Consider starting in adjacent roles (IT Support, Network Admin)",
		},
	},
	NotReady: {
		headline: "Build More Skills First",
		message: "Based on your current profile, IAM might not be the best fit right now. " +
			"Consider exploring other IT roles or building foundational skills first.",
		steps: []string{
			"Explore alternative IT career paths",
			"Build basic technical skills",
			"Consider roles in IT support or help desk",
			"Retake this assessment after 6 months of skill building",
		},
	},
}

// Classify returns the category for an overall score.
func Classify(overall int) Category {
	switch {
	case overall >= ProceedThreshold:
		return Proceed
	case overall >= ConditionalThreshold:
		return Conditional
	default:
		return NotReady
	}
}

// For builds the recommendation for v.
func For(v scoring.Vector) Recommendation {
	c := Classify(v.Overall)
	o := outcomes[c]
	steps := make([]string, len(o.steps))
	copy(steps, o.steps)
	return Recommendation{
		Category:   c,
		Confidence: v.Overall,
		Headline:   o.headline,
		Message:    o.message,
		NextSteps:  steps,
	}
}
