package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/iamfit/internal/recommend"
)

const systemPrompt = `You are a pragmatic career coach for Identity & Access Management (IAM) roles. You turn WISCAR assessment scores into a short, concrete study plan.`

func buildUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString("WISCAR scores (0-100):\n")
	for _, d := range recommend.Dimensions() {
		fmt.Fprintf(&b, "- %s (%s): %d\n", d.Label, d.Dimension, in.Scores.Get(d.Dimension))
	}
	fmt.Fprintf(&b, "- Overall: %d\n", in.Scores.Overall)

	fmt.Fprintf(&b, "\nRecommendation: %s (%s)\n", in.Recommendation.Headline, in.Recommendation.Category)
	fmt.Fprintf(&b, "%s\n", in.Recommendation.Message)

	if in.WeeklyHours > 0 {
		fmt.Fprintf(&b, "\nAvailable study time: %d hours per week\n", in.WeeklyHours)
	}

	b.WriteString(`
Instructions:
1. Summarize readiness in 2-4 sentences. Be direct; do not repeat the scores.
2. List 1-3 strengths grounded in the highest scores.
3. List 1-3 focus areas grounded in the lowest scores, each with one action that fits the available study time.
4. Suggest 2-4 named resources (certifications, vendor courses, home labs).
5. Plain text only. No markdown.`)

	return b.String()
}
