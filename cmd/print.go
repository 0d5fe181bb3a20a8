package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/abhisek/iamfit/internal/coach"
	"github.com/abhisek/iamfit/internal/recommend"
	"github.com/abhisek/iamfit/internal/scoring"
)

const scoreBarWidth = 24

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
	bandColors   = map[recommend.Band]*color.Color{
		recommend.BandStrong:   color.New(color.FgGreen),
		recommend.BandModerate: color.New(color.FgYellow),
		recommend.BandWeak:     color.New(color.FgRed),
	}
)

func bandColor(score int) *color.Color {
	return bandColors[recommend.BandFor(score)]
}

// scoreText renders a percentage in its band color.
func scoreText(score int) string {
	return bandColor(score).Sprintf("%3d%%", score)
}

// scoreBar renders a fixed-width bar filled to score percent.
func scoreBar(score, width int) string {
	filled := score * width / 100
	filled = max(0, min(width, filled))
	return bandColor(score).Sprint(strings.Repeat("█", filled)) +
		dimColor.Sprint(strings.Repeat("░", width-filled))
}

func printResult(w io.Writer, v scoring.Vector, rec recommend.Recommendation) {
	headingColor.Fprintln(w, "Overall IAM Readiness")
	fmt.Fprintf(w, "  %s  %s\n", scoreText(v.Overall), bandColor(v.Overall).Sprint(rec.Headline))
	fmt.Fprintf(w, "  %s\n\n", rec.Message)

	headingColor.Fprintln(w, "WISCAR Analysis")
	for _, d := range recommend.Dimensions() {
		score := v.Get(d.Dimension)
		fmt.Fprintf(w, "  %-20s %s %s\n", d.Label, scoreBar(score, scoreBarWidth), scoreText(score))
	}
	fmt.Fprintln(w)

	headingColor.Fprintln(w, "Career Path Matches")
	for _, m := range recommend.CareerMatches(v) {
		fmt.Fprintf(w, "  %-24s %s  %s\n", m.Title, scoreText(m.Score), dimColor.Sprint(m.Description))
	}
	fmt.Fprintln(w)

	headingColor.Fprintln(w, "Next Steps")
	for i, s := range rec.NextSteps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
	fmt.Fprintln(w)

	headingColor.Fprintln(w, "Learning Resources")
	for _, r := range recommend.Resources() {
		fmt.Fprintf(w, "  • %s  %s\n", r.Title, dimColor.Sprint(r.Description))
	}
}

func printPlan(w io.Writer, p *coach.Plan) {
	headingColor.Fprintln(w, "Career Coach")
	fmt.Fprintf(w, "  %s\n\n", p.Summary)

	if len(p.Strengths) > 0 {
		headingColor.Fprintln(w, "Strengths")
		for _, s := range p.Strengths {
			fmt.Fprintf(w, "  • %s\n", s)
		}
		fmt.Fprintln(w)
	}

	if len(p.FocusAreas) > 0 {
		headingColor.Fprintln(w, "Focus Areas")
		for _, f := range p.FocusAreas {
			fmt.Fprintf(w, "  • %s: %s\n", dimensionLabel(f.Dimension), f.Action)
		}
		fmt.Fprintln(w)
	}

	if len(p.Resources) > 0 {
		headingColor.Fprintln(w, "Suggested Resources")
		for _, r := range p.Resources {
			fmt.Fprintf(w, "  • %s\n", r)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, dimColor.Sprintf("Generated by %s", p.Model))
}

func dimensionLabel(d string) string {
	for _, info := range recommend.Dimensions() {
		if string(info.Dimension) == d {
			return info.Label
		}
	}
	return d
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
