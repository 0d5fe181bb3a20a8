package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/recommend"
	"github.com/abhisek/iamfit/internal/ui/components"
	"github.com/abhisek/iamfit/internal/ui/theme"
)

const maxReportWidth = 84

func (s *ResultsScreen) View(width, height int) string {
	if s.noData {
		msg := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(noDataText),
			"",
			theme.Hint.Render("Press Enter to take the assessment"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	if s.result == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading results..."))
	}

	toast := s.toast.View()
	vpHeight := height
	if toast != "" {
		vpHeight -= lipgloss.Height(toast)
	}

	w := min(maxReportWidth, width-2)
	s.vp.SetWidth(width)
	s.vp.SetHeight(max(vpHeight, 1))
	s.vp.SetContent(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderReport(w)))

	if toast == "" {
		return s.vp.View()
	}
	return s.vp.View() + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, toast)
}

func (s *ResultsScreen) renderReport(w int) string {
	r := s.result
	rec := r.Recommendation

	var b strings.Builder
	b.WriteString(theme.Title.Render("Your IAM Career Assessment Results"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Discover your readiness for Identity & Access Management careers"))
	b.WriteString("\n\n")

	// Overall card.
	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(components.BandColor(rec.Confidence)).
		Bold(true).
		Padding(0, 1).
		Render(rec.Headline)
	overall := lipgloss.NewStyle().
		Foreground(components.BandColor(r.Scores.Overall)).
		Bold(true).
		Render(fmt.Sprintf("%d/100", r.Scores.Overall))
	card := lipgloss.JoinVertical(lipgloss.Left,
		theme.Heading.Render("Overall Recommendation")+"   "+overall,
		"",
		badge,
		"",
		theme.Body.Width(w-6).Render(rec.Message),
	)
	b.WriteString(theme.Card.Width(w).Render(card))
	b.WriteString("\n\n")

	// WISCAR bars.
	b.WriteString(theme.Heading.Render("WISCAR Analysis"))
	b.WriteString("\n\n")
	for _, d := range recommend.Dimensions() {
		b.WriteString(components.ScoreBar(d.Label, r.Scores.Get(d.Dimension), 22, w))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(strings.Repeat(" ", 24) + d.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Heading.Render("Career Path Matches"))
	b.WriteString("\n\n")
	for _, m := range recommend.CareerMatches(r.Scores) {
		b.WriteString(components.ScoreBar(m.Title, m.Score, 24, w))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(strings.Repeat(" ", 26) + m.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Heading.Render("Recommended Next Steps"))
	b.WriteString("\n\n")
	for i, step := range rec.NextSteps {
		b.WriteString(theme.Body.Width(w).Render(fmt.Sprintf("%d. %s", i+1, step)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Heading.Render("Learning Resources"))
	b.WriteString("\n\n")
	for _, res := range recommend.Resources() {
		b.WriteString(theme.Selected.Render("• "+res.Title) + "  " + theme.Subtitle.Render(res.Description))
		b.WriteString("\n")
	}

	if coach := s.renderCoach(w); coach != "" {
		b.WriteString("\n")
		b.WriteString(coach)
	}
	return b.String()
}

func (s *ResultsScreen) renderCoach(w int) string {
	if s.cfg.Coach == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Career Coach"))
	b.WriteString("\n\n")

	switch {
	case s.asking:
		b.WriteString(s.spin.View() + " " + theme.Hint.Render("Drafting your study plan..."))
	case s.planErr != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.planErr))
	case s.plan == nil:
		b.WriteString(theme.Hint.Render("Press c for a personalized study plan."))
	default:
		p := s.plan
		b.WriteString(theme.Body.Width(w).Render(p.Summary))
		b.WriteString("\n")
		if len(p.Strengths) > 0 {
			b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Strengths") + "\n")
			for _, st := range p.Strengths {
				b.WriteString("  • " + st + "\n")
			}
		}
		if len(p.FocusAreas) > 0 {
			b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render("Focus areas") + "\n")
			for _, f := range p.FocusAreas {
				b.WriteString(theme.Body.Width(w).Render(fmt.Sprintf("  • %s: %s", f.Dimension, f.Action)) + "\n")
			}
		}
		if len(p.Resources) > 0 {
			b.WriteString("\n" + theme.Selected.Render("Suggested resources") + "\n")
			for _, r := range p.Resources {
				b.WriteString("  • " + r + "\n")
			}
		}
	}
	return b.String()
}
