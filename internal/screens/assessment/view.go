package assessment

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/catalog"
	"github.com/abhisek/iamfit/internal/ui/components"
	"github.com/abhisek/iamfit/internal/ui/theme"
)

const cardWidth = 68

func (s *AssessmentScreen) View(width, height int) string {
	if s.saving {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Scoring your answers..."))
	}

	w := min(cardWidth, width-4)
	sections := []string{
		s.renderSteps(),
		components.NewProgressBar("", s.flow.Progress(), true, w).View(),
		"",
		s.renderCard(w),
	}
	if s.toast.Visible() {
		sections = append(sections, "", s.toast.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessmentScreen) renderSteps() string {
	var parts []string
	for i, st := range s.flow.Steps() {
		label := st.Title
		var style lipgloss.Style
		switch {
		case st.Completed:
			label = "✓ " + label
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case st.Current:
			label = "● " + label
			style = theme.Selected
		default:
			label = "○ " + label
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if i > 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Border).Render(" ── "))
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, "")
}

func (s *AssessmentScreen) renderCard(w int) string {
	q := s.flow.Current()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(q.Section))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Width(w - 6).Render(q.Prompt))
	b.WriteString("\n")
	if q.Hint != "" {
		b.WriteString(theme.Hint.Render(q.Hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if q.Kind == catalog.KindRange {
		b.WriteString(s.rng.View())
	} else {
		b.WriteString(s.choice.View())
	}
	b.WriteString("\n\n")

	b.WriteString(components.ButtonRow(
		components.Button{Label: "← Previous", Focused: s.focus == focusPrev, Disabled: s.flow.IsFirst()},
		components.Button{Label: s.nextLabel() + " →", Focused: s.focus == focusNext},
	))

	return theme.Card.Width(w).Render(b.String())
}
