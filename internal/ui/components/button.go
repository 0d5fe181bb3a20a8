package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/ui/theme"
)

// Button is a styled, non-interactive button label. Screens own the key
// handling and use Focused to show which action Enter triggers.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(b.Label)
	case b.Focused:
		return theme.ButtonActive.Render(b.Label)
	default:
		return theme.ButtonInactive.Render(b.Label)
	}
}

// ButtonRow lays buttons out left to right with a gap.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "   ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
