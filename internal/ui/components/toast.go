package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/ui/theme"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 3 * time.Second

// ToastKind selects the toast color.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// ToastExpiredMsg hides the toast with the matching ID.
type ToastExpiredMsg struct {
	ID int
}

// Toast is a transient notice. Each Show gets a new ID so an older expiry
// never hides a newer message.
type Toast struct {
	Text    string
	Kind    ToastKind
	id      int
	visible bool
}

// Show displays text and returns the command that expires it.
func (t Toast) Show(text string, kind ToastKind) (Toast, tea.Cmd) {
	t.id++
	t.Text = text
	t.Kind = kind
	t.visible = true
	id := t.id
	return t, tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Update hides the toast when its expiry arrives.
func (t Toast) Update(msg tea.Msg) Toast {
	if m, ok := msg.(ToastExpiredMsg); ok && m.ID == t.id {
		t.visible = false
	}
	return t
}

// Visible reports whether the toast is showing.
func (t Toast) Visible() bool {
	return t.visible
}

// View renders the toast, or an empty string when hidden.
func (t Toast) View() string {
	if !t.visible {
		return ""
	}
	c := theme.Primary
	switch t.Kind {
	case ToastSuccess:
		c = theme.Success
	case ToastError:
		c = theme.Error
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 1).
		Render(t.Text)
}
