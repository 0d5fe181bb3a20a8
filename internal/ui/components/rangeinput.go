package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/ui/theme"
)

// RangeInput edits an integer in [Min, Max]. The value can be typed or
// stepped with the left and right arrows.
type RangeInput struct {
	Model textinput.Model
	Min   int
	Max   int
	Step  int
	Unit  string
}

// NewRangeInput creates a focused numeric input with no value.
func NewRangeInput(min, max, step int, unit string) RangeInput {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(min) + "-" + strconv.Itoa(max)
	ti.CharLimit = len(strconv.Itoa(max))
	ti.Focus()
	if step <= 0 {
		step = 1
	}
	return RangeInput{Model: ti, Min: min, Max: max, Step: step, Unit: unit}
}

// Init returns the cursor blink command.
func (r RangeInput) Init() tea.Cmd {
	return textinput.Blink
}

// SetValue replaces the current value.
func (r *RangeInput) SetValue(n int) {
	r.Model.SetValue(strconv.Itoa(n))
	r.Model.CursorEnd()
}

// Value returns the parsed value. ok is false when the field is empty or not
// a number; range checks are left to the caller.
func (r RangeInput) Value() (n int, ok bool) {
	n, err := strconv.Atoi(r.Model.Value())
	return n, err == nil
}

// Update filters non-digit keys and applies arrow stepping.
func (r RangeInput) Update(msg tea.Msg) (RangeInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		switch key {
		case "left", "h", "-":
			r.stepBy(-r.Step)
			return r, nil
		case "right", "l", "+":
			r.stepBy(r.Step)
			return r, nil
		}
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.Model, cmd = r.Model.Update(msg)
	return r, cmd
}

func (r *RangeInput) stepBy(d int) {
	n, ok := r.Value()
	if !ok {
		n = r.Min
		if d > 0 {
			d = 0
		}
	}
	r.SetValue(min(max(n+d, r.Min), r.Max))
}

// View renders the input with its unit and a position gauge.
func (r RangeInput) View() string {
	view := r.Model.View()
	if r.Unit != "" {
		view += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(r.Unit)
	}

	pct := 0.0
	if n, ok := r.Value(); ok && r.Max > r.Min {
		pct = float64(n-r.Min) / float64(r.Max-r.Min)
	}
	gauge := NewProgressBar(strconv.Itoa(r.Min), pct, false, 34).View() +
		"  " + lipgloss.NewStyle().Foreground(theme.Text).Render(strconv.Itoa(r.Max))
	return view + "\n\n" + gauge
}
