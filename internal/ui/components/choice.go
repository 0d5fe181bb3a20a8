package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/iamfit/internal/ui/theme"
)

// ChoiceList is a single-select list used for rating and choice questions.
// Nothing is chosen until the user presses enter, space or a digit.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 while nothing is chosen
}

// NewChoiceList creates a list with no option chosen.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options, Chosen: -1}
}

// WithChosen returns the list with option i chosen and under the cursor.
// Out-of-range indexes leave the list unchanged.
func (c ChoiceList) WithChosen(i int) ChoiceList {
	if i >= 0 && i < len(c.Options) {
		c.Chosen = i
		c.Cursor = i
	}
	return c
}

// HasChoice reports whether an option has been chosen.
func (c ChoiceList) HasChoice() bool {
	return c.Chosen >= 0
}

// Update moves the cursor and chooses options. It reports whether the
// chosen option changed.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
		return c, false
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
		return c, false
	case "space", " ":
		prev := c.Chosen
		c.Chosen = c.Cursor
		return c, prev != c.Chosen
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		i := int(key[0] - '1')
		if i < len(c.Options) {
			prev := c.Chosen
			c = c.WithChosen(i)
			return c, prev != c.Chosen
		}
	}
	return c, false
}

// View renders the options with radio markers.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(•)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, marker, i+1, opt)

		switch {
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case i == c.Chosen:
			b.WriteString(theme.Body.Bold(true).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
