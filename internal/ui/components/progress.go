package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Fill        color.Color // defaults to theme.Secondary
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// ScoreBar renders a 0..100 score as a labelled bar colored by band.
func ScoreBar(label string, score, labelWidth, width int) string {
	padded := fmt.Sprintf("%-*s", labelWidth, label)
	bar := ProgressBar{
		Label:   padded,
		Percent: float64(score) / 100,
		Width:   width - 6,
		Fill:    BandColor(score),
	}
	return bar.View() + lipgloss.NewStyle().
		Foreground(BandColor(score)).
		Bold(true).
		Render(fmt.Sprintf("  %3d%%", score))
}

// BandColor maps a score to green (75+), amber (50+) or red.
func BandColor(score int) color.Color {
	switch {
	case score >= 75:
		return theme.Success
	case score >= 50:
		return theme.Warning
	default:
		return theme.Error
	}
}
