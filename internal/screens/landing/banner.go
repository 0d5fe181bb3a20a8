package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/ui/theme"
)

const bannerArt = `
 ██╗ █████╗ ███╗   ███╗███████╗██╗████████╗
 ██║██╔══██╗████╗ ████║██╔════╝██║╚══██╔══╝
 ██║███████║██╔████╔██║█████╗  ██║   ██║
 ██║██╔══██║██║╚██╔╝██║██╔══╝  ██║   ██║
 ██║██║  ██║██║ ╚═╝ ██║██║     ██║   ██║
 ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝     ╚═╝   ╚═╝`

const bannerCompact = "I A M F I T"

// RenderBanner returns the banner styled in the primary color. Narrow
// terminals get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
