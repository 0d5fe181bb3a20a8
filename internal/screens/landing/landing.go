// Package landing is the entry screen: what the assessment measures and
// where to go next.
package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/router"
	"github.com/abhisek/iamfit/internal/screen"
	"github.com/abhisek/iamfit/internal/ui/components"
	"github.com/abhisek/iamfit/internal/ui/layout"
	"github.com/abhisek/iamfit/internal/ui/theme"
)

const tagline = "Discover if Identity & Access Management is the right career path for you"

// Routes holds the screens the landing menu opens. A nil factory hides its
// menu entry.
type Routes struct {
	Assessment screen.Factory
	Results    screen.Factory
	History    screen.Factory
}

type feature struct {
	title string
	text  string
}

var features = []feature{
	{"Psychometric Analysis", "Evaluate your personality fit and motivation"},
	{"Technical Assessment", "Test your current IAM knowledge and skills"},
	{"Career Guidance", "Personalized recommendations and learning paths"},
}

// LandingScreen shows the banner, what the assessment covers and the main
// menu.
type LandingScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing screen.
func New(routes Routes) *LandingScreen {
	var items []components.MenuItem
	push := func(f screen.Factory) func() tea.Cmd {
		return func() tea.Cmd { return router.Push(f()) }
	}
	if routes.Assessment != nil {
		items = append(items, components.MenuItem{
			Label:  "Start Assessment",
			Hint:   "8 questions, about 15 minutes",
			Action: push(routes.Assessment),
		})
	}
	if routes.Results != nil {
		items = append(items, components.MenuItem{
			Label:  "View Last Results",
			Action: push(routes.Results),
		})
	}
	if routes.History != nil {
		items = append(items, components.MenuItem{
			Label:  "History",
			Action: push(routes.History),
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	return &LandingScreen{menu: components.NewMenu(items)}
}

func (s *LandingScreen) Init() tea.Cmd {
	return nil
}

func (s *LandingScreen) Title() string {
	return ""
}

func (s *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return s, tea.Quit
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(tagline))
	sections = append(sections, "")

	if !layout.IsCompactHeight(height) {
		var feats []string
		for _, f := range features {
			feats = append(feats,
				theme.Heading.Render("◆ "+f.title)+"  "+theme.Subtitle.Render(f.text))
		}
		sections = append(sections, strings.Join(feats, "\n"))
		sections = append(sections, "")
	}

	sections = append(sections, s.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
