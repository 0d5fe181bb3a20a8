package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	assess "github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/catalog"
	"github.com/abhisek/iamfit/internal/coach"
	"github.com/abhisek/iamfit/internal/handoff"
	"github.com/abhisek/iamfit/internal/report"
	"github.com/abhisek/iamfit/internal/router"
	"github.com/abhisek/iamfit/internal/screen"
	"github.com/abhisek/iamfit/internal/screens/assessment"
	"github.com/abhisek/iamfit/internal/screens/history"
	"github.com/abhisek/iamfit/internal/screens/landing"
	"github.com/abhisek/iamfit/internal/screens/results"
	"github.com/abhisek/iamfit/internal/store"
	"github.com/abhisek/iamfit/internal/ui/layout"
)

// Route selects the first screen.
type Route string

const (
	RouteLanding    Route = "landing"
	RouteAssessment Route = "assess"
	RouteResults    Route = "results"
)

// Options holds the dependencies the screens are built from. Nil repos turn
// off the features that need them.
type Options struct {
	Route        Route
	EventRepo    store.EventRepo
	SlotRepo     store.SlotRepo
	Catalog      *catalog.Catalog
	Coach        *coach.Service
	ExportDir    string
	ExportFormat report.Format
	Logger       *zap.Logger
}

// screens builds every screen from Options so they can route to each other
// without importing one another.
type screens struct {
	opts Options
	slot *handoff.Slot
}

func newScreens(opts Options) *screens {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	s := &screens{opts: opts}
	if opts.SlotRepo != nil {
		s.slot = handoff.NewSlot(opts.SlotRepo)
	}
	return s
}

func (s *screens) landing() screen.Screen {
	routes := landing.Routes{Assessment: s.assessment}
	if s.slot != nil {
		routes.Results = s.savedResults
	}
	if s.opts.EventRepo != nil {
		routes.History = s.history
	}
	return landing.New(routes)
}

func (s *screens) assessment() screen.Screen {
	cfg := assessment.Config{
		Catalog: s.opts.Catalog,
		Slot:    s.slot,
		Results: s.results,
		Logger:  s.opts.Logger.Named("assessment"),
	}
	if s.opts.EventRepo != nil {
		cfg.Recorder = s.opts.EventRepo
	}
	return assessment.New(cfg)
}

func (s *screens) resultsConfig() results.Config {
	return results.Config{
		Coach:        s.opts.Coach,
		ExportDir:    s.opts.ExportDir,
		ExportFormat: s.opts.ExportFormat,
		Retake:       s.assessment,
		Logger:       s.opts.Logger.Named("results"),
	}
}

func (s *screens) results(r assess.Result) screen.Screen {
	return results.New(r, s.resultsConfig())
}

func (s *screens) savedResults() screen.Screen {
	return results.NewFromSlot(s.slot, s.opts.Catalog, s.resultsConfig())
}

func (s *screens) history() screen.Screen {
	return history.New(s.opts.EventRepo, s.opts.Catalog)
}

func (s *screens) initial(route Route) (screen.Screen, error) {
	switch route {
	case RouteLanding, "":
		return s.landing(), nil
	case RouteAssessment:
		return s.assessment(), nil
	case RouteResults:
		return s.savedResults(), nil
	default:
		return nil, fmt.Errorf("unknown route %q", route)
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel showing the screen for opts.Route.
func newAppModel(opts Options) (AppModel, error) {
	first, err := newScreens(opts).initial(opts.Route)
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{router: router.New(first)}, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	var title, status string
	if active := m.router.Active(); active != nil {
		title = active.Title()
		if p, ok := active.(screen.StatusProvider); ok {
			status = p.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
