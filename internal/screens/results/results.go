// Package results shows the scored assessment with export, coach and
// retake actions.
package results

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	assess "github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/catalog"
	"github.com/abhisek/iamfit/internal/coach"
	"github.com/abhisek/iamfit/internal/handoff"
	"github.com/abhisek/iamfit/internal/report"
	"github.com/abhisek/iamfit/internal/router"
	"github.com/abhisek/iamfit/internal/screen"
	"github.com/abhisek/iamfit/internal/ui/components"
	"github.com/abhisek/iamfit/internal/ui/layout"
)

const noDataText = "No assessment data found. Please complete the assessment first."

// Config holds the results screen collaborators.
type Config struct {
	Coach        *coach.Service // nil hides the coach action
	ExportDir    string
	ExportFormat report.Format
	Retake       screen.Factory
	Logger       *zap.Logger
}

// ResultsScreen renders one scored assessment.
type ResultsScreen struct {
	cfg    Config
	slot   *handoff.Slot
	cat    *catalog.Catalog
	result *assess.Result
	noData bool

	vp      viewport.Model
	spin    spinner.Model
	toast   components.Toast
	plan    *coach.Plan
	planErr string
	asking  bool
	now     func() time.Time
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New shows a result handed over in-process.
func New(r assess.Result, cfg Config) *ResultsScreen {
	s := newScreen(cfg)
	s.result = &r
	return s
}

// NewFromSlot shows the answers stored in the handoff slot, scored against
// cat (nil means the built-in catalog).
func NewFromSlot(slot *handoff.Slot, cat *catalog.Catalog, cfg Config) *ResultsScreen {
	s := newScreen(cfg)
	s.slot = slot
	s.cat = cat
	return s
}

func newScreen(cfg Config) *ResultsScreen {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.ExportFormat == "" {
		cfg.ExportFormat = report.FormatJSON
	}
	return &ResultsScreen{
		cfg:  cfg,
		vp:   viewport.New(),
		spin: spinner.New(spinner.WithSpinner(spinner.Dot)),
		now:  time.Now,
	}
}

// notifier is implemented by screens that can show a notice handed over
// by the screen they replace.
type notifier interface {
	Notify(text string) tea.Cmd
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.result != nil {
		return nil
	}
	if s.slot == nil {
		return s.redirect()
	}
	slot, cat := s.slot, s.cat
	return func() tea.Msg {
		set, err := slot.Load(context.Background())
		if err != nil {
			return loadedMsg{Err: err}
		}
		r := assess.Evaluate(cat, set)
		return loadedMsg{Result: &r}
	}
}

func (s *ResultsScreen) Title() string {
	return "Assessment Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.noData {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Take assessment"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "d", Description: "Download"},
	}
	if s.cfg.Coach != nil {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Coach plan"})
	}
	return append(hints,
		layout.KeyHint{Key: "r", Description: "Retake"},
		layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			if !errors.Is(msg.Err, handoff.ErrNoData) {
				s.cfg.Logger.Warn("load handoff slot", zap.Error(msg.Err))
			}
			return s, s.redirect()
		}
		s.result = msg.Result
		return s, nil

	case exportedMsg:
		if msg.Err != nil {
			s.cfg.Logger.Error("export results", zap.String("path", msg.Path), zap.Error(msg.Err))
			return s, s.showToast("Export failed: "+msg.Err.Error(), components.ToastError)
		}
		return s, s.showToast("Results downloaded successfully! "+msg.Path, components.ToastSuccess)

	case planMsg:
		s.asking = false
		if msg.Err != nil {
			s.cfg.Logger.Warn("coach plan", zap.Error(msg.Err))
			s.planErr = "The coach is unavailable right now. Try again later."
			return s, nil
		}
		s.plan = msg.Plan
		s.planErr = ""
		return s, nil

	case spinner.TickMsg:
		if !s.asking {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case components.ToastExpiredMsg:
		s.toast = s.toast.Update(msg)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.noData {
		if msg.String() == "enter" && s.cfg.Retake != nil {
			return s, router.Replace(s.cfg.Retake())
		}
		return s, nil
	}
	if s.result == nil {
		return s, nil
	}

	switch msg.String() {
	case "d":
		return s, s.export()
	case "c":
		return s, s.askCoach()
	case "r":
		if s.cfg.Retake != nil {
			return s, router.Replace(s.cfg.Retake())
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// redirect marks the screen empty and, when a retake screen is wired,
// replaces itself with it carrying the no-data notice.
func (s *ResultsScreen) redirect() tea.Cmd {
	s.noData = true
	if s.cfg.Retake == nil {
		return s.showToast(noDataText, components.ToastError)
	}
	next := s.cfg.Retake()
	if n, ok := next.(notifier); ok {
		return tea.Batch(n.Notify(noDataText), router.Replace(next))
	}
	return tea.Batch(s.showToast(noDataText, components.ToastError), router.Replace(next))
}

func (s *ResultsScreen) export() tea.Cmd {
	rep := report.New(s.result.Scores, s.now())
	format := s.cfg.ExportFormat
	path := filepath.Join(s.cfg.ExportDir, format.Filename())
	return func() tea.Msg {
		return exportedMsg{Path: path, Err: report.Export(rep, format, path)}
	}
}

func (s *ResultsScreen) askCoach() tea.Cmd {
	if s.cfg.Coach == nil || s.asking {
		return nil
	}
	s.asking = true
	s.planErr = ""
	in := coach.InputFor(*s.result)
	svc := s.cfg.Coach
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		plan, err := svc.Plan(context.Background(), in)
		return planMsg{Plan: plan, Err: err}
	})
}

func (s *ResultsScreen) showToast(text string, kind components.ToastKind) tea.Cmd {
	var cmd tea.Cmd
	s.toast, cmd = s.toast.Show(text, kind)
	return cmd
}
