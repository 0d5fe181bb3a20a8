// Package assessment is the question stepper screen.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/iamfit/internal/answers"
	assess "github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/catalog"
	"github.com/abhisek/iamfit/internal/handoff"
	"github.com/abhisek/iamfit/internal/router"
	"github.com/abhisek/iamfit/internal/screen"
	"github.com/abhisek/iamfit/internal/ui/components"
	"github.com/abhisek/iamfit/internal/ui/layout"
)

// Config wires the stepper to persistence and the results screen.
type Config struct {
	Catalog  *catalog.Catalog // nil means the built-in catalog
	Recorder assess.Recorder  // nil skips history
	Slot     *handoff.Slot    // nil skips the cross-process handoff
	Results  func(assess.Result) screen.Screen
	Logger   *zap.Logger
}

type focus int

const (
	focusNext focus = iota
	focusPrev
)

// AssessmentScreen walks the catalog one question at a time.
type AssessmentScreen struct {
	cfg     Config
	flow    *assess.Flow
	choice  components.ChoiceList
	rng     components.RangeInput
	toast   components.Toast
	focus   focus
	started time.Time
	saving  bool
	now     func() time.Time
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)

// New creates a stepper positioned on the first question.
func New(cfg Config) *AssessmentScreen {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	s := &AssessmentScreen{
		cfg:  cfg,
		flow: assess.NewFlow(cfg.Catalog),
		now:  time.Now,
	}
	s.loadQuestion()
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	s.started = s.now()
	if s.flow.Current().Kind == catalog.KindRange {
		return s.rng.Init()
	}
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Career Assessment"
}

func (s *AssessmentScreen) Status() string {
	return fmt.Sprintf("Question %d of %d", s.flow.Index()+1, s.flow.Total())
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	switch s.flow.Current().Kind {
	case catalog.KindRange:
		hints = append(hints, layout.KeyHint{Key: "0-9 ←→", Description: "Set hours"})
	default:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Move"},
			layout.KeyHint{Key: "Space/1-9", Description: "Choose"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Tab", Description: "Switch button"},
		layout.KeyHint{Key: "Enter", Description: s.nextLabel()},
		layout.KeyHint{Key: "Esc", Description: "Leave"})
	return hints
}

func (s *AssessmentScreen) nextLabel() string {
	if s.flow.IsLast() {
		return "Complete Assessment"
	}
	return "Next"
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ToastExpiredMsg:
		s.toast = s.toast.Update(msg)
		return s, nil

	case completedMsg:
		return s.handleCompleted(msg)

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		return s.handleKey(msg)
	}

	if s.flow.Current().Kind == catalog.KindRange {
		var cmd tea.Cmd
		s.rng, cmd = s.rng.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if s.focus == focusPrev {
			return s, s.previous()
		}
		return s, s.next()
	case "tab", "shift+tab":
		if s.focus == focusNext && !s.flow.IsFirst() {
			s.focus = focusPrev
		} else {
			s.focus = focusNext
		}
		return s, nil
	case "pgup":
		return s, s.previous()
	case "pgdown":
		return s, s.next()
	}

	q := s.flow.Current()
	if q.Kind == catalog.KindRange {
		var cmd tea.Cmd
		s.rng, cmd = s.rng.Update(msg)
		return s, tea.Batch(cmd, s.recordRange(false))
	}

	var changed bool
	s.choice, changed = s.choice.Update(msg)
	if changed {
		return s, s.recordChoice()
	}
	return s, nil
}

// recordChoice stores the chosen option of a rating or choice question.
func (s *AssessmentScreen) recordChoice() tea.Cmd {
	q := s.flow.Current()
	var v answers.Value
	if q.Kind == catalog.KindRating {
		v = answers.Int(s.choice.Chosen + 1)
	} else {
		v = answers.Text(q.Options[s.choice.Chosen])
	}
	if err := s.flow.Answer(v); err != nil {
		return s.showToast(err.Error(), components.ToastError)
	}
	return nil
}

// recordRange stores the typed value when it is acceptable. With strict set
// a malformed value produces a notice.
func (s *AssessmentScreen) recordRange(strict bool) tea.Cmd {
	n, ok := s.rng.Value()
	if !ok {
		return nil
	}
	q := s.flow.Current()
	if err := s.flow.Answer(answers.Int(n)); err != nil {
		if strict {
			return s.showToast(fmt.Sprintf("Enter a value between %d and %d.", q.Min, q.Max), components.ToastError)
		}
	}
	return nil
}

func (s *AssessmentScreen) next() tea.Cmd {
	if s.flow.Current().Kind == catalog.KindRange {
		if cmd := s.recordRange(true); cmd != nil {
			return cmd
		}
	}

	done, err := s.flow.Next()
	if errors.Is(err, assess.ErrUnanswered) {
		return s.showToast("Please answer the current question before proceeding.", components.ToastError)
	}
	if err != nil {
		return s.showToast(err.Error(), components.ToastError)
	}
	if done {
		s.saving = true
		return s.finish()
	}
	s.focus = focusNext
	return s.loadQuestion()
}

func (s *AssessmentScreen) previous() tea.Cmd {
	if !s.flow.Prev() {
		return nil
	}
	s.focus = focusNext
	return s.loadQuestion()
}

// loadQuestion resets the input widgets for the current question, restoring
// any earlier answer.
func (s *AssessmentScreen) loadQuestion() tea.Cmd {
	q := s.flow.Current()
	prev, answered := s.flow.CurrentAnswer()

	switch q.Kind {
	case catalog.KindRange:
		s.rng = components.NewRangeInput(q.Min, q.Max, q.Step, q.Unit)
		if n, ok := prev.AsInt(); answered && ok {
			s.rng.SetValue(n)
		}
		return s.rng.Init()
	case catalog.KindRating:
		s.choice = components.NewChoiceList(q.Options)
		if n, ok := prev.AsInt(); answered && ok {
			s.choice = s.choice.WithChosen(n - 1)
		}
	default:
		s.choice = components.NewChoiceList(q.Options)
		if t, ok := prev.AsText(); answered && ok {
			s.choice = s.choice.WithChosen(slices.Index(q.Options, t))
		}
	}
	return nil
}

// finish scores the answers and persists them off the UI goroutine.
func (s *AssessmentScreen) finish() tea.Cmd {
	result := assess.Evaluate(s.flow.Catalog(), s.flow.Answers())
	result.Duration = s.now().Sub(s.started)
	cat := s.flow.Catalog()
	rec := s.cfg.Recorder
	slot := s.cfg.Slot

	return func() tea.Msg {
		ctx := context.Background()
		var errs []error
		if slot != nil {
			if err := slot.Save(ctx, result.Answers); err != nil {
				errs = append(errs, err)
			}
		}
		if rec != nil {
			if err := assess.Record(ctx, rec, cat, result); err != nil {
				errs = append(errs, err)
			}
		}
		return completedMsg{Result: result, Err: errors.Join(errs...)}
	}
}

func (s *AssessmentScreen) handleCompleted(msg completedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// The in-memory result is still shown.
		s.cfg.Logger.Warn("persist assessment", zap.String("session_id", msg.Result.SessionID), zap.Error(msg.Err))
	}
	s.cfg.Logger.Info("assessment completed",
		zap.String("session_id", msg.Result.SessionID),
		zap.Int("overall", msg.Result.Scores.Overall),
		zap.String("category", string(msg.Result.Recommendation.Category)),
		zap.Duration("duration", msg.Result.Duration))

	if s.cfg.Results == nil {
		return s, router.Pop()
	}
	return s, router.Replace(s.cfg.Results(msg.Result))
}

// Notify shows text as an error notice, for screens that send the user
// back to the questionnaire.
func (s *AssessmentScreen) Notify(text string) tea.Cmd {
	return s.showToast(text, components.ToastError)
}

func (s *AssessmentScreen) showToast(text string, kind components.ToastKind) tea.Cmd {
	var cmd tea.Cmd
	s.toast, cmd = s.toast.Show(text, kind)
	return cmd
}
