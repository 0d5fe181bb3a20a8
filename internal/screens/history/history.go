// Package history lists past assessments and their answers.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iamfit/internal/catalog"
	"github.com/abhisek/iamfit/internal/router"
	"github.com/abhisek/iamfit/internal/screen"
	"github.com/abhisek/iamfit/internal/store"
	"github.com/abhisek/iamfit/internal/ui/components"
	"github.com/abhisek/iamfit/internal/ui/layout"
	"github.com/abhisek/iamfit/internal/ui/theme"
)

// DefaultLimit is the number of assessments loaded.
const DefaultLimit = 50

type historyLoadedMsg struct {
	Assessments []store.AssessmentEvent
	Err         error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerEvent
	Err       error
}

// HistoryScreen displays past assessments. Enter expands the answers of the
// selected one.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	cat         *catalog.Catalog
	assessments []store.AssessmentEvent
	answers     map[string][]store.AnswerEvent
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. A nil catalog means the built-in one.
func New(eventRepo store.EventRepo, cat *catalog.Catalog) *HistoryScreen {
	if cat == nil {
		cat = catalog.Default()
	}
	return &HistoryScreen{
		eventRepo: eventRepo,
		cat:       cat,
		answers:   make(map[string][]store.AnswerEvent),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		rows, err := repo.QueryAssessments(context.Background(), store.QueryOpts{Limit: DefaultLimit})
		return historyLoadedMsg{Assessments: rows, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.assessments = msg.Assessments
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.answers[msg.SessionID] = msg.Answers
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.assessments)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.toggle()
		}
	}
	return s, nil
}

// toggle expands or collapses the selected row, loading its answers on
// first expansion.
func (s *HistoryScreen) toggle() tea.Cmd {
	if s.selected >= len(s.assessments) {
		return nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]
	id := s.assessments[s.selected].SessionID
	if !s.expanded[s.selected] {
		return nil
	}
	if _, ok := s.answers[id]; ok {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		rows, err := repo.AnswersForSession(context.Background(), id)
		return answersLoadedMsg{SessionID: id, Answers: rows, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.assessments) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Take the assessment to see your results here.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.assessments {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %2d:%02d  %d answers  ",
			prefix, a.Timestamp.Local().Format("Jan 02, 2006 15:04"),
			a.DurationSecs/60, a.DurationSecs%60, a.QuestionCount)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		score := lipgloss.NewStyle().
			Foreground(components.BandColor(a.Overall)).
			Bold(true).
			Render(fmt.Sprintf("%3d  %s", a.Overall, a.Category))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)+score))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(a.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	rows, ok := s.answers[sessionID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    Loading answers...")) + "\n"
	}
	if len(rows) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range rows {
		text := a.Value
		if q, ok := s.cat.Get(a.QuestionID); ok && q.Kind == catalog.KindRating {
			text = fmt.Sprintf("%s (%s)", a.Value, ratingLabel(q, a.Value))
		}
		mark := ""
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if a.Correct != nil {
			if *a.Correct {
				mark = " ✓"
				style = style.Foreground(theme.Success)
			} else {
				mark = " ✗"
				style = style.Foreground(theme.Error)
			}
		}
		line := fmt.Sprintf("    %-14s %s%s", a.QuestionID, truncate(text, 48), mark)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func ratingLabel(q catalog.Question, value string) string {
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n < 1 || n > len(q.Options) {
		return "?"
	}
	return q.Options[n-1]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
