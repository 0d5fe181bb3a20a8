package landing

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/iamfit/internal/router"
	"github.com/abhisek/iamfit/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func factory(title string, calls *int) screen.Factory {
	return func() screen.Screen {
		*calls++
		return &stubScreen{title: title}
	}
}

func TestStartPushesAssessment(t *testing.T) {
	var calls int
	s := New(Routes{Assessment: factory("Assessment", &calls)})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Assessment" {
		t.Errorf("pushed %q, want Assessment", msg.Screen.Title())
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}

func TestMenuOrder(t *testing.T) {
	var a, r, h int
	s := New(Routes{
		Assessment: factory("Assessment", &a),
		Results:    factory("Results", &r),
		History:    factory("History", &h),
	})

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd().(router.PushScreenMsg)
	if msg.Screen.Title() != "Results" {
		t.Errorf("second item opened %q, want Results", msg.Screen.Title())
	}
}

func TestQuitKey(t *testing.T) {
	s := New(Routes{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestViewContent(t *testing.T) {
	var calls int
	s := New(Routes{Assessment: factory("Assessment", &calls)})

	view := s.View(100, 40)
	for _, want := range []string{"Start Assessment", "Psychometric Analysis", "Identity & Access Management"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	compact := s.View(40, 20)
	if !strings.Contains(compact, "I A M F I T") {
		t.Error("narrow view should use compact banner")
	}
	if strings.Contains(compact, "Psychometric Analysis") {
		t.Error("short view should hide feature list")
	}
}
