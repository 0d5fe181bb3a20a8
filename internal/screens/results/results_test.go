package results

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/iamfit/internal/answers"
	assess "github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/coach"
	"github.com/abhisek/iamfit/internal/handoff"
	"github.com/abhisek/iamfit/internal/llm"
	"github.com/abhisek/iamfit/internal/report"
	"github.com/abhisek/iamfit/internal/router"
	"github.com/abhisek/iamfit/internal/screen"
	"github.com/abhisek/iamfit/internal/store"
)

type memSlots map[string][]byte

func (m memSlots) Put(_ context.Context, name string, p []byte) error { m[name] = p; return nil }
func (m memSlots) Delete(_ context.Context, name string) error        { delete(m, name); return nil }
func (m memSlots) Get(_ context.Context, name string) ([]byte, error) {
	p, ok := m[name]
	if !ok {
		return nil, store.ErrSlotNotFound
	}
	return p, nil
}

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "assessment" }
func (s *stubScreen) Title() string                           { return "Assessment" }

func fullAnswers() *answers.Set {
	set := answers.NewSet()
	set.Record("interest-1", answers.Int(4))
	set.Record("interest-2", answers.Int(3))
	set.Record("personality-1", answers.Int(4))
	set.Record("personality-2", answers.Int(4))
	set.Record("technical-1", answers.Text("To add an extra layer of security beyond passwords"))
	set.Record("technical-2", answers.Text("HTTP"))
	set.Record("learning-1", answers.Int(12))
	set.Record("learning-2", answers.Int(4))
	return set
}

func keyPress(k string) tea.KeyPressMsg {
	if k == "enter" {
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	return tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
}

func TestView_ShowsSections(t *testing.T) {
	r := assess.Evaluate(nil, fullAnswers())
	s := New(r, Config{})
	require.Nil(t, s.Init())

	view := s.View(100, 200)
	for _, want := range []string{
		"Overall Recommendation",
		r.Recommendation.Headline,
		"WISCAR Analysis",
		"Will (Motivation)",
		"Career Path Matches",
		"IAM Specialist",
		"Recommended Next Steps",
		"CompTIA Security+",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Career Coach")
}

func TestKeyHints_CoachOnlyWhenConfigured(t *testing.T) {
	r := assess.Evaluate(nil, fullAnswers())
	without := New(r, Config{})
	with := New(r, Config{Coach: coach.NewService(llm.NewMockProvider(), coach.DefaultConfig(), nil)})

	has := func(s *ResultsScreen) bool {
		for _, h := range s.KeyHints() {
			if h.Key == "c" {
				return true
			}
		}
		return false
	}
	assert.False(t, has(without))
	assert.True(t, has(with))
}

func TestExport_WritesJSONReport(t *testing.T) {
	dir := t.TempDir()
	r := assess.Evaluate(nil, fullAnswers())
	s := New(r, Config{ExportDir: dir})
	s.now = func() time.Time { return time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC) }

	_, cmd := s.Update(keyPress("d"))
	require.NotNil(t, cmd)
	msg := cmd().(exportedMsg)
	require.NoError(t, msg.Err)
	assert.Equal(t, filepath.Join(dir, report.DefaultFilename), msg.Path)

	data, err := os.ReadFile(msg.Path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Contains(t, got, "scores")
	assert.Contains(t, got, "recommendation")
	assert.Equal(t, "2026-05-01T09:30:00Z", got["timestamp"])

	s.Update(msg)
	assert.Contains(t, s.toast.Text, "Results downloaded successfully!")
}

func TestRetakeReplacesScreen(t *testing.T) {
	r := assess.Evaluate(nil, fullAnswers())
	s := New(r, Config{Retake: func() screen.Screen { return &stubScreen{} }})

	_, cmd := s.Update(keyPress("r"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Assessment", msg.Screen.Title())
}

func TestFromSlot_Loads(t *testing.T) {
	slots := memSlots{}
	slot := handoff.NewSlot(slots)
	require.NoError(t, slot.Save(context.Background(), fullAnswers()))

	s := NewFromSlot(slot, nil, Config{})
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())

	require.NotNil(t, s.result)
	want := assess.Evaluate(nil, fullAnswers())
	assert.Equal(t, want.Scores, s.result.Scores)
	assert.False(t, s.noData)
}

// noticeScreen records the notice handed over on redirect.
type noticeScreen struct {
	stubScreen
	notice string
}

func (s *noticeScreen) Notify(text string) tea.Cmd {
	s.notice = text
	return func() tea.Msg { return nil }
}

// redirectTarget runs the batch returned on a redirect and returns the
// screen it replaces the results screen with.
func redirectTarget(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batch of notice and replace")
	require.Len(t, batch, 2)
	msg, ok := batch[1]().(router.ReplaceScreenMsg)
	require.True(t, ok)
	return msg.Screen
}

func TestFromSlot_NoDataRedirects(t *testing.T) {
	next := &noticeScreen{}
	slot := handoff.NewSlot(memSlots{})
	s := NewFromSlot(slot, nil, Config{Retake: func() screen.Screen { return next }})

	_, cmd := s.Update(s.Init()())
	assert.True(t, s.noData)
	assert.Same(t, next, redirectTarget(t, cmd))
	assert.Equal(t, noDataText, next.notice)
}

func TestFromSlot_MalformedRedirects(t *testing.T) {
	tests := map[string]string{
		"not a list":   `{"not":"a list"}`,
		"out of range": `[{"questionId":"interest-1","value":7}]`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			next := &noticeScreen{}
			slots := memSlots{handoff.SlotName: []byte(payload)}
			s := NewFromSlot(handoff.NewSlot(slots), nil, Config{Retake: func() screen.Screen { return next }})

			_, cmd := s.Update(s.Init()())
			assert.Nil(t, s.result)
			assert.Same(t, next, redirectTarget(t, cmd))
			assert.Equal(t, noDataText, next.notice)
		})
	}
}

func TestNoSlotRedirectsOnInit(t *testing.T) {
	next := &noticeScreen{}
	s := NewFromSlot(nil, nil, Config{Retake: func() screen.Screen { return next }})

	assert.Same(t, next, redirectTarget(t, s.Init()))
	assert.True(t, s.noData)
}

func TestFromSlot_NoDataWithoutRetake(t *testing.T) {
	s := NewFromSlot(handoff.NewSlot(memSlots{}), nil, Config{})

	s.Update(s.Init()())
	assert.True(t, s.noData)
	assert.Contains(t, s.toast.Text, "No assessment data found")
	assert.Contains(t, s.View(100, 30), "Press Enter to take the assessment")
}

func TestCoachPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"summary": "Good base, sharpen protocols.",
		"strengths": ["Curious about identity"],
		"focus_areas": [{"dimension": "skill", "action": "Read the SAML 2.0 overview"}],
		"resources": ["Okta Academy"]
	}`)})
	svc := coach.NewService(mock, coach.DefaultConfig(), nil)
	r := assess.Evaluate(nil, fullAnswers())
	s := New(r, Config{Coach: svc})

	_, cmd := s.Update(keyPress("c"))
	require.NotNil(t, cmd)
	assert.True(t, s.asking)

	// A second press while pending is ignored.
	_, again := s.Update(keyPress("c"))
	assert.Nil(t, again)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var got *planMsg
	for _, c := range batch {
		if pm, ok := c().(planMsg); ok {
			got = &pm
		}
	}
	require.NotNil(t, got)
	require.NoError(t, got.Err)

	s.Update(*got)
	assert.False(t, s.asking)
	view := s.View(100, 300)
	assert.Contains(t, view, "Good base, sharpen protocols.")
	assert.Contains(t, view, "Curious about identity")
}

func TestCoachFailureShowsNotice(t *testing.T) {
	svc := coach.NewService(llm.NewMockProvider(), coach.DefaultConfig(), nil)
	s := New(assess.Evaluate(nil, fullAnswers()), Config{Coach: svc})

	s.Update(planMsg{Err: &llm.ErrProviderUnavailable{}})
	assert.Contains(t, s.View(100, 300), "coach is unavailable")
}
