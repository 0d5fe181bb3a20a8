package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/iamfit/internal/store"
)

func TestMockProvider_AnswersInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"first"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`plain text`)},
	)

	resp, err := mock.Generate(context.Background(), Request{Schema: summarySchema()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"first"}`, string(resp.Content))
	assert.Equal(t, 15, resp.Usage.TotalTokens)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "mock", resp.Model)

	resp, err = mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "plain text", string(resp.Content))

	_, err = mock.Generate(context.Background(), Request{})
	assert.Equal(t, KindUnavailable, ErrorKind(err))
	assert.Equal(t, 3, mock.CallCount())
}

func TestMockProvider_RecordsPurpose(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}, MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(WithPurpose(context.Background(), PurposeCoach), Request{System: "sys"})
	_, _ = mock.Generate(context.Background(), Request{})

	require.Len(t, mock.Calls, 2)
	assert.Equal(t, "sys", mock.Calls[0].System)
	assert.Equal(t, PurposeCoach, mock.Calls[0].Purpose)
	assert.Equal(t, "unknown", mock.Calls[1].Purpose)
}

func TestMockProvider_ChecksStructuredOutput(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"other":1}`)},
		MockResponse{Content: json.RawMessage(`{"summ`), StopReason: StopMaxTokens},
		MockResponse{Err: &ErrRateLimit{}},
	)
	req := Request{Schema: summarySchema(), MaxTokens: 20}

	_, err := mock.Generate(context.Background(), req)
	assert.Equal(t, KindInvalidResponse, ErrorKind(err))
	_, err = mock.Generate(context.Background(), req)
	assert.Equal(t, KindMaxTokens, ErrorKind(err))
	_, err = mock.Generate(context.Background(), req)
	assert.Equal(t, KindRateLimit, ErrorKind(err))
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		cfg     Config
		wantErr string
	}{
		"anthropic without key": {Config{Provider: ProviderAnthropic}, "llm.anthropic.api_key"},
		"anthropic with key":    {Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, ""},
		"gemini without key":    {Config{Provider: ProviderGemini}, "llm.gemini.api_key"},
		"openrouter with key":   {Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "k"}}, ""},
		"mock needs no key":     {Config{Provider: ProviderMock}, ""},
		"unknown provider":      {Config{Provider: "llama"}, "unknown LLM provider"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

type recordingEvents struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (r *recordingEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestLoggingProvider_RecordsEvent(t *testing.T) {
	events := &recordingEvents{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"ok"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	p := WithLogging(mock, ProviderMock, events, zap.NewNop())

	ctx := WithPurpose(context.Background(), PurposeCoach)
	_, err := p.Generate(ctx, Request{System: "coach", Messages: []Message{{Role: RoleUser, Content: "plan"}}})
	require.NoError(t, err)

	require.Len(t, events.events, 1)
	ev := events.events[0]
	assert.Equal(t, ProviderMock, ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, PurposeCoach, ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, `{"summary":"ok"}`, ev.ResponseBody)
	assert.Contains(t, ev.RequestBody, "[system]\ncoach")
	assert.Contains(t, ev.RequestBody, "[user]\nplan")
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	events := &recordingEvents{}
	p := WithLogging(NewMockProvider(), ProviderMock, events, nil)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	require.Len(t, events.events, 1)
	assert.False(t, events.events[0].Success)
	assert.NotEmpty(t, events.events[0].ErrorMessage)
	assert.Equal(t, "unknown", events.events[0].Purpose)
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeoutProvider(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "blocking", p.ModelID())
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.openai.api_key")
}

func TestDiscoverConfig(t *testing.T) {
	for _, env := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(env, "")
	}
	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
}
