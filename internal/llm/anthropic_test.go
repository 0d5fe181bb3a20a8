package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5"}
}

func anthropicMessage(text, stopReason string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5",
		"stop_reason": stopReason,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func anthropicFailure(status int, header http.Header) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for k, v := range header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "error", "message": http.StatusText(status)},
		})
	}
}

func TestAnthropicProvider_PlanRequest(t *testing.T) {
	var body map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"summary":"Solid fit for IAM."}`, "end_turn"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an IAM career coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Draft a study plan."}},
		Schema:    summarySchema(),
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"Solid fit for IAM."}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)

	assert.Equal(t, "claude-haiku-4-5", body["model"])
	assert.EqualValues(t, 256, body["max_tokens"])
	assert.Contains(t, body, "output_config")
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].(map[string]any)["role"])
}

func TestAnthropicProvider_TruncatedPlan(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"summary":"Solid`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "plan"}},
		Schema:    summarySchema(),
		MaxTokens: 16,
	})
	var maxTok *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
	assert.Equal(t, 16, maxTok.Limit)
}

func TestAnthropicProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		header http.Header
		kind   string
	}{
		{"rate limit", http.StatusTooManyRequests, http.Header{"Retry-After": {"7"}}, KindRateLimit},
		{"bad key", http.StatusUnauthorized, nil, KindRejected},
		{"server error", http.StatusInternalServerError, nil, KindUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, anthropicFailure(tt.status, tt.header))

			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "plan"}},
				MaxTokens: 100,
			})
			require.Error(t, err)
			assert.Equal(t, tt.kind, ErrorKind(err))
		})
	}
}

func TestAnthropicProvider_RetryAfterHint(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicFailure(http.StatusTooManyRequests, http.Header{"Retry-After": {"7"}}))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "plan"}},
		MaxTokens: 100,
	})
	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
}

func TestNewAnthropicProvider(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"})
	assert.Error(t, err)

	tests := map[string]string{
		"claude-haiku":               "claude-haiku-4-5",
		"claude-sonnet":              "claude-sonnet-4-5",
		"claude-sonnet-4-5-20250929": "claude-sonnet-4-5-20250929",
	}
	for name, want := range tests {
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: name})
		require.NoError(t, err)
		assert.Equal(t, want, p.ModelID(), name)
	}
}
