package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-mini", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)
	return p
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 10, "total_tokens": 40},
	}
}

func TestOpenAIProvider_PlanRequest(t *testing.T) {
	var body map[string]any
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"summary":"Strong candidate."}`, "stop"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an IAM career coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Draft a study plan."}},
		Schema:    summarySchema(),
		MaxTokens: 300,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"Strong candidate."}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 30, OutputTokens: 10, TotalTokens: 40}, resp.Usage)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, StopEnd, resp.StopReason)

	assert.Equal(t, "gpt-4o-mini", body["model"])
	assert.EqualValues(t, 300, body["max_completion_tokens"])
	format := body["response_format"].(map[string]any)
	schema := format["json_schema"].(map[string]any)
	assert.Equal(t, "plan-summary-test", schema["name"])
	assert.Equal(t, true, schema["strict"])
}

func TestOpenAIProvider_TruncatedPlan(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"summary":"Str`, "length"))
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "plan"}},
		Schema:    summarySchema(),
		MaxTokens: 5,
	})
	assert.Equal(t, KindMaxTokens, ErrorKind(err))
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := map[int]string{
		http.StatusTooManyRequests:     KindRateLimit,
		http.StatusUnauthorized:        KindRejected,
		http.StatusInternalServerError: KindUnavailable,
	}
	for status, kind := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": http.StatusText(status), "type": "error"},
				})
			})

			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "plan"}},
				MaxTokens: 100,
			})
			assert.Equal(t, kind, ErrorKind(err))
		})
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "x", "model": "gpt-4o-mini", "choices": []any{}})
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "plan"}}})
	assert.Equal(t, KindInvalidResponse, ErrorKind(err))
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"})
	assert.Error(t, err)

	tests := map[string]string{
		"gpt-mini":     "gpt-4o-mini",
		"gpt":          "gpt-4o",
		"gpt-4.1-mini": "gpt-4.1-mini",
	}
	for name, want := range tests {
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: name})
		require.NoError(t, err)
		assert.Equal(t, want, p.ModelID(), name)
	}
}
