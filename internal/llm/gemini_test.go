package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGeminiProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "g-key",
		Model:   "gemini-flash",
		BaseURL: server.URL + "/",
	})
	require.NoError(t, err)
	return p
}

func geminiReply(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{
			"promptTokenCount": 40, "candidatesTokenCount": 12, "totalTokenCount": 52,
		},
	}
}

func TestGeminiProvider_PlanRequest(t *testing.T) {
	var path string
	var body map[string]any
	p := newTestGeminiProvider(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiReply(`{"summary":"Ready with some study."}`, "STOP"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an IAM career coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Draft a study plan."}},
		Schema:    summarySchema(),
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"Ready with some study."}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52}, resp.Usage)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
	assert.Equal(t, StopEnd, resp.StopReason)

	assert.True(t, strings.HasSuffix(path, "/models/gemini-2.5-flash:generateContent"), path)
	gen := body["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", gen["responseMimeType"])
	assert.Contains(t, body, "systemInstruction")
}

func TestGeminiProvider_TruncatedPlan(t *testing.T) {
	p := newTestGeminiProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiReply(`{"summary":"Rea`, "MAX_TOKENS"))
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "plan"}},
		Schema:    summarySchema(),
		MaxTokens: 8,
	})
	assert.Equal(t, KindMaxTokens, ErrorKind(err))
}

func TestGeminiProvider_Errors(t *testing.T) {
	tests := map[int]string{
		http.StatusTooManyRequests:    KindRateLimit,
		http.StatusBadRequest:         KindRejected,
		http.StatusServiceUnavailable: KindUnavailable,
	}
	for status, kind := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			p := newTestGeminiProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"code": status, "message": http.StatusText(status)},
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

func TestGeminiModelMapping(t *testing.T) {
	tests := map[string]string{
		"gemini-flash":          "gemini-2.5-flash",
		"gemini-pro":            "gemini-2.5-pro",
		"gemini-2.0-flash-lite": "gemini-2.0-flash-lite",
	}
	for in, want := range tests {
		assert.Equal(t, want, resolveModel(in, geminiModels), in)
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(focusSchema().Definition)

	assert.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 3)
	assert.Equal(t, []string{"will", "skill"}, s.Properties["dimension"].Enum)
	assert.ElementsMatch(t, []string{"dimension", "weeks", "actions"}, s.Required)

	weeks := s.Properties["weeks"]
	assert.Equal(t, genai.TypeInteger, weeks.Type)
	require.NotNil(t, weeks.Minimum)
	require.NotNil(t, weeks.Maximum)
	assert.Equal(t, 1.0, *weeks.Minimum)
	assert.Equal(t, 12.0, *weeks.Maximum)

	actions := s.Properties["actions"]
	assert.Equal(t, genai.TypeArray, actions.Type)
	assert.Equal(t, genai.TypeString, actions.Items.Type)
	require.NotNil(t, actions.MinItems)
	assert.EqualValues(t, 1, *actions.MinItems)
}
