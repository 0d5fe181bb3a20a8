package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summarySchema() *Schema {
	return &Schema{
		Name: "plan-summary-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
			},
			"required": []any{"summary"},
		},
	}
}

func focusSchema() *Schema {
	return &Schema{
		Name: "focus-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"dimension": map[string]any{"type": "string", "enum": []any{"will", "skill"}},
				"weeks":     map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
				"actions": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
			},
			"required":             []any{"dimension", "weeks", "actions"},
			"additionalProperties": false,
		},
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"valid", `{"dimension":"skill","weeks":4,"actions":["Lab SAML SSO"]}`, true},
		{"not json", `{"dimension":`, false},
		{"missing field", `{"dimension":"skill","weeks":4}`, false},
		{"unknown enum", `{"dimension":"luck","weeks":4,"actions":["x"]}`, false},
		{"below minimum", `{"dimension":"will","weeks":0,"actions":["x"]}`, false},
		{"fractional integer", `{"dimension":"will","weeks":2.5,"actions":["x"]}`, false},
		{"empty list", `{"dimension":"will","weeks":2,"actions":[]}`, false},
		{"extra field", `{"dimension":"will","weeks":2,"actions":["x"],"note":"y"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContent(focusSchema(), json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, "focus-test", inv.Schema)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateContent_CachesCompiledSchema(t *testing.T) {
	require.NoError(t, validateContent(summarySchema(), json.RawMessage(`{"summary":"ok"}`)))

	first, ok := compiledSchemas.Load("plan-summary-test")
	require.True(t, ok)
	require.NoError(t, validateContent(summarySchema(), json.RawMessage(`{"summary":"again"}`)))
	again, _ := compiledSchemas.Load("plan-summary-test")
	assert.Same(t, first, again)
}

func TestCheckResponse(t *testing.T) {
	free := Request{MaxTokens: 50}
	assert.NoError(t, checkResponse(free, &Response{Content: json.RawMessage(`plain text`), StopReason: StopMaxTokens}))

	structured := Request{Schema: summarySchema(), MaxTokens: 50}
	assert.NoError(t, checkResponse(structured, &Response{Content: json.RawMessage(`{"summary":"ok"}`), StopReason: StopEnd}))

	err := checkResponse(structured, &Response{Content: json.RawMessage(`{"summ`), StopReason: StopMaxTokens})
	var maxTok *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
	assert.Equal(t, 50, maxTok.Limit)
	assert.Equal(t, KindMaxTokens, ErrorKind(err))

	err = checkResponse(structured, &Response{Content: json.RawMessage(`{}`), StopReason: StopEnd})
	assert.Equal(t, KindInvalidResponse, ErrorKind(err))
}
