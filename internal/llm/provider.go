package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one response per request. Implementations return the
// typed errors in errors.go so the middleware can tell retryable failures
// from final ones.
type Provider interface {
	// Generate blocks until the model answers or ctx ends. With a Schema
	// set, Content is JSON that validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, after short-name resolution.
	ModelID() string
}

// Request is a single-turn prompt. Coach requests carry a system prompt,
// one user message and the plan schema.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema // nil asks for free text
	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role names the sender of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is kebab-case, unique per definition. It keys the compiled
	// schema cache and is sent as the OpenAI schema name.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a model answer.
type Response struct {
	// Content is the validated JSON object for structured requests and
	// the raw text otherwise.
	Content json.RawMessage
	Usage   Usage
	// Model is the model that served the request, which may differ from
	// ModelID when the provider routes aliases.
	Model string
	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
