package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned answer. A non-nil Err is returned instead of
// a response. StopReason defaults to StopEnd.
type MockResponse struct {
	Content    json.RawMessage
	Usage      Usage
	StopReason string
	Err        error
}

// MockCall is a request seen by MockProvider along with the purpose
// carried by its context.
type MockCall struct {
	Request
	Purpose string
}

// MockProvider answers from a FIFO queue of canned responses. Structured
// responses go through the same truncation and schema checks as real
// providers.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	Calls []MockCall
}

// NewMockProvider queues responses in order.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate pops the next response. An empty queue reports the provider as
// unavailable.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Request: req, Purpose: PurposeFrom(ctx)})
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}
	resp := &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: next.StopReason,
	}
	if resp.StopReason == "" {
		resp.StopReason = StopEnd
	}
	if err := checkResponse(req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse queues another response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount returns how many requests were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
