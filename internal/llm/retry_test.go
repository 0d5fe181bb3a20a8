package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func planResponse() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"summary":"ok"}`)}
}

func TestRetry(t *testing.T) {
	down := &ErrProviderUnavailable{Status: 503, Err: errors.New("down")}

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   string // error kind, empty for success
		wantCalls int
	}{
		{"first attempt", []MockResponse{planResponse()}, "", 1},
		{"transient then success", []MockResponse{{Err: down}, planResponse()}, "", 2},
		{"all attempts fail", []MockResponse{{Err: down}, {Err: down}, {Err: down}, planResponse()}, KindUnavailable, 3},
		{"rate limit then success", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, planResponse()}, "", 2},
		{"rejected is final", []MockResponse{{Err: &ErrRejected{Status: 401, Err: errors.New("bad key")}}, planResponse()}, KindRejected, 1},
		{"truncation is final", []MockResponse{{Err: &ErrMaxTokensExceeded{Limit: 10}}, planResponse()}, KindMaxTokens, 1},
		{"invalid retried once", []MockResponse{{Content: json.RawMessage(`{}`)}, planResponse()}, "", 2},
		{"invalid twice is final", []MockResponse{{Content: json.RawMessage(`{}`)}, {Content: json.RawMessage(`[]`)}, planResponse()}, KindInvalidResponse, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig(), nil)

			resp, err := p.Generate(context.Background(), Request{Schema: summarySchema()})
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.JSONEq(t, `{"summary":"ok"}`, string(resp.Content))
			} else {
				assert.Equal(t, tt.wantErr, ErrorKind(err))
			}
			assert.Equal(t, tt.wantCalls, mock.CallCount())
		})
	}
}

func TestRetry_LogsEachRetry(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Hour}},
		planResponse(),
	)
	p := WithRetry(mock, retryConfig(), zap.New(core))

	_, err := p.Generate(WithPurpose(context.Background(), PurposeCoach), Request{})
	require.NoError(t, err)

	entries := logs.FilterMessage("retrying llm request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, KindRateLimit, fields["error_kind"])
	assert.Equal(t, PurposeCoach, fields["purpose"])
	assert.EqualValues(t, 1, fields["attempt"])
	// the one hour hint is capped at MaxWait
	assert.Equal(t, retryConfig().MaxWait, fields["wait"])
}

func TestRetry_StopsWhenContextEnds(t *testing.T) {
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, planResponse())
	p := WithRetry(mock, cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := p.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_ZeroAttemptsStillCalls(t *testing.T) {
	mock := NewMockProvider(planResponse())
	p := WithRetry(mock, RetryConfig{}, nil)

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, mock.CallCount())
}
