package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrRateLimit is returned when the provider answers 429.
type ErrRateLimit struct {
	// RetryAfter is the server's Retry-After hint, zero when absent.
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is returned when the output is not JSON or does not
// match the schema named in Schema.
type ErrInvalidResponse struct {
	Schema  string
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	if e.Schema != "" {
		return fmt.Sprintf("invalid %s response: %v", e.Schema, e.Err)
	}
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers 5xx answers and transport failures. Status
// is zero when no HTTP response arrived.
type ErrProviderUnavailable struct {
	Status int
	Err    error
}

func (e *ErrProviderUnavailable) Error() string {
	switch {
	case e.Err == nil:
		return "LLM provider unavailable"
	case e.Status != 0:
		return fmt.Sprintf("LLM provider unavailable (HTTP %d): %v", e.Status, e.Err)
	default:
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRejected is returned for 4xx answers other than 429: a bad key, an
// unknown model or a malformed request. Retrying will not help.
type ErrRejected struct {
	Status int
	Err    error
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("LLM provider rejected the request (HTTP %d): %v", e.Status, e.Err)
}

func (e *ErrRejected) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is returned when structured output was cut off at
// Limit tokens. Content holds the truncated text.
type ErrMaxTokensExceeded struct {
	Limit   int
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("LLM response truncated at %d tokens", e.Limit)
}

// fromStatus classifies a provider SDK error by its HTTP status. header may
// be nil when the SDK does not expose the response.
func fromStatus(status int, header http.Header, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{RetryAfter: retryAfter(header, time.Now()), Err: err}
	case status >= 400 && status < 500:
		return &ErrRejected{Status: status, Err: err}
	default:
		return &ErrProviderUnavailable{Status: status, Err: err}
	}
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP
// date. It returns zero when the header is missing or unparsable.
func retryAfter(header http.Header, now time.Time) time.Duration {
	v := header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// Error kinds reported by ErrorKind.
const (
	KindTimeout         = "timeout"
	KindCanceled        = "canceled"
	KindRateLimit       = "rate_limit"
	KindInvalidResponse = "invalid_response"
	KindMaxTokens       = "max_tokens"
	KindRejected        = "rejected"
	KindUnavailable     = "unavailable"
	KindOther           = "other"
)

// ErrorKind names the class of err for logs and events. It returns "" for
// a nil error.
func ErrorKind(err error) string {
	var (
		rl      *ErrRateLimit
		inv     *ErrInvalidResponse
		maxTok  *ErrMaxTokensExceeded
		rej     *ErrRejected
		unavail *ErrProviderUnavailable
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.As(err, &rl):
		return KindRateLimit
	case errors.As(err, &inv):
		return KindInvalidResponse
	case errors.As(err, &maxTok):
		return KindMaxTokens
	case errors.As(err, &rej):
		return KindRejected
	case errors.As(err, &unavail):
		return KindUnavailable
	default:
		return KindOther
	}
}

// errorFields returns the zap fields describing err.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.String("error_kind", ErrorKind(err)), zap.Error(err)}

	var (
		rl      *ErrRateLimit
		rej     *ErrRejected
		unavail *ErrProviderUnavailable
		inv     *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &rl) && rl.RetryAfter > 0:
		fields = append(fields, zap.Duration("retry_after", rl.RetryAfter))
	case errors.As(err, &rej):
		fields = append(fields, zap.Int("status", rej.Status))
	case errors.As(err, &unavail) && unavail.Status != 0:
		fields = append(fields, zap.Int("status", unavail.Status))
	case errors.As(err, &inv) && inv.Schema != "":
		fields = append(fields, zap.String("schema", inv.Schema))
	}
	return fields
}
