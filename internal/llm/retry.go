package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryProvider retries transient failures with capped exponential backoff.
type RetryProvider struct {
	inner  Provider
	cfg    RetryConfig
	logger *zap.Logger
}

// WithRetry wraps p with cfg. Each retry is logged at info level; a nil
// logger discards them.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, cfg: cfg, logger: logger}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		err         error
		sawInvalid  bool
		lastAttempt = r.cfg.MaxAttempts - 1
	)
	for attempt := 0; ; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt == lastAttempt || !retryable(err, &sawInvalid) {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		r.logger.Info("retrying llm request",
			append(errorFields(err),
				zap.String("purpose", PurposeFrom(ctx)),
				zap.Int("attempt", attempt+1),
				zap.Duration("wait", wait))...)

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether err is worth another attempt. A schema
// mismatch is retried once per call.
func retryable(err error, sawInvalid *bool) bool {
	switch ErrorKind(err) {
	case KindTimeout, KindCanceled, KindMaxTokens, KindRejected:
		return false
	case KindInvalidResponse:
		if *sawInvalid {
			return false
		}
		*sawInvalid = true
		return true
	default:
		return true
	}
}

// backoff returns the wait before the retry following attempt. A server
// Retry-After hint wins but is capped at MaxWait.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return min(rl.RetryAfter, r.cfg.MaxWait)
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))
	// ±20% jitter
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}
