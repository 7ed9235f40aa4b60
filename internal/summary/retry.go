package summary

import (
	"context"
	"log/slog"
	"time"

	"boxscore-service/internal/domain"
	"boxscore-service/internal/logging"
	"boxscore-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingGenerator wraps a Generator with retry/backoff behavior and
// per-attempt metrics.
type retryingGenerator struct {
	inner       Generator
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingGenerator wraps the given generator with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingGenerator(inner Generator, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) Generator {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingGenerator{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingGenerator) Summarize(ctx context.Context, state domain.GameState) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		text, err := r.inner.Summarize(ctx, state)
		r.metrics.RecordGeneratorAttempt(r.name, time.Since(start), err)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "summary generation retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		if rl, ok := AsRateLimitError(err); ok && rl.RetryAfter > delay {
			delay = rl.RetryAfter
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "summary generation failed", "attempts", r.maxAttempts, "err", lastErr)
	return "", lastErr
}

func (r *retryingGenerator) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		args = append(args, slog.String(logging.FieldGenerator, r.name))
		logger.Warn(msg, args...)
	}
}
