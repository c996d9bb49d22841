package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/metrics"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 1 * time.Second
	defaultMaxDelay   = 60 * time.Second
)

// Options bound the backoff loop. Zero values take the defaults above;
// delays grow as min(BaseDelay * 2^attempt, MaxDelay) with no jitter.
type Options struct {
	MaxRetries uint64
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetries
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = defaultBaseDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = defaultMaxDelay
	}
	return o
}

// Executor wraps fallible external calls with bounded exponential backoff.
// It never swallows a terminal failure: after the retry budget is spent the
// last error is returned to the caller.
type Executor struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	timer   backoff.Timer // test seam; nil uses the library's real timer
}

// NewExecutor builds an Executor. Both arguments may be nil.
func NewExecutor(logger *slog.Logger, recorder *metrics.Recorder) *Executor {
	return &Executor{logger: logger, metrics: recorder}
}

// retryable is implemented by errors that know whether they are transient.
// providers.UpstreamError is the usual implementation.
type retryable interface {
	Retryable() bool
}

// IsRetryable classifies an error for the backoff loop. Errors that declare
// themselves terminal propagate immediately; unknown failures are treated
// as transient, matching how network hiccups surface from the stdlib.
func IsRetryable(err error) bool {
	var r retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// Do runs op under the executor's backoff policy. Each retry emits one
// warning; exhaustion emits one error and returns the last failure.
func Do[T any](ctx context.Context, ex *Executor, operation string, opts Options, op func(context.Context) (T, error)) (T, error) {
	opts = opts.withDefaults()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = opts.BaseDelay
	policy.MaxInterval = opts.MaxDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	attempt := 0
	wrapped := func() (T, error) {
		attempt++
		result, err := op(ctx)
		if err != nil && !IsRetryable(err) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}

	notify := func(err error, delay time.Duration) {
		ex.metrics.RecordRetry(operation)
		logging.Warn(ex.logger, "operation failed, retrying",
			slog.String("operation", operation),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Duration("delay", delay),
			"error", err,
		)
	}

	result, err := backoff.RetryNotifyWithTimerAndData(
		wrapped,
		backoff.WithContext(backoff.WithMaxRetries(policy, opts.MaxRetries), ctx),
		notify,
		ex.timer,
	)
	if err != nil {
		logging.Error(ex.logger, "operation failed after retries", err,
			slog.String("operation", operation),
			slog.Int(logging.FieldAttempt, attempt),
		)
	}
	return result, err
}
