package providers

import (
	"context"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/retry"
)

// retryingProvider wraps a Provider with the shared backoff policy. Terminal
// upstream errors (4xx) pass through untouched; transient ones are retried
// until the budget is spent.
type retryingProvider struct {
	inner Provider
	ex    *retry.Executor
	opts  retry.Options
}

// NewRetryingProvider wraps the given provider with bounded retries.
func NewRetryingProvider(inner Provider, ex *retry.Executor, opts retry.Options) Provider {
	return &retryingProvider{inner: inner, ex: ex, opts: opts}
}

func (r *retryingProvider) Schedule(ctx context.Context, date time.Time, teamID int) ([]domain.GameRecord, error) {
	if r == nil || r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return retry.Do(ctx, r.ex, "schedule", r.opts, func(ctx context.Context) ([]domain.GameRecord, error) {
		return r.inner.Schedule(ctx, date, teamID)
	})
}

func (r *retryingProvider) LiveGame(ctx context.Context, gameID string) (LiveGame, error) {
	if r == nil || r.inner == nil {
		return LiveGame{}, ErrProviderUnavailable
	}
	return retry.Do(ctx, r.ex, "live_game", r.opts, func(ctx context.Context) (LiveGame, error) {
		return r.inner.LiveGame(ctx, gameID)
	})
}
