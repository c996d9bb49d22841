package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cubs-led-scoreboard/internal/domain"
)

// rateLimitedProvider enforces a minimum interval between schedule calls to
// stay inside upstream quotas. Live calls are not throttled; they already
// run on a fixed refresh interval.
type rateLimitedProvider struct {
	next     Provider
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewRateLimitedProvider returns a Provider whose Schedule calls are spaced
// at least interval apart. Calls block until the interval elapses.
func NewRateLimitedProvider(next Provider, interval time.Duration, logger *slog.Logger) Provider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) Schedule(ctx context.Context, date time.Time, teamID int) ([]domain.GameRecord, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if wait := p.reserve(); wait > 0 {
		logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "schedule fetch throttled", slog.Duration("wait", wait))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return p.next.Schedule(ctx, date, teamID)
}

func (p *rateLimitedProvider) LiveGame(ctx context.Context, gameID string) (LiveGame, error) {
	if p == nil || p.next == nil {
		return LiveGame{}, ErrProviderUnavailable
	}
	return p.next.LiveGame(ctx, gameID)
}

// reserve claims the next call slot and returns how long the caller must
// wait before using it.
func (p *rateLimitedProvider) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	next := p.last.Add(p.interval)
	if p.last.IsZero() || !next.After(now) {
		p.last = now
		return 0
	}
	p.last = next
	return next.Sub(now)
}
