package providers

import (
	"context"
	"log/slog"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/metrics"
)

// logWithProvider emits a log entry if logger is non-nil and always includes the provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}

// instrumentedProvider records per-call metrics and debug logs around the
// wrapped provider. It sits closest to the real client so retries show up
// as individual attempts.
type instrumentedProvider struct {
	next    Provider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps next with call metrics and logging under the
// given provider name.
func NewInstrumentedProvider(next Provider, name string, logger *slog.Logger, recorder *metrics.Recorder) Provider {
	return &instrumentedProvider{
		next:    next,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) Schedule(ctx context.Context, date time.Time, teamID int) ([]domain.GameRecord, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	games, err := p.next.Schedule(ctx, date, teamID)
	p.record(ctx, "schedule", start, err, slog.String(logging.FieldDate, date.Format("2006-01-02")), slog.Int(logging.FieldCount, len(games)))
	return games, err
}

func (p *instrumentedProvider) LiveGame(ctx context.Context, gameID string) (LiveGame, error) {
	if p == nil || p.next == nil {
		return LiveGame{}, ErrProviderUnavailable
	}
	start := p.now()
	live, err := p.next.LiveGame(ctx, gameID)
	p.record(ctx, "live_game", start, err, slog.String(logging.FieldGameID, gameID))
	return live, err
}

func (p *instrumentedProvider) record(ctx context.Context, operation string, start time.Time, err error, args ...any) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	if err != nil {
		args = append(args, slog.String("operation", operation), slog.Duration("elapsed", elapsed), "error", err)
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider call failed", args...)
		return
	}
	args = append(args, slog.String("operation", operation), slog.Duration("elapsed", elapsed))
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "provider call succeeded", args...)
}
