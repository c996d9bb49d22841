package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/retry"
)

func TestRetryingProviderRecoversFromTransientErrors(t *testing.T) {
	inner := &scriptedProvider{
		games:    []domain.GameRecord{{GameID: "g1"}},
		err:      NewUpstreamError("statsapi", "schedule", 503, "unavailable"),
		failures: 2,
	}
	p := NewRetryingProvider(inner, retry.NewExecutor(nil, nil), retry.Options{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   2 * time.Millisecond,
	})

	games, err := p.Schedule(context.Background(), time.Now(), 112)
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}
	if len(games) != 1 || games[0].GameID != "g1" {
		t.Fatalf("games = %v, want one game g1", games)
	}
	if got := inner.scheduleCalls.Load(); got != 3 {
		t.Fatalf("schedule calls = %d, want 3", got)
	}
}

func TestRetryingProviderStopsOnTerminalError(t *testing.T) {
	terminal := NewUpstreamError("statsapi", "live_game", 404, "game not found")
	inner := &scriptedProvider{err: terminal}
	p := NewRetryingProvider(inner, retry.NewExecutor(nil, nil), retry.Options{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
	})

	_, err := p.LiveGame(context.Background(), "missing")
	if !errors.Is(err, terminal) {
		t.Fatalf("err = %v, want %v", err, terminal)
	}
	if got := inner.liveCalls.Load(); got != 1 {
		t.Fatalf("live calls = %d, want 1", got)
	}
}

func TestRetryingProviderNilGuard(t *testing.T) {
	p := NewRetryingProvider(nil, retry.NewExecutor(nil, nil), retry.Options{})
	if _, err := p.Schedule(context.Background(), time.Now(), 112); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}
