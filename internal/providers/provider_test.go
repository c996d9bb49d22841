package providers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"cubs-led-scoreboard/internal/domain"
)

type scriptedProvider struct {
	games    []domain.GameRecord
	live     LiveGame
	failures int32
	err      error

	scheduleCalls atomic.Int32
	liveCalls     atomic.Int32
}

func (s *scriptedProvider) Schedule(ctx context.Context, date time.Time, teamID int) ([]domain.GameRecord, error) {
	call := s.scheduleCalls.Add(1)
	if s.err != nil && call <= s.failures {
		return nil, s.err
	}
	if s.err != nil && s.failures == 0 {
		return nil, s.err
	}
	return s.games, nil
}

func (s *scriptedProvider) LiveGame(ctx context.Context, gameID string) (LiveGame, error) {
	s.liveCalls.Add(1)
	if s.err != nil && s.failures == 0 {
		return LiveGame{}, s.err
	}
	return s.live, nil
}

func TestUpstreamErrorRetryClassification(t *testing.T) {
	cases := []struct {
		status    int
		retryable bool
	}{
		{429, true},
		{500, true},
		{503, true},
		{400, false},
		{404, false},
	}
	for _, tc := range cases {
		err := NewUpstreamError("statsapi", "schedule", tc.status, "")
		if err.Retryable() != tc.retryable {
			t.Fatalf("status %d: Retryable() = %v, want %v", tc.status, err.Retryable(), tc.retryable)
		}
	}
}

func TestAsUpstreamErrorUnwraps(t *testing.T) {
	inner := NewUpstreamError("statsapi", "schedule", 502, "bad gateway")
	wrapped := errors.Join(errors.New("fetch failed"), inner)

	got, ok := AsUpstreamError(wrapped)
	if !ok {
		t.Fatal("AsUpstreamError did not find UpstreamError")
	}
	if got.StatusCode != 502 {
		t.Fatalf("StatusCode = %d, want 502", got.StatusCode)
	}

	if _, ok := AsUpstreamError(errors.New("plain")); ok {
		t.Fatal("AsUpstreamError matched a plain error")
	}
}

func TestRateLimitedProviderSpacesScheduleCalls(t *testing.T) {
	inner := &scriptedProvider{games: []domain.GameRecord{{GameID: "g1"}}}
	limited := NewRateLimitedProvider(inner, 10*time.Second, nil).(*rateLimitedProvider)

	clock := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	limited.now = func() time.Time { return clock }

	if wait := limited.reserve(); wait != 0 {
		t.Fatalf("first reserve wait = %v, want 0", wait)
	}
	clock = clock.Add(3 * time.Second)
	if wait := limited.reserve(); wait != 7*time.Second {
		t.Fatalf("second reserve wait = %v, want 7s", wait)
	}
	clock = clock.Add(30 * time.Second)
	if wait := limited.reserve(); wait != 0 {
		t.Fatalf("reserve after long idle wait = %v, want 0", wait)
	}
}

func TestRateLimitedProviderDoesNotThrottleLive(t *testing.T) {
	inner := &scriptedProvider{live: LiveGame{GameID: "g1", Inning: 3}}
	limited := NewRateLimitedProvider(inner, time.Hour, nil)

	for i := 0; i < 3; i++ {
		if _, err := limited.LiveGame(context.Background(), "g1"); err != nil {
			t.Fatalf("LiveGame returned error: %v", err)
		}
	}
	if got := inner.liveCalls.Load(); got != 3 {
		t.Fatalf("live calls = %d, want 3", got)
	}
}

func TestRateLimitedProviderNilGuards(t *testing.T) {
	limited := NewRateLimitedProvider(nil, time.Second, nil)
	if _, err := limited.Schedule(context.Background(), time.Now(), 112); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}
