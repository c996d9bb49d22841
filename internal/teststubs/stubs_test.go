package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"cubs-led-scoreboard/internal/domain"
)

func TestStubProviderTracksCalls(t *testing.T) {
	wantErr := errors.New("boom")
	p := &StubProvider{Games: []domain.GameRecord{{GameID: "g1"}}, Err: wantErr}
	if _, got := p.Schedule(context.Background(), time.Now(), 112); !errors.Is(got, wantErr) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.ScheduleCalls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.ScheduleCalls.Load())
	}
}

func TestStubProviderByDate(t *testing.T) {
	p := &StubProvider{
		ByDate: map[string][]domain.GameRecord{
			"2026-08-26": {{GameID: "g1"}},
		},
	}

	games, err := p.Schedule(context.Background(), time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), 112)
	if err != nil || len(games) != 1 {
		t.Fatalf("expected one game, got %v err %v", games, err)
	}

	games, err = p.Schedule(context.Background(), time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), 112)
	if err != nil || len(games) != 0 {
		t.Fatalf("expected empty day, got %v err %v", games, err)
	}
}

func TestStubFramebufferRecordsOps(t *testing.T) {
	fb := NewStubFramebuffer(96, 48)

	w, h := fb.Size()
	if w != 96 || h != 48 {
		t.Fatalf("size = %dx%d, want 96x48", w, h)
	}

	fb.SetPixel(1, 2, 255, 0, 0)
	if fb.PixelCount() != 1 {
		t.Fatalf("pixel count = %d, want 1", fb.PixelCount())
	}

	if err := fb.Swap(); err != nil {
		t.Fatalf("Swap returned error: %v", err)
	}
	if fb.SwapCount() != 1 {
		t.Fatalf("swap count = %d, want 1", fb.SwapCount())
	}

	fb.Clear()
	if fb.PixelCount() != 0 {
		t.Fatalf("pixel count after clear = %d, want 0", fb.PixelCount())
	}
}
