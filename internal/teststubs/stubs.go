package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/providers"
)

// StubProvider is a test double for providers.Provider. Schedule results can
// be keyed by date; ByDate wins over Games when both are set.
type StubProvider struct {
	Games  []domain.GameRecord
	ByDate map[string][]domain.GameRecord
	Err    error

	Live    providers.LiveGame
	LiveErr error

	ScheduleCalls atomic.Int32
	LiveCalls     atomic.Int32
	Notify        chan struct{}
}

// Schedule returns the configured games and error while tracking calls.
func (s *StubProvider) Schedule(ctx context.Context, date time.Time, teamID int) ([]domain.GameRecord, error) {
	_ = ctx
	_ = teamID
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.ScheduleCalls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByDate != nil {
		return s.ByDate[date.Format("2006-01-02")], nil
	}
	return s.Games, nil
}

// LiveGame returns the configured snapshot and error while tracking calls.
func (s *StubProvider) LiveGame(ctx context.Context, gameID string) (providers.LiveGame, error) {
	_ = ctx
	s.LiveCalls.Add(1)
	if s.LiveErr != nil {
		return providers.LiveGame{}, s.LiveErr
	}
	live := s.Live
	if live.GameID == "" {
		live.GameID = gameID
	}
	return live, nil
}

// PixelOp records one SetPixel call on the stub framebuffer.
type PixelOp struct {
	X, Y    int
	R, G, B uint8
}

// StubFramebuffer is a test double for render.Framebuffer. It records every
// operation so tests can assert on draw order and content.
type StubFramebuffer struct {
	Width  int
	Height int

	mu     sync.Mutex
	Pixels []PixelOp
	Clears int
	Swaps  int
}

// NewStubFramebuffer returns a stub with the given dimensions.
func NewStubFramebuffer(width, height int) *StubFramebuffer {
	return &StubFramebuffer{Width: width, Height: height}
}

func (f *StubFramebuffer) Size() (int, int) { return f.Width, f.Height }

func (f *StubFramebuffer) SetPixel(x, y int, r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Pixels = append(f.Pixels, PixelOp{X: x, Y: y, R: r, G: g, B: b})
}

func (f *StubFramebuffer) Fill(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Pixels = append(f.Pixels, PixelOp{X: x, Y: y, R: r, G: g, B: b})
		}
	}
}

func (f *StubFramebuffer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Pixels = f.Pixels[:0]
	f.Clears++
}

func (f *StubFramebuffer) Swap() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Swaps++
	return nil
}

// SwapCount returns how often the frame was presented.
func (f *StubFramebuffer) SwapCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Swaps
}

// PixelCount returns how many pixel writes are currently recorded.
func (f *StubFramebuffer) PixelCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Pixels)
}
