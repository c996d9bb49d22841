// Package scheduler drives the render loop: one fixed-rate tick evaluates
// the game state, swaps painters when the screen changes, and dispatches the
// paint. A failed or panicking paint skips the frame and never stops the
// loop.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/metrics"
	"cubs-led-scoreboard/internal/render"
	"cubs-led-scoreboard/internal/screens"
	"cubs-led-scoreboard/internal/state"
)

// DefaultTickInterval paces the scroll speed; every marquee advances one
// pixel per tick.
const DefaultTickInterval = 20 * time.Millisecond

// errorLogInterval throttles repeated paint-failure logs at tick rate.
const errorLogInterval = 5 * time.Second

// Evaluator yields the screen snapshot for the current tick.
type Evaluator interface {
	Evaluate(ctx context.Context) state.Snapshot
}

// Scheduler owns the tick loop and the active painter.
type Scheduler struct {
	machine  Evaluator
	canvas   *render.Canvas
	registry map[domain.Screen]screens.Screen
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	mu         sync.Mutex
	active     screens.Screen
	activeName domain.Screen
	lastErrAt  time.Time
}

// Option adjusts scheduler construction.
type Option func(*Scheduler)

// WithTickInterval overrides the render cadence.
func WithTickInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// New builds a scheduler over the given painters, keyed by screen name.
func New(machine Evaluator, canvas *render.Canvas, painters []screens.Screen, logger *slog.Logger, recorder *metrics.Recorder, opts ...Option) *Scheduler {
	registry := make(map[domain.Screen]screens.Screen, len(painters))
	for _, p := range painters {
		registry[p.Name()] = p
	}
	s := &Scheduler{
		machine:  machine,
		canvas:   canvas,
		registry: registry,
		logger:   logger,
		metrics:  recorder,
		interval: DefaultTickInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run ticks until the context is cancelled. It always returns the context's
// error so group supervision sees a clean shutdown as such.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logging.Info(s.logger, "render loop started",
		slog.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.deactivate()
			logging.Info(s.logger, "render loop stopped")
			return ctx.Err()
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one evaluate-and-paint cycle. Exported so tests and the
// emulator's frame callback can drive the loop directly.
func (s *Scheduler) Tick(ctx context.Context) {
	snap := s.machine.Evaluate(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Screen != s.activeName || s.active == nil {
		s.switchTo(snap)
	}
	if s.active == nil {
		return
	}

	start := s.now()
	err := s.paint(ctx, screens.Frame{Canvas: s.canvas, Now: start, Snapshot: snap})
	s.metrics.RecordRenderTick(string(snap.Screen), s.now().Sub(start), err)
	if err != nil && s.now().Sub(s.lastErrAt) >= errorLogInterval {
		s.lastErrAt = s.now()
		logging.Error(s.logger, "paint failed, frame skipped", err,
			slog.String(logging.FieldScreen, string(snap.Screen)),
		)
	}
}

// paint dispatches to the active screen, converting a panic into a skipped
// frame.
func (s *Scheduler) paint(ctx context.Context, f screens.Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("paint panic: %v", r)
		}
	}()
	return s.active.Paint(ctx, f)
}

func (s *Scheduler) switchTo(snap state.Snapshot) {
	if s.active != nil {
		s.active.Exit()
	}
	next, ok := s.registry[snap.Screen]
	if !ok {
		logging.Warn(s.logger, "no painter registered for screen",
			slog.String(logging.FieldScreen, string(snap.Screen)),
		)
		s.active = nil
		s.activeName = snap.Screen
		return
	}
	next.Enter(snap)
	s.active = next
	s.activeName = snap.Screen
	logging.Info(s.logger, "active screen changed",
		slog.String(logging.FieldScreen, string(snap.Screen)),
		slog.String(logging.FieldGameID, snap.Game.GameID),
	)
}

func (s *Scheduler) deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		s.active.Exit()
		s.active = nil
	}
}

// ActiveScreen reports the screen currently being painted.
func (s *Scheduler) ActiveScreen() domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeName
}
