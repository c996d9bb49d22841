// Package offseason rotates through alternate content segments while no
// baseball is scheduled: weather, football, golf, news, trivia, stocks and
// overhead flights, each gated by the display settings and its sport's
// season.
package offseason

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"cubs-led-scoreboard/internal/content"
	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/metrics"
	"cubs-led-scoreboard/internal/render"
	"cubs-led-scoreboard/internal/screens"
	"cubs-led-scoreboard/internal/state"
)

const (
	defaultSegmentDuration = 45 * time.Second

	// lineSeparator joins a segment's lines into one marquee pass.
	lineSeparator = "  -  "
)

// Segment is one rotation entry. A nil Active gate keeps the segment on
// year-round; Duration <= 0 uses the default.
type Segment struct {
	Name     string
	Title    string
	Provider content.Provider
	Duration time.Duration
	Active   func(now time.Time) bool
}

func (s Segment) duration() time.Duration {
	if s.Duration <= 0 {
		return defaultSegmentDuration
	}
	return s.Duration
}

// FootballSeason reports whether the Bears segments should run: September
// through February.
func FootballSeason(now time.Time) bool {
	m := now.Month()
	return m >= time.September || m <= time.February
}

// GolfSeason reports whether the PGA segments should run: January through
// September.
func GolfSeason(now time.Time) bool {
	m := now.Month()
	return m >= time.January && m <= time.September
}

type segState struct {
	lines    []string
	fetching bool
}

// Rotator cycles the enabled segments on a fixed cadence. It implements the
// off-season screen; content fetches run in the background so a slow feed
// never stalls a tick.
type Rotator struct {
	segments []Segment
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	mu     sync.Mutex
	states map[string]*segState

	idx          int
	segmentStart time.Time
	cursor       render.Cursor
	text         string
}

// New builds a rotator over the given segments in display order.
func New(segments []Segment, logger *slog.Logger, recorder *metrics.Recorder) *Rotator {
	return &Rotator{
		segments: segments,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		states:   make(map[string]*segState),
	}
}

func (r *Rotator) Name() domain.Screen { return domain.ScreenOffSeason }

func (r *Rotator) Enter(state.Snapshot) {
	r.idx = -1
	r.segmentStart = time.Time{}
	r.cursor = render.Cursor{}
	r.text = ""
}

func (r *Rotator) Exit() {}

func (r *Rotator) Paint(ctx context.Context, f screens.Frame) error {
	now := r.now()
	seg := r.advance(ctx, now)

	canvas := f.Canvas
	width, height := canvas.Size()
	canvas.Clear()

	if seg == nil {
		canvas.DrawTextCentered((height-render.GlyphHeight)/2, "GO CUBS GO!", render.CubsBlue)
		return canvas.Swap()
	}

	canvas.DrawTextCentered(2, seg.Title, render.CubsBlue)
	canvas.HLine(0, width-1, 12, render.Grey)

	text := r.segmentText(seg)
	if text != r.text || r.cursor == (render.Cursor{}) {
		r.text = text
		r.cursor = render.NewCursor(width, render.TextWidth(text))
	}
	canvas.DrawText(r.cursor.Position(), (height+12-render.GlyphHeight)/2, r.text, render.White)
	r.cursor, _ = r.cursor.Advance(1)

	return canvas.Swap()
}

// advance moves to the next enabled segment when the current one's time is
// up, kicking off its content fetch.
func (r *Rotator) advance(ctx context.Context, now time.Time) *Segment {
	if r.idx >= 0 && now.Sub(r.segmentStart) < r.current().duration() {
		return r.current()
	}

	if r.idx >= 0 {
		done := r.current()
		r.metrics.RecordSegment(done.Name, now.Sub(r.segmentStart))
	}

	next := r.nextEnabled(now)
	if next < 0 {
		r.idx = -1
		return nil
	}
	r.idx = next
	r.segmentStart = now
	r.cursor = render.Cursor{}
	seg := r.current()
	logging.Info(r.logger, "rotation segment started", slog.String(logging.FieldSegment, seg.Name))
	r.fetch(ctx, seg)
	return seg
}

func (r *Rotator) current() *Segment {
	return &r.segments[r.idx]
}

// nextEnabled finds the next active segment after idx, wrapping once.
func (r *Rotator) nextEnabled(now time.Time) int {
	n := len(r.segments)
	for step := 1; step <= n; step++ {
		i := (r.idx + step) % n
		if i < 0 {
			i += n
		}
		seg := r.segments[i]
		if seg.Active == nil || seg.Active(now) {
			return i
		}
	}
	return -1
}

func (r *Rotator) fetch(ctx context.Context, seg *Segment) {
	if seg.Provider == nil {
		return
	}
	r.mu.Lock()
	st, ok := r.states[seg.Name]
	if !ok {
		st = &segState{}
		r.states[seg.Name] = st
	}
	if st.fetching {
		r.mu.Unlock()
		return
	}
	st.fetching = true
	r.mu.Unlock()

	name := seg.Name
	provider := seg.Provider
	go func() {
		lines, err := provider.Fetch(ctx)

		r.mu.Lock()
		defer r.mu.Unlock()
		st := r.states[name]
		st.fetching = false
		if err != nil {
			logging.Warn(r.logger, "segment content fetch failed",
				slog.String(logging.FieldSegment, name),
				"error", err,
			)
			return
		}
		st.lines = lines
	}()
}

func (r *Rotator) segmentText(seg *Segment) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.states[seg.Name]; ok && len(st.lines) > 0 {
		return strings.Join(st.lines, lineSeparator)
	}
	return "LOADING " + seg.Title
}
