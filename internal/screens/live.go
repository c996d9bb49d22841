package screens

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/providers"
	"cubs-led-scoreboard/internal/render"
	"cubs-led-scoreboard/internal/state"
)

const defaultLiveRefresh = 5 * time.Second

// Live paints the in-progress scoreboard: score, inning, count, bases and
// the current matchup. Play data refreshes in the background so a slow
// upstream never stalls a render tick.
type Live struct {
	provider providers.LiveProvider
	refresh  time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	live      providers.LiveGame
	haveLive  bool
	lastFetch time.Time
	fetching  bool

	cursor render.Cursor
	text   string
}

// NewLive builds the live screen. Refresh <= 0 uses the default interval.
func NewLive(provider providers.LiveProvider, refresh time.Duration, logger *slog.Logger) *Live {
	if refresh <= 0 {
		refresh = defaultLiveRefresh
	}
	return &Live{
		provider: provider,
		refresh:  refresh,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Live) Name() domain.Screen { return domain.ScreenInProgress }

func (s *Live) Enter(snap state.Snapshot) {
	s.mu.Lock()
	s.live = providers.LiveGame{}
	s.haveLive = false
	s.lastFetch = time.Time{}
	s.mu.Unlock()
	s.cursor = render.Cursor{}
	s.text = ""
}

func (s *Live) Exit() {}

func (s *Live) Paint(ctx context.Context, f Frame) error {
	s.maybeRefresh(ctx, f.Snapshot.Game.GameID)

	canvas := f.Canvas
	width, _ := canvas.Size()
	game := f.Snapshot.Game
	live, haveLive := s.snapshot()

	canvas.Clear()

	awayRuns, homeRuns := game.AwayScore, game.HomeScore
	if haveLive {
		awayRuns, homeRuns = live.AwayRuns, live.HomeRuns
	}
	canvas.DrawText(2, 1, abbrev(game.AwayTeamName), render.White)
	canvas.DrawText(width-2*render.CharAdvance, 1, fmt.Sprintf("%2d", awayRuns), render.White)
	canvas.DrawText(2, 10, abbrev(game.HomeTeamName), render.CubsBlue)
	canvas.DrawText(width-2*render.CharAdvance, 10, fmt.Sprintf("%2d", homeRuns), render.White)
	canvas.HLine(0, width-1, 19, render.Grey)

	if haveLive {
		s.paintPlayState(canvas, live, width)
	} else {
		canvas.DrawTextCentered(26, "LIVE", render.Green)
	}

	// Matchup marquee along the bottom.
	text := matchupLine(live, haveLive)
	if text != s.text || s.cursor == (render.Cursor{}) {
		s.text = text
		s.cursor = render.NewCursor(width, render.TextWidth(text))
	}
	canvas.DrawText(s.cursor.Position(), 40, s.text, render.Grey)
	s.cursor, _ = s.cursor.Advance(1)

	return canvas.Swap()
}

func (s *Live) paintPlayState(canvas *render.Canvas, live providers.LiveGame, width int) {
	half := "BOT"
	if live.TopOfInning {
		half = "TOP"
	}
	canvas.DrawText(2, 22, fmt.Sprintf("%s %d", half, live.Inning), render.Yellow)
	canvas.DrawText(2, 31, fmt.Sprintf("B%d S%d O%d", live.Balls, live.Strikes, live.Outs), render.White)
	s.paintBases(canvas, width-18, 22, live)
}

// paintBases draws the diamond as three 4x4 squares, filled when occupied.
func (s *Live) paintBases(canvas *render.Canvas, x, y int, live providers.LiveGame) {
	base := func(bx, by int, occupied bool) {
		col := render.Grey
		if occupied {
			col = render.Yellow
		}
		for dy := 0; dy < 4; dy++ {
			for dx := 0; dx < 4; dx++ {
				if occupied || dy == 0 || dy == 3 || dx == 0 || dx == 3 {
					canvas.SetPixel(bx+dx, by+dy, col)
				}
			}
		}
	}
	base(x+6, y, live.RunnerOnSecond)   // second, top center
	base(x+12, y+6, live.RunnerOnFirst) // first, lower right
	base(x, y+6, live.RunnerOnThird)    // third, lower left
}

func (s *Live) maybeRefresh(ctx context.Context, gameID string) {
	if s.provider == nil || gameID == "" {
		return
	}
	now := s.now()

	s.mu.Lock()
	due := !s.fetching && now.Sub(s.lastFetch) >= s.refresh
	if due {
		s.fetching = true
	}
	s.mu.Unlock()
	if !due {
		return
	}

	go func() {
		live, err := s.provider.LiveGame(ctx, gameID)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.fetching = false
		s.lastFetch = s.now()
		if err != nil {
			// Keep painting the last snapshot; the next interval retries.
			logging.Warn(s.logger, "live refresh failed",
				slog.String(logging.FieldGameID, gameID),
				"error", err,
			)
			return
		}
		s.live = live
		s.haveLive = true
	}()
}

func (s *Live) snapshot() (providers.LiveGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live, s.haveLive
}

func matchupLine(live providers.LiveGame, haveLive bool) string {
	if !haveLive || (live.Batter == "" && live.Pitcher == "") {
		return "CUBS BASEBALL LIVE FROM WRIGLEY FIELD"
	}
	return fmt.Sprintf("AB: %s  P: %s", live.Batter, live.Pitcher)
}
