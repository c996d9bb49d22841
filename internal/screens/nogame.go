package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/providers"
	"cubs-led-scoreboard/internal/render"
	"cubs-led-scoreboard/internal/state"
	"cubs-led-scoreboard/internal/timeutil"
)

// standingsTTL bounds how often the division table is re-fetched while the
// marquee is up.
const standingsTTL = time.Hour

// StandingsFunc fetches the division standings for the display's team. A nil
// func disables the standings pass.
type StandingsFunc func(ctx context.Context) ([]providers.StandingRow, error)

// NoGame scrolls the next-game marquee across the middle of the panel.
// Between passes it alternates in context: division standings during the
// regular season, the series line in the postseason.
type NoGame struct {
	teamID    int
	loc       *time.Location
	standings StandingsFunc
	now       func() time.Time

	cursor   render.Cursor
	text     string
	passes   int
	showInfo bool

	mu            sync.Mutex
	standingsLine string
	fetchedAt     time.Time
	fetching      bool
}

// NewNoGame builds the next-game marquee screen.
func NewNoGame(teamID int, loc *time.Location, standings StandingsFunc) *NoGame {
	if loc == nil {
		loc = timeutil.ResolveLocation("")
	}
	return &NoGame{teamID: teamID, loc: loc, standings: standings, now: time.Now}
}

func (s *NoGame) Name() domain.Screen { return domain.ScreenNoGame }

func (s *NoGame) Enter(snap state.Snapshot) {
	s.passes = 0
	s.showInfo = false
	s.text = s.marqueeText(snap)
	s.cursor = render.Cursor{}
}

func (s *NoGame) Exit() {}

func (s *NoGame) Paint(ctx context.Context, f Frame) error {
	canvas := f.Canvas
	width, height := canvas.Size()

	text := s.marqueeText(f.Snapshot)
	if s.showInfo {
		if info := s.betweenPassText(ctx, f.Snapshot); info != "" {
			text = info
		}
	}
	if text != s.text || s.cursor == (render.Cursor{}) {
		s.text = text
		s.cursor = render.NewCursor(width, render.TextWidth(text))
	}

	canvas.Clear()
	y := (height - render.GlyphHeight) / 2
	canvas.DrawText(s.cursor.Position(), y, s.text, render.White)

	var wrapped bool
	s.cursor, wrapped = s.cursor.Advance(1)
	if wrapped {
		s.passes++
		// Every other pass shows standings or the series line instead of
		// the marquee.
		s.showInfo = !s.showInfo && s.betweenPassText(ctx, f.Snapshot) != ""
	}
	return canvas.Swap()
}

// betweenPassText picks the filler shown between marquee passes: the series
// line in the postseason, the division table otherwise. Falls back to the
// series line while standings are still loading.
func (s *NoGame) betweenPassText(ctx context.Context, snap state.Snapshot) string {
	if snap.HasGame && snap.Game.Postseason() {
		return infoText(snap)
	}
	if line := s.standingsText(ctx); line != "" {
		return line
	}
	return infoText(snap)
}

// standingsText returns the cached standings line, kicking off a background
// refresh when stale. Empty until the first fetch lands.
func (s *NoGame) standingsText(ctx context.Context) string {
	if s.standings == nil {
		return ""
	}

	s.mu.Lock()
	line := s.standingsLine
	stale := s.fetchedAt.IsZero() || s.now().Sub(s.fetchedAt) >= standingsTTL
	start := stale && !s.fetching
	if start {
		s.fetching = true
	}
	s.mu.Unlock()

	if start {
		go func() {
			rows, err := s.standings(ctx)

			s.mu.Lock()
			defer s.mu.Unlock()
			s.fetching = false
			if err != nil || len(rows) == 0 {
				return
			}
			s.standingsLine = formatStandings(rows)
			s.fetchedAt = s.now()
		}()
	}
	return line
}

// formatStandings flattens ranked rows into one marquee line, e.g.
// "STANDINGS: MIL 92-54  CHC 88-58 4.0  ...".
func formatStandings(rows []providers.StandingRow) string {
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		part := fmt.Sprintf("%s %d-%d", row.Abbrev, row.Wins, row.Losses)
		if row.GamesBack != "" && row.GamesBack != "-" {
			part += " " + row.GamesBack
		}
		parts = append(parts, part)
	}
	return "STANDINGS: " + strings.Join(parts, "  ")
}

// marqueeText builds e.g. "NEXT GAME: SAT 8/29 VS BREWERS 7:05".
func (s *NoGame) marqueeText(snap state.Snapshot) string {
	if !snap.HasGame {
		return "NO GAME SCHEDULED"
	}
	game := snap.Game
	start := game.ScheduledStart.In(s.loc)
	day := fmt.Sprintf("%s %d/%d", dayAbbrev(start.Weekday()), int(start.Month()), start.Day())
	return fmt.Sprintf("NEXT GAME: %s %s %s", day, opponentLine(game, s.teamID), timeutil.WallClock(game.ScheduledStart, s.loc))
}

// infoText surfaces playoff or series context between marquee passes.
func infoText(snap state.Snapshot) string {
	if !snap.HasGame {
		return ""
	}
	if snap.Game.SeriesStatus != "" {
		return snap.Game.SeriesStatus
	}
	if snap.Game.Postseason() {
		return "POSTSEASON BASEBALL AT WRIGLEY"
	}
	return ""
}

func dayAbbrev(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "SUN"
	case time.Monday:
		return "MON"
	case time.Tuesday:
		return "TUE"
	case time.Wednesday:
		return "WED"
	case time.Thursday:
		return "THU"
	case time.Friday:
		return "FRI"
	case time.Saturday:
		return "SAT"
	}
	return "---"
}
