package screens

import (
	"context"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/render"
	"cubs-led-scoreboard/internal/state"
	"cubs-led-scoreboard/internal/timeutil"
)

// statusRepollTicks forces a schedule re-scan after this many ticks on a
// pregame screen, so a late status flip (delay lifted, game called) does not
// wait for the next poller cycle.
const statusRepollTicks = 1000

// Pregame covers the warmup, delayed and postponed screens: a banner, the
// matchup with its start time, and the probable pitchers scrolling along
// the bottom row.
type Pregame struct {
	name        domain.Screen
	banner      string
	bannerColor render.Color
	teamID      int
	loc         *time.Location
	invalidate  func()

	cursor render.Cursor
	text   string
	ticks  int
}

// NewWarmup builds the pregame screen shown from warmup until first pitch.
func NewWarmup(teamID int, loc *time.Location, invalidate func()) *Pregame {
	return newPregame(domain.ScreenWarmup, "CUBS BASEBALL", render.CubsBlue, teamID, loc, invalidate)
}

// NewDelayed builds the rain-delay variant.
func NewDelayed(teamID int, loc *time.Location, invalidate func()) *Pregame {
	return newPregame(domain.ScreenDelayed, "DELAYED", render.Yellow, teamID, loc, invalidate)
}

// NewPostponed builds the postponed variant.
func NewPostponed(teamID int, loc *time.Location, invalidate func()) *Pregame {
	return newPregame(domain.ScreenPostponed, "POSTPONED", render.Red, teamID, loc, invalidate)
}

func newPregame(name domain.Screen, banner string, col render.Color, teamID int, loc *time.Location, invalidate func()) *Pregame {
	if loc == nil {
		loc = timeutil.ResolveLocation("")
	}
	return &Pregame{
		name:        name,
		banner:      banner,
		bannerColor: col,
		teamID:      teamID,
		loc:         loc,
		invalidate:  invalidate,
	}
}

func (s *Pregame) Name() domain.Screen { return s.name }

func (s *Pregame) Enter(snap state.Snapshot) {
	s.ticks = 0
	s.text = pitcherLine(snap.Game)
	s.cursor = render.Cursor{}
}

func (s *Pregame) Exit() {}

func (s *Pregame) Paint(ctx context.Context, f Frame) error {
	_ = ctx
	canvas := f.Canvas
	width, height := canvas.Size()

	text := pitcherLine(f.Snapshot.Game)
	if text != s.text || s.cursor == (render.Cursor{}) {
		s.text = text
		s.cursor = render.NewCursor(width, render.TextWidth(text))
	}

	canvas.Clear()
	canvas.DrawTextCentered(2, s.banner, s.bannerColor)
	canvas.HLine(0, width-1, 14, render.Grey)

	game := f.Snapshot.Game
	canvas.DrawTextCentered(18, opponentLine(game, s.teamID), render.White)
	canvas.DrawTextCentered(28, timeutil.WallClock(game.ScheduledStart, s.loc), render.Green)

	canvas.DrawText(s.cursor.Position(), height-render.GlyphHeight-1, s.text, render.Grey)
	s.cursor, _ = s.cursor.Advance(1)

	s.ticks++
	if s.ticks%statusRepollTicks == 0 && s.invalidate != nil {
		s.invalidate()
	}
	return canvas.Swap()
}

// pitcherLine formats the probable pitchers for the bottom marquee.
func pitcherLine(game domain.GameRecord) string {
	switch {
	case game.AwayPitcher != "" && game.HomePitcher != "":
		return game.AwayPitcher + " VS " + game.HomePitcher
	case game.HomePitcher != "":
		return game.HomePitcher
	case game.AwayPitcher != "":
		return game.AwayPitcher
	}
	return "PROBABLES TBA"
}
