package screens

import (
	"context"
	"fmt"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/render"
	"cubs-led-scoreboard/internal/state"
)

// GameOver shows the final score until the next game takes over. A Cubs win
// gets the W banner the flag at Wrigley flies.
type GameOver struct {
	teamID int
}

// NewGameOver builds the final-score screen.
func NewGameOver(teamID int) *GameOver {
	return &GameOver{teamID: teamID}
}

func (s *GameOver) Name() domain.Screen { return domain.ScreenGameOver }

func (s *GameOver) Enter(snap state.Snapshot) {}

func (s *GameOver) Exit() {}

func (s *GameOver) Paint(ctx context.Context, f Frame) error {
	_ = ctx
	canvas := f.Canvas
	width, _ := canvas.Size()
	game := f.Snapshot.Game

	canvas.Clear()

	banner, col := resultBanner(game, s.teamID)
	canvas.DrawTextCentered(2, banner, col)
	canvas.HLine(0, width-1, 12, render.Grey)

	canvas.DrawText(2, 16, abbrev(game.AwayTeamName), render.White)
	canvas.DrawText(width-3*render.CharAdvance, 16, fmt.Sprintf("%3d", game.AwayScore), render.White)
	canvas.DrawText(2, 26, abbrev(game.HomeTeamName), render.CubsBlue)
	canvas.DrawText(width-3*render.CharAdvance, 26, fmt.Sprintf("%3d", game.HomeScore), render.White)

	canvas.DrawTextCentered(38, "FINAL", render.Grey)
	return canvas.Swap()
}

// resultBanner picks the headline: the W for a Cubs win, the L otherwise,
// or a plain GAME OVER when the Cubs were not playing.
func resultBanner(game domain.GameRecord, teamID int) (string, render.Color) {
	var cubs, opp int
	switch teamID {
	case game.HomeTeamID:
		cubs, opp = game.HomeScore, game.AwayScore
	case game.AwayTeamID:
		cubs, opp = game.AwayScore, game.HomeScore
	default:
		return "GAME OVER", render.White
	}
	if cubs > opp {
		return "CUBS WIN!", render.White
	}
	if cubs < opp {
		return "CUBS LOSE", render.CubsBlue
	}
	return "GAME OVER", render.White
}
