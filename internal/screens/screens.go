// Package screens holds one painter per display mode. The scheduler owns
// which screen is active; screens own their per-activation state (scroll
// cursors, cached live data) and reset it on Enter.
package screens

import (
	"context"
	"strings"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/render"
	"cubs-led-scoreboard/internal/state"
)

// Frame carries the per-tick inputs a screen paints from.
type Frame struct {
	Canvas   *render.Canvas
	Now      time.Time
	Snapshot state.Snapshot
}

// Screen paints one display mode. Enter and Exit bracket the time the
// screen is active; Paint runs once per render tick.
type Screen interface {
	Name() domain.Screen
	Enter(snap state.Snapshot)
	Exit()
	Paint(ctx context.Context, f Frame) error
}

// abbrev shortens a club name to the three-letter panel form, e.g.
// "Chicago Cubs" -> "CUB".
func abbrev(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "---"
	}
	last := strings.ToUpper(fields[len(fields)-1])
	if len(last) >= 3 {
		return last[:3]
	}
	return last
}

// opponentLine renders the matchup from the Cubs' point of view:
// "VS BREWERS" at home, "AT CARDINALS" on the road.
func opponentLine(game domain.GameRecord, teamID int) string {
	if game.HomeTeamID == teamID {
		return "VS " + clubName(game.AwayTeamName)
	}
	return "AT " + clubName(game.HomeTeamName)
}

// clubName strips the city, keeping the nickname: "Milwaukee Brewers" ->
// "BREWERS".
func clubName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[len(fields)-1])
}
