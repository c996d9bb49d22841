package providers

import (
	"context"
	"time"

	"cubs-led-scoreboard/internal/domain"
)

// ScheduleProvider fetches the normalized schedule for one team on one date.
// The date's calendar day is interpreted in the provider's configured
// timezone; an empty slice means no game is scheduled that day.
type ScheduleProvider interface {
	Schedule(ctx context.Context, date time.Time, teamID int) ([]domain.GameRecord, error)
}

// LiveProvider fetches the play-by-play snapshot of a single game.
type LiveProvider interface {
	LiveGame(ctx context.Context, gameID string) (LiveGame, error)
}

// Provider combines both capabilities.
type Provider interface {
	ScheduleProvider
	LiveProvider
}

// StandingsProvider fetches the division standings for the division the
// given team plays in.
type StandingsProvider interface {
	Standings(ctx context.Context, leagueID, teamID int) ([]StandingRow, error)
}

// StandingRow is one team's line in the division standings, ordered by rank.
// GamesBack keeps the upstream formatting ("-" for the leader, "4.5" behind).
type StandingRow struct {
	Abbrev    string `json:"abbrev"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	GamesBack string `json:"gamesBack"`
}

// LiveGame is a point-in-time snapshot of an in-progress game. It is
// replaced wholesale on every live refresh.
type LiveGame struct {
	GameID string            `json:"gameId"`
	Status domain.GameStatus `json:"status"`

	HomeRuns   int `json:"homeRuns"`
	AwayRuns   int `json:"awayRuns"`
	HomeHits   int `json:"homeHits"`
	AwayHits   int `json:"awayHits"`
	HomeErrors int `json:"homeErrors"`
	AwayErrors int `json:"awayErrors"`

	Inning      int  `json:"inning"`
	TopOfInning bool `json:"topOfInning"`
	Balls       int  `json:"balls"`
	Strikes     int  `json:"strikes"`
	Outs        int  `json:"outs"`

	Batter  string `json:"batter,omitempty"`
	Pitcher string `json:"pitcher,omitempty"`

	RunnerOnFirst  bool `json:"runnerOnFirst"`
	RunnerOnSecond bool `json:"runnerOnSecond"`
	RunnerOnThird  bool `json:"runnerOnThird"`
}
