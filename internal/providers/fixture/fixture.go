package fixture

import (
	"context"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/providers"
)

// Provider returns a static schedule useful for local display testing
// without hitting the real schedule API.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// Schedule returns one deterministic home game starting two hours from now
// on the requested date.
func (p *Provider) Schedule(ctx context.Context, date time.Time, teamID int) ([]domain.GameRecord, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour).Add(2 * time.Hour)
	if !date.IsZero() {
		d := date.UTC()
		start = time.Date(d.Year(), d.Month(), d.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC)
	}

	return []domain.GameRecord{
		{
			GameID:         "fixture-1",
			Status:         domain.StatusScheduled,
			HomeTeamID:     teamID,
			AwayTeamID:     158,
			HomeTeamName:   "Chicago Cubs",
			AwayTeamName:   "Milwaukee Brewers",
			ScheduledStart: start,
			GameType:       domain.TypeRegular,
			Doubleheader:   domain.DoubleheaderNone,
			HomePitcher:    "J. Steele",
			AwayPitcher:    "F. Peralta",
		},
	}, nil
}

// Standings returns a frozen late-season division table.
func (p *Provider) Standings(ctx context.Context, leagueID, teamID int) ([]providers.StandingRow, error) {
	_ = ctx
	_ = leagueID
	_ = teamID
	return []providers.StandingRow{
		{Abbrev: "MIL", Wins: 92, Losses: 54, GamesBack: "-"},
		{Abbrev: "CHC", Wins: 88, Losses: 58, GamesBack: "4.0"},
		{Abbrev: "STL", Wins: 78, Losses: 68, GamesBack: "14.0"},
		{Abbrev: "CIN", Wins: 74, Losses: 72, GamesBack: "18.0"},
		{Abbrev: "PIT", Wins: 65, Losses: 81, GamesBack: "27.0"},
	}, nil
}

// LiveGame returns a deterministic mid-game snapshot.
func (p *Provider) LiveGame(ctx context.Context, gameID string) (providers.LiveGame, error) {
	_ = ctx
	return providers.LiveGame{
		GameID:         gameID,
		Status:         domain.StatusInProgress,
		HomeRuns:       3,
		AwayRuns:       2,
		HomeHits:       7,
		AwayHits:       5,
		Inning:         5,
		TopOfInning:    true,
		Balls:          1,
		Strikes:        2,
		Outs:           1,
		Batter:         "W. Contreras",
		Pitcher:        "J. Steele",
		RunnerOnFirst:  true,
		RunnerOnSecond: false,
		RunnerOnThird:  false,
	}, nil
}
