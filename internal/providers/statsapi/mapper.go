package statsapi

import (
	"strconv"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/providers"
)

func mapGame(g scheduleGame) domain.GameRecord {
	start, err := time.Parse(time.RFC3339, g.GameDate)
	if err != nil {
		start = time.Time{}
	}
	return domain.GameRecord{
		GameID:         strconv.FormatInt(g.GamePk, 10),
		Status:         domain.ParseStatus(g.Status.DetailedState),
		HomeTeamID:     g.Teams.Home.Team.ID,
		AwayTeamID:     g.Teams.Away.Team.ID,
		HomeTeamName:   g.Teams.Home.Team.Name,
		AwayTeamName:   g.Teams.Away.Team.Name,
		HomeScore:      g.Teams.Home.Score,
		AwayScore:      g.Teams.Away.Score,
		ScheduledStart: start,
		GameType:       domain.GameType(g.GameType),
		Doubleheader:   g.DoubleHeader,
		HomePitcher:    g.Teams.Home.ProbablePitcher.FullName,
		AwayPitcher:    g.Teams.Away.ProbablePitcher.FullName,
		SeriesStatus:   g.SeriesStatus.ShortDescription,
	}
}

func mapLive(gameID string, resp liveResponse) providers.LiveGame {
	ls := resp.LiveData.Linescore
	return providers.LiveGame{
		GameID:         gameID,
		Status:         domain.ParseStatus(resp.GameData.Status.DetailedState),
		HomeRuns:       ls.Teams.Home.Runs,
		AwayRuns:       ls.Teams.Away.Runs,
		HomeHits:       ls.Teams.Home.Hits,
		AwayHits:       ls.Teams.Away.Hits,
		HomeErrors:     ls.Teams.Home.Errors,
		AwayErrors:     ls.Teams.Away.Errors,
		Inning:         ls.CurrentInning,
		TopOfInning:    ls.IsTopInning,
		Balls:          ls.Balls,
		Strikes:        ls.Strikes,
		Outs:           ls.Outs,
		Batter:         personName(ls.Offense.Batter),
		Pitcher:        personName(ls.Defense.Pitcher),
		RunnerOnFirst:  ls.Offense.First != nil,
		RunnerOnSecond: ls.Offense.Second != nil,
		RunnerOnThird:  ls.Offense.Third != nil,
	}
}

// mapStandings picks the division record containing teamID and flattens it
// to ranked rows. An unknown team falls back to the first record so the
// display still has something to show.
func mapStandings(resp standingsResponse, teamID int) []providers.StandingRow {
	if len(resp.Records) == 0 {
		return nil
	}
	record := resp.Records[0]
	for _, r := range resp.Records {
		for _, tr := range r.TeamRecords {
			if tr.Team.ID == teamID {
				record = r
			}
		}
	}

	rows := make([]providers.StandingRow, 0, len(record.TeamRecords))
	for _, tr := range record.TeamRecords {
		abbrev := tr.Team.Abbreviation
		if abbrev == "" {
			abbrev = tr.Team.Name
		}
		rows = append(rows, providers.StandingRow{
			Abbrev:    abbrev,
			Wins:      tr.LeagueRecord.Wins,
			Losses:    tr.LeagueRecord.Losses,
			GamesBack: tr.GamesBack,
		})
	}
	return rows
}

func personName(p *person) string {
	if p == nil {
		return ""
	}
	return p.FullName
}
