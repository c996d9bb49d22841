package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/providers"
)

const scheduleBody = `{
  "dates": [
    {
      "date": "2026-08-26",
      "games": [
        {
          "gamePk": 745123,
          "gameType": "R",
          "gameDate": "2026-08-26T18:20:00Z",
          "status": {"abstractGameState": "Preview", "detailedState": "Scheduled"},
          "doubleHeader": "N",
          "seriesStatus": {"shortDescription": "CHC leads 1-0"},
          "teams": {
            "away": {"score": 0, "team": {"id": 158, "name": "Milwaukee Brewers"}, "probablePitcher": {"fullName": "Freddy Peralta"}},
            "home": {"score": 0, "team": {"id": 112, "name": "Chicago Cubs"}, "probablePitcher": {"fullName": "Justin Steele"}}
          }
        }
      ]
    }
  ]
}`

const liveBody = `{
  "gameData": {"status": {"detailedState": "In Progress"}},
  "liveData": {
    "linescore": {
      "currentInning": 7,
      "isTopInning": false,
      "balls": 2,
      "strikes": 1,
      "outs": 2,
      "teams": {
        "home": {"runs": 4, "hits": 9, "errors": 1},
        "away": {"runs": 3, "hits": 6, "errors": 0}
      },
      "offense": {"batter": {"fullName": "Dansby Swanson"}, "second": {"fullName": "Nico Hoerner"}},
      "defense": {"pitcher": {"fullName": "Trevor Megill"}}
    }
  }
}`

func TestScheduleMapsGames(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schedule" {
			t.Errorf("path = %q, want /schedule", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"sportId": q.Get("sportId"),
			"teamId":  q.Get("teamId"),
			"date":    q.Get("date"),
		}
		w.Write([]byte(scheduleBody))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Timezone: "America/Chicago"})
	date := time.Date(2026, 8, 26, 23, 30, 0, 0, time.UTC)

	games, err := client.Schedule(context.Background(), date, 112)
	if err != nil {
		t.Fatalf("Schedule returned error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("len(games) = %d, want 1", len(games))
	}

	if gotQuery["sportId"] != "1" || gotQuery["teamId"] != "112" {
		t.Fatalf("query = %v, want sportId=1 teamId=112", gotQuery)
	}
	// 23:30 UTC is still Aug 26 in Chicago.
	if gotQuery["date"] != "2026-08-26" {
		t.Fatalf("date query = %q, want 2026-08-26", gotQuery["date"])
	}

	g := games[0]
	if g.GameID != "745123" {
		t.Fatalf("GameID = %q, want 745123", g.GameID)
	}
	if g.Status != domain.StatusScheduled {
		t.Fatalf("Status = %q, want Scheduled", g.Status)
	}
	if g.HomeTeamID != 112 || g.AwayTeamID != 158 {
		t.Fatalf("team IDs = %d/%d, want 112/158", g.HomeTeamID, g.AwayTeamID)
	}
	if g.HomePitcher != "Justin Steele" {
		t.Fatalf("HomePitcher = %q, want Justin Steele", g.HomePitcher)
	}
	if g.SeriesStatus != "CHC leads 1-0" {
		t.Fatalf("SeriesStatus = %q", g.SeriesStatus)
	}
	wantStart := time.Date(2026, 8, 26, 18, 20, 0, 0, time.UTC)
	if !g.ScheduledStart.Equal(wantStart) {
		t.Fatalf("ScheduledStart = %v, want %v", g.ScheduledStart, wantStart)
	}
}

func TestLiveGameMapsLinescore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game/745123/feed/live" {
			t.Errorf("path = %q, want /game/745123/feed/live", r.URL.Path)
		}
		w.Write([]byte(liveBody))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	live, err := client.LiveGame(context.Background(), "745123")
	if err != nil {
		t.Fatalf("LiveGame returned error: %v", err)
	}

	if live.Status != domain.StatusInProgress {
		t.Fatalf("Status = %q, want In Progress", live.Status)
	}
	if live.Inning != 7 || live.TopOfInning {
		t.Fatalf("inning = %d top=%v, want 7 bottom", live.Inning, live.TopOfInning)
	}
	if live.HomeRuns != 4 || live.AwayRuns != 3 {
		t.Fatalf("runs = %d-%d, want 4-3", live.HomeRuns, live.AwayRuns)
	}
	if live.Batter != "Dansby Swanson" || live.Pitcher != "Trevor Megill" {
		t.Fatalf("batter/pitcher = %q/%q", live.Batter, live.Pitcher)
	}
	if live.RunnerOnFirst || !live.RunnerOnSecond || live.RunnerOnThird {
		t.Fatalf("runners = %v/%v/%v, want only second occupied", live.RunnerOnFirst, live.RunnerOnSecond, live.RunnerOnThird)
	}
}

const standingsBody = `{
  "records": [
    {
      "teamRecords": [
        {"team": {"id": 121, "name": "New York Mets", "abbreviation": "NYM"}, "leagueRecord": {"wins": 90, "losses": 56, "pct": ".616"}, "gamesBack": "-"}
      ]
    },
    {
      "teamRecords": [
        {"team": {"id": 158, "name": "Milwaukee Brewers", "abbreviation": "MIL"}, "leagueRecord": {"wins": 92, "losses": 54, "pct": ".630"}, "gamesBack": "-"},
        {"team": {"id": 112, "name": "Chicago Cubs", "abbreviation": "CHC"}, "leagueRecord": {"wins": 88, "losses": 58, "pct": ".603"}, "gamesBack": "4.0"}
      ]
    }
  ]
}`

func TestStandingsPicksTeamDivision(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/standings" {
			t.Errorf("path = %q, want /standings", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{"leagueId": q.Get("leagueId"), "hydrate": q.Get("hydrate")}
		w.Write([]byte(standingsBody))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	rows, err := client.Standings(context.Background(), 104, 112)
	if err != nil {
		t.Fatalf("Standings returned error: %v", err)
	}

	if gotQuery["leagueId"] != "104" || gotQuery["hydrate"] != "team" {
		t.Fatalf("query = %v, want leagueId=104 hydrate=team", gotQuery)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2 (NL Central record)", len(rows))
	}
	if rows[0].Abbrev != "MIL" || rows[0].GamesBack != "-" {
		t.Fatalf("rows[0] = %+v, want MIL leading", rows[0])
	}
	if rows[1].Abbrev != "CHC" || rows[1].Wins != 88 || rows[1].Losses != 58 || rows[1].GamesBack != "4.0" {
		t.Fatalf("rows[1] = %+v, want CHC 88-58 4.0", rows[1])
	}
}

func TestScheduleServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.Schedule(context.Background(), time.Now(), 112)
	if err == nil {
		t.Fatal("Schedule succeeded, want error")
	}

	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if !upErr.Retryable() {
		t.Fatal("502 classified terminal, want retryable")
	}
	if upErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("StatusCode = %d, want 502", upErr.StatusCode)
	}
}

func TestLiveGameNotFoundIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.LiveGame(context.Background(), "999")
	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upErr.Retryable() {
		t.Fatal("404 classified retryable, want terminal")
	}
}

func TestScheduleNetworkErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.Schedule(context.Background(), time.Now(), 112)
	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if !upErr.Retryable() {
		t.Fatal("network error classified terminal, want retryable")
	}
}

func TestLiveBaseURLDerivation(t *testing.T) {
	if got := liveBaseURL("https://statsapi.mlb.com/api/v1"); got != "https://statsapi.mlb.com/api/v1.1" {
		t.Fatalf("liveBaseURL = %q", got)
	}
	if got := liveBaseURL("http://127.0.0.1:9999"); got != "http://127.0.0.1:9999" {
		t.Fatalf("liveBaseURL passthrough = %q", got)
	}
}

func TestParseStatusNormalizesDetailedStates(t *testing.T) {
	cases := map[string]domain.GameStatus{
		"Delayed Start: Rain":          domain.StatusDelayed,
		"Delayed: Rain":                domain.StatusDelayed,
		"Postponed":                    domain.StatusPostponed,
		"Postponed: Inclement Weather": domain.StatusPostponed,
		"Warmup":                       domain.StatusWarmup,
		"In Progress":                  domain.StatusInProgress,
	}
	for raw, want := range cases {
		if got := domain.ParseStatus(raw); got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}
