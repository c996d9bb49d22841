package statsapi

// Response shapes for the subset of the MLB Stats API this client reads.
// Fields not consumed downstream are omitted.

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk       int64        `json:"gamePk"`
	GameType     string       `json:"gameType"`
	GameDate     string       `json:"gameDate"`
	Status       gameStatus   `json:"status"`
	Teams        scheduleSide `json:"teams"`
	DoubleHeader string       `json:"doubleHeader"`
	SeriesStatus seriesStatus `json:"seriesStatus"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type scheduleSide struct {
	Away scheduleTeam `json:"away"`
	Home scheduleTeam `json:"home"`
}

type scheduleTeam struct {
	Score           int    `json:"score"`
	Team            team   `json:"team"`
	ProbablePitcher person `json:"probablePitcher"`
}

type team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type person struct {
	FullName string `json:"fullName"`
}

type seriesStatus struct {
	ShortDescription string `json:"shortDescription"`
}

type standingsResponse struct {
	Records []standingsRecord `json:"records"`
}

type standingsRecord struct {
	TeamRecords []teamRecord `json:"teamRecords"`
}

type teamRecord struct {
	Team         standingsTeam `json:"team"`
	LeagueRecord leagueRecord  `json:"leagueRecord"`
	GamesBack    string        `json:"gamesBack"`
}

type standingsTeam struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type leagueRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"`
}

type liveResponse struct {
	GameData liveGameData `json:"gameData"`
	LiveData liveData     `json:"liveData"`
}

type liveGameData struct {
	Status gameStatus `json:"status"`
}

type liveData struct {
	Linescore linescore `json:"linescore"`
}

type linescore struct {
	CurrentInning int            `json:"currentInning"`
	IsTopInning   bool           `json:"isTopInning"`
	Balls         int            `json:"balls"`
	Strikes       int            `json:"strikes"`
	Outs          int            `json:"outs"`
	Teams         linescoreSides `json:"teams"`
	Offense       offense        `json:"offense"`
	Defense       defense        `json:"defense"`
}

type linescoreSides struct {
	Home linescoreTeam `json:"home"`
	Away linescoreTeam `json:"away"`
}

type linescoreTeam struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

type offense struct {
	Batter *person `json:"batter"`
	First  *person `json:"first"`
	Second *person `json:"second"`
	Third  *person `json:"third"`
}

type defense struct {
	Pitcher *person `json:"pitcher"`
}
