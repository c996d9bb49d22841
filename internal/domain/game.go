package domain

import (
	"strings"
	"time"
)

// GameStatus mirrors the lifecycle states reported by the schedule source.
type GameStatus string

const (
	StatusScheduled  GameStatus = "Scheduled"
	StatusPreGame    GameStatus = "Pre-Game"
	StatusWarmup     GameStatus = "Warmup"
	StatusInProgress GameStatus = "In Progress"
	StatusDelayed    GameStatus = "Delayed"
	StatusPostponed  GameStatus = "Postponed"
	StatusFinal      GameStatus = "Final"
	StatusGameOver   GameStatus = "Game Over"
)

// ParseStatus collapses the schedule source's detailed status strings into
// the canonical set. Upstream reports variants such as "Delayed Start: Rain"
// or "Postponed: Inclement Weather"; prefix matching keeps the mapping stable
// across those suffixes. Unknown statuses come back verbatim.
func ParseStatus(raw string) GameStatus {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, "Delayed"):
		return StatusDelayed
	case strings.HasPrefix(trimmed, "Postpon"):
		return StatusPostponed
	}
	return GameStatus(trimmed)
}

// GameType distinguishes regular-season from postseason rounds.
type GameType string

const (
	TypeRegular  GameType = "R"
	TypeWildCard GameType = "F"
	TypeDivision GameType = "D"
	TypeLeague   GameType = "L"
	TypeWorld    GameType = "W"
)

// Doubleheader flags as reported by the schedule source. "S" marks a split
// doubleheader, which gets a cool-down between games.
const (
	DoubleheaderNone  = "N"
	DoubleheaderYes   = "Y"
	DoubleheaderSplit = "S"
)

// GameRecord is one scheduled, live or finished game. Records are replaced
// wholesale on every schedule refresh; no field is mutated in place.
type GameRecord struct {
	GameID         string     `json:"gameId"`
	Status         GameStatus `json:"status"`
	HomeTeamID     int        `json:"homeTeamId"`
	AwayTeamID     int        `json:"awayTeamId"`
	HomeTeamName   string     `json:"homeTeamName"`
	AwayTeamName   string     `json:"awayTeamName"`
	HomeScore      int        `json:"homeScore"`
	AwayScore      int        `json:"awayScore"`
	ScheduledStart time.Time  `json:"scheduledStart"`
	GameType       GameType   `json:"gameType"`
	Doubleheader   string     `json:"doubleheader"`
	HomePitcher    string     `json:"homePitcher,omitempty"`
	AwayPitcher    string     `json:"awayPitcher,omitempty"`
	SeriesStatus   string     `json:"seriesStatus,omitempty"`
}

// Live reports whether the game is currently being played.
func (g GameRecord) Live() bool {
	return g.Status == StatusInProgress
}

// Finished reports whether the game has ended.
func (g GameRecord) Finished() bool {
	return g.Status == StatusFinal || g.Status == StatusGameOver
}

// Pregame reports whether the game has not started yet, including games
// held in a delayed or postponed state.
func (g GameRecord) Pregame() bool {
	switch g.Status {
	case StatusScheduled, StatusPreGame, StatusWarmup, StatusDelayed, StatusPostponed:
		return true
	}
	return false
}

// Postseason reports whether the game belongs to a playoff round.
func (g GameRecord) Postseason() bool {
	return g.GameType != TypeRegular && g.GameType != ""
}
