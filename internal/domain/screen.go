package domain

// Screen is the mutually-exclusive display mode. Exactly one screen is
// active at any render tick. A screen is always derived from the latest
// GameRecord plus the clock, never stored on its own.
type Screen string

const (
	ScreenNoGame     Screen = "no_game"
	ScreenWarmup     Screen = "warmup"
	ScreenDelayed    Screen = "delayed"
	ScreenPostponed  Screen = "postponed"
	ScreenInProgress Screen = "in_progress"
	ScreenGameOver   Screen = "game_over"
	ScreenOffSeason  Screen = "off_season"
)

// rank orders screens along a single game's lifecycle. Used to reject
// backwards transitions; the Delayed/Postponed <-> InProgress loop is the
// only sanctioned regression and is handled explicitly by the machine.
var screenRank = map[Screen]int{
	ScreenNoGame:     0,
	ScreenWarmup:     1,
	ScreenDelayed:    2,
	ScreenPostponed:  2,
	ScreenInProgress: 3,
	ScreenGameOver:   4,
}

// Before reports whether s precedes other in the lifecycle ordering.
// Screens outside the game lifecycle (off-season) always compare false.
func (s Screen) Before(other Screen) bool {
	a, okA := screenRank[s]
	b, okB := screenRank[other]
	return okA && okB && a < b
}
