package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/metrics"
	"cubs-led-scoreboard/internal/schedule"
	"cubs-led-scoreboard/internal/timeutil"
)

const (
	// gameOverHold keeps the final score up between games of a split
	// doubleheader instead of flipping straight to the nightcap's pregame.
	gameOverHold = 6 * time.Minute

	// errorRetryDelay spaces out schedule lookups while the upstream is
	// failing. The last known screen is held in the meantime.
	errorRetryDelay = 10 * time.Second

	// offSeasonHorizonDays is how far out the next scheduled game can be
	// before the board treats the stretch as off-season and rotates filler
	// content instead of parking on the next-game marquee.
	offSeasonHorizonDays = 30
)

// ScreenFor maps one game's status onto a display screen. The warmup screen
// is entered only when the feed reports it; a game that is still merely
// scheduled shows the next-game marquee no matter how close the first pitch is.
func ScreenFor(game domain.GameRecord) domain.Screen {
	switch game.Status {
	case domain.StatusWarmup, domain.StatusPreGame:
		return domain.ScreenWarmup
	case domain.StatusDelayed:
		return domain.ScreenDelayed
	case domain.StatusPostponed:
		return domain.ScreenPostponed
	case domain.StatusInProgress:
		return domain.ScreenInProgress
	case domain.StatusFinal, domain.StatusGameOver:
		return domain.ScreenGameOver
	}
	return domain.ScreenNoGame
}

// allowedTransition enforces forward-only movement through a single game's
// lifecycle. The delay loop is the one sanctioned regression: a game can
// drop out of play for weather and resume.
func allowedTransition(from, to domain.Screen) bool {
	if from == to {
		return true
	}
	if (from == domain.ScreenDelayed || from == domain.ScreenPostponed) && to == domain.ScreenInProgress {
		return true
	}
	if from == domain.ScreenInProgress && (to == domain.ScreenDelayed || to == domain.ScreenPostponed) {
		return true
	}
	return from.Before(to)
}

// scheduleSource is the slice of *schedule.Cache the machine needs.
type scheduleSource interface {
	Get(ctx context.Context) (schedule.Result, error)
	Invalidate()
}

// Snapshot is the machine's decision for one render tick.
type Snapshot struct {
	Screen  domain.Screen
	Game    domain.GameRecord
	HasGame bool
	Result  schedule.Result
}

// Machine derives the active screen from the schedule cache and guards the
// transitions between screens. It never blocks on the network; the cache
// absorbs upstream access and failure.
type Machine struct {
	cache   scheduleSource
	loc     *time.Location
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	mu        sync.Mutex
	current   Snapshot
	started   bool
	holdUntil time.Time
	retryAt   time.Time
	lastErr   error
}

// New builds a machine over the schedule source. A nil location falls back
// to the default display timezone.
func New(cache scheduleSource, loc *time.Location, logger *slog.Logger, recorder *metrics.Recorder) *Machine {
	if loc == nil {
		loc = timeutil.ResolveLocation("")
	}
	return &Machine{
		cache:   cache,
		loc:     loc,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Evaluate computes the screen for this tick. On schedule failure the last
// snapshot is held and the next lookup is deferred by the retry delay.
func (m *Machine) Evaluate(ctx context.Context) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if !m.retryAt.IsZero() && now.Before(m.retryAt) {
		return m.current
	}

	result, err := m.cache.Get(ctx)
	if err != nil {
		m.retryAt = now.Add(errorRetryDelay)
		m.lastErr = err
		logging.Warn(m.logger, "schedule unavailable, holding last screen",
			slog.String(logging.FieldScreen, string(m.current.Screen)),
			slog.Duration("retry_in", errorRetryDelay),
			"error", err,
		)
		return m.current
	}
	m.retryAt = time.Time{}
	m.lastErr = nil

	next := m.candidate(result, now)
	m.apply(next)
	return m.current
}

// Current returns the last computed snapshot without consulting the cache.
func (m *Machine) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// LastError reports the schedule failure currently being waited out, if any.
func (m *Machine) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Invalidate forces a schedule re-scan on the next Evaluate. Pregame screens
// call this to pick up late status flips without waiting for the poller.
func (m *Machine) Invalidate() {
	m.cache.Invalidate()
}

func (m *Machine) candidate(result schedule.Result, now time.Time) Snapshot {
	if result.OffSeason {
		return Snapshot{Screen: domain.ScreenOffSeason, Result: result}
	}
	games := result.Games
	idx := schedule.EffectiveGameIndex(games)
	if idx < 0 {
		return Snapshot{Screen: domain.ScreenNoGame, Result: result}
	}

	// Between games of a split doubleheader the opener's final score stays
	// up through the cooldown before the nightcap's pregame takes over.
	if idx == 1 && games[0].Doubleheader == domain.DoubleheaderSplit {
		if m.holdUntil.IsZero() && m.current.Game.GameID == games[0].GameID {
			m.holdUntil = now.Add(gameOverHold)
			logging.Info(m.logger, "holding final score before nightcap",
				slog.String(logging.FieldGameID, games[0].GameID),
				slog.Duration("hold", gameOverHold),
			)
		}
		if !m.holdUntil.IsZero() {
			if now.Before(m.holdUntil) {
				idx = 0
			} else {
				m.holdUntil = time.Time{}
				logging.Info(m.logger, "cooldown elapsed, switching to nightcap",
					slog.String(logging.FieldGameID, games[1].GameID),
				)
			}
		}
	}

	game := games[idx]
	if game.Status == domain.StatusScheduled {
		if days := result.NextGameDays(now, m.loc); days > offSeasonHorizonDays {
			return Snapshot{Screen: domain.ScreenOffSeason, Result: result}
		}
	}
	return Snapshot{
		Screen:  ScreenFor(game),
		Game:    game,
		HasGame: true,
		Result:  result,
	}
}

func (m *Machine) apply(next Snapshot) {
	if !m.started {
		m.started = true
		m.setCurrent(next, "initial screen")
		return
	}

	if next.Screen == m.current.Screen && next.Game.GameID == m.current.Game.GameID {
		m.current = next // same screen, refreshed data
		return
	}

	// A different game means a new lifecycle; the ordering guard only
	// applies within one game.
	sameGame := next.Game.GameID == m.current.Game.GameID && m.current.HasGame

	if !sameGame {
		m.setCurrent(next, "screen changed")
		return
	}

	if !allowedTransition(m.current.Screen, next.Screen) {
		logging.Warn(m.logger, "ignoring backwards screen transition",
			slog.String("from", string(m.current.Screen)),
			slog.String("to", string(next.Screen)),
			slog.String(logging.FieldGameID, next.Game.GameID),
		)
		m.current.Game = next.Game
		m.current.Result = next.Result
		return
	}
	m.setCurrent(next, "screen changed")
}

func (m *Machine) setCurrent(next Snapshot, msg string) {
	from := m.current.Screen
	m.current = next
	if from != next.Screen {
		m.metrics.RecordScreenTransition(string(from), string(next.Screen))
		logging.Info(m.logger, msg,
			slog.String("from", string(from)),
			slog.String(logging.FieldScreen, string(next.Screen)),
			slog.String(logging.FieldGameID, next.Game.GameID),
			slog.String(logging.FieldStatus, string(next.Game.Status)),
		)
	}
}
