package schedule

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"cubs-led-scoreboard/internal/domain"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/providers"
	"cubs-led-scoreboard/internal/timeutil"
)

// defaultLookaheadDays bounds the forward scan for the next game. A window
// this size covers the All-Star break, the longest in-season gap.
const defaultLookaheadDays = 14

// Result is the outcome of one schedule lookup. OffSeason is set only after
// the full lookahead window came back empty; a partial scan never declares
// the off-season.
type Result struct {
	Date      time.Time
	DaysAhead int
	Games     []domain.GameRecord
	OffSeason bool
}

// NextGame returns the record the display should track: the first game of
// the day, or the second leg of a doubleheader once the opener has finished.
func (r Result) NextGame() (domain.GameRecord, bool) {
	idx := EffectiveGameIndex(r.Games)
	if idx < 0 {
		return domain.GameRecord{}, false
	}
	return r.Games[idx], true
}

// NextGameDays reports how many calendar days away the next game is in the
// display timezone: 0 for today, 1 for tomorrow, -1 when no game is known.
// The game's own start time is preferred; a listing without one falls back to
// the date the scan found it on.
func (r Result) NextGameDays(now time.Time, loc *time.Location) int {
	game, ok := r.NextGame()
	if !ok {
		return -1
	}
	when := game.ScheduledStart
	if when.IsZero() {
		when = r.Date
	}
	nowDay := midnight(now, loc)
	gameDay := midnight(when, loc)
	// Rounding over hours absorbs the fall-back and spring-forward days.
	return int(math.Round(gameDay.Sub(nowDay).Hours() / 24))
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// EffectiveGameIndex picks which game of the day to follow. For a
// doubleheader the opener stays active until it finishes, then the display
// moves on to the nightcap. Returns -1 when no game is available.
func EffectiveGameIndex(games []domain.GameRecord) int {
	if len(games) == 0 {
		return -1
	}
	if len(games) > 1 && games[0].Finished() {
		return 1
	}
	return 0
}

// Cache memoizes the next-game lookup once per calendar day. Lookups scan
// forward day by day until a game is found or the window is exhausted; the
// background poller refreshes the stored result so in-day status changes
// still surface without re-scanning on every render tick.
type Cache struct {
	provider  providers.ScheduleProvider
	teamID    int
	loc       *time.Location
	logger    *slog.Logger
	lookahead int

	mu        sync.RWMutex
	cached    Result
	cachedDay string

	now func() time.Time
}

// NewCache builds a schedule cache over the given provider. A nil location
// falls back to the default display timezone.
func NewCache(provider providers.ScheduleProvider, teamID int, loc *time.Location, logger *slog.Logger) *Cache {
	if loc == nil {
		loc = timeutil.ResolveLocation("")
	}
	return &Cache{
		provider:  provider,
		teamID:    teamID,
		loc:       loc,
		logger:    logger,
		lookahead: defaultLookaheadDays,
		now:       time.Now,
	}
}

// Get returns the cached result for today, refreshing it at most once per
// calendar day. On refresh failure the cache is left untouched and the error
// is returned; callers decide whether to hold their last state.
func (c *Cache) Get(ctx context.Context) (Result, error) {
	key := c.dayKey()

	c.mu.RLock()
	if c.cachedDay == key {
		cached := c.cached
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	return c.Refresh(ctx)
}

// Refresh re-scans the lookahead window and replaces the cached result on
// success. An off-season verdict is rechecked at most once per calendar day:
// once the whole window came back empty there is nothing new to learn until
// the date rolls over, and the background poller would otherwise re-issue the
// full scan every cycle all winter. Invalidate drops the memo when a forced
// re-scan is wanted.
func (c *Cache) Refresh(ctx context.Context) (Result, error) {
	key := c.dayKey()
	c.mu.RLock()
	if c.cached.OffSeason && c.cachedDay == key {
		cached := c.cached
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	today := c.today()

	for d := 0; d < c.lookahead; d++ {
		day := today.AddDate(0, 0, d)
		games, err := c.provider.Schedule(ctx, day, c.teamID)
		if err != nil {
			logging.Warn(c.logger, "schedule lookup failed",
				slog.String(logging.FieldDate, timeutil.FormatDate(day)),
				slog.Int("days_ahead", d),
				"error", err,
			)
			return Result{}, err
		}
		if len(games) > 0 {
			result := Result{Date: day, DaysAhead: d, Games: games}
			c.store(result)
			logging.Info(c.logger, "next game found",
				slog.String(logging.FieldDate, timeutil.FormatDate(day)),
				slog.Int("days_ahead", d),
				slog.Int(logging.FieldCount, len(games)),
			)
			return result, nil
		}
	}

	// The whole window is empty. That only happens outside the season.
	result := Result{Date: today, DaysAhead: -1, OffSeason: true}
	c.store(result)
	logging.Info(c.logger, "no games in lookahead window, assuming off-season",
		slog.Int("lookahead_days", c.lookahead),
	)
	return result, nil
}

// Replace installs a result produced elsewhere (the background poller) as
// today's cached value.
func (c *Cache) Replace(result Result) {
	c.mu.Lock()
	c.cached = result
	c.cachedDay = c.dayKey()
	c.mu.Unlock()
}

// Invalidate drops the daily memo so the next Get re-scans. Pregame screens
// use this to force a status re-poll.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.cachedDay = ""
	c.mu.Unlock()
}

// Snapshot returns the current cached result without refreshing.
func (c *Cache) Snapshot() (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cached, c.cachedDay != ""
}

func (c *Cache) store(result Result) {
	c.mu.Lock()
	c.cached = result
	c.cachedDay = c.dayKey()
	c.mu.Unlock()
}

func (c *Cache) today() time.Time {
	now := c.now().In(c.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

func (c *Cache) dayKey() string {
	return timeutil.FormatDate(c.now().In(c.loc))
}
