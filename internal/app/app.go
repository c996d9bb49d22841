// Package app wires the scoreboard together: provider stack, schedule cache,
// poller, state machine, painters, render loop and status server. A crash in
// any component tears the group down; Run restarts the whole stack after a
// pause so a flaky morning at the API never bricks the panel.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"cubs-led-scoreboard/internal/config"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/metrics"
	"cubs-led-scoreboard/internal/poller"
	"cubs-led-scoreboard/internal/providers"
	"cubs-led-scoreboard/internal/providers/fixture"
	"cubs-led-scoreboard/internal/providers/statsapi"
	"cubs-led-scoreboard/internal/render"
	"cubs-led-scoreboard/internal/retry"
	"cubs-led-scoreboard/internal/schedule"
	"cubs-led-scoreboard/internal/scheduler"
	"cubs-led-scoreboard/internal/screens"
	"cubs-led-scoreboard/internal/server"
	"cubs-led-scoreboard/internal/state"
	"cubs-led-scoreboard/internal/timeutil"
)

// restartDelay spaces out full-stack restarts after a fatal error.
const restartDelay = 30 * time.Second

// scheduleMinInterval throttles back-to-back schedule fetches during the
// day-window scan.
const scheduleMinInterval = 500 * time.Millisecond

// nlLeagueID scopes the standings lookup to the National League.
const nlLeagueID = 104

// App owns one scoreboard process.
type App struct {
	cfg    config.Config
	logger *slog.Logger
	fb     render.Framebuffer
}

// New builds an app painting onto the given framebuffer.
func New(cfg config.Config, logger *slog.Logger, fb render.Framebuffer) *App {
	return &App{cfg: cfg, logger: logger, fb: fb}
}

// Run keeps the scoreboard alive until the context is cancelled, restarting
// the full stack after a fatal error.
func (a *App) Run(ctx context.Context) error {
	for {
		err := a.runOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			return nil
		}
		logging.Error(a.logger, "scoreboard stack failed, restarting", err,
			slog.Duration("restart_delay", restartDelay),
		)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(restartDelay):
		}
	}
}

func (a *App) runOnce(ctx context.Context) error {
	recorder, metricsHandler, metricsStop, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      a.cfg.Metrics.Enabled,
		Port:         a.cfg.Metrics.Port,
		ServiceName:  a.cfg.Metrics.ServiceName,
		OtlpEndpoint: a.cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: a.cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics shutdown failed", "error", err)
		}
	}()

	loc := timeutil.ResolveLocation(a.cfg.Timezone)

	settings, err := config.NewSettingsStore(a.cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	provider, standings, err := a.buildProvider(recorder)
	if err != nil {
		return err
	}

	cache := schedule.NewCache(provider, a.cfg.TeamID, loc, a.logger)
	plr := poller.New(cache, a.logger, time.Duration(a.cfg.PollInterval))
	machine := state.New(cache, loc, a.logger, recorder)

	canvas := render.NewCanvas(a.fb)
	painters := a.buildPainters(machine, provider, standings, settings, loc, recorder)
	sched := scheduler.New(machine, canvas, painters, a.logger, recorder,
		scheduler.WithTickInterval(time.Duration(a.cfg.TickInterval)))

	handler := server.NewHandler(machine, plr.Status, settings, a.logger, loc)
	statusSrv := server.New(a.cfg.Port, handler, metricsHandler, a.logger, recorder)

	group, gctx := errgroup.WithContext(ctx)
	plr.Start(gctx)
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = plr.Stop(stopCtx)
	}()

	group.Go(func() error { return sched.Run(gctx) })
	group.Go(func() error { return statusSrv.Run(gctx) })

	err = group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// buildProvider assembles the data source with its decorators: raw client,
// then instrumentation, then schedule rate limiting, then retries. Standings
// lookups are rare enough to go straight to the base client.
func (a *App) buildProvider(recorder *metrics.Recorder) (providers.Provider, providers.StandingsProvider, error) {
	var base interface {
		providers.Provider
		providers.StandingsProvider
	}
	switch a.cfg.Provider {
	case "statsapi":
		base = statsapi.NewClient(statsapi.Config{
			BaseURL:  a.cfg.StatsAPI.BaseURL,
			Timeout:  time.Duration(a.cfg.StatsAPI.Timeout),
			Timezone: a.cfg.Timezone,
		})
	case "fixture":
		base = fixture.New()
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", a.cfg.Provider)
	}

	instrumented := providers.NewInstrumentedProvider(base, a.cfg.Provider, a.logger, recorder)
	limited := providers.NewRateLimitedProvider(instrumented, scheduleMinInterval, a.logger)
	ex := retry.NewExecutor(a.logger, recorder)
	return providers.NewRetryingProvider(limited, ex, retry.Options{}), base, nil
}

func (a *App) buildPainters(machine *state.Machine, provider providers.Provider, standings providers.StandingsProvider, settings *config.SettingsStore, loc *time.Location, recorder *metrics.Recorder) []screens.Screen {
	teamID := a.cfg.TeamID
	rotator := a.buildRotator(settings, recorder)
	standingsFn := screens.StandingsFunc(func(ctx context.Context) ([]providers.StandingRow, error) {
		return standings.Standings(ctx, nlLeagueID, teamID)
	})
	return []screens.Screen{
		screens.NewNoGame(teamID, loc, standingsFn),
		screens.NewWarmup(teamID, loc, machine.Invalidate),
		screens.NewDelayed(teamID, loc, machine.Invalidate),
		screens.NewPostponed(teamID, loc, machine.Invalidate),
		screens.NewLive(provider, time.Duration(a.cfg.LiveRefresh), a.logger),
		screens.NewGameOver(teamID),
		rotator,
	}
}
