package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"cubs-led-scoreboard/internal/app"
	"cubs-led-scoreboard/internal/config"
	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/render/emulator"
	"cubs-led-scoreboard/internal/render/terminal"
)

const appVersion = "dev"

// emulatorScale blows the panel up to a visible window size.
const emulatorScale = 8

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine; the environment may be set by systemd instead.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "cubs-led-scoreboard",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Driver {
	case "terminal":
		drv := terminal.New(cfg.CanvasWidth, cfg.CanvasHeight, os.Stdout)
		defer drv.Close()
		return app.New(cfg, logger, drv).Run(ctx)
	case "emulator":
		// The emulator's event loop must own the main goroutine; the
		// scoreboard runs alongside it and both stop together.
		drv := emulator.New(cfg.CanvasWidth, cfg.CanvasHeight, emulatorScale)
		group, gctx := errgroup.WithContext(ctx)
		group.Go(func() error { return app.New(cfg, logger, drv).Run(gctx) })
		if err := drv.Run(gctx); err != nil {
			stop()
			_ = group.Wait()
			return err
		}
		stop()
		return group.Wait()
	default:
		return fmt.Errorf("unknown display driver %q", cfg.Driver)
	}
}
