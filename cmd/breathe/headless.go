package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/almery/breathe/internal/config"
	"github.com/almery/breathe/internal/session"
	"github.com/almery/breathe/internal/shutdown"
)

// shutdownTimeout bounds how long a headless session may take to stop
// after SIGINT/SIGTERM.
const shutdownTimeout = 2 * time.Second

// runHeadless runs a session without a TUI, logging phase transitions
// and completion. Used when stdout is not a terminal.
func runHeadless(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	timer := session.New(cfg.Pattern(), cfg.Session.DurationSeconds)

	return shutdown.RunWithGracefulShutdown(ctx, logger, shutdownTimeout,
		func(ctx context.Context) error {
			ticker := time.NewTicker(session.TickInterval)
			defer ticker.Stop()

			pattern := timer.Pattern()
			logger.Info("session started",
				"pattern", pattern.ID,
				"cycle_seconds", pattern.CycleSeconds(),
				"duration_seconds", cfg.Session.DurationSeconds)
			logger.Info("phase", "phase", timer.Phase().String(),
				"seconds", pattern.Duration(timer.Phase()))

			lastPhase := timer.Phase()
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticker.C:
					timer.Advance(session.TickInterval)
					if timer.Completed() {
						logger.Info("session complete")
						return nil
					}
					if p := timer.Phase(); p != lastPhase {
						logger.Info("phase", "phase", p.String(),
							"seconds", pattern.Duration(p))
						lastPhase = p
					}
				}
			}
		},
		func(ctx context.Context) error {
			logger.Info("session interrupted", "clock", timer.Clock())
			return nil
		},
	)
}
