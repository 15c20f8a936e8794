// Package main is the entry point for DungeonTurn.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonturn/internal/game"
	"github.com/samdwyer/dungeonturn/internal/logging"
	"github.com/samdwyer/dungeonturn/internal/telemetry"
	"github.com/samdwyer/dungeonturn/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dungeonturn: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development. Not fatal: env vars might be set directly.
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	closer, err := logging.Init(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	log := logging.Component("main")
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		// Game still works without observability.
		log.WithError(err).Warn("telemetry setup failed")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Warn("telemetry shutdown failed")
			}
		}()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}

	g, err := game.New(ctx, cfg, screen)
	if err != nil {
		screen.Close()
		return fmt.Errorf("initialize game: %w", err)
	}
	defer g.Close()

	log.WithField("seed", cfg.Seed).Info("session started")
	return g.Run(ctx)
}
