// Package main is the entry point for Wumpus World.
package main

import (
	"context"
	"log"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/samdwyer/wumpus/internal/game"
	"github.com/samdwyer/wumpus/internal/logging"
	"github.com/samdwyer/wumpus/internal/telemetry"
	"github.com/samdwyer/wumpus/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					zlog.Error().Err(err).Msg("telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}

	printOutcome(g.Status(), g.Message())
}

// printOutcome writes the result to the restored terminal.
func printOutcome(status world.Status, msg string) {
	switch status {
	case world.StatusWon:
		color.Green.Println(msg)
	case world.StatusLostToWumpus, world.StatusLostToPit:
		color.Red.Println(msg)
	default:
		color.Gray.Println("Game abandoned.")
	}
}
