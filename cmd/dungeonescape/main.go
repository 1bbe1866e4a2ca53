// Package main is the entry point for dungeon-escape.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tantpham/dungeon-escape/internal/game"
	"github.com/tantpham/dungeon-escape/internal/telemetry"
)

func main() {
	// Load .env file for local development. Not fatal - env vars might be
	// set directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	levelPath := flag.String("level", "", "path to a level file (default: embedded intro level)")
	levelName := flag.String("embedded", "", "name of an embedded level, e.g. vault.txt")
	scorePath := flag.String("scores", getEnv("DUNGEON_SCORES", "runs.db"), "path to the score database (empty disables recording)")
	flag.Parse()

	ctx := context.Background()

	// Initialize telemetry. The game still works without observability.
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry setup failed, continuing without it")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warn().Err(err).Msg("error shutting down telemetry")
			}
		}()
	}

	sess, err := game.New(game.Config{
		LevelPath: *levelPath,
		LevelName: *levelName,
		ScorePath: *scorePath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session")
	}

	outcome, err := sess.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("session error")
	}

	fmt.Printf("You %s.\n", outcome)
}

// getEnv returns the environment variable or a default.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
