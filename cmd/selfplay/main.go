package main

import (
	"flag"
	"fmt"
	"os"

	"nim/experiments"
	"nim/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)
	red := fs.Int("red", 10, "Starting red tokens")
	blue := fs.Int("blue", 10, "Starting blue tokens")
	version := fs.String("version", "standard", "standard or misere")
	games := fs.Int("games", experiments.NumGames, "Games per match up")
	seed := fs.Uint64("seed", 1, "Seed of the random baseline")
	if err := fs.Parse(args); err != nil {
		return err
	}

	variant, err := game.ParseVariant(*version)
	if err != nil {
		return fmt.Errorf("invalid game version: %w", err)
	}
	start, err := game.NewState(*red, *blue)
	if err != nil {
		return fmt.Errorf("invalid starting piles: %w", err)
	}

	if _, err := experiments.Run("depth", experiments.DepthMatchUps(), *games, start, variant); err != nil {
		return fmt.Errorf("depth experiment failed: %w", err)
	}
	if _, err := experiments.Run("parallel", experiments.ParallelMatchUps(4), *games, start, variant); err != nil {
		return fmt.Errorf("parallel experiment failed: %w", err)
	}
	if _, err := experiments.Run("random", experiments.RandomMatchUp(*seed), *games, start, variant); err != nil {
		return fmt.Errorf("random experiment failed: %w", err)
	}
	return nil
}
