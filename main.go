package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nim/agent"
	"nim/config"
	"nim/engine"
	"nim/game"
	"nim/searcher"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func main() {
	prog := filepath.Base(os.Args[0])
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		config.Usage(os.Stderr, prog)
		os.Exit(2)
	}
	setupLogger(cfg.Debug)

	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not start the prompt")
	}
	defer rl.Close()

	if _, err := play(cfg, agent.NewReadlinePrompter(rl), os.Stdout); err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			fmt.Println("Game abandoned.")
			return
		}
		log.Error().Err(err).Msg("game failed")
		rl.Close()
		os.Exit(1)
	}
}

func setupLogger(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("Debug logging is on")
}

// play wires a human and a computer player from cfg and runs one game.
func play(cfg *config.Config, in agent.Prompter, out io.Writer) (engine.Outcome, error) {
	state, err := game.NewState(cfg.Red, cfg.Blue)
	if err != nil {
		return engine.Outcome{}, err
	}
	rules := game.NewRules(cfg.Variant)
	minimax := searcher.NewMinimax(rules,
		searcher.WithDepth(cfg.Depth),
		searcher.WithGoroutines(cfg.Goroutines),
	)

	players := [2]engine.Player{
		{Name: config.Human.String(), Agent: agent.NewHumanAgent(in, out)},
		{Name: config.Computer.String(), Agent: agent.NewSearchAgent(minimax, out)},
	}
	first := 1
	if cfg.FirstPlayer == config.Human {
		first = 0
	}

	log.Info().
		Str("variant", cfg.Variant.String()).
		Int("depth", cfg.Depth).
		Int("goroutines", cfg.Goroutines).
		Msg("starting game")
	return engine.New(state, rules, players, first, out).Run()
}
