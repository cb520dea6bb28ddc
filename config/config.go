// Package config turns command line arguments and NIM_* environment
// variables into the settings of one game.
package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nim/game"

	"github.com/spf13/viper"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

const (
	DefaultDepth       = 3
	DefaultFirstPlayer = "computer"
)

type Actor int

const (
	Computer Actor = iota
	Human
)

func (a Actor) String() string {
	if a == Human {
		return "Human"
	}
	return "Computer"
}

func ParseActor(s string) (Actor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "computer":
		return Computer, nil
	case "human":
		return Human, nil
	}
	return 0, fmt.Errorf("first player %q must be human or computer: %w", s, ErrInvalidConfiguration)
}

type Config struct {
	Red         int
	Blue        int
	Variant     game.Variant
	FirstPlayer Actor
	Depth       int
	Goroutines  int  // NIM_GOROUTINES
	Debug       bool // NIM_DEBUG
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("nim")
	v.AutomaticEnv()
	v.SetDefault("first_player", DefaultFirstPlayer)
	v.SetDefault("depth", DefaultDepth)
	v.SetDefault("goroutines", 1)
	v.SetDefault("debug", false)
	return v
}

// Parse reads <red> <blue> <standard|misere> [human|computer] [depth].
// Optional arguments fall back to NIM_FIRST_PLAYER and NIM_DEPTH, then to
// the defaults.
func Parse(args []string) (*Config, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("expected at least 3 arguments, got %d: %w", len(args), ErrInvalidConfiguration)
	}
	if len(args) > 5 {
		return nil, fmt.Errorf("expected at most 5 arguments, got %d: %w", len(args), ErrInvalidConfiguration)
	}

	v := newViper()
	if len(args) > 3 {
		v.Set("first_player", args[3])
	}
	if len(args) > 4 {
		v.Set("depth", args[4])
	}

	red, err := parsePile("red", args[0])
	if err != nil {
		return nil, err
	}
	blue, err := parsePile("blue", args[1])
	if err != nil {
		return nil, err
	}
	variant, err := game.ParseVariant(args[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	first, err := ParseActor(v.GetString("first_player"))
	if err != nil {
		return nil, err
	}
	depth, err := strconv.Atoi(strings.TrimSpace(v.GetString("depth")))
	if err != nil || depth < 1 {
		return nil, fmt.Errorf("depth %q must be a positive integer: %w", v.GetString("depth"), ErrInvalidConfiguration)
	}
	goroutines := v.GetInt("goroutines")
	if goroutines < 1 {
		goroutines = 1
	}

	return &Config{
		Red:         red,
		Blue:        blue,
		Variant:     variant,
		FirstPlayer: first,
		Depth:       depth,
		Goroutines:  goroutines,
		Debug:       v.GetBool("debug"),
	}, nil
}

func parsePile(name, arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s count %q must be a non-negative integer: %w", name, arg, ErrInvalidConfiguration)
	}
	return n, nil
}

// Usage prints the command line synopsis with examples.
func Usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s <num-red> <num-blue> <version> [<first-player> <depth>]\n", prog)
	io.WriteString(w, "  version       standard or misere\n")
	fmt.Fprintf(w, "  first-player  human or computer (default %s)\n", DefaultFirstPlayer)
	fmt.Fprintf(w, "  depth         search depth of the computer player (default %d)\n", DefaultDepth)
	io.WriteString(w, "Examples:\n")
	fmt.Fprintf(w, "  %s 10 10 standard computer 3\n", prog)
	fmt.Fprintf(w, "  %s 10 10 misere\n", prog)
	fmt.Fprintf(w, "  %s 10 10 standard\n", prog)
}
