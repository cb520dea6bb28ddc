package agent

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"nim/game"
)

// Prompter shows a prompt and returns the line typed in reply.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// HumanAgent asks a person for a color and a count until the move is legal.
type HumanAgent struct {
	in  Prompter
	out io.Writer
}

func NewHumanAgent(in Prompter, out io.Writer) *HumanAgent {
	return &HumanAgent{in: in, out: out}
}

func (a *HumanAgent) FindMove(state game.State) (game.Move, error) {
	if len(state.LegalMoves()) == 0 {
		return game.Move{}, game.ErrNoLegalMove
	}

	fmt.Fprintln(a.out, "Player Human's turn")
	for {
		pile, err := a.askPile()
		if err != nil {
			return game.Move{}, err
		}
		count, err := a.askCount()
		if err != nil {
			return game.Move{}, err
		}

		move := game.Move{Pile: pile, Count: count}
		if state.CanApply(move) {
			return move, nil
		}
		fmt.Fprintf(a.out, "Not enough %s tokens to remove %d.\n", pile, count)
	}
}

func (a *HumanAgent) askPile() (game.Pile, error) {
	prompt := "Choose a color (red/blue): "
	for {
		line, err := a.in.Prompt(prompt)
		if err != nil {
			return 0, fmt.Errorf("reading color: %w", err)
		}
		pile, err := game.ParsePile(line)
		if err == nil {
			return pile, nil
		}
		prompt = "Invalid color. Choose a color (red/blue): "
	}
}

func (a *HumanAgent) askCount() (int, error) {
	prompt := fmt.Sprintf("How many tokens to remove (%d, %d, or %d)? ", game.MinRemove, game.MinRemove+1, game.MaxRemove)
	for {
		line, err := a.in.Prompt(prompt)
		if err != nil {
			return 0, fmt.Errorf("reading count: %w", err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && count >= game.MinRemove && count <= game.MaxRemove {
			return count, nil
		}
		prompt = fmt.Sprintf("Invalid number of tokens. Choose %d, %d, or %d: ", game.MinRemove, game.MinRemove+1, game.MaxRemove)
	}
}
