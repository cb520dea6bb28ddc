package engine

import (
	"errors"
	"fmt"
	"io"

	"nim/game"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State   game.State
	Rules   game.Rules
	Players [2]Player
	current int
	out     io.Writer
}

// New prepares a game where players[first] moves first. Progress is written
// to out.
func New(state game.State, rules game.Rules, players [2]Player, first int, out io.Writer) *Engine {
	if first != 0 && first != 1 {
		panic("first player index must be 0 or 1")
	}
	return &Engine{
		State:   state,
		Rules:   rules,
		Players: players,
		current: first,
		out:     out,
	}
}

// Run executes the game loop until the rules report a terminal state.
func (e *Engine) Run() (Outcome, error) {
	log.Info().Msgf("%s is starting", e.Players[e.current].Name)

	var records []Record
	for turn := 1; turn <= MaxTurns; turn++ {
		fmt.Fprintln(e.out, e.State)

		mover := e.Players[e.current]
		opponent := e.Players[1-e.current]

		move, err := mover.Agent.FindMove(e.State)
		switch {
		case errors.Is(err, game.ErrNoLegalMove):
			log.Warn().Str("player", mover.Name).Stringer("state", e.State).Msg("no legal move, state unchanged")
		case err != nil:
			return Outcome{}, fmt.Errorf("%s on turn %d: %w", mover.Name, turn, err)
		default:
			next, err := e.State.Apply(move)
			if err != nil {
				return Outcome{}, fmt.Errorf("%s on turn %d: %w", mover.Name, turn, err)
			}
			records = append(records, Record{
				Turn:   turn,
				Player: mover.Name,
				Move:   move,
				Before: e.State,
				After:  next,
			})
			log.Debug().Int("turn", turn).Str("player", mover.Name).Stringer("move", move).Stringer("state", next).Msg("move played")
			e.State = next
		}

		if e.Rules.IsTerminal(e.State) {
			outcome := Outcome{
				Winner:  e.Rules.Winner(mover.Name, opponent.Name),
				Final:   e.State,
				Score:   e.State.Score(),
				Turns:   turn,
				Records: records,
			}
			fmt.Fprintf(e.out, "%s wins!\n", outcome.Winner)
			fmt.Fprintf(e.out, "Final score: %d points\n", outcome.Score)
			log.Info().Str("winner", outcome.Winner).Int("score", outcome.Score).Int("turns", turn).Msg("game over")
			return outcome, nil
		}

		e.current = 1 - e.current
	}

	return Outcome{}, ErrTurnLimit
}
