package agent

import (
	"nim/game"

	"golang.org/x/exp/rand"
)

// RandomAgent picks uniformly among the legal moves.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, game.ErrNoLegalMove
	}
	return moves[a.rng.Intn(len(moves))], nil
}
