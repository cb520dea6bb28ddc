// Package agent provides the players that choose moves: a person at a
// prompt, the minimax searcher and a random baseline.
package agent

import (
	"nim/game"
)

type Agent interface {
	// FindMove returns a legal move for state, or game.ErrNoLegalMove when
	// there is none.
	FindMove(state game.State) (game.Move, error)
}
