// Package searcher picks moves with depth-bounded minimax and alpha-beta
// pruning. There is no transposition table: every call explores the tree
// below the given state from scratch.
package searcher

import (
	"math"

	"nim/game"
)

const DefaultDepth = 3

var (
	NegInf = math.Inf(-1)
	PosInf = math.Inf(1)
)

// Result is the outcome of a root search.
type Result struct {
	Move  game.Move
	Score float64
}
