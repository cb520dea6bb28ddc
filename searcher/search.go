package searcher

import (
	"nim/game"
)

// Search returns the minimax value of state looking depth plies ahead.
// Terminal states and depth-exhausted states are both valued at the raw
// rules score. A negative depth is treated as 0. Children are visited in
// game.State.LegalMoves order and a node returns its running best as soon as
// beta <= alpha.
func Search(state game.State, depth int, maximizing bool, alpha, beta float64, rules game.Rules) float64 {
	return search(state, depth, maximizing, alpha, beta, rules, dummy)
}

func search(state game.State, depth int, maximizing bool, alpha, beta float64, rules game.Rules, c Collector) float64 {
	c.AddNode()
	if rules.IsTerminal(state) || depth <= 0 {
		return rules.Score(state)
	}

	_, children := state.Successors()
	if len(children) == 0 {
		return rules.Score(state)
	}

	if maximizing {
		best := NegInf
		for _, child := range children {
			eval := search(child, depth-1, false, alpha, beta, rules, c)
			best = max(best, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				c.AddCutoff()
				return best
			}
		}
		return best
	}

	best := PosInf
	for _, child := range children {
		eval := search(child, depth-1, true, alpha, beta, rules, c)
		best = min(best, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			c.AddCutoff()
			return best
		}
	}
	return best
}

// SelectMove evaluates every legal move from state with a fresh window and
// returns the first move with the highest score.
func SelectMove(state game.State, depth int, rules game.Rules) (Result, error) {
	moves, children := state.Successors()
	if len(moves) == 0 {
		return Result{}, game.ErrNoLegalMove
	}

	scores := make([]float64, len(children))
	for i, child := range children {
		scores[i] = Search(child, depth-1, false, NegInf, PosInf, rules)
	}
	return pick(moves, scores), nil
}

// pick keeps the earliest move on ties.
func pick(moves []game.Move, scores []float64) Result {
	best := Result{Move: moves[0], Score: scores[0]}
	for i := 1; i < len(moves); i++ {
		if scores[i] > best.Score {
			best = Result{Move: moves[i], Score: scores[i]}
		}
	}
	return best
}
