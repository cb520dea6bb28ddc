package agent

import (
	"fmt"
	"io"

	"nim/game"
	"nim/searcher"
)

// SearchAgent plays the minimax move and announces it.
type SearchAgent struct {
	minimax *searcher.Minimax
	out     io.Writer
	metrics []searcher.SearchMetric
}

func NewSearchAgent(minimax *searcher.Minimax, out io.Writer) *SearchAgent {
	return &SearchAgent{minimax: minimax, out: out}
}

func (a *SearchAgent) FindMove(state game.State) (game.Move, error) {
	result, metric, err := a.minimax.FindBestMove(state)
	if err != nil {
		fmt.Fprintln(a.out, "No valid moves available for computer.")
		return game.Move{}, err
	}
	a.metrics = append(a.metrics, metric)
	fmt.Fprintf(a.out, "Computer removes %d %s tokens.\n", result.Move.Count, result.Move.Pile)
	return result.Move, nil
}

// Metrics returns one entry per move found so far.
func (a *SearchAgent) Metrics() []searcher.SearchMetric {
	return a.metrics
}
