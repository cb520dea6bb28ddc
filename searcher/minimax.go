package searcher

import (
	"nim/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax is a configured move finder. It holds no state between calls and
// is safe to share.
type Minimax struct {
	rules       game.Rules
	depth       int
	goroutines  int
	withMetrics bool
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines evaluates root moves concurrently. The chosen move is the
// same as with a single goroutine.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.withMetrics = true
	}
}

func NewMinimax(rules game.Rules, options ...Option) *Minimax {
	m := &Minimax{ // Default values
		rules:      rules,
		depth:      DefaultDepth,
		goroutines: 1,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Rules() game.Rules {
	return m.rules
}

// FindBestMove searches state to the configured depth.
func (m *Minimax) FindBestMove(state game.State) (Result, SearchMetric, error) {
	c := dummy
	if m.withMetrics {
		c = NewCollector()
	}
	c.Start(m.depth, m.goroutines)

	moves, children := state.Successors()
	if len(moves) == 0 {
		return Result{}, c.Complete(), game.ErrNoLegalMove
	}

	scores := make([]float64, len(children))
	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			scores[i] = search(child, m.depth-1, false, NegInf, PosInf, m.rules, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, c.Complete(), err
	}

	result := pick(moves, scores)
	metric := c.Complete()
	log.Debug().
		Stringer("state", state).
		Int("depth", m.depth).
		Stringer("move", result.Move).
		Float64("score", result.Score).
		Int64("nodes", metric.Nodes).
		Int64("cutoffs", metric.Cutoffs).
		Msg("minimax-best-move")
	return result, metric, nil
}
