package game

import (
	"fmt"

	"github.com/samber/lo"
)

// State is an immutable snapshot of both piles. Operations on State always
// return a new copy.
type State struct {
	Red  int
	Blue int
}

// NewState returns the starting state for the given pile sizes.
func NewState(red, blue int) (State, error) {
	if red < 0 || blue < 0 {
		return State{}, fmt.Errorf("red=%d blue=%d: %w", red, blue, ErrNegativePile)
	}
	return State{Red: red, Blue: blue}, nil
}

// Tokens returns the count of the given pile.
func (s State) Tokens(p Pile) int {
	if p == Red {
		return s.Red
	}
	return s.Blue
}

func (s State) CanApply(m Move) bool {
	if m.Count < MinRemove || m.Count > MaxRemove {
		return false
	}
	if m.Pile != Red && m.Pile != Blue {
		return false
	}
	return s.Tokens(m.Pile) >= m.Count
}

// Apply returns the state after m. Moves that would empty a pile below zero
// are rejected, never clamped.
func (s State) Apply(m Move) (State, error) {
	if !s.CanApply(m) {
		return s, fmt.Errorf("remove %d from %s pile of %d: %w", m.Count, m.Pile, s.Tokens(m.Pile), ErrIllegalMove)
	}
	return s.play(m), nil
}

// play skips validation; callers only pass moves from LegalMoves.
func (s State) play(m Move) State {
	if m.Pile == Red {
		s.Red -= m.Count
	} else {
		s.Blue -= m.Count
	}
	return s
}

// LegalMoves lists the legal moves, red before blue and ascending count.
func (s State) LegalMoves() []Move {
	return lo.Filter(allMoves, func(m Move, _ int) bool {
		return s.CanApply(m)
	})
}

// Successors pairs every legal move with the state it produces, in
// LegalMoves order.
func (s State) Successors() ([]Move, []State) {
	moves := s.LegalMoves()
	states := lo.Map(moves, func(m Move, _ int) State {
		return s.play(m)
	})
	return moves, states
}

// IsTerminal reports whether either pile is empty.
func (s State) IsTerminal() bool {
	return s.Red == 0 || s.Blue == 0
}

// Score values red tokens at 2 points and blue tokens at 3.
func (s State) Score() int {
	return 2*s.Red + 3*s.Blue
}

func (s State) String() string {
	return fmt.Sprintf("Red tokens: %d, Blue tokens: %d", s.Red, s.Blue)
}
