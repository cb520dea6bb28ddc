package game

import (
	"fmt"
	"strings"
)

const (
	MinRemove = 1
	MaxRemove = 3
)

type Pile int

const (
	Red Pile = iota
	Blue
)

// Piles lists the piles in enumeration order.
var Piles = [...]Pile{Red, Blue}

func (p Pile) String() string {
	switch p {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Pile(%d)", int(p))
}

// ParsePile accepts "red" or "blue" in any case.
func ParsePile(s string) (Pile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "blue":
		return Blue, nil
	}
	return 0, fmt.Errorf("pile %q: %w", s, ErrUnknownToken)
}

// Move removes Count tokens from Pile.
type Move struct {
	Pile  Pile
	Count int
}

func (m Move) String() string {
	return fmt.Sprintf("%d %s", m.Count, m.Pile)
}

// allMoves is every move shape in the fixed search order: red before blue,
// ascending count.
var allMoves = func() []Move {
	moves := make([]Move, 0, len(Piles)*MaxRemove)
	for _, p := range Piles {
		for c := MinRemove; c <= MaxRemove; c++ {
			moves = append(moves, Move{Pile: p, Count: c})
		}
	}
	return moves
}()
