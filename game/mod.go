// Package game models Red-Blue Nim: two piles of tokens, moves that take one
// to three tokens from a single pile, and the rule sets that decide when a
// game is over.
package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoLegalMove  = errors.New("no legal move available")
	ErrNegativePile = errors.New("pile count cannot be negative")
	ErrUnknownToken = errors.New("unrecognized token")
)

// Variant selects the rule set a game is played under.
type Variant int

const (
	Standard Variant = iota
	Misere
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Misere:
		return "misere"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant accepts "standard" or "misere" in any case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "misere":
		return Misere, nil
	}
	return 0, fmt.Errorf("variant %q: %w", s, ErrUnknownToken)
}
