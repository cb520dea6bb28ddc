// Package engine runs a game between two agents, one turn at a time, until
// the rules declare it over.
package engine

import (
	"errors"

	"nim/agent"
	"nim/game"
)

// MaxTurns bounds a game whose agents keep failing to move.
const MaxTurns = 10000

var ErrTurnLimit = errors.New("turn limit reached without a winner")

type Player struct {
	Name  string
	Agent agent.Agent
}

// Record is one applied move.
type Record struct {
	Turn   int
	Player string
	Move   game.Move
	Before game.State
	After  game.State
}

type Outcome struct {
	Winner  string
	Final   game.State
	Score   int
	Turns   int
	Records []Record
}
