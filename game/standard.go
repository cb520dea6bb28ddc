package game

// StandardRules ends the game as soon as a pile is empty; the player who
// emptied it wins.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) Variant() Variant {
	return Standard
}

func (sr *StandardRules) IsTerminal(state State) bool {
	return state.IsTerminal()
}

func (sr *StandardRules) Score(state State) float64 {
	return float64(state.Score())
}

func (sr *StandardRules) Winner(mover, opponent string) string {
	return mover
}
