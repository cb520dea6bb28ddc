package game

// Rules decides when a game ends, how a position is scored and who won.
// Search and turn handling only talk to Rules, so a variant can change any of
// these without touching them.
type Rules interface {
	Variant() Variant
	IsTerminal(state State) bool
	Score(state State) float64
	// Winner names the winner once the mover's move made the state terminal.
	Winner(mover, opponent string) string
}

// NewRules returns the rule set for v.
func NewRules(v Variant) Rules {
	if v == Misere {
		return NewMisereRules()
	}
	return NewStandardRules()
}
