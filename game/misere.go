package game

// MisereRules currently shares the standard terminal condition, score and
// winner: the mover who empties a pile is reported as the winner.
// TODO: decide whether misère should hand the win to the opponent; only
// Winner needs to change.
type MisereRules struct{}

func NewMisereRules() *MisereRules {
	return &MisereRules{}
}

func (mr *MisereRules) Variant() Variant {
	return Misere
}

func (mr *MisereRules) IsTerminal(state State) bool {
	return state.Red == 0 || state.Blue == 0
}

func (mr *MisereRules) Score(state State) float64 {
	return float64(state.Score())
}

func (mr *MisereRules) Winner(mover, opponent string) string {
	return mover
}
