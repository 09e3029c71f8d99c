package rules

// Transition describes what happens to a single cell between two generations.
type Transition int

const (
	// StaysDead means a dead cell did not have exactly three live neighbors.
	StaysDead Transition = iota
	// Born means a dead cell had exactly three live neighbors.
	Born
	// Survives means a live cell had two or three live neighbors.
	Survives
	// Dies means a live cell was under- or over-populated.
	Dies
)

func (t Transition) String() string {
	switch t {
	case Born:
		return "born"
	case Survives:
		return "survives"
	case Dies:
		return "dies"
	default:
		return "stays-dead"
	}
}

// Alive reports whether the cell is alive after the transition.
func (t Transition) Alive() bool {
	return t == Born || t == Survives
}

/*
Next classifies a cell under Conway's B3/S23 rule.

	alive, 2 or 3 neighbors -> Survives
	alive, otherwise        -> Dies
	dead, exactly 3         -> Born
	dead, otherwise         -> StaysDead
*/
func Next(neighbors int, alive bool) Transition {
	if alive {
		if neighbors == 2 || neighbors == 3 {
			return Survives
		}
		return Dies
	}
	if neighbors == 3 {
		return Born
	}
	return StaysDead
}

// ApplyConwayRules returns the alive state of a cell in the next generation.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Next(neighbors, alive).Alive()
}
