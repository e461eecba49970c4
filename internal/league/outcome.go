package league

// Outcome is the result of a single match from one team's point of view.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// Classify derives the outcome from a score. Exactly one outcome holds for
// every pair of goal counts.
func Classify(goalsFor, goalsAgainst int) Outcome {
	switch {
	case goalsFor > goalsAgainst:
		return Win
	case goalsFor == goalsAgainst:
		return Draw
	default:
		return Loss
	}
}

// Points awarded for the outcome.
func (o Outcome) Points() int {
	switch o {
	case Win:
		return 3
	case Draw:
		return 1
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}
