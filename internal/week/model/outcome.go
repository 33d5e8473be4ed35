package model

// Outcome encodes a match result: 1 home win, 0 draw, 2 away win.
// An unset outcome is represented as a NULL column (nil pointer).
type Outcome int16

const (
	// OutcomeDraw is a drawn match.
	OutcomeDraw Outcome = 0
	// OutcomeHomeWin is a home team win.
	OutcomeHomeWin Outcome = 1
	// OutcomeAwayWin is an away team win.
	OutcomeAwayWin Outcome = 2
)

// Valid reports whether o is one of the three defined outcomes.
func (o Outcome) Valid() bool {
	return o == OutcomeDraw || o == OutcomeHomeWin || o == OutcomeAwayWin
}

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeHomeWin:
		return "home-win"
	case OutcomeDraw:
		return "draw"
	case OutcomeAwayWin:
		return "away-win"
	default:
		return "unknown"
	}
}

// OutcomeFromScores derives an outcome from a final score. Returns nil when
// either score is missing (match not yet decided).
func OutcomeFromScores(home, away *int) *Outcome {
	if home == nil || away == nil {
		return nil
	}

	var o Outcome
	switch {
	case *home > *away:
		o = OutcomeHomeWin
	case *home == *away:
		o = OutcomeDraw
	default:
		o = OutcomeAwayWin
	}
	return &o
}
