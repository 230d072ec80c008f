package domain

// Outcome is the tri-state result of a backtracking search. Timeouts
// are an explicit outcome, not an error or a panic.
type Outcome int

const (
	Solved    Outcome = iota // complete consistent assignment found
	Exhausted                // every branch tried, no solution
	Cancelled                // deadline or context expired mid-search
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
