package domain

// Combo is one named heuristic combination evaluated by the batch
// harness.
type Combo struct {
	Name               string
	MRVAC3             bool
	DegreeAC3          bool
	MRVBacktracking    bool
	DegreeBacktracking bool
}

// Config builds the solve configuration for this combination. Batch
// runs disable feedback and preprocessing so the measured work is the
// propagator's and the searcher's alone.
func (c Combo) Config() Config {
	return Config{
		MRVAC3:             c.MRVAC3,
		DegreeAC3:          c.DegreeAC3,
		MRVBacktracking:    c.MRVBacktracking,
		DegreeBacktracking: c.DegreeBacktracking,
	}
}

// Combos is the evaluation matrix: a no-heuristic baseline plus every
// pairing that isolates MRV and Degree per phase.
func Combos() []Combo {
	return []Combo{
		{Name: "No heuristics"},
		{Name: "All heuristics", MRVAC3: true, DegreeAC3: true, MRVBacktracking: true, DegreeBacktracking: true},
		{Name: "MRV for AC-3, Degree for backtracking", MRVAC3: true, DegreeBacktracking: true},
		{Name: "Degree for AC-3, MRV for backtracking", DegreeAC3: true, MRVBacktracking: true},
		{Name: "MRV & Degree for AC-3 only", MRVAC3: true, DegreeAC3: true},
		{Name: "MRV & Degree for backtracking only", MRVBacktracking: true, DegreeBacktracking: true},
		{Name: "MRV for AC-3 and backtracking", MRVAC3: true, MRVBacktracking: true},
		{Name: "Degree for AC-3 and backtracking", DegreeAC3: true, DegreeBacktracking: true},
	}
}
