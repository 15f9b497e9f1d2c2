package search

// Sentinel stored in both counters once a constructive phase has picked the
// variable, so it never wins another selection round.
const excludedCount = -99999

// Frequency counts how many still-open clauses contain a variable as a
// positive and as a negative literal.
type Frequency struct {
	Pos int
	Neg int
}

func (frequency Frequency) Total() int {
	return frequency.Pos + frequency.Neg
}

// Benefit is the greedy value used by GRASP construction: the larger
// directional count.
func (frequency Frequency) Benefit() int {
	return max(frequency.Pos, frequency.Neg)
}

// Polarity is the truth value matching the dominant direction, preferring
// True on ties.
func (frequency Frequency) Polarity() TBool {
	if frequency.Pos >= frequency.Neg {
		return True
	}
	return False
}

// Open reports whether the variable still drives any open clause.
func (frequency Frequency) Open() bool {
	return frequency.Pos > 0 || frequency.Neg > 0
}

// Exclude marks the variable as already chosen.
func (frequency *Frequency) Exclude() {
	frequency.Pos = excludedCount
	frequency.Neg = excludedCount
}
