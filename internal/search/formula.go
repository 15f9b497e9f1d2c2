package search

// Formula is an ordered collection of clauses over a fixed set of variables.
type Formula struct {
	clauses []Clause
}

func NewFormula(clauses []Clause) Formula {
	return Formula{clauses: clauses}
}

func (formula Formula) Clauses() []Clause {
	return formula.clauses
}

func (formula Formula) Size() int {
	return len(formula.clauses)
}

// Cost is the number of clauses with no true literal under the assignment.
// It is the single source of truth for quality comparisons in every
// strategy, recomputed by full scan on each call.
func (formula Formula) Cost(assignment Assignment) int {
	cost := 0
	for _, clause := range formula.clauses {
		if !clause.Satisfied(assignment) {
			cost++
		}
	}
	return cost
}

// Clone deep-copies the clause collection, so strategies that rewrite cached
// clause statuses never touch the base snapshot.
func (formula Formula) Clone() Formula {
	clauses := make([]Clause, len(formula.clauses))
	for i, clause := range formula.clauses {
		clauses[i] = clause.Clone()
	}
	return Formula{clauses: clauses}
}
