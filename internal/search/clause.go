package search

import "slices"

// Clause is an ordered sequence of nonzero signed literals: the absolute
// value is the 1-based variable id and the sign its polarity. The cached
// status memoizes the outcome of the last Resolve call; cost evaluation
// never trusts it and always rescans the literals.
type Clause struct {
	literals []int
	status   TBool
}

func NewClause(literals []int) Clause {
	return Clause{literals: literals, status: Unknown}
}

func (clause Clause) Literals() []int {
	return clause.literals
}

func (clause Clause) Status() TBool {
	return clause.status
}

func (clause Clause) Clone() Clause {
	return Clause{literals: slices.Clone(clause.literals), status: clause.status}
}

// Satisfied reports whether any literal evaluates to true under the given
// assignment. An Unknown variable never satisfies a literal.
func (clause Clause) Satisfied(assignment Assignment) bool {
	for _, literal := range clause.literals {
		value := assignment[abs(literal)-1]
		if value == Unknown {
			continue
		}
		if (literal > 0 && value == True) || (literal < 0 && value == False) {
			return true
		}
	}
	return false
}

// Contains reports whether the 0-based variable appears in the clause, with
// either polarity.
func (clause Clause) Contains(variable int) bool {
	for _, literal := range clause.literals {
		if abs(literal)-1 == variable {
			return true
		}
	}
	return false
}

// Resolve recomputes the cached status against the assignment: True as soon
// as one literal holds, False once every literal is resolved and none holds,
// Unknown otherwise. Whenever the clause becomes resolved it discounts the
// frequency entries of every variable it mentions, since the clause no
// longer drives greedy selection. The frequency table is an explicit
// parameter and is never retained.
func (clause *Clause) Resolve(assignment Assignment, frequencies []Frequency) {
	open := false
	for _, literal := range clause.literals {
		value := assignment[abs(literal)-1]
		if (literal > 0 && value == True) || (literal < 0 && value == False) {
			clause.status = True
			clause.discount(frequencies)
			return
		}
		if value == Unknown {
			open = true
		}
	}

	if open {
		clause.status = Unknown
		return
	}
	clause.status = False
	clause.discount(frequencies)
}

func (clause *Clause) discount(frequencies []Frequency) {
	if frequencies == nil {
		return
	}
	for _, literal := range clause.literals {
		variable := abs(literal) - 1
		if literal > 0 {
			frequencies[variable].Pos--
		} else {
			frequencies[variable].Neg--
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
