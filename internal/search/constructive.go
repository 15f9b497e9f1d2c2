package search

import "slices"

type constructiveSearch struct {
	frequencies []Frequency
}

// NewConstructive returns the greedy constructive heuristic: repeatedly
// assign the variable with the most occurrences across still-open clauses,
// with the polarity of its dominant direction, propagating clause resolution
// back into the frequency table after every choice. Variables left without
// driving occurrences default to False.
func NewConstructive(frequencies []Frequency) Searcher {
	return &constructiveSearch{frequencies: frequencies}
}

func (searcher *constructiveSearch) Search(formula Formula, assignment Assignment) Assignment {
	vars := assignment.Clone()
	frequencies := slices.Clone(searcher.frequencies)
	// The working copy absorbs the cached-status rewrites done during
	// propagation; the caller's formula stays pristine.
	working := formula.Clone()
	clauses := working.Clauses()

	for pending := len(vars); pending > 0; pending-- {
		chosen := 0
		for variable := 1; variable < len(frequencies); variable++ {
			if frequencies[variable].Total() > frequencies[chosen].Total() {
				chosen = variable
			}
		}
		if !frequencies[chosen].Open() {
			break
		}

		vars[chosen] = frequencies[chosen].Polarity()
		frequencies[chosen].Exclude()

		for i := range clauses {
			if clauses[i].Status() == Unknown && clauses[i].Contains(chosen) {
				clauses[i].Resolve(vars, frequencies)
			}
		}
	}

	for i, value := range vars {
		if value == Unknown {
			vars[i] = False
		}
	}
	return vars
}
