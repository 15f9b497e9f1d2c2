package search

import (
	"slices"

	"github.com/samber/lo"
)

type localSearch struct{}

// NewLocalSearch returns 1-flip hill climbing with a first-improvement
// pivoting rule: each round scans the variables of the currently unsatisfied
// clauses in ascending order, keeps the first strictly improving flip and
// starts a fresh round; it stops at a local optimum. Fully deterministic for
// a given starting assignment.
func NewLocalSearch() Searcher {
	return &localSearch{}
}

func (searcher *localSearch) Search(formula Formula, assignment Assignment) Assignment {
	vars := assignment.Clone()
	cost := formula.Cost(vars)

	for improved := true; improved; {
		improved = false

		candidates := make([]int, 0)
		for _, clause := range formula.Clauses() {
			if !clause.Satisfied(vars) {
				for _, literal := range clause.Literals() {
					candidates = append(candidates, abs(literal)-1)
				}
			}
		}
		slices.Sort(candidates)
		candidates = lo.Uniq(candidates)

		for _, variable := range candidates {
			vars[variable] = vars[variable].Flip()
			if flipped := formula.Cost(vars); flipped < cost {
				cost = flipped
				improved = true
				break
			}
			vars[variable] = vars[variable].Flip()
		}
	}
	return vars
}
