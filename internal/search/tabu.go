package search

import (
	"math"
	"math/rand/v2"
)

// Spread of the randomized tenure added on top of the base, to avoid
// cycling.
const tenureSpread = 6

type tabuSearch struct {
	maxIterations int
	tenureBase    int
	rng           *rand.Rand
}

// NewTabuSearch returns tabu search over the 1-flip neighborhood: every
// iteration applies the minimum-delta move, worsening or not, among the
// variables that are not tabu or that beat the best-known cost (aspiration
// criterion). A flipped variable stays tabu for tenureBase plus a uniform
// random extra of up to five iterations.
func NewTabuSearch(maxIterations, tenureBase int, rng *rand.Rand) Searcher {
	return &tabuSearch{maxIterations: maxIterations, tenureBase: tenureBase, rng: rng}
}

func (searcher *tabuSearch) Search(formula Formula, assignment Assignment) Assignment {
	vars := assignment.Clone()
	if len(vars) == 0 {
		return vars
	}

	tabuUntil := make([]int, len(vars))
	best := vars.Clone()
	bestCost := formula.Cost(vars)
	cost := bestCost

	for iteration := 1; iteration <= searcher.maxIterations; iteration++ {
		chosen := -1
		chosenDelta := math.MaxInt

		for variable := range vars {
			vars[variable] = vars[variable].Flip()
			flipped := formula.Cost(vars)
			vars[variable] = vars[variable].Flip()

			tabu := iteration < tabuUntil[variable]
			aspires := flipped < bestCost
			if tabu && !aspires {
				continue
			}
			if delta := flipped - cost; delta < chosenDelta {
				chosenDelta = delta
				chosen = variable
			}
		}

		if chosen == -1 {
			continue
		}

		vars[chosen] = vars[chosen].Flip()
		cost += chosenDelta
		tabuUntil[chosen] = iteration + searcher.tenureBase + searcher.rng.IntN(tenureSpread)

		if cost < bestCost {
			bestCost = cost
			best = vars.Clone()
		}
	}
	return best
}
