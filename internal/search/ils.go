package search

import (
	"math"
	"math/rand/v2"
)

// Share of the variables flipped by each ILS perturbation.
const perturbationRate = 0.05

type iteratedLocalSearch struct {
	maxIterations int
	rng           *rand.Rand
}

// NewIteratedLocalSearch returns ILS with elitist acceptance: every round
// perturbs the best-known assignment by flipping 5% of the variables at
// random, descends to a local optimum and keeps the result only on strict
// improvement.
func NewIteratedLocalSearch(maxIterations int, rng *rand.Rand) Searcher {
	return &iteratedLocalSearch{maxIterations: maxIterations, rng: rng}
}

func (searcher *iteratedLocalSearch) Search(formula Formula, assignment Assignment) Assignment {
	best := assignment.Clone()
	if len(best) == 0 {
		return best
	}

	local := NewLocalSearch()
	bestCost := formula.Cost(best)
	k := max(1, int(math.Round(float64(len(best))*perturbationRate)))

	for range searcher.maxIterations {
		current := best.Clone()
		for range k {
			variable := searcher.rng.IntN(len(current))
			current[variable] = current[variable].Flip()
		}

		current = local.Search(formula, current)

		if cost := formula.Cost(current); cost < bestCost {
			bestCost = cost
			best = current
		}
	}
	return best
}
