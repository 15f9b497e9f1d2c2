package search

import (
	"math"
	"math/rand/v2"
	"slices"
)

type graspSearch struct {
	maxIterations int
	alpha         float64
	frequencies   []Frequency
	rng           *rand.Rand
}

// NewGRASP returns the greedy randomized adaptive search procedure: each
// trial builds an assignment from scratch by picking variables at random
// from a restricted candidate list, descends with hill climbing and keeps
// the best trial. Alpha blends between pure greed (0) and pure randomness
// (1) when cutting off the candidate list.
func NewGRASP(maxIterations int, alpha float64, frequencies []Frequency, rng *rand.Rand) Searcher {
	return &graspSearch{
		maxIterations: maxIterations,
		alpha:         alpha,
		frequencies:   frequencies,
		rng:           rng,
	}
}

func (searcher *graspSearch) Search(formula Formula, assignment Assignment) Assignment {
	local := NewLocalSearch()
	best := assignment.Clone()
	bestCost := math.MaxInt

	for range searcher.maxIterations {
		current := searcher.construct(NewAssignment(len(assignment)))
		current = local.Search(formula, current)

		if cost := formula.Cost(current); cost < bestCost {
			bestCost = cost
			best = current
		}
	}
	return best
}

// construct assigns every variable by drawing uniformly from the restricted
// candidate list of unresolved variables whose benefit reaches
// sMax - alpha*(sMax - sMin). Choosing a variable only removes it from
// future competition; unlike the constructive heuristic, no clause
// resolution is propagated onto the neighbours' counts.
func (searcher *graspSearch) construct(vars Assignment) Assignment {
	frequencies := slices.Clone(searcher.frequencies)

	for range vars {
		sMin, sMax := math.MaxInt, math.MinInt
		for variable, value := range vars {
			if value != Unknown {
				continue
			}
			benefit := frequencies[variable].Benefit()
			sMin = min(sMin, benefit)
			sMax = max(sMax, benefit)
		}

		threshold := float64(sMax) - searcher.alpha*float64(sMax-sMin)

		rcl := make([]int, 0, len(vars))
		for variable, value := range vars {
			if value == Unknown && float64(frequencies[variable].Benefit()) >= threshold {
				rcl = append(rcl, variable)
			}
		}

		chosen := rcl[searcher.rng.IntN(len(rcl))]
		vars[chosen] = frequencies[chosen].Polarity()
		frequencies[chosen].Exclude()
	}
	return vars
}
