package search

import (
	"math"
	"math/rand/v2"
)

type simulatedAnnealing struct {
	initialTemperature float64
	alpha              float64
	iterationsPerLevel int
	minTemperature     float64
	rng                *rand.Rand
}

// NewSimulatedAnnealing returns simulated annealing with geometric cooling:
// starting at initialTemperature, each level runs iterationsPerLevel random
// 1-flips and multiplies the temperature by alpha until it drops to
// minTemperature. Improving flips are always kept; worsening ones pass the
// Metropolis test with probability e^(-delta/T).
func NewSimulatedAnnealing(initialTemperature, alpha float64, iterationsPerLevel int, minTemperature float64, rng *rand.Rand) Searcher {
	return &simulatedAnnealing{
		initialTemperature: initialTemperature,
		alpha:              alpha,
		iterationsPerLevel: iterationsPerLevel,
		minTemperature:     minTemperature,
		rng:                rng,
	}
}

func (searcher *simulatedAnnealing) Search(formula Formula, assignment Assignment) Assignment {
	best := assignment.Clone()
	if len(best) == 0 {
		return best
	}

	current := assignment.Clone()
	cost := formula.Cost(current)
	bestCost := cost

	for temperature := searcher.initialTemperature; temperature > searcher.minTemperature; temperature *= searcher.alpha {
		for range searcher.iterationsPerLevel {
			variable := searcher.rng.IntN(len(current))
			current[variable] = current[variable].Flip()
			flipped := formula.Cost(current)
			delta := flipped - cost

			if delta < 0 {
				cost = flipped
				if cost < bestCost {
					bestCost = cost
					best = current.Clone()
				}
				continue
			}

			if searcher.metropolis(delta, temperature) {
				cost = flipped
			} else {
				current[variable] = current[variable].Flip()
			}
		}
	}
	return best
}

// metropolis accepts a non-improving move with probability e^(-delta/T).
// A zero-delta move always passes, since e^0 = 1.
func (searcher *simulatedAnnealing) metropolis(delta int, temperature float64) bool {
	return searcher.rng.Float64() < math.Exp(-float64(delta)/temperature)
}
