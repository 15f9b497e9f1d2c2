package search

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnealingNeverWorseThanStart(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))

	for range 5 {
		// Arrange
		variables := 1 + rng.IntN(15)
		formula, _ := randomFormula(rng, variables, 1+rng.IntN(40))
		start := randomAssignment(rng, variables)

		// Act
		result := NewSimulatedAnnealing(10.0, 0.8, 20, 0.01, rng).Search(formula, start)

		// Assert: the best assignment across the whole cooling schedule is
		// returned, even though worsening moves are accepted along the way
		assert.LessOrEqual(t, formula.Cost(result), formula.Cost(start))
	}
}

func TestAnnealingScenario(t *testing.T) {
	// Arrange
	rng := rand.New(rand.NewPCG(33, 34))
	formula := scenarioFormula()

	// Act
	result := NewSimulatedAnnealing(10.0, 0.9, 50, 0.01, rng).Search(formula, Assignment{False, False})

	// Assert
	assert.Equal(t, 1, formula.Cost(result))
}

func TestMetropolisAlwaysAcceptsZeroDelta(t *testing.T) {
	// Arrange
	searcher := &simulatedAnnealing{rng: rand.New(rand.NewPCG(35, 36))}

	// Assert: e^0 = 1, so a zero-cost-change move always passes
	for range 100 {
		assert.True(t, searcher.metropolis(0, 5.0))
	}
}

func TestMetropolisRejectsHopelessMoves(t *testing.T) {
	// Arrange
	searcher := &simulatedAnnealing{rng: rand.New(rand.NewPCG(37, 38))}

	// Assert: e^(-1000/0.01) underflows to 0
	for range 100 {
		assert.False(t, searcher.metropolis(1000, 0.01))
	}
}

func TestAnnealingEmptyAssignment(t *testing.T) {
	// Arrange
	rng := rand.New(rand.NewPCG(39, 40))

	// Act
	result := NewSimulatedAnnealing(10.0, 0.9, 10, 0.01, rng).Search(NewFormula(nil), NewAssignment(0))

	// Assert
	assert.Empty(t, result)
}
