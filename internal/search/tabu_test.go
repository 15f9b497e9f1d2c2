package search

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unsatAtPoint builds a clause falsified exactly at the given point of the
// 3-variable assignment cube.
func unsatAtPoint(point [3]bool) Clause {
	literals := make([]int, 0, 3)
	for variable, value := range point {
		if value {
			literals = append(literals, -(variable + 1))
		} else {
			literals = append(literals, variable+1)
		}
	}
	return NewClause(literals)
}

func TestTabuNeverWorseThanStart(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))

	for range 5 {
		// Arrange
		variables := 1 + rng.IntN(15)
		formula, _ := randomFormula(rng, variables, 1+rng.IntN(40))
		start := randomAssignment(rng, variables)

		// Act
		result := NewTabuSearch(30, 3, rng).Search(formula, start)

		// Assert: the best assignment ever observed is returned, not the
		// final iterate
		assert.LessOrEqual(t, formula.Cost(result), formula.Cost(start))
	}
}

func TestTabuAspiration(t *testing.T) {
	// Arrange: a cost landscape over three variables where the only route to
	// the optimum FTT flips x1 while it is still tabu. Costs per assignment
	// (x1 x2 x3): FFF=3, TFF=2, FTF=2, FFT=4, TTF=3, TFT=4, TTT=4, FTT=1.
	// From FFF the search walks TFF (best 2), is forced through TTF and TTT
	// while x1..x3 become tabu, and can only reach FTT through aspiration.
	points := []struct {
		point [3]bool
		count int
	}{
		{[3]bool{false, false, false}, 3},
		{[3]bool{true, false, false}, 2},
		{[3]bool{false, true, false}, 2},
		{[3]bool{false, false, true}, 4},
		{[3]bool{true, true, false}, 3},
		{[3]bool{true, false, true}, 4},
		{[3]bool{true, true, true}, 4},
		{[3]bool{false, true, true}, 1},
	}
	clauses := make([]Clause, 0)
	for _, entry := range points {
		for range entry.count {
			clauses = append(clauses, unsatAtPoint(entry.point))
		}
	}
	formula := NewFormula(clauses)
	rng := rand.New(rand.NewPCG(25, 26))

	// Act: a tenure base of 10 keeps every flipped variable tabu for the
	// whole run, whatever the randomized extra
	result := NewTabuSearch(4, 10, rng).Search(formula, Assignment{False, False, False})

	// Assert: without the aspiration criterion the search would be stuck at
	// cost 2
	assert.Equal(t, Assignment{False, True, True}, result)
	assert.Equal(t, 1, formula.Cost(result))
}

func TestTabuNoCandidateIsNoOp(t *testing.T) {
	// Arrange: a single variable that becomes tabu right after the first
	// improving flip; later iterations have no admissible move
	formula := NewFormula([]Clause{NewClause([]int{1})})
	rng := rand.New(rand.NewPCG(27, 28))

	// Act
	result := NewTabuSearch(5, 100, rng).Search(formula, Assignment{False})

	// Assert
	assert.Equal(t, Assignment{True}, result)
	assert.Equal(t, 0, formula.Cost(result))
}

func TestTabuEmptyAssignment(t *testing.T) {
	// Arrange
	rng := rand.New(rand.NewPCG(29, 30))

	// Act
	result := NewTabuSearch(10, 3, rng).Search(NewFormula(nil), NewAssignment(0))

	// Assert
	assert.Empty(t, result)
}
