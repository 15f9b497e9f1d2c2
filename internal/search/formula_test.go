package search

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomFormula builds a formula where every clause includes each variable
// with probability 1/2 and a random sign, never left empty, together with
// its frequency table.
func randomFormula(rng *rand.Rand, variables, clauses int) (Formula, []Frequency) {
	frequencies := make([]Frequency, variables)
	built := make([]Clause, 0, clauses)

	for range clauses {
		literals := make([]int, 0, variables)
		for variable := 1; variable <= variables; variable++ {
			if rng.Float32() < 0.5 {
				literals = append(literals, randomSign(rng)*variable)
			}
		}
		if len(literals) == 0 {
			literals = append(literals, randomSign(rng)*(1+rng.IntN(variables)))
		}

		for _, literal := range literals {
			if literal > 0 {
				frequencies[literal-1].Pos++
			} else {
				frequencies[-literal-1].Neg++
			}
		}
		built = append(built, NewClause(literals))
	}

	return NewFormula(built), frequencies
}

func randomSign(rng *rand.Rand) int {
	if rng.Float32() < 0.5 {
		return -1
	}
	return 1
}

func randomAssignment(rng *rand.Rand, variables int) Assignment {
	assignment := NewAssignment(variables)
	for i := range assignment {
		assignment[i] = False
		if rng.Float32() < 0.5 {
			assignment[i] = True
		}
	}
	return assignment
}

// scenarioFormula is the 3-clause, 2-variable formula
// (x1 v x2) ^ (-x1 v x2) ^ (-x2), whose minimum cost is 1.
func scenarioFormula() Formula {
	return NewFormula([]Clause{
		NewClause([]int{1, 2}),
		NewClause([]int{-1, 2}),
		NewClause([]int{-2}),
	})
}

func scenarioFrequencies() []Frequency {
	return []Frequency{{Pos: 1, Neg: 1}, {Pos: 2, Neg: 1}}
}

func TestCostBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 20 {
		// Arrange
		variables := 1 + rng.IntN(20)
		clauses := 1 + rng.IntN(50)
		formula, _ := randomFormula(rng, variables, clauses)

		// Act
		cost := formula.Cost(randomAssignment(rng, variables))

		// Assert
		assert.GreaterOrEqual(t, cost, 0)
		assert.LessOrEqual(t, cost, clauses)
	}
}

func TestCostReorderInvariance(t *testing.T) {
	// Arrange
	rng := rand.New(rand.NewPCG(3, 4))
	formula, _ := randomFormula(rng, 10, 30)
	assignment := randomAssignment(rng, 10)
	cost := formula.Cost(assignment)

	// Act: shuffle literals within every clause and the clause order itself
	shuffled := make([]Clause, 0, formula.Size())
	for _, clause := range formula.Clauses() {
		literals := slices.Clone(clause.Literals())
		rng.Shuffle(len(literals), func(i, j int) {
			literals[i], literals[j] = literals[j], literals[i]
		})
		shuffled = append(shuffled, NewClause(literals))
	}
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Assert
	assert.Equal(t, cost, NewFormula(shuffled).Cost(assignment))
}

func TestCostUnknownNeverSatisfies(t *testing.T) {
	// Arrange
	rng := rand.New(rand.NewPCG(5, 6))
	formula, _ := randomFormula(rng, 8, 25)

	// Act
	cost := formula.Cost(NewAssignment(8))

	// Assert: with every variable Unknown, no clause is satisfied
	assert.Equal(t, 25, cost)
}

func TestEmptyFormulaCost(t *testing.T) {
	// Arrange
	formula := NewFormula(nil)

	// Assert
	assert.Equal(t, 0, formula.Cost(NewAssignment(5)))
	assert.Equal(t, 0, formula.Cost(NewAssignment(0)))
}

func TestCloneIsIndependent(t *testing.T) {
	// Arrange
	formula := scenarioFormula()

	// Act
	clone := formula.Clone()
	clone.Clauses()[0].Resolve(Assignment{True, True}, nil)

	// Assert
	assert.Equal(t, Unknown, formula.Clauses()[0].Status())
	assert.Equal(t, True, clone.Clauses()[0].Status())
}
