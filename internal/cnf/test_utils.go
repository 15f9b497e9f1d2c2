package cnf

import (
	"math/rand/v2"

	"github.com/degel01459/CI5652-Proyecto/internal/search"
)

// GenerateInstance builds a random instance for tests: every clause includes
// each variable with probability 1/2 and a random sign, and is never left
// empty.
func GenerateInstance(variables, clauses int, rng *rand.Rand) Instance {
	instance := Instance{
		Variables:   variables,
		Clauses:     make([]search.Clause, 0, clauses),
		Frequencies: make([]search.Frequency, variables),
	}

	for range clauses {
		literals := make([]int, 0, variables)
		for variable := 1; variable <= variables; variable++ {
			if rng.Float32() < 0.5 {
				literals = append(literals, sign(rng)*variable)
			}
		}
		if len(literals) == 0 {
			literals = append(literals, sign(rng)*(1+rng.IntN(variables)))
		}

		for _, literal := range literals {
			if literal > 0 {
				instance.Frequencies[literal-1].Pos++
			} else {
				instance.Frequencies[-literal-1].Neg++
			}
		}
		instance.Clauses = append(instance.Clauses, search.NewClause(literals))
	}

	return instance
}

func sign(rng *rand.Rand) int {
	if rng.Float32() < 0.5 {
		return -1
	}
	return 1
}
