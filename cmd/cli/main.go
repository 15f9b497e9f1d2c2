package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/degel01459/CI5652-Proyecto/internal/bench"
	"github.com/degel01459/CI5652-Proyecto/internal/cnf"
	"github.com/degel01459/CI5652-Proyecto/internal/search"
)

var validStrategies = []string{"constructive", "localsearch", "ils", "tabu", "annealing", "grasp"}

func main() {
	// Define arguments
	strategyPtr := flag.String("strategy", "constructive", `Strategy to run. Allowed values are:
- "constructive" (greedy frequency-driven construction),
- "localsearch" (1-flip hill climbing over the constructive solution),
- "ils" (iterated local search),
- "tabu" (tabu search),
- "annealing" (simulated annealing) and
- "grasp" (greedy randomized adaptive search), where "constructive" is the default`)
	filePtr := flag.String("file", "", "Path to the DIMACS CNF input file")
	seedPtr := flag.Uint64("seed", 0, "Seed for the strategy's random source")
	assignmentPtr := flag.Bool("assignment", false, "Print the final assignment as a DIMACS-style v-line")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)

	// Validate arguments
	if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if *filePtr == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	instance, err := cnf.InstanceFromDimacs(*filePtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Initialize engines
	params := bench.DefaultParams()
	rng := rand.New(rand.NewPCG(*seedPtr, 0))
	formula := instance.Formula()

	searchers := map[string]search.Searcher{
		"constructive": search.NewConstructive(instance.Frequencies),
		"localsearch":  search.NewLocalSearch(),
		"ils":          search.NewIteratedLocalSearch(params.ILSIterations, rng),
		"tabu":         search.NewTabuSearch(params.TabuIterations, params.TabuTenureBase+instance.Variables/10, rng),
		"annealing":    search.NewSimulatedAnnealing(params.SATemperature, params.SAAlpha, params.SAIterations, params.SAMinTemperature, rng),
		"grasp":        search.NewGRASP(params.GRASPIterations, params.GRASPAlpha, instance.Frequencies, rng),
	}

	// Solve
	assignment := search.NewAssignment(instance.Variables)
	if strategy != "constructive" && strategy != "grasp" {
		// The local strategies improve the constructive solution, as in the
		// comparative report; GRASP builds its own from scratch.
		assignment = searchers["constructive"].Search(formula, assignment)
	}
	assignment = searchers[strategy].Search(formula, assignment)

	fmt.Printf("Variables: %v\n", instance.Variables)
	fmt.Printf("Clauses: %v\n", len(instance.Clauses))
	fmt.Printf("Cost: %v\n", formula.Cost(assignment))

	if *assignmentPtr {
		literals := lo.Map(assignment, func(value search.TBool, variable int) string {
			if value == search.True {
				return strconv.Itoa(variable + 1)
			}
			return strconv.Itoa(-(variable + 1))
		})
		fmt.Printf("v %v 0\n", strings.Join(literals, " "))
	}
}
