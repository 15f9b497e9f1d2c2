package bench

import (
	"math/rand/v2"
	"time"

	"github.com/degel01459/CI5652-Proyecto/internal/cnf"
	"github.com/degel01459/CI5652-Proyecto/internal/search"
)

const (
	Heuristic     = "H"
	LocalSearch   = "LS"
	IteratedLocal = "ILS"
	Tabu          = "TS"
	Annealing     = "SA"
	Grasp         = "GRASP"
)

// StrategyNames lists every strategy in report order.
var StrategyNames = []string{Heuristic, LocalSearch, IteratedLocal, Tabu, Annealing, Grasp}

// Measurements accumulates the per-repetition cost and duration vectors of
// one strategy on one instance.
type Measurements struct {
	Costs     []float64
	Durations []float64
}

// Runner executes every strategy a fixed number of times over one instance,
// timing each invocation. Runners are single-goroutine: each parallel task
// owns its own runner and random source.
type Runner struct {
	params Params
	rng    *rand.Rand
}

func NewRunner(params Params, rng *rand.Rand) *Runner {
	return &Runner{params: params, rng: rng}
}

// Run performs params.Repetitions repetitions, each running the six
// strategies back-to-back. The instance is a read-only snapshot: every
// repetition starts from a fresh assignment vector, and strategies that
// rewrite clause-level or frequency state clone it first. The local
// strategies improve the constructive solution; GRASP builds its own.
func (runner *Runner) Run(instance cnf.Instance) map[string]*Measurements {
	formula := instance.Formula()
	tenure := runner.params.TabuTenureBase + instance.Variables/10

	results := make(map[string]*Measurements, len(StrategyNames))
	for _, name := range StrategyNames {
		results[name] = &Measurements{}
	}

	for range runner.params.Repetitions {
		empty := search.NewAssignment(instance.Variables)

		base := runner.measure(results[Heuristic], formula,
			search.NewConstructive(instance.Frequencies), empty)

		runner.measure(results[LocalSearch], formula,
			search.NewLocalSearch(), base)
		runner.measure(results[IteratedLocal], formula,
			search.NewIteratedLocalSearch(runner.params.ILSIterations, runner.rng), base)
		runner.measure(results[Tabu], formula,
			search.NewTabuSearch(runner.params.TabuIterations, tenure, runner.rng), base)
		runner.measure(results[Annealing], formula,
			search.NewSimulatedAnnealing(
				runner.params.SATemperature,
				runner.params.SAAlpha,
				runner.params.SAIterations,
				runner.params.SAMinTemperature,
				runner.rng,
			), base)
		runner.measure(results[Grasp], formula,
			search.NewGRASP(runner.params.GRASPIterations, runner.params.GRASPAlpha, instance.Frequencies, runner.rng), empty)
	}
	return results
}

func (runner *Runner) measure(measurements *Measurements, formula search.Formula, searcher search.Searcher, assignment search.Assignment) search.Assignment {
	start := time.Now()
	result := searcher.Search(formula, assignment)
	elapsed := time.Since(start).Seconds()

	measurements.Costs = append(measurements.Costs, float64(formula.Cost(result)))
	measurements.Durations = append(measurements.Durations, elapsed)
	return result
}
