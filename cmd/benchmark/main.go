package main

import (
	"flag"
	"hash/fnv"
	"math/rand/v2"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/degel01459/CI5652-Proyecto/internal/bench"
	"github.com/degel01459/CI5652-Proyecto/internal/cnf"
)

func main() {
	// Define arguments
	configPtr := flag.String("config", "", "Path to a JSON file overriding the benchmark parameters")
	outPtr := flag.String("out", "", "Path to a CSV file where the report will also be written")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Number of instances benchmarked in parallel")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		logrus.Fatal("usage: benchmark [-config params.json] [-out report.csv] file1.cnf [file2.cnf ...]")
	} else if *workersPtr < 1 {
		logrus.Fatalf("workers must be at least 1: %v", *workersPtr)
	}

	params := bench.DefaultParams()
	if *configPtr != "" {
		var err error
		if params, err = bench.ParamsFromJson(*configPtr); err != nil {
			logrus.Fatalf("cannot read benchmark params: %v", err)
		}
	}

	// One task per instance, scheduled dynamically over a fixed pool. Each
	// worker owns the random generators of the tasks it picks up; workers
	// only share the report, which synchronizes row appends itself.
	report := bench.NewReport()
	tasks := make(chan string)
	var group errgroup.Group

	for worker := range *workersPtr {
		group.Go(func() error {
			for file := range tasks {
				benchmarkInstance(file, worker, params, report)
			}
			return nil
		})
	}

	for _, file := range files {
		tasks <- file
	}
	close(tasks)
	if err := group.Wait(); err != nil {
		logrus.Fatalf("benchmark failed: %v", err)
	}

	report.Render(os.Stdout)
	if *outPtr != "" {
		if err := report.ToCsv(*outPtr); err != nil {
			logrus.Fatalf("cannot write csv report: %v", err)
		}
	}
}

func benchmarkInstance(file string, worker int, params bench.Params, report *bench.Report) {
	instance, err := cnf.InstanceFromDimacs(file)
	if err != nil {
		logrus.WithField("file", file).Warnf("skipping instance: %v", err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"file":      file,
		"variables": instance.Variables,
		"clauses":   len(instance.Clauses),
	}).Info("benchmarking instance")

	rng := rand.New(rand.NewPCG(seed(file, worker), 0))
	report.Add(file, bench.NewRunner(params, rng).Run(instance))
}

// seed derives the per-task seed from the instance path and the worker that
// picked it up, so a run with a fixed pool size reproduces its results.
func seed(file string, worker int) uint64 {
	hash := fnv.New64a()
	hash.Write([]byte(file))
	return hash.Sum64() + uint64(worker)
}
