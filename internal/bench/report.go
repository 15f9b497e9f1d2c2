package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

const maxFileColumnWidth = 33

var columns = []string{
	"File",
	"Cost H", "T H(s)",
	"Cost LS", "T LS(s)",
	"Cost ILS", "T ILS(s)",
	"Cost TS", "T TS(s)",
	"Cost SA", "T SA(s)",
	"Cost GRASP", "T GRASP(s)",
	"Gap H-ILS%",
}

// Report accumulates one summary row per instance and renders the
// comparative table. Rows arrive from concurrent workers, so every append
// goes through a mutex; nothing else is shared.
type Report struct {
	mu   sync.Mutex
	rows [][]string
}

func NewReport() *Report {
	return &Report{rows: make([][]string, 0)}
}

// Add builds and appends the summary row for one instance: mean(sd) of cost
// and wall-clock seconds per strategy, plus the relative improvement of ILS
// over the constructive heuristic.
func (report *Report) Add(file string, results map[string]*Measurements) {
	row := []string{shorten(file)}
	for _, name := range StrategyNames {
		measurements := results[name]

		costMean := Mean(measurements.Costs)
		durationMean := Mean(measurements.Durations)
		row = append(row,
			FormatMeasure(costMean, StdDev(measurements.Costs, costMean)),
			FormatMeasure(durationMean, StdDev(measurements.Durations, durationMean)),
		)
	}

	heuristicMean := Mean(results[Heuristic].Costs)
	ilsMean := Mean(results[IteratedLocal].Costs)
	gap := 0.0
	if heuristicMean > 0 {
		gap = (heuristicMean - ilsMean) / heuristicMean * 100
	}
	row = append(row, fmt.Sprintf("%.2f%%", gap))

	report.mu.Lock()
	defer report.mu.Unlock()
	report.rows = append(report.rows, row)
}

// Render writes the comparative table to the given writer.
func (report *Report) Render(writer io.Writer) {
	report.mu.Lock()
	defer report.mu.Unlock()

	table := tablewriter.NewWriter(writer)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(report.rows)
	table.Render()
}

// ToCsv writes the report rows into a CSV file.
func (report *Report) ToCsv(path string) error {
	report.mu.Lock()
	defer report.mu.Unlock()

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create csv report")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return errors.Wrap(err, "cannot write csv header")
	}
	if err := writer.WriteAll(report.rows); err != nil {
		return errors.Wrap(err, "cannot write csv rows")
	}
	return nil
}

func shorten(file string) string {
	if len(file) <= maxFileColumnWidth {
		return file
	}
	return "..." + file[len(file)-maxFileColumnWidth+3:]
}
