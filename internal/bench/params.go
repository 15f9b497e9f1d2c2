package bench

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Params collects the repetition count and the tuning knobs of every
// strategy for a benchmark run.
type Params struct {
	Repetitions      int     `mapstructure:"repetitions"`
	ILSIterations    int     `mapstructure:"ilsIterations"`
	TabuIterations   int     `mapstructure:"tabuIterations"`
	TabuTenureBase   int     `mapstructure:"tabuTenureBase"` // effective tenure adds variables/10
	SATemperature    float64 `mapstructure:"saTemperature"`
	SAAlpha          float64 `mapstructure:"saAlpha"`
	SAIterations     int     `mapstructure:"saIterations"`
	SAMinTemperature float64 `mapstructure:"saMinTemperature"`
	GRASPIterations  int     `mapstructure:"graspIterations"`
	GRASPAlpha       float64 `mapstructure:"graspAlpha"`
}

// DefaultParams matches the comparative report setup: 30 repetitions, ILS
// with 20 rounds, tabu with 100 iterations, SA cooling from 10 to 0.01 with
// factor 0.98 and GRASP with 20 trials at alpha 0.2.
func DefaultParams() Params {
	return Params{
		Repetitions:      30,
		ILSIterations:    20,
		TabuIterations:   100,
		TabuTenureBase:   7,
		SATemperature:    10.0,
		SAAlpha:          0.98,
		SAIterations:     100,
		SAMinTemperature: 0.01,
		GRASPIterations:  20,
		GRASPAlpha:       0.2,
	}
}

// ParamsFromJson overlays a JSON config file on top of the defaults: only
// the keys present in the file are overridden.
func ParamsFromJson(file string) (Params, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Params{}, errors.Wrap(err, "cannot read params file")
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Params{}, errors.Wrap(err, "cannot parse params file")
	}

	params := DefaultParams()
	if err := mapstructure.Decode(raw, &params); err != nil {
		return Params{}, errors.Wrap(err, "cannot decode params file")
	}
	return params, nil
}
