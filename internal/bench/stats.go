package bench

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return lo.Sum(values) / float64(len(values))
}

// StdDev is the sample standard deviation around the given mean; it is 0
// for fewer than two samples.
func StdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	squares := lo.SumBy(values, func(value float64) float64 {
		return (value - mean) * (value - mean)
	})
	return math.Sqrt(squares / float64(len(values)-1))
}

// FormatMeasure renders "mean(sd)" with the mean rounded at the first
// significant digit of the standard deviation, which becomes the
// parenthesized digit: 12.34 with sd 0.21 reads "12.3(2)".
func FormatMeasure(mean, stdDev float64) string {
	if stdDev <= 0 {
		return fmt.Sprintf("%v(0)", mean)
	}

	exponent := int(math.Floor(math.Log10(stdDev)))
	digit := int(math.Round(stdDev / math.Pow(10, float64(exponent))))
	// Rounding may carry over, e.g. sd 0.099 reads as 0.1.
	if digit == 10 {
		digit = 1
		exponent++
	}

	if exponent < 0 {
		return fmt.Sprintf("%.*f(%d)", -exponent, mean, digit)
	}
	factor := math.Pow(10, float64(exponent))
	return fmt.Sprintf("%.0f(%d)", math.Round(mean/factor)*factor, digit)
}
