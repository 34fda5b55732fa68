// Package mathx provides the numeric helpers used by the CLI and tests:
// basic descriptive statistics, simple linear regression and a few
// integer utilities.
package mathx

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput is returned by statistics that are undefined for an
// empty sample.
var ErrEmptyInput = errors.New("empty input")

// ErrZeroDivisor is returned by IntDiv for a zero divisor.
var ErrZeroDivisor = errors.New("division by zero")

// Sum returns the sum of xs. The sum of an empty sample is 0.
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.Mean(xs, nil), nil
}

// Variance returns the sample variance of xs.
func Variance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.Variance(xs, nil), nil
}

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.StdDev(xs, nil), nil
}

// Median returns the middle value of xs, averaging the two middle values
// for an even-sized sample. The input is not modified.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// LinearRegression fits y = intercept + slope*x by ordinary least
// squares. Both slices must have the same, non-zero length.
func LinearRegression(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) == 0 || len(ys) == 0 {
		return 0, 0, ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return 0, 0, errors.Errorf("mismatched sample sizes: %d vs %d", len(xs), len(ys))
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept, nil
}

// IntDiv returns the truncated quotient of a and b.
func IntDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrZeroDivisor
	}
	return a / b, nil
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	return scalar.Round(v, places)
}

// Range returns the values from start up to (but excluding) stop,
// advancing by step. A zero or wrongly-signed step yields nil.
func Range(start, stop, step int) []int {
	if step == 0 || (stop > start && step < 0) || (stop < start && step > 0) {
		return nil
	}
	var out []int
	if step > 0 {
		for v := start; v < stop; v += step {
			out = append(out, v)
		}
		return out
	}
	for v := start; v > stop; v += step {
		out = append(out, v)
	}
	return out
}
