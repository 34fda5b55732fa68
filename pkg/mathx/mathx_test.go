package mathx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlinehq/headline/pkg/mathx"
)

const delta = 1e-9

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, mathx.Sum(nil))
	assert.InDelta(t, 10.0, mathx.Sum([]float64{1, 2, 3, 4}), delta)
}

func TestMean(t *testing.T) {
	// when
	got, err := mathx.Mean([]float64{1, 2, 3})

	// then
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, delta)

	_, err = mathx.Mean(nil)
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)
}

func TestVarianceAndStdDev(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	variance, err := mathx.Variance(xs)
	require.NoError(t, err)
	assert.InDelta(t, 32.0/7.0, variance, delta)

	stdDev, err := mathx.StdDev(xs)
	require.NoError(t, err)
	assert.InDelta(t, 2.13808993529939517, stdDev, 1e-9)

	_, err = mathx.Variance(nil)
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)
	_, err = mathx.StdDev(nil)
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{
			name:     "Odd sample",
			input:    []float64{9, 1, 5},
			expected: 5,
		},
		{
			name:     "Even sample averages the middle values",
			input:    []float64{4, 1, 3, 2},
			expected: 2.5,
		},
		{
			name:     "Single value",
			input:    []float64{42},
			expected: 42,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mathx.Median(tc.input)

			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, delta)
		})
	}

	_, err := mathx.Median(nil)
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	in := []float64{3, 1, 2}

	_, err := mathx.Median(in)

	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestLinearRegression(t *testing.T) {
	// given: y = 2x + 1
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 3, 5, 7}

	// when
	slope, intercept, err := mathx.LinearRegression(xs, ys)

	// then
	require.NoError(t, err)
	assert.InDelta(t, 2.0, slope, delta)
	assert.InDelta(t, 1.0, intercept, delta)
}

func TestLinearRegressionErrors(t *testing.T) {
	_, _, err := mathx.LinearRegression(nil, nil)
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)

	_, _, err = mathx.LinearRegression([]float64{1, 2}, []float64{1})
	assert.ErrorContains(t, err, "mismatched sample sizes")
}

func TestIntDiv(t *testing.T) {
	got, err := mathx.IntDiv(7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	got, err = mathx.IntDiv(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), got)

	_, err = mathx.IntDiv(1, 0)
	assert.ErrorIs(t, err, mathx.ErrZeroDivisor)
}

func TestRound(t *testing.T) {
	assert.InDelta(t, 1.23, mathx.Round(1.234, 2), delta)
	assert.InDelta(t, 1.24, mathx.Round(1.236, 2), delta)
	assert.InDelta(t, 3.0, mathx.Round(2.5, 0), delta)
}

func TestRange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		expected          []int
	}{
		{name: "Ascending", start: 0, stop: 10, step: 2, expected: []int{0, 2, 4, 6, 8}},
		{name: "Descending", start: 5, stop: 0, step: -1, expected: []int{5, 4, 3, 2, 1}},
		{name: "Empty", start: 3, stop: 3, step: 1, expected: nil},
		{name: "Zero step", start: 0, stop: 5, step: 0, expected: nil},
		{name: "Wrong step sign", start: 0, stop: 5, step: -1, expected: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mathx.Range(tc.start, tc.stop, tc.step))
		})
	}
}
