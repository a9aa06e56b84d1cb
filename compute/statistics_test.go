package compute_test

import (
	"testing"

	"github.com/meterio/mev-sim/compute"
	"github.com/meterio/mev-sim/rng"
	"github.com/stretchr/testify/assert"
)

func TestGiniEqualValues(t *testing.T) {
	assert.InDelta(t, 0, compute.Gini([]float64{5, 5, 5, 5}), 1e-12)
	assert.InDelta(t, 0, compute.Gini([]float64{0, 0, 0}), 1e-12)
	assert.InDelta(t, 0, compute.Gini([]float64{42}), 1e-12)
}

func TestGiniEqualValuesNeverNegative(t *testing.T) {
	for _, v := range []float64{0.1, 0.3, 1, 7.7, 1e6} {
		for n := 1; n <= 200; n++ {
			values := make([]float64, n)
			for i := range values {
				values[i] = v
			}
			g := compute.Gini(values)
			assert.GreaterOrEqual(t, g, 0.0, "n=%d v=%v", n, v)
			assert.InDelta(t, 0, g, 1e-12)
		}
	}
}

func TestGiniKnownValues(t *testing.T) {
	// one holder of everything among four: (n-1)/n
	assert.InDelta(t, 0.75, compute.Gini([]float64{0, 0, 0, 10}), 1e-6)
	// 1,2,3,4: cum 1,3,6,10 -> (5 - 2*20/10)/4
	assert.InDelta(t, 0.25, compute.Gini([]float64{4, 1, 3, 2}), 1e-6)
}

func TestGiniShiftsNegatives(t *testing.T) {
	assert.InDelta(t, compute.Gini([]float64{0, 1, 2, 3}), compute.Gini([]float64{-3, -2, -1, 0}), 1e-9)
}

func TestGiniDoesNotModifyInput(t *testing.T) {
	in := []float64{3, -1, 2}
	compute.Gini(in)
	assert.Equal(t, []float64{3, -1, 2}, in)
}

func TestGiniBoundsAndScaleInvariance(t *testing.T) {
	src := rng.New(17)
	for round := 0; round < 50; round++ {
		n := src.IntRange(1, 200)
		values := make([]float64, n)
		scaled := make([]float64, n)
		for i := range values {
			values[i] = src.LogNormal(1, 2)
			scaled[i] = values[i] * 1000
		}
		g := compute.Gini(values)
		assert.GreaterOrEqual(t, g, 0.0)
		assert.Less(t, g, 1.0)
		assert.InDelta(t, g, compute.Gini(scaled), 1e-6)
	}
}

func TestGiniEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { compute.Gini(nil) })
}

func TestMeanStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.Equal(t, 5.0, compute.Mean(values))
	assert.InDelta(t, 2.0, compute.StdDev(values), 1e-12)
	assert.Equal(t, 0.0, compute.StdDev([]float64{3}))
}
