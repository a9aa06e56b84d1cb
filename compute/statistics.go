// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package compute

import (
	"math"
	"sort"

	"github.com/gonum/floats"
	"github.com/gonum/stat"
)

// added to every element so an all-zero input has a non-zero total
const giniEpsilon = 1e-9

// Gini returns the Gini coefficient of values, in [0, 1). Negative inputs are
// shifted up so the minimum becomes zero. values is not modified.
// Panics on an empty slice.
func Gini(values []float64) float64 {
	if len(values) == 0 {
		panic("gini of empty slice")
	}
	arr := make([]float64, len(values))
	copy(arr, values)
	if min := floats.Min(arr); min < 0 {
		floats.AddConst(-min, arr)
	}
	floats.AddConst(giniEpsilon, arr)
	sort.Float64s(arr)

	cum := floats.CumSum(make([]float64, len(arr)), arr)
	n := float64(len(arr))
	// rounding can push an all-equal input a few ulps below zero
	return math.Max(0, (n+1-2*floats.Sum(cum)/cum[len(cum)-1])/n)
}

func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// StdDev is the population standard deviation (divides by n).
func StdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	variance := stat.Variance(values, nil) * float64(n-1) / float64(n)
	return math.Sqrt(variance)
}
