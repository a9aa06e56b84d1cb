// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"fmt"
	"math"
	"sort"

	"github.com/gonum/floats"
	"github.com/meterio/mev-sim/rng"
)

// RevenueSequence is the per-block MEV value of every block of a run, drawn
// once up front, and the threshold (median) shared by all pooled policies.
type RevenueSequence struct {
	Values    []float64 `json:"values"`
	Threshold float64   `json:"threshold"`
}

func NewRevenueSequence(values []float64) *RevenueSequence {
	if len(values) == 0 {
		panic("revenue sequence cannot be empty")
	}
	vs := make([]float64, len(values))
	copy(vs, values)
	return &RevenueSequence{Values: vs, Threshold: Median(vs)}
}

// DrawRevenueSequence draws n log-normal values with log-space location mu
// and scale sigma.
func DrawRevenueSequence(src *rng.Source, n int, mu, sigma float64) *RevenueSequence {
	if n < 1 {
		panic(fmt.Sprintf("block count must be positive, got %d", n))
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = src.LogNormal(mu, sigma)
	}
	return &RevenueSequence{Values: values, Threshold: Median(values)}
}

func (s *RevenueSequence) Len() int {
	return len(s.Values)
}

// Split divides the value of block b into the part its proposer keeps and the
// surplus above the threshold. keep + surplus == value exactly.
func (s *RevenueSequence) Split(b int) (keep, surplus float64) {
	value := s.Values[b]
	surplus = math.Max(0, value-s.Threshold)
	keep = value - surplus
	return keep, surplus
}

func (s *RevenueSequence) Total() float64 {
	return floats.Sum(s.Values)
}

// Median of a non-empty slice; the mean of the two middle elements when the
// length is even. values is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		panic("median of empty slice")
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
