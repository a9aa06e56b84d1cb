// Copyright (c) 2020 The Meter.io developers
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying

// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"fmt"
	"strings"

	"github.com/gonum/floats"
	"github.com/meterio/mev-sim/rng"
)

// ValidatorSet is the fixed set of validators of a run, indexed 0..V-1.
// Derived weights are computed once in the constructor and never change.
// NOTE: Not goroutine-safe.
type ValidatorSet struct {
	Validators []*Validator `json:"validators"`

	// cached (unexported)
	totalStake      int64
	stakeWeights    []float64
	rootWeights     []float64
	totalRootWeight float64
	proposer        *rng.Categorical
}

// NewValidatorSet builds a set from explicit stakes; validator i gets stakes[i].
func NewValidatorSet(stakes []int64) *ValidatorSet {
	if len(stakes) == 0 {
		panic("validator set cannot be empty")
	}
	vals := &ValidatorSet{
		Validators:   make([]*Validator, len(stakes)),
		stakeWeights: make([]float64, len(stakes)),
		rootWeights:  make([]float64, len(stakes)),
	}
	for i, stake := range stakes {
		val := NewValidator(i, stake)
		vals.Validators[i] = val
		vals.totalStake += stake
		vals.stakeWeights[i] = float64(stake)
		vals.rootWeights[i] = val.RootWeight()
	}
	vals.totalRootWeight = floats.Sum(vals.rootWeights)
	return vals
}

// DrawValidatorSet draws n stakes uniformly from [MinStake, MaxStake]. The
// returned set samples proposers from src.
func DrawValidatorSet(src *rng.Source, n int) *ValidatorSet {
	if n < 1 {
		panic(fmt.Sprintf("validator set size must be positive, got %d", n))
	}
	stakes := make([]int64, n)
	for i := range stakes {
		stakes[i] = int64(src.IntRange(MinStake, MaxStake+1))
	}
	vals := NewValidatorSet(stakes)
	vals.proposer = src.NewCategorical(vals.stakeWeights)
	return vals
}

// Size returns the length of the validator set.
func (vals *ValidatorSet) Size() int {
	return len(vals.Validators)
}

// GetByIndex panics on an out-of-range index.
func (vals *ValidatorSet) GetByIndex(index int) *Validator {
	if index < 0 || index >= len(vals.Validators) {
		panic(fmt.Sprintf("validator index %d out of range [0,%d)", index, len(vals.Validators)))
	}
	return vals.Validators[index]
}

func (vals *ValidatorSet) TotalStake() int64 {
	return vals.totalStake
}

func (vals *ValidatorSet) TotalRootWeight() float64 {
	return vals.totalRootWeight
}

// Stakes returns the stakes as floats, in index order. The slice is shared; do not modify.
func (vals *ValidatorSet) Stakes() []float64 {
	return vals.stakeWeights
}

// RootWeights returns sqrt(stake) per validator. The slice is shared; do not modify.
func (vals *ValidatorSet) RootWeights() []float64 {
	return vals.rootWeights
}

// SelectProposer draws one validator with probability stake/totalStake. The
// stake-weighted sampler is built once per source.
func (vals *ValidatorSet) SelectProposer(src *rng.Source) int {
	if vals.proposer == nil || vals.proposer.Source() != src {
		vals.proposer = src.NewCategorical(vals.stakeWeights)
	}
	return vals.proposer.Draw()
}

func (vals *ValidatorSet) String() string {
	s := make([]string, 0, len(vals.Validators))
	for _, val := range vals.Validators {
		s = append(s, val.String())
	}
	return fmt.Sprintf("Validators(total stake %d): \n  %s", vals.totalStake, strings.Join(s, "\n  "))
}
