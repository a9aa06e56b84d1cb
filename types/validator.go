// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"fmt"
	"math"
)

const (
	MinStake = 1
	MaxStake = 99
)

// Validator is immutable for the duration of a run.
type Validator struct {
	Index int   `json:"index"`
	Stake int64 `json:"stake"`
}

func NewValidator(index int, stake int64) *Validator {
	if stake < 1 {
		panic(fmt.Sprintf("validator %d: stake must be positive, got %d", index, stake))
	}
	return &Validator{Index: index, Stake: stake}
}

// RootWeight is sqrt(stake), the weight used by square-root pooling.
func (v *Validator) RootWeight() float64 {
	return math.Sqrt(float64(v.Stake))
}

func (v *Validator) String() string {
	if v == nil {
		return "nil-Validator"
	}
	return fmt.Sprintf("Validator{#%v Stake:%v}", v.Index, v.Stake)
}
