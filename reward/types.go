// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reward

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/meterio/mev-sim/preset"
	"github.com/meterio/mev-sim/types"
)

// Ledger is the cumulative earnings of every validator under one policy,
// plus that policy's pool balance for the current epoch.
type Ledger struct {
	Policy   Policy
	Earnings []float64
	Pool     float64
}

func NewLedger(policy Policy, size int) *Ledger {
	return &Ledger{Policy: policy, Earnings: make([]float64, size)}
}

func (l *Ledger) Credit(validator int, amount float64) {
	l.Earnings[validator] += amount
}

func (l *Ledger) Accrue(surplus float64) {
	l.Pool += surplus
}

// Total is the sum of all earnings; the pool balance is not included.
func (l *Ledger) Total() float64 {
	return floats.Sum(l.Earnings)
}

func (l *Ledger) String() string {
	return fmt.Sprintf("Ledger(%v): total %v pool %v", l.Policy, l.Total(), l.Pool)
}

// EpochRecord describes one epoch-boundary distribution.
type EpochRecord struct {
	Epoch       int                  `json:"epoch"`
	LastBlock   int                  `json:"lastBlock"`
	Distributed [NumPolicies]float64 `json:"distributed"`
}

func (r *EpochRecord) String() string {
	return fmt.Sprintf("Epoch#%d(block %d) stake:%v equal:%v root:%v",
		r.Epoch, r.LastBlock, r.Distributed[StakePool], r.Distributed[EqualPool], r.Distributed[RootStakePool])
}

// Outcome is the final state of a run.
type Outcome struct {
	Config     preset.Config
	Validators *types.ValidatorSet
	Revenue    *types.RevenueSequence
	Ledgers    [NumPolicies]*Ledger
	Proposers  []int
	Epochs     []*EpochRecord
}

func (o *Outcome) Earnings(p Policy) []float64 {
	return o.Ledgers[p].Earnings
}

// Residual is the pool balance accrued after the last epoch boundary. It is
// never distributed.
func (o *Outcome) Residual(p Policy) float64 {
	return o.Ledgers[p].Pool
}

// Distributed is the total pool mass handed out across all epochs.
func (o *Outcome) Distributed(p Policy) float64 {
	sum := 0.0
	for _, r := range o.Epochs {
		sum += r.Distributed[p]
	}
	return sum
}
