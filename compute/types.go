// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package compute

import (
	"fmt"
	"sort"

	"github.com/gonum/floats"
	"github.com/meterio/mev-sim/reward"
)

// Summary describes the final earnings distribution under one policy.
type Summary struct {
	Policy   reward.Policy `json:"-"`
	Scenario string        `json:"scenario"`
	Mean     float64       `json:"mean"`
	StdDev   float64       `json:"stdDev"`
	Gini     float64       `json:"gini"`
	Total    float64       `json:"total"`
	Residual float64       `json:"residual"`
}

func (s Summary) String() string {
	return fmt.Sprintf("Summary(%v): mean %.4f std %.4f gini %.4f", s.Scenario, s.Mean, s.StdDev, s.Gini)
}

// TopEntry pairs one validator with its earnings under every policy.
type TopEntry struct {
	Validator int                         `json:"validator"`
	Stake     int64                       `json:"stake"`
	Earnings  [reward.NumPolicies]float64 `json:"earnings"`
}

func (e TopEntry) String() string {
	return fmt.Sprintf("TopEntry(#%d stake %d): %v", e.Validator, e.Stake, e.Earnings)
}

func Summarize(policy reward.Policy, earnings []float64, residual float64) Summary {
	return Summary{
		Policy:   policy,
		Scenario: policy.String(),
		Mean:     Mean(earnings),
		StdDev:   StdDev(earnings),
		Gini:     Gini(earnings),
		Total:    floats.Sum(earnings),
		Residual: residual,
	}
}

// SummarizeOutcome summarizes every policy, in reporting order.
func SummarizeOutcome(out *reward.Outcome) []Summary {
	summaries := make([]Summary, 0, reward.NumPolicies)
	for _, p := range reward.Policies {
		summaries = append(summaries, Summarize(p, out.Earnings(p), out.Residual(p)))
	}
	return summaries
}

// TopIndices returns the indices of the n largest values, largest first.
// Ties go to the lower index. n is capped at len(values).
func TopIndices(values []float64, n int) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return values[idx[i]] > values[idx[j]]
	})
	if n < len(idx) {
		idx = idx[:n]
	}
	return idx
}

// TopByBaseline ranks validators by Baseline earnings and reports each of the
// top n under every policy.
func TopByBaseline(out *reward.Outcome, n int) []TopEntry {
	top := TopIndices(out.Earnings(reward.Baseline), n)
	entries := make([]TopEntry, 0, len(top))
	for _, v := range top {
		entry := TopEntry{Validator: v, Stake: out.Validators.GetByIndex(v).Stake}
		for _, p := range reward.Policies {
			entry.Earnings[p] = out.Earnings(p)[v]
		}
		entries = append(entries, entry)
	}
	return entries
}
