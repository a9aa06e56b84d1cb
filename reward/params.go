// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reward

// Policy is a rule for splitting block revenue between the proposer and a
// shared pool, and for distributing that pool at epoch boundaries.
type Policy int

const (
	// proposer takes the whole block value, no threshold, no pool
	Baseline Policy = iota
	// surplus pooled, distributed proportional to stake
	StakePool
	// surplus pooled, distributed equally per validator
	EqualPool
	// surplus pooled, distributed proportional to sqrt(stake)
	RootStakePool

	NumPolicies = 4
)

// Policies in reporting order.
var Policies = [NumPolicies]Policy{Baseline, StakePool, EqualPool, RootStakePool}

var policyNames = [NumPolicies]string{"Baseline", "StakePool", "EqualPool", "RootStakePool"}

func (p Policy) String() string {
	if p < 0 || int(p) >= NumPolicies {
		return "Unknown"
	}
	return policyNames[p]
}

// Pooled reports whether the policy applies the threshold split.
func (p Policy) Pooled() bool {
	return p != Baseline
}
