// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reward

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/meterio/mev-sim/types"
)

//***************************************
//********** pool distribution **********

// DistributePool empties the ledger's pool into its earnings according to the
// ledger's policy and returns the amount distributed.
//
//	StakePool:     stake[v] * (P / totalStake)
//	EqualPool:     P / V
//	RootStakePool: sqrt(stake[v]) * (P / totalRootWeight)
//
// Baseline has no pool; nothing happens and 0 is returned.
func DistributePool(l *Ledger, vset *types.ValidatorSet) float64 {
	if len(l.Earnings) != vset.Size() {
		panic(fmt.Sprintf("ledger size %d does not match validator set size %d", len(l.Earnings), vset.Size()))
	}
	pool := l.Pool
	switch l.Policy {
	case Baseline:
		return 0
	case StakePool:
		floats.AddScaled(l.Earnings, pool/float64(vset.TotalStake()), vset.Stakes())
	case EqualPool:
		floats.AddConst(pool/float64(vset.Size()), l.Earnings)
	case RootStakePool:
		floats.AddScaled(l.Earnings, pool/vset.TotalRootWeight(), vset.RootWeights())
	default:
		panic(fmt.Sprintf("unknown policy %d", l.Policy))
	}
	l.Pool = 0
	return pool
}

// PoolShares returns what each validator would receive from a pool of the
// given size under policy p, without touching any ledger.
func PoolShares(p Policy, pool float64, vset *types.ValidatorSet) []float64 {
	l := NewLedger(p, vset.Size())
	l.Pool = pool
	DistributePool(l, vset)
	return l.Earnings
}
