// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reward

import (
	"log/slog"

	"github.com/meterio/mev-sim/preset"
	"github.com/meterio/mev-sim/rng"
	"github.com/meterio/mev-sim/types"
	"github.com/pkg/errors"
)

// Engine replays a revenue sequence under every policy in lockstep. Each
// block's proposer and split are computed once and applied to all ledgers.
// NOTE: Not goroutine-safe.
type Engine struct {
	cfg     preset.Config
	vset    *types.ValidatorSet
	revenue *types.RevenueSequence

	ledgers   [NumPolicies]*Ledger
	proposers []int
	epochs    []*EpochRecord
	next      int

	logger *slog.Logger
}

func NewEngine(cfg preset.Config, vset *types.ValidatorSet, revenue *types.RevenueSequence) (*Engine, error) {
	if cfg.EpochSize < 1 {
		return nil, errors.Wrapf(preset.ErrInvalidConfig, "epoch_size must be positive, got %d", cfg.EpochSize)
	}
	if vset.Size() != cfg.NumValidators {
		return nil, errors.Wrapf(preset.ErrInvalidConfig, "validator set has %d validators, config expects %d", vset.Size(), cfg.NumValidators)
	}
	if revenue.Len() != cfg.NumBlocks {
		return nil, errors.Wrapf(preset.ErrInvalidConfig, "revenue sequence has %d blocks, config expects %d", revenue.Len(), cfg.NumBlocks)
	}

	e := &Engine{
		cfg:       cfg,
		vset:      vset,
		revenue:   revenue,
		proposers: make([]int, 0, revenue.Len()),
		epochs:    make([]*EpochRecord, 0, cfg.Epochs()),
		logger:    slog.Default().With("pkg", "reward"),
	}
	for _, p := range Policies {
		e.ledgers[p] = NewLedger(p, vset.Size())
	}
	return e, nil
}

// Next is the index of the next block to apply.
func (e *Engine) Next() int { return e.next }

// Done reports whether every block has been applied.
func (e *Engine) Done() bool { return e.next >= e.revenue.Len() }

func (e *Engine) Ledger(p Policy) *Ledger { return e.ledgers[p] }

// ApplyBlock credits the next block to proposer under every policy, then
// distributes the pools if the block closes an epoch. The epoch record is
// returned in that case, nil otherwise.
func (e *Engine) ApplyBlock(proposer int) *EpochRecord {
	if e.Done() {
		panic("apply block past the end of the revenue sequence")
	}
	_ = e.vset.GetByIndex(proposer) // panics when out of range

	b := e.next
	value := e.revenue.Values[b]
	keep, surplus := e.revenue.Split(b)

	for _, l := range e.ledgers {
		if l.Policy.Pooled() {
			l.Credit(proposer, keep)
			l.Accrue(surplus)
		} else {
			l.Credit(proposer, value)
		}
	}
	e.proposers = append(e.proposers, proposer)
	e.next++

	if e.next%e.cfg.EpochSize == 0 {
		return e.endEpoch(b)
	}
	return nil
}

// Step draws the next block's proposer from src and applies the block.
func (e *Engine) Step(src *rng.Source) *EpochRecord {
	return e.ApplyBlock(e.vset.SelectProposer(src))
}

func (e *Engine) endEpoch(lastBlock int) *EpochRecord {
	record := &EpochRecord{
		Epoch:     len(e.epochs),
		LastBlock: lastBlock,
	}
	for _, l := range e.ledgers {
		record.Distributed[l.Policy] = DistributePool(l, e.vset)
	}
	e.epochs = append(e.epochs, record)
	e.logger.Debug("epoch pools distributed", "epoch", record.Epoch, "block", lastBlock,
		"stakePool", record.Distributed[StakePool],
		"equalPool", record.Distributed[EqualPool],
		"rootStakePool", record.Distributed[RootStakePool])
	return record
}

// Run applies every remaining block, drawing proposers from src. Pool balance
// accrued after the last epoch boundary is left undistributed.
func (e *Engine) Run(src *rng.Source) *Outcome {
	for !e.Done() {
		e.Step(src)
	}
	if residual := e.ledgers[StakePool].Pool; residual > 0 {
		e.logger.Info("partial epoch left undistributed", "blocks", e.revenue.Len()%e.cfg.EpochSize, "residual", residual)
	}
	return e.Outcome()
}

// Outcome snapshots the engine state. Ledgers are shared with the engine.
func (e *Engine) Outcome() *Outcome {
	return &Outcome{
		Config:     e.cfg,
		Validators: e.vset,
		Revenue:    e.revenue,
		Ledgers:    e.ledgers,
		Proposers:  e.proposers,
		Epochs:     e.epochs,
	}
}
