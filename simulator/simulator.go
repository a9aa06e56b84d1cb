// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package simulator runs one configured simulation end to end: it draws the
// validator set and the revenue sequence from a single seeded source, replays
// the blocks under every policy and aggregates the per-policy results.
package simulator

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/meterio/mev-sim/compute"
	"github.com/meterio/mev-sim/preset"
	"github.com/meterio/mev-sim/reward"
	"github.com/meterio/mev-sim/rng"
	"github.com/meterio/mev-sim/types"
	"github.com/pkg/errors"
)

type Result struct {
	RunID        uuid.UUID
	Config       preset.Config
	Threshold    float64
	TotalRevenue float64
	Outcome      *reward.Outcome
	Summaries    []compute.Summary
	Top          []compute.TopEntry
}

func (r *Result) Summary(p reward.Policy) compute.Summary {
	return r.Summaries[p]
}

// Run validates cfg and simulates it. Draw order on the shared source is
// fixed: stakes, then every MEV value, then one proposer per block.
func Run(cfg preset.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := slog.Default().With("pkg", "simulator")
	start := time.Now()

	src := rng.New(cfg.Seed)
	vset := types.DrawValidatorSet(src, cfg.NumValidators)
	revenue := types.DrawRevenueSequence(src, cfg.NumBlocks, cfg.MevDistMean, cfg.MevDistSigma)
	log.Debug("inputs drawn", "seed", src.Seed(), "totalStake", vset.TotalStake(), "threshold", revenue.Threshold, "draws", src.Draws())

	engine, err := reward.NewEngine(cfg, vset, revenue)
	if err != nil {
		return nil, errors.Wrap(err, "create policy engine")
	}
	out := engine.Run(src)

	res := &Result{
		RunID:        uuid.New(),
		Config:       cfg,
		Threshold:    revenue.Threshold,
		TotalRevenue: revenue.Total(),
		Outcome:      out,
		Summaries:    compute.SummarizeOutcome(out),
		Top:          compute.TopByBaseline(out, cfg.TopN),
	}
	log.Info("simulation finished", "run", res.RunID, "blocks", cfg.NumBlocks, "epochs", len(out.Epochs),
		"validators", cfg.NumValidators, "elapsed", time.Since(start))
	return res, nil
}
