package simulator_test

import (
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/gonum/floats"
	"github.com/meterio/mev-sim/preset"
	"github.com/meterio/mev-sim/reward"
	"github.com/meterio/mev-sim/simulator"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	a, err := simulator.Run(preset.DefaultConfig)
	require.NoError(t, err)
	b, err := simulator.Run(preset.DefaultConfig)
	require.NoError(t, err)

	for _, p := range reward.Policies {
		assert.Equal(t, a.Outcome.Earnings(p), b.Outcome.Earnings(p), p.String())
	}
	assert.Equal(t, a.Outcome.Proposers, b.Outcome.Proposers)
	assert.Equal(t, a.Summaries, b.Summaries)
	assert.Equal(t, a.Top, b.Top)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestSeedChangesRun(t *testing.T) {
	cfg := preset.SmallConfig
	a, err := simulator.Run(cfg)
	require.NoError(t, err)
	cfg.Seed++
	b, err := simulator.Run(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Outcome.Earnings(reward.Baseline), b.Outcome.Earnings(reward.Baseline))
}

func TestInvalidConfigFailsFast(t *testing.T) {
	cfg := preset.DefaultConfig
	cfg.EpochSize = 0
	res, err := simulator.Run(cfg)
	assert.Nil(t, res)
	assert.Equal(t, preset.ErrInvalidConfig, errors.Cause(err))
}

func TestRunShape(t *testing.T) {
	cfg := preset.DefaultConfig
	res, err := simulator.Run(cfg)
	require.NoError(t, err)

	require.Len(t, res.Summaries, reward.NumPolicies)
	require.Len(t, res.Top, cfg.TopN)
	assert.Len(t, res.Outcome.Epochs, cfg.Epochs())
	assert.Equal(t, res.Outcome.Revenue.Threshold, res.Threshold)

	for i := 1; i < len(res.Top); i++ {
		assert.GreaterOrEqual(t, res.Top[i-1].Earnings[reward.Baseline], res.Top[i].Earnings[reward.Baseline])
	}
	for _, p := range reward.Policies {
		s := res.Summary(p)
		assert.Equal(t, p, s.Policy)
		assert.InDelta(t, res.TotalRevenue/float64(cfg.NumValidators), s.Mean, 1e-6, p.String())
		assert.GreaterOrEqual(t, s.Gini, 0.0)
		assert.Less(t, s.Gini, 1.0)
	}
	// pooling the surplus flattens the distribution
	baseline := res.Summary(reward.Baseline)
	for _, p := range []reward.Policy{reward.StakePool, reward.EqualPool, reward.RootStakePool} {
		assert.Less(t, res.Summary(p).Gini, baseline.Gini, p.String())
	}
	assert.Less(t, res.Summary(reward.EqualPool).Gini, res.Summary(reward.StakePool).Gini)
}

func TestTruncatedRunConservesOnlyDistributedMass(t *testing.T) {
	res, err := simulator.Run(preset.TruncatedConfig)
	require.NoError(t, err)

	for _, p := range []reward.Policy{reward.StakePool, reward.EqualPool, reward.RootStakePool} {
		residual := res.Outcome.Residual(p)
		require.Greater(t, residual, 0.0)
		earned := floats.Sum(res.Outcome.Earnings(p))
		assert.InDelta(t, res.TotalRevenue, earned+residual, 1e-6)
		assert.Greater(t, res.TotalRevenue-earned, residual/2)
		assert.Equal(t, residual, res.Summary(p).Residual)
	}
}

func TestSingleValidator(t *testing.T) {
	cfg := preset.SmallConfig
	cfg.NumValidators = 1
	cfg.TopN = 5
	res, err := simulator.Run(cfg)
	require.NoError(t, err)

	require.Len(t, res.Top, 1)
	for _, p := range reward.Policies {
		assert.InDelta(t, 0, res.Summary(p).Gini, 1e-12)
		assert.Equal(t, 0.0, res.Summary(p).StdDev)
		assert.InDelta(t, res.TotalRevenue, res.Summary(p).Total, 1e-9)
	}
}

func TestRunStartsNoGoroutines(t *testing.T) {
	defer leaktest.Check(t)()
	_, err := simulator.Run(preset.SmallConfig)
	require.NoError(t, err)
}
