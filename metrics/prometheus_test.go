package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meterio/mev-sim/metrics"
	"github.com/meterio/mev-sim/preset"
	"github.com/meterio/mev-sim/reward"
	"github.com/meterio/mev-sim/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	res, err := simulator.Run(preset.TruncatedConfig)
	require.NoError(t, err)

	e := metrics.NewExporter()
	e.Observe(res)

	// 4 policies x 3 summary gauges + 3 pooled x 2 pool gauges + 3 run gauges
	families, err := e.Gatherer().Gather()
	require.NoError(t, err)
	count := 0
	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			count++
			if len(m.GetLabel()) == 0 {
				values[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 21, count)
	assert.Equal(t, 2050.0, values["mevsim_blocks_total"])
	assert.Equal(t, 20.0, values["mevsim_epochs_total"])
	assert.Equal(t, res.Threshold, values["mevsim_mev_threshold"])
}

func TestExportTextfile(t *testing.T) {
	res, err := simulator.Run(preset.SmallConfig)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mevsim.prom")
	require.NoError(t, metrics.Export(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `mevsim_earnings_gini{policy="Baseline"}`)
	assert.Contains(t, text, `mevsim_pool_residual{policy="RootStakePool"} 0`)
	assert.Contains(t, text, "mevsim_epochs_total 10")
	assert.NotContains(t, text, `mevsim_pool_residual{policy="Baseline"}`)
	assert.Equal(t, 0.0, res.Outcome.Residual(reward.StakePool))
}
