package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/meterio/mev-sim/preset"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsAreValid(t *testing.T) {
	for _, name := range preset.Names() {
		cfg, err := preset.ByName(name)
		require.NoError(t, err, name)
		assert.NoError(t, cfg.Validate(), name)
	}
	assert.Equal(t, []string{"default", "long", "small", "truncated"}, preset.Names())
}

func TestByNameReturnsCopy(t *testing.T) {
	cfg, err := preset.ByName("default")
	require.NoError(t, err)
	cfg.NumBlocks = 1

	again, err := preset.ByName("default")
	require.NoError(t, err)
	assert.Equal(t, 2000, again.NumBlocks)
}

func TestUnknownPreset(t *testing.T) {
	_, err := preset.ByName("mainnet")
	assert.Error(t, err)
}

func TestDefaultPresetValues(t *testing.T) {
	cfg := preset.DefaultConfig
	assert.Equal(t, 100, cfg.NumValidators)
	assert.Equal(t, 2000, cfg.NumBlocks)
	assert.Equal(t, 100, cfg.EpochSize)
	assert.Equal(t, 1.0, cfg.MevDistMean)
	assert.Equal(t, 1.0, cfg.MevDistSigma)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 20, cfg.Epochs())
	assert.Equal(t, 20, preset.TruncatedConfig.Epochs())
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *preset.Config){
		"validators": func(c *preset.Config) { c.NumValidators = 0 },
		"blocks":     func(c *preset.Config) { c.NumBlocks = -1 },
		"epoch":      func(c *preset.Config) { c.EpochSize = 0 },
		"sigma":      func(c *preset.Config) { c.MevDistSigma = 0 },
		"negsigma":   func(c *preset.Config) { c.MevDistSigma = -0.5 },
		"top":        func(c *preset.Config) { c.TopN = 0 },
	}
	for name, mutate := range cases {
		cfg := preset.DefaultConfig
		mutate(&cfg)
		err := cfg.Validate()
		require.Error(t, err, name)
		assert.Equal(t, preset.ErrInvalidConfig, errors.Cause(err), name)
	}
}

func TestParseOverlay(t *testing.T) {
	cfg, err := preset.Parse([]byte("validators: 7\nseed: 9\n"), preset.DefaultConfig)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.NumValidators)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, preset.DefaultConfig.NumBlocks, cfg.NumBlocks)
	assert.Equal(t, preset.DefaultConfig.EpochSize, cfg.EpochSize)
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := preset.Parse([]byte("validatorz: 7\n"), preset.DefaultConfig)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocks: 300\nepoch_size: 30\nmev_sigma: 0.5\n"), 0600))

	cfg, err := preset.LoadFile(path, preset.SmallConfig)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.NumBlocks)
	assert.Equal(t, 30, cfg.EpochSize)
	assert.Equal(t, 0.5, cfg.MevDistSigma)
	assert.Equal(t, preset.SmallConfig.NumValidators, cfg.NumValidators)

	_, err = preset.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), preset.SmallConfig)
	assert.Error(t, err)
}
