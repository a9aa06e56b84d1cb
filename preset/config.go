// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package preset

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds every adjustable input of a simulation run.
// It is passed by value; components keep their own copy.
type Config struct {
	NumValidators int     `yaml:"validators" json:"validators"`
	NumBlocks     int     `yaml:"blocks" json:"blocks"`
	EpochSize     int     `yaml:"epoch_size" json:"epochSize"`
	MevDistMean   float64 `yaml:"mev_mean" json:"mevMean"`
	MevDistSigma  float64 `yaml:"mev_sigma" json:"mevSigma"`
	Seed          int64   `yaml:"seed" json:"seed"`
	TopN          int     `yaml:"top_n" json:"topN"`
}

var (
	DefaultConfig = Config{
		NumValidators: 100,
		NumBlocks:     2000,
		EpochSize:     100,
		MevDistMean:   1.0,
		MevDistSigma:  1.0,
		Seed:          42,
		TopN:          5,
	}

	SmallConfig = Config{
		NumValidators: 10,
		NumBlocks:     200,
		EpochSize:     20,
		MevDistMean:   1.0,
		MevDistSigma:  1.0,
		Seed:          42,
		TopN:          5,
	}

	LongConfig = Config{
		NumValidators: 100,
		NumBlocks:     20000,
		EpochSize:     100,
		MevDistMean:   1.0,
		MevDistSigma:  1.0,
		Seed:          42,
		TopN:          5,
	}

	// last 50 blocks never reach an epoch boundary
	TruncatedConfig = Config{
		NumValidators: 100,
		NumBlocks:     2050,
		EpochSize:     100,
		MevDistMean:   1.0,
		MevDistSigma:  1.0,
		Seed:          42,
		TopN:          5,
	}

	presets = map[string]Config{
		"default":   DefaultConfig,
		"small":     SmallConfig,
		"long":      LongConfig,
		"truncated": TruncatedConfig,
	}
)

// ByName returns a copy of the named preset.
func ByName(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, errors.Errorf("unknown preset %q (available: %v)", name, Names())
	}
	return cfg, nil
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile overlays the YAML document at path on top of base. Keys missing
// from the file keep the base value.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config file %v", path)
	}
	return Parse(data, base)
}

// Parse is LoadFile for an in-memory document. Unknown keys are rejected.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}

// Validate checks the preconditions of a run. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.NumValidators < 1:
		return errors.Wrapf(ErrInvalidConfig, "validators must be positive, got %d", c.NumValidators)
	case c.NumBlocks < 1:
		return errors.Wrapf(ErrInvalidConfig, "blocks must be positive, got %d", c.NumBlocks)
	case c.EpochSize < 1:
		return errors.Wrapf(ErrInvalidConfig, "epoch_size must be positive, got %d", c.EpochSize)
	case math.IsNaN(c.MevDistMean) || math.IsInf(c.MevDistMean, 0):
		return errors.Wrapf(ErrInvalidConfig, "mev_mean must be finite, got %v", c.MevDistMean)
	case !(c.MevDistSigma > 0) || math.IsInf(c.MevDistSigma, 0):
		return errors.Wrapf(ErrInvalidConfig, "mev_sigma must be positive and finite, got %v", c.MevDistSigma)
	case c.TopN < 1:
		return errors.Wrapf(ErrInvalidConfig, "top_n must be positive, got %d", c.TopN)
	}
	return nil
}

// Epochs is the number of complete epochs the run will distribute.
func (c Config) Epochs() int {
	return c.NumBlocks / c.EpochSize
}

func (c Config) String() string {
	return fmt.Sprintf("Config{Validators:%v Blocks:%v EpochSize:%v MevMean:%v MevSigma:%v Seed:%v TopN:%v}",
		c.NumValidators, c.NumBlocks, c.EpochSize, c.MevDistMean, c.MevDistSigma, c.Seed, c.TopN)
}
