// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/meterio/mev-sim/preset"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
)

// fatal prints the message to stderr (and stdout when they differ) and exits 1.
func fatal(args ...interface{}) {
	var w io.Writer = os.Stderr
	outf, _ := os.Stdout.Stat()
	errf, _ := os.Stderr.Stat()
	if outf != nil && errf != nil && !os.SameFile(outf, errf) {
		w = io.MultiWriter(os.Stdout, os.Stderr)
	}
	fmt.Fprint(w, "Fatal: ")
	fmt.Fprintln(w, args...)
	os.Exit(1)
}

func logLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelError
	case verbosity == 1:
		return slog.LevelWarn
	case verbosity == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func initLogger(ctx *cli.Context) {
	w := os.Stderr
	handler := tint.NewHandler(w, &tint.Options{
		Level:      logLevel(ctx.GlobalInt(verbosityFlag.Name)),
		TimeFormat: time.StampMilli,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig resolves the run configuration: preset, then config file, then
// any flag the user set explicitly.
func loadConfig(ctx *cli.Context) (preset.Config, error) {
	cfg, err := preset.ByName(ctx.GlobalString(presetFlag.Name))
	if err != nil {
		return preset.Config{}, err
	}
	if path := ctx.GlobalString(configFlag.Name); path != "" {
		if cfg, err = preset.LoadFile(path, cfg); err != nil {
			return preset.Config{}, err
		}
	}

	if ctx.GlobalIsSet(validatorsFlag.Name) {
		cfg.NumValidators = ctx.GlobalInt(validatorsFlag.Name)
	}
	if ctx.GlobalIsSet(blocksFlag.Name) {
		cfg.NumBlocks = ctx.GlobalInt(blocksFlag.Name)
	}
	if ctx.GlobalIsSet(epochSizeFlag.Name) {
		cfg.EpochSize = ctx.GlobalInt(epochSizeFlag.Name)
	}
	if ctx.GlobalIsSet(mevMeanFlag.Name) {
		cfg.MevDistMean = ctx.GlobalFloat64(mevMeanFlag.Name)
	}
	if ctx.GlobalIsSet(mevSigmaFlag.Name) {
		cfg.MevDistSigma = ctx.GlobalFloat64(mevSigmaFlag.Name)
	}
	if ctx.GlobalIsSet(seedFlag.Name) {
		cfg.Seed = ctx.GlobalInt64(seedFlag.Name)
	}
	if ctx.GlobalIsSet(topFlag.Name) {
		cfg.TopN = ctx.GlobalInt(topFlag.Name)
	}

	if err := cfg.Validate(); err != nil {
		return preset.Config{}, errors.WithMessage(err, "check configuration")
	}
	return cfg, nil
}
