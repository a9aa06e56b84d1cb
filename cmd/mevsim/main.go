// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/meterio/mev-sim/metrics"
	"github.com/meterio/mev-sim/preset"
	"github.com/meterio/mev-sim/report"
	"github.com/meterio/mev-sim/simulator"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = fullVersion()
	app.Name = "mevsim"
	app.Usage = "Monte Carlo comparison of MEV redistribution policies"
	app.Copyright = "2020 Meter Foundation <https://meter.io/>"
	app.Flags = []cli.Flag{
		presetFlag,
		configFlag,
		validatorsFlag,
		blocksFlag,
		epochSizeFlag,
		mevMeanFlag,
		mevSigmaFlag,
		seedFlag,
		topFlag,
		formatFlag,
		metricsFileFlag,
		verbosityFlag,
	}
	app.Action = defaultAction
	app.Commands = []cli.Command{
		{
			Name:   "presets",
			Usage:  "list the named parameter presets",
			Action: presetsAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}

func defaultAction(ctx *cli.Context) error {
	initLogger(ctx)
	log := slog.Default().With("pkg", "mevsim")

	format := ctx.GlobalString(formatFlag.Name)
	if !validFormat(format) {
		return errors.Errorf("unknown output format %q (available: %v)", format, report.Formats())
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	log.Info("starting simulation", "config", cfg.String())
	if cfg.NumBlocks%cfg.EpochSize != 0 {
		log.Warn("blocks is not a multiple of epoch size, the last partial epoch is never distributed",
			"blocks", cfg.NumBlocks, "epochSize", cfg.EpochSize)
	}

	res, err := simulator.Run(cfg)
	if err != nil {
		return err
	}
	if err := report.Write(ctx.App.Writer, res, format); err != nil {
		return err
	}
	if path := ctx.GlobalString(metricsFileFlag.Name); path != "" {
		if err := metrics.Export(res, path); err != nil {
			return err
		}
		log.Info("metrics written", "file", path)
	}
	return nil
}

func presetsAction(ctx *cli.Context) error {
	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Preset", "Validators", "Blocks", "Epoch Size", "MEV Mean", "MEV Sigma", "Seed", "Top"})
	for _, name := range preset.Names() {
		cfg, err := preset.ByName(name)
		if err != nil {
			return err
		}
		table.Append([]string{
			name,
			strconv.Itoa(cfg.NumValidators),
			strconv.Itoa(cfg.NumBlocks),
			strconv.Itoa(cfg.EpochSize),
			strconv.FormatFloat(cfg.MevDistMean, 'g', -1, 64),
			strconv.FormatFloat(cfg.MevDistSigma, 'g', -1, 64),
			strconv.FormatInt(cfg.Seed, 10),
			strconv.Itoa(cfg.TopN),
		})
	}
	table.Render()
	return nil
}

func validFormat(format string) bool {
	for _, f := range report.Formats() {
		if f == format {
			return true
		}
	}
	return false
}
