// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	presetFlag = cli.StringFlag{
		Name:  "preset",
		Value: "default",
		Usage: "named parameter preset (default|small|long|truncated)",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "YAML file overriding preset values",
	}
	validatorsFlag = cli.IntFlag{
		Name:  "validators",
		Usage: "number of validators",
	}
	blocksFlag = cli.IntFlag{
		Name:  "blocks",
		Usage: "number of blocks to simulate",
	}
	epochSizeFlag = cli.IntFlag{
		Name:  "epoch-size",
		Usage: "blocks per epoch (pool distribution period)",
	}
	mevMeanFlag = cli.Float64Flag{
		Name:  "mev-mean",
		Usage: "log-space mean of the MEV value distribution",
	}
	mevSigmaFlag = cli.Float64Flag{
		Name:  "mev-sigma",
		Usage: "log-space sigma of the MEV value distribution",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "random source seed",
	}
	topFlag = cli.IntFlag{
		Name:  "top",
		Usage: "number of top baseline validators to compare",
	}
	formatFlag = cli.StringFlag{
		Name:  "format",
		Value: "table",
		Usage: "output format (table|json)",
	}
	metricsFileFlag = cli.StringFlag{
		Name:  "metrics-file",
		Usage: "write prometheus metrics of the run to this textfile",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 2,
		Usage: "log verbosity (0 error, 1 warn, 2 info, 3 debug)",
	}
)
