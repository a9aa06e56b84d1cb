// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package report renders simulation results for people (two tables) or for
// other programs (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/meterio/mev-sim/compute"
	"github.com/meterio/mev-sim/preset"
	"github.com/meterio/mev-sim/reward"
	"github.com/meterio/mev-sim/simulator"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

func Formats() []string { return []string{FormatTable, FormatJSON} }

// Write renders res to w in the given format.
func Write(w io.Writer, res *simulator.Result, format string) error {
	switch format {
	case FormatTable, "":
		return WriteTables(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

// WriteTables prints the profit distribution summary and the top validators
// comparison.
func WriteTables(w io.Writer, res *simulator.Result) error {
	fmt.Fprintln(w, "=== Profit Distribution Summary ===")
	summary := newTable(w)
	summary.SetHeader([]string{"Scenario", "Mean", "Std Dev", "Gini"})
	for _, s := range res.Summaries {
		summary.Append([]string{s.Scenario, formatFloat(s.Mean), formatFloat(s.StdDev), formatFloat(s.Gini)})
	}
	summary.Render()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "=== Top %d Validators Earnings Comparison ===\n", len(res.Top))
	top := newTable(w)
	header := []string{"Validator", "Stake"}
	for _, p := range reward.Policies {
		header = append(header, p.String())
	}
	top.SetHeader(header)
	for _, e := range res.Top {
		row := []string{strconv.Itoa(e.Validator), strconv.FormatInt(e.Stake, 10)}
		for _, p := range reward.Policies {
			row = append(row, formatFloat(e.Earnings[p]))
		}
		top.Append(row)
	}
	top.Render()
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetHeaderLine(false)
	return table
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Document is the JSON form of a result.
type Document struct {
	RunID        string            `json:"runId"`
	Config       preset.Config     `json:"config"`
	Threshold    float64           `json:"threshold"`
	TotalRevenue float64           `json:"totalRevenue"`
	Epochs       int               `json:"epochs"`
	Summaries    []compute.Summary `json:"summaries"`
	Top          []TopRow          `json:"top"`
}

type TopRow struct {
	Validator int                `json:"validator"`
	Stake     int64              `json:"stake"`
	Earnings  map[string]float64 `json:"earnings"`
}

func NewDocument(res *simulator.Result) *Document {
	doc := &Document{
		RunID:        res.RunID.String(),
		Config:       res.Config,
		Threshold:    res.Threshold,
		TotalRevenue: res.TotalRevenue,
		Epochs:       len(res.Outcome.Epochs),
		Summaries:    res.Summaries,
		Top:          make([]TopRow, 0, len(res.Top)),
	}
	for _, e := range res.Top {
		row := TopRow{Validator: e.Validator, Stake: e.Stake, Earnings: make(map[string]float64, reward.NumPolicies)}
		for _, p := range reward.Policies {
			row.Earnings[p.String()] = e.Earnings[p]
		}
		doc.Top = append(doc.Top, row)
	}
	return doc
}

func WriteJSON(w io.Writer, res *simulator.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(res)); err != nil {
		return errors.Wrap(err, "encode report")
	}
	return nil
}
