// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/luxfi/chaindash/pkg/format"
	"github.com/luxfi/chaindash/pkg/panel"
	"github.com/luxfi/chaindash/pkg/units"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// StatusFormatter handles formatting of status output
type StatusFormatter struct {
	writer   io.Writer
	symbol   string
	decimals int
}

// NewStatusFormatter creates a new formatter. symbol and decimals control
// how token amounts appear in table output.
func NewStatusFormatter(writer io.Writer, symbol string, decimals int) *StatusFormatter {
	return &StatusFormatter{
		writer:   writer,
		symbol:   symbol,
		decimals: decimals,
	}
}

// Format writes result in the named output format.
func (f *StatusFormatter) Format(output string, result *StatusResult) error {
	switch output {
	case OutputTable, "":
		return f.FormatTable(result)
	case OutputJSON:
		return f.FormatJSON(result)
	case OutputYAML:
		return f.FormatYAML(result)
	default:
		return fmt.Errorf("unknown output format %q (expected %s, %s or %s)", output, OutputTable, OutputJSON, OutputYAML)
	}
}

func (f *StatusFormatter) amount(a units.Amount) string {
	return format.WithSymbol(format.Amount(a, f.decimals), f.symbol)
}

// Rows returns the human readable panel rows shared by the table output
// and the dashboard.
func (f *StatusFormatter) Rows(chain panel.ChainSnapshot) [][]string {
	d := chain.Detail
	return [][]string{
		{"stake", "Staked", f.amount(chain.Stake.Staking)},
		{"stake", "Total Staking", f.amount(chain.Stake.TotalStaking)},
		{"stake", "Power Rate", chain.Stake.Rate},
		{"miner", "Status", chain.Miner.Label},
		{"detail", "Role", format.CapitalLabel(string(d.Role))},
		{"detail", "Height", format.Integer(d.Height)},
		{"detail", "Round", format.Integer(d.Round)},
		{"detail", "Balance", f.amount(d.Balance)},
		{"detail", "Total Supply", f.amount(d.TotalSupply)},
		{"detail", "Expected Reward", "+" + f.amount(d.ExpectedReward)},
	}
}

// FormatTable outputs the status as tables
func (f *StatusFormatter) FormatTable(result *StatusResult) error {
	fmt.Fprintf(f.writer, "node %s  (%dms)\n", result.Node, result.DurationMS)

	table := tablewriter.NewWriter(f.writer)
	table.Header("Panel", "Field", "Value")
	for _, row := range f.Rows(result.Chain) {
		_ = table.Append(row)
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.Healthy() {
		return nil
	}
	fmt.Fprintln(f.writer, "\nfailed endpoints")
	failed := tablewriter.NewWriter(f.writer)
	failed.Header("Path", "Error")
	for _, e := range result.Endpoints {
		if !e.OK {
			_ = failed.Append([]string{e.Path, e.LastError})
		}
	}
	return failed.Render()
}

// FormatJSON outputs the status as JSON
func (f *StatusFormatter) FormatJSON(result *StatusResult) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// FormatYAML outputs the status as YAML
func (f *StatusFormatter) FormatYAML(result *StatusResult) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return err
	}
	return encoder.Close()
}
