// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/luxfi/chaindash/pkg/animate"
	"github.com/luxfi/chaindash/pkg/format"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "Chain"
	if m.opts.Node != "" {
		title += "  " + m.opts.Node
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(m.renderStake())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderMiner(), " ", m.renderDetail()))
	b.WriteString("\n")

	if m.modal != nil {
		b.WriteString(m.renderModal())
		b.WriteString("\n")
	}

	for _, t := range m.toasts {
		b.WriteString(toastStyle(t.Level).Render(t.Message))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

// counter renders an eased amount with the configured symbol.
func (m *Model) counter(a *animate.Animator) string {
	return format.WithSymbol(format.Tokens(a.Current(), m.opts.Decimals), m.opts.Symbol)
}

func (m *Model) renderStake() string {
	rows := [][]string{
		{"Staked", valueStyle.Render(m.counter(m.counters.staking))},
		{"Power Rate", valueStyle.Render(m.snap.Stake.Rate)},
	}
	body := sectionStyle.Render("Staking") + "\n" + renderRows(rows)
	return boxStyle.Render(body)
}

func (m *Model) renderMiner() string {
	toggle := "[ OFF ]"
	if m.snap.Miner.On {
		toggle = "[ ON  ]"
	}
	status := activenessStyle(m.snap.Miner.Activeness).Render(m.snap.Miner.Label)
	rows := [][]string{
		{"Miner", toggle},
		{"Status", status},
	}
	body := sectionStyle.Render("Mining") + "\n" + renderRows(rows)
	return boxStyle.Render(body)
}

func (m *Model) renderDetail() string {
	d := m.snap.Detail
	rows := [][]string{
		{"Height", format.Integer(d.Height)},
		{"Round", format.Integer(d.Round)},
		{"Role", format.CapitalLabel(string(d.Role))},
		{"Balance", m.counter(m.counters.balance)},
		{"Total Supply", m.counter(m.counters.totalSupply)},
		{"Expected Reward", rewardStyle.Render("+" + m.counter(m.counters.expectedReward))},
	}
	body := sectionStyle.Render("Chain Detail") + "\n" + renderRows(rows)
	return boxStyle.Render(body)
}

func (m *Model) renderModal() string {
	body := m.modal.label + "\n\n" + m.modal.input.View() + "\n\n" + labelStyle.Render("enter: confirm • esc: cancel")
	return modalStyle.Render(body)
}

func (m *Model) renderHelp() string {
	help := "s: stake • u: unstake • m: toggle mining • q: quit"
	if m.busy != "" {
		help = m.busy + "… • " + help
	}
	return helpStyle.Render(help)
}

// renderRows lays out label/value pairs with the labels padded to one width.
func renderRows(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	maxWidth := 0
	for _, row := range rows {
		if len(row) > 0 && len(row[0]) > maxWidth {
			maxWidth = len(row[0])
		}
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		if len(row) >= 2 {
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", maxWidth, row[0])))
			b.WriteString("  ")
			b.WriteString(row[1])
		} else if len(row) == 1 {
			b.WriteString(row[0])
		}
	}
	return b.String()
}
