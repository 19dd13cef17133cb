package main

import (
	"fmt"
	"io"

	"wellecon/internal/economics"
	"wellecon/internal/model"
)

func money(x float64) string {
	return economics.RoundMoney(x).StringFixed(2)
}

func printMetricsRow(w io.Writer, label string, m model.DealMetrics, withIRR bool) {
	irr := "-"
	if withIRR {
		irr = fmt.Sprintf("%.1f%%", m.IRR*100)
	}
	payout := "never"
	if m.PayoutMonths > 0 {
		payout = fmt.Sprintf("%d", m.PayoutMonths)
	}
	fmt.Fprintf(w, "%-12s %-6d %-16s %-16s %-14.0f %-8s %-8s\n",
		label, m.WellCount, money(m.NPV10), money(m.TotalCapex), m.EUR, payout, irr)
}
