package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wellecon/internal/analysis"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank groups by NPV10",
	RunE:  runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	d, err := loadDeal()
	if err != nil {
		return err
	}
	groups := d.ModelGroups()
	results := newEngine(d).CalculateGroups(groups, d.ModelWells())
	ranked := analysis.RankGroups(groups, results)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-4s %-12s %-18s %-6s %-16s %-12s %-14s %-8s\n", "rank", "group", "name", "wells", "npv10$", "npv/capex", "$/bbl", "payout")
	for i, r := range ranked {
		fmt.Fprintf(w, "%-4d %-12s %-18s %-6d %-16s %-12.3f %-14s %-8d\n",
			i+1,
			r.GroupID,
			r.Name,
			r.WellCount,
			money(r.NPV10),
			r.Efficiency,
			money(r.DevelopmentCost),
			r.PayoutMonths,
		)
	}
	return nil
}
