package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wellecon/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Compare the deal's scenarios against the base case",
	RunE:  runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) error {
	d, err := loadDeal()
	if err != nil {
		return err
	}
	scs := d.ModelScenarios()
	if len(scs) == 0 {
		return errors.New("deal defines no scenarios")
	}

	cmp := scenario.Compare(newEngine(d), d.ModelGroups(), d.ModelWells(), scs)
	logger.Info("scenarios compared", zap.Int("scenarios", len(cmp)))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-12s %-5s %-16s %-16s %-16s %-8s %-8s\n", "scenario", "base", "npv10$", "d_npv10$", "capex$", "payout", "roi")
	for _, c := range cmp {
		base := ""
		if c.Result.Scenario.IsBaseCase {
			base = "*"
		}
		fmt.Fprintf(w, "%-12s %-5s %-16s %-16s %-16s %-8d %-8.2f\n",
			c.ScenarioID,
			base,
			money(c.Result.Metrics.NPV10),
			money(c.Delta.NPV10),
			money(c.Result.Metrics.TotalCapex),
			c.Result.Metrics.PayoutMonths,
			c.Result.ROI,
		)
	}
	return nil
}
