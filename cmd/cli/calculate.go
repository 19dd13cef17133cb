package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wellecon/internal/economics"
	"wellecon/internal/model"
)

var (
	outPath    string
	onlyGroup  string
	groupFlows bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Evaluate every group and the portfolio",
	Long: `Runs the schedule, decline and cash flow model for each group, then sums
the groups into a portfolio. --out writes the monthly ledger as CSV; the
token {run} in the path is replaced by a generated run id.`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output CSV path for the monthly ledger")
	calculateCmd.Flags().StringVarP(&onlyGroup, "group", "g", "", "Evaluate a single group by id")
	calculateCmd.Flags().BoolVar(&groupFlows, "group-ledgers", false, "Also write one CSV per group next to --out")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	d, err := loadDeal()
	if err != nil {
		return err
	}
	e := newEngine(d)
	wells := d.ModelWells()
	groups := d.ModelGroups()

	if onlyGroup != "" {
		var picked []model.WellGroup
		for _, g := range groups {
			if g.ID == onlyGroup {
				picked = append(picked, g)
			}
		}
		if len(picked) == 0 {
			return fmt.Errorf("group %q not found in deal", onlyGroup)
		}
		groups = picked
	}

	runID := uuid.NewString()
	results := e.CalculateGroups(groups, wells)
	flow, metrics := e.Aggregate(results)

	logger.Info("portfolio calculated",
		zap.String("run_id", runID),
		zap.Int("groups", len(results)),
		zap.Int("wells", metrics.WellCount),
		zap.Float64("npv10", metrics.NPV10))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-12s %-6s %-16s %-16s %-14s %-8s %-8s\n", "group", "wells", "npv10$", "capex$", "eur_bbl", "payout", "irr")
	for _, r := range results {
		printMetricsRow(w, r.GroupID, r.Metrics, e.Options().ComputeIRR)
	}
	printMetricsRow(w, "PORTFOLIO", metrics, false)

	if outPath == "" {
		return nil
	}
	path := strings.ReplaceAll(outPath, "{run}", runID[:8])
	if err := writeLedger(path, flow); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %d rows to %s\n", len(flow), path)

	if groupFlows {
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		for _, r := range results {
			gp := fmt.Sprintf("%s_%s%s", base, r.GroupID, ext)
			if err := writeLedger(gp, r.Flow); err != nil {
				return err
			}
			fmt.Fprintf(w, "Wrote %d rows to %s\n", len(r.Flow), gp)
		}
	}
	return nil
}

func writeLedger(path string, flow []model.MonthlyCashFlow) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := economics.WriteFlowCSV(path, flow); err != nil {
		return fmt.Errorf("write ledger %s: %w", path, err)
	}
	return nil
}
