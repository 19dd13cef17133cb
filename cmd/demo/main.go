package main

import (
	"flag"
	"fmt"

	"wellecon/internal/config"
	"wellecon/internal/economics"
	"wellecon/internal/model"
	"wellecon/internal/sensitivity"
)

// Demo:
// - Build a small two-group deal in code (or load one with --deal)
// - Run the schedule, decline and cash flow model for each group
// - Print the first months of the portfolio ledger and a small NPV grid
func main() {
	dealPath := flag.String("deal", "", "Path to deal YAML (optional)")
	n := flag.Int("n", 12, "Number of months to print")
	outCSV := flag.String("out", "", "Optional path to write the portfolio ledger CSV (e.g. results/demo.csv)")
	flag.Parse()

	wells, groups := demoDeal()
	if *dealPath != "" {
		d, err := config.LoadDeal(*dealPath)
		if err != nil {
			panic(err)
		}
		wells, groups = d.ModelWells(), d.ModelGroups()
	}

	e := economics.New()
	results := e.CalculateGroups(groups, wells)
	flow, metrics := e.Aggregate(results)

	fmt.Printf("Loaded %d wells in %d groups\n\n", len(wells), len(groups))
	for _, r := range results {
		fmt.Printf("%-8s wells=%d  npv10=$%s  capex=$%s  eur=%.0f bbl  payout=%d\n",
			r.GroupID,
			r.Metrics.WellCount,
			economics.RoundMoney(r.Metrics.NPV10).StringFixed(0),
			economics.RoundMoney(r.Metrics.TotalCapex).StringFixed(0),
			r.Metrics.EUR,
			r.Metrics.PayoutMonths,
		)
	}
	fmt.Println()

	for i := 0; i < min(*n, len(flow)); i++ {
		f := flow[i]
		fmt.Printf(
			"m=%3d  oil=%9.0f  rev=%12.0f  capex=%12.0f  opex=%9.0f  net=%12.0f  cum=%13.0f\n",
			f.Month,
			f.OilProduction,
			f.Revenue,
			f.Capex,
			f.Opex,
			f.NetCashFlow,
			f.CumulativeCashFlow,
		)
	}

	matrix, err := sensitivity.New(e, 4).Generate(sensitivity.Request{
		Groups:    groups,
		Wells:     wells,
		XVariable: sensitivity.OilPrice,
		XSteps:    []float64{55, 70, 85},
		YVariable: sensitivity.CapexScalar,
		YSteps:    []float64{0.9, 1.0, 1.1},
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nNPV10 ($MM) by oil price (cols) and capex scalar (rows)\n")
	for _, row := range matrix {
		fmt.Printf("%4.1f", row[0].YValue)
		for _, c := range row {
			fmt.Printf("  %8.2f", c.NPV/1e6)
		}
		fmt.Println()
	}

	if *outCSV != "" {
		if err := economics.WriteFlowCSV(*outCSV, flow); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Portfolio NPV10=$%s  Payout month=%d\n",
		economics.RoundMoney(metrics.NPV10).StringFixed(2), metrics.PayoutMonths)
}

func demoDeal() ([]model.Well, []model.WellGroup) {
	wells := []model.Well{
		{ID: "W1", LateralLength: 10000, Status: model.WellDUC},
		{ID: "W2", LateralLength: 7500, Status: model.WellPermit},
		{ID: "W3", LateralLength: 12500, Status: model.WellPermit},
		{ID: "W4", LateralLength: 10000, Status: model.WellPermit},
	}
	pricing := model.PricingAssumptions{OilPrice: 75, OilDifferential: 3, NRI: 0.8, LOEPerMonth: 12000}
	groups := []model.WellGroup{
		{
			ID:        "core",
			Name:      "Wolfcamp A core",
			WellIDs:   model.NewWellSet("W1", "W2"),
			TypeCurve: model.TypeCurveParams{Qi: 850, B: 1.2, Di: 65},
			Capex: model.CapexAssumptions{
				RigCount:          1,
				DrillDurationDays: 18,
				StimDurationDays:  12,
				Items: []model.CapexItem{
					{Name: "Drill", Category: model.CapexDrilling, Value: 3500000, Basis: model.PerWell},
					{Name: "Complete", Category: model.CapexCompletion, Value: 350, Basis: model.PerFoot},
				},
			},
			Pricing: pricing,
		},
		{
			ID:        "step",
			Name:      "Bone Spring step-out",
			WellIDs:   model.NewWellSet("W3", "W4"),
			TypeCurve: model.TypeCurveParams{Qi: 600, B: 0.9, Di: 55},
			Capex: model.CapexAssumptions{
				RigCount:          1,
				DrillDurationDays: 20,
				StimDurationDays:  14,
				Items: []model.CapexItem{
					{Name: "Well", Category: model.CapexOther, Value: 7500000, Basis: model.PerWell},
				},
			},
			Pricing: pricing,
		},
	}
	return wells, groups
}
