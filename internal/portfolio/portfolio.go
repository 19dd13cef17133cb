package portfolio

import (
	"wellecon/internal/model"
	"wellecon/internal/valuation"
)

// Aggregate rolls group results up into one portfolio result.
// Flows are summed index-wise over a fixed horizon; scalar metrics are summed.
// Cumulative cash and payout are recomputed from the summed series since
// payout timing does not add across groups. Groups with no flow are skipped.
// IRR is not additive and is left at 0.
func Aggregate(groups []model.GroupResult, horizon int) ([]model.MonthlyCashFlow, model.DealMetrics) {
	if horizon <= 0 {
		horizon = valuation.DefaultHorizon
	}
	flow := make([]model.MonthlyCashFlow, horizon)
	for i := range flow {
		flow[i].Month = i + 1
	}

	var m model.DealMetrics
	for _, g := range groups {
		if len(g.Flow) == 0 {
			continue
		}
		m.TotalCapex += g.Metrics.TotalCapex
		m.EUR += g.Metrics.EUR
		m.NPV10 += g.Metrics.NPV10
		m.WellCount += g.Metrics.WellCount

		for i, f := range g.Flow {
			if i >= horizon {
				break
			}
			flow[i].OilProduction += f.OilProduction
			flow[i].Revenue += f.Revenue
			flow[i].Capex += f.Capex
			flow[i].Opex += f.Opex
			flow[i].NetCashFlow += f.NetCashFlow
		}
	}
	m.PayoutMonths = valuation.Cumulate(flow)
	return flow, m
}
