package valuation

import (
	"math"

	"wellecon/internal/cashflow"
	"wellecon/internal/model"
)

const (
	DefaultHorizon      = 120
	DefaultDiscountRate = 0.10
)

// Options control how a buffer is reduced to metrics.
type Options struct {
	Horizon            int     // months kept; later months are discarded
	AnnualDiscountRate float64 // nominal, compounded monthly
	ComputeIRR         bool
}

func DefaultOptions() Options {
	return Options{Horizon: DefaultHorizon, AnnualDiscountRate: DefaultDiscountRate}
}

// Finalize truncates the buffer to the horizon and derives net, cumulative and metrics.
// WellCount is left for the caller.
func Finalize(buf *cashflow.Buffer, opts Options) ([]model.MonthlyCashFlow, model.DealMetrics) {
	h := opts.Horizon
	if h > buf.Len() {
		h = buf.Len()
	}
	if h < 0 {
		h = 0
	}

	flow := make([]model.MonthlyCashFlow, h)
	var m model.DealMetrics
	for i := 0; i < h; i++ {
		net := buf.Revenue[i] - buf.Opex[i] - buf.Capex[i]
		flow[i] = model.MonthlyCashFlow{
			Month:         i + 1,
			OilProduction: buf.Production[i],
			Revenue:       buf.Revenue[i],
			Capex:         buf.Capex[i],
			Opex:          buf.Opex[i],
			NetCashFlow:   net,
		}
		m.TotalCapex += buf.Capex[i]
		m.EUR += buf.Production[i]
	}
	m.PayoutMonths = Cumulate(flow)
	m.NPV10 = NPV(flow, opts.AnnualDiscountRate)
	if opts.ComputeIRR {
		m.IRR = IRR(flow)
	}
	return flow, m
}

// Cumulate fills CumulativeCashFlow in place and returns the payout month:
// the first 1-based month whose cumulative is >= 0, or 0 if none.
func Cumulate(flow []model.MonthlyCashFlow) int {
	cum := 0.0
	payout := 0
	for i := range flow {
		cum += flow[i].NetCashFlow
		flow[i].CumulativeCashFlow = cum
		if payout == 0 && cum >= 0 {
			payout = i + 1
		}
	}
	return payout
}

// NPV discounts month t (1-based) by (1 + rate/12)^t.
func NPV(flow []model.MonthlyCashFlow, annualRate float64) float64 {
	return npvMonthly(flow, annualRate/12)
}

func npvMonthly(flow []model.MonthlyCashFlow, r float64) float64 {
	npv := 0.0
	df := 1.0
	for i := range flow {
		df /= 1 + r
		npv += flow[i].NetCashFlow * df
	}
	return npv
}

// dNPV/dr for the monthly rate.
func npvDerivative(flow []model.MonthlyCashFlow, r float64) float64 {
	d := 0.0
	for i := range flow {
		t := float64(i + 1)
		d -= t * flow[i].NetCashFlow / math.Pow(1+r, t+1)
	}
	return d
}
