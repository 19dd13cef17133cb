package model

// MonthlyCashFlow is one row of the projection.
// Month is 1-based; slices of MonthlyCashFlow are stored 0-based.
type MonthlyCashFlow struct {
	Month              int
	OilProduction      float64 // bbl
	Revenue            float64 // $
	Capex              float64 // $
	Opex               float64 // $
	NetCashFlow        float64 // revenue - opex - capex
	CumulativeCashFlow float64
}

// DealMetrics summarizes a projection.
// PayoutMonths is 0 when cumulative cash never turns non-negative.
// IRR is 0 unless the engine was asked to solve for it.
type DealMetrics struct {
	TotalCapex   float64
	EUR          float64 // bbl over the projection horizon
	NPV10        float64
	IRR          float64 // annual, fraction
	PayoutMonths int
	WellCount    int
}

// WellGroup is a set of wells sharing one type curve, capital plan and pricing deck.
type WellGroup struct {
	ID        string
	Name      string
	Color     string
	WellIDs   WellSet
	TypeCurve TypeCurveParams
	Capex     CapexAssumptions
	Pricing   PricingAssumptions
}

// GroupResult is a computed projection for one group.
// It is never persisted by the engine.
type GroupResult struct {
	GroupID string
	Flow    []MonthlyCashFlow
	Metrics DealMetrics
}

// Scenario is a named set of overrides evaluated across every group.
// A base case keeps each group's own pricing.
type Scenario struct {
	ID               string
	Name             string
	Color            string
	IsBaseCase       bool
	Pricing          PricingAssumptions
	Schedule         ScheduleParams
	CapexScalar      float64
	ProductionScalar float64
}
