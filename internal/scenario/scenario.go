package scenario

import (
	"sort"

	"wellecon/internal/economics"
	"wellecon/internal/model"
)

// Result is one scenario evaluated across every group.
type Result struct {
	Scenario model.Scenario
	Groups   []model.GroupResult
	Flow     []model.MonthlyCashFlow
	Metrics  model.DealMetrics

	// ROI is undiscounted revenue per capital dollar, 0 without capex.
	ROI float64
}

// Delta is a scenario's change against the base case.
type Delta struct {
	NPV10        float64
	TotalCapex   float64
	EUR          float64
	PayoutMonths int
}

type Comparison struct {
	ScenarioID string
	Result     Result
	Delta      Delta
}

// Run evaluates sc over the portfolio. A base case keeps each group's pricing;
// other scenarios replace it. An empty rig plan falls back to each group's
// own rig count and zero scalars mean 1.
func Run(e *economics.Engine, groups []model.WellGroup, wells []model.Well, sc model.Scenario) Result {
	if e == nil {
		e = economics.New()
	}

	scalars := model.Scalars{Capex: orOne(sc.CapexScalar), Production: orOne(sc.ProductionScalar)}
	var sched *model.ScheduleParams
	if len(sc.Schedule.AnnualRigs) > 0 {
		s := sc.Schedule.Clone()
		sched = &s
	}

	results := make([]model.GroupResult, 0, len(groups))
	for _, g := range groups {
		if !sc.IsBaseCase {
			g.Pricing = sc.Pricing
		}
		results = append(results, e.CalculateGroup(g, wells, &scalars, sched))
	}

	flow, metrics := e.Aggregate(results)
	revenue := 0.0
	for _, f := range flow {
		revenue += f.Revenue
	}
	roi := 0.0
	if metrics.TotalCapex > 0 {
		roi = revenue / metrics.TotalCapex
	}

	return Result{
		Scenario: sc,
		Groups:   results,
		Flow:     flow,
		Metrics:  metrics,
		ROI:      roi,
	}
}

// Compare runs every scenario and reports each one's change against the
// first base case (or the first scenario if none is marked). Output is
// sorted by NPV10, highest first.
func Compare(e *economics.Engine, groups []model.WellGroup, wells []model.Well, scenarios []model.Scenario) []Comparison {
	if len(scenarios) == 0 {
		return nil
	}

	results := make([]Result, len(scenarios))
	baseIdx := -1
	for i, sc := range scenarios {
		results[i] = Run(e, groups, wells, sc)
		if baseIdx < 0 && sc.IsBaseCase {
			baseIdx = i
		}
	}
	if baseIdx < 0 {
		baseIdx = 0
	}
	base := results[baseIdx].Metrics

	out := make([]Comparison, len(results))
	for i, r := range results {
		out[i] = Comparison{
			ScenarioID: r.Scenario.ID,
			Result:     r,
			Delta: Delta{
				NPV10:        r.Metrics.NPV10 - base.NPV10,
				TotalCapex:   r.Metrics.TotalCapex - base.TotalCapex,
				EUR:          r.Metrics.EUR - base.EUR,
				PayoutMonths: r.Metrics.PayoutMonths - base.PayoutMonths,
			},
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Metrics.NPV10 > out[j].Result.Metrics.NPV10
	})
	return out
}

func orOne(x float64) float64 {
	if x == 0 {
		return 1
	}
	return x
}
