package economics

import (
	"wellecon/internal/cashflow"
	"wellecon/internal/model"
	"wellecon/internal/portfolio"
	"wellecon/internal/schedule"
	"wellecon/internal/valuation"
)

// Options tune the pipeline. The zero-value enhancements keep baseline results.
type Options struct {
	Horizon            int
	AnnualDiscountRate float64
	ComputeIRR         bool
	TerminalDecline    bool
}

func DefaultOptions() Options {
	return Options{
		Horizon:            valuation.DefaultHorizon,
		AnnualDiscountRate: valuation.DefaultDiscountRate,
	}
}

// Engine runs Scheduler -> Forecaster -> Aggregator -> Valuation.
// It holds only options and is safe for concurrent use.
type Engine struct {
	opts Options
}

func New() *Engine { return &Engine{opts: DefaultOptions()} }

func NewWithOptions(opts Options) *Engine {
	if opts.Horizon <= 0 {
		opts.Horizon = valuation.DefaultHorizon
	}
	if opts.AnnualDiscountRate <= 0 {
		opts.AnnualDiscountRate = valuation.DefaultDiscountRate
	}
	return &Engine{opts: opts}
}

func (e *Engine) Options() Options { return e.opts }

// Input is one group evaluation. Scalars and Schedule are optional.
type Input struct {
	Wells     []model.Well
	TypeCurve model.TypeCurveParams
	Capex     model.CapexAssumptions
	Pricing   model.PricingAssumptions
	Scalars   *model.Scalars
	Schedule  *model.ScheduleParams
}

type Result struct {
	Flow     []model.MonthlyCashFlow
	Metrics  model.DealMetrics
	Schedule []schedule.Assignment
}

// Calculate evaluates one group. An empty well list yields zero metrics
// and an empty flow. Inputs are not validated here.
func (e *Engine) Calculate(in Input) Result {
	if len(in.Wells) == 0 {
		return Result{Flow: []model.MonthlyCashFlow{}}
	}

	scalars := model.DefaultScalars()
	if in.Scalars != nil {
		scalars = *in.Scalars
	}

	assignments := schedule.New(in.Capex, in.Schedule).Assign(in.Wells)

	buf := cashflow.Aggregate(assignments, cashflow.Inputs{
		TypeCurve: in.TypeCurve,
		Capex:     in.Capex,
		Pricing:   in.Pricing,
		Scalars:   scalars,
	}, cashflow.Params{
		Horizon:         e.opts.Horizon,
		TerminalDecline: e.opts.TerminalDecline,
	})

	flow, metrics := valuation.Finalize(buf, valuation.Options{
		Horizon:            e.opts.Horizon,
		AnnualDiscountRate: e.opts.AnnualDiscountRate,
		ComputeIRR:         e.opts.ComputeIRR,
	})
	metrics.WellCount = len(in.Wells)

	return Result{Flow: flow, Metrics: metrics, Schedule: assignments}
}

// CalculateGroup resolves the group's members from wells and evaluates it.
func (e *Engine) CalculateGroup(g model.WellGroup, wells []model.Well, scalars *model.Scalars, sched *model.ScheduleParams) model.GroupResult {
	res := e.Calculate(Input{
		Wells:     g.WellIDs.Select(wells),
		TypeCurve: g.TypeCurve,
		Capex:     g.Capex,
		Pricing:   g.Pricing,
		Scalars:   scalars,
		Schedule:  sched,
	})
	return model.GroupResult{GroupID: g.ID, Flow: res.Flow, Metrics: res.Metrics}
}

// CalculateGroups evaluates each group with its own assumptions.
func (e *Engine) CalculateGroups(groups []model.WellGroup, wells []model.Well) []model.GroupResult {
	out := make([]model.GroupResult, 0, len(groups))
	for _, g := range groups {
		out = append(out, e.CalculateGroup(g, wells, nil, nil))
	}
	return out
}

func (e *Engine) Aggregate(groups []model.GroupResult) ([]model.MonthlyCashFlow, model.DealMetrics) {
	return portfolio.Aggregate(groups, e.opts.Horizon)
}

// Calculate runs the baseline engine on one group.
func Calculate(wells []model.Well, tc model.TypeCurveParams, capex model.CapexAssumptions, pricing model.PricingAssumptions, scalars *model.Scalars, sched *model.ScheduleParams) ([]model.MonthlyCashFlow, model.DealMetrics) {
	res := New().Calculate(Input{
		Wells:     wells,
		TypeCurve: tc,
		Capex:     capex,
		Pricing:   pricing,
		Scalars:   scalars,
		Schedule:  sched,
	})
	return res.Flow, res.Metrics
}

// Aggregate rolls up baseline group results over the default horizon.
func Aggregate(groups []model.GroupResult) ([]model.MonthlyCashFlow, model.DealMetrics) {
	return portfolio.Aggregate(groups, valuation.DefaultHorizon)
}
