package sensitivity

import (
	"fmt"
	"strings"

	"wellecon/internal/model"
)

// Variable is a parameter that can be swept along one axis.
type Variable string

const (
	OilPrice    Variable = "OIL_PRICE"    // absolute $/bbl
	CapexScalar Variable = "CAPEX_SCALAR" // multiplier on well capex
	EURScalar   Variable = "EUR_SCALAR"   // multiplier on qi
	RigCount    Variable = "RIG_COUNT"    // flat rigs for every schedule year
)

// ScheduleYears is how many years a rig-count override fills.
const ScheduleYears = 10

var variables = []Variable{OilPrice, CapexScalar, EURScalar, RigCount}

func Variables() []Variable {
	return append([]Variable(nil), variables...)
}

func ParseVariable(s string) (Variable, error) {
	v := Variable(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range variables {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown sensitivity variable %q", s)
}

func (v Variable) Valid() bool {
	_, err := ParseVariable(string(v))
	return err == nil
}

// params is one group's mutable copy of the swept inputs.
type params struct {
	scalars  model.Scalars
	pricing  model.PricingAssumptions
	schedule model.ScheduleParams
}

// baseline is the group's unperturbed state: unit scalars, its own pricing,
// and a flat schedule at its rig count (1 if unset).
func baseline(g model.WellGroup) params {
	rigs := g.Capex.RigCount
	if rigs == 0 {
		rigs = 1
	}
	return params{
		scalars: model.DefaultScalars(),
		pricing: g.Pricing,
		schedule: model.ScheduleParams{
			AnnualRigs:        fill(rigs),
			DrillDurationDays: g.Capex.DrillDurationDays,
			StimDurationDays:  g.Capex.StimDurationDays,
			RigStartDate:      g.Capex.RigStartDate,
		},
	}
}

// apply returns a copy of p with v set to value.
func (p params) apply(v Variable, value float64) params {
	out := p
	out.schedule = p.schedule.Clone()
	switch v {
	case OilPrice:
		out.pricing.OilPrice = value
	case CapexScalar:
		out.scalars.Capex = value
	case EURScalar:
		out.scalars.Production = value
	case RigCount:
		out.schedule.AnnualRigs = fill(value)
	}
	return out
}

func fill(rigs float64) []float64 {
	out := make([]float64, ScheduleYears)
	for i := range out {
		out[i] = rigs
	}
	return out
}
