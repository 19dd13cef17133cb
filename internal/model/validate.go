package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAssumptions is matched by every InvalidAssumptionsError.
var ErrInvalidAssumptions = errors.New("invalid assumptions")

// InvalidAssumptionsError names the offending input.
// The engine itself accepts anything; callers run these checks before evaluating.
type InvalidAssumptionsError struct {
	Field  string
	Reason string
}

func (e *InvalidAssumptionsError) Error() string {
	return fmt.Sprintf("invalid assumptions: %s %s", e.Field, e.Reason)
}

func (e *InvalidAssumptionsError) Unwrap() error { return ErrInvalidAssumptions }

func invalid(field, reason string) error {
	return &InvalidAssumptionsError{Field: field, Reason: reason}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (w Well) Validate() error {
	if w.ID == "" {
		return invalid("well.id", "must not be empty")
	}
	if !finite(w.LateralLength) || w.LateralLength < 0 {
		return invalid("well.lateral_length", fmt.Sprintf("must be >= 0 (well %s)", w.ID))
	}
	return nil
}

func (tc TypeCurveParams) Validate() error {
	if !finite(tc.Qi) || tc.Qi < 0 {
		return invalid("type_curve.qi", "must be >= 0")
	}
	if !finite(tc.B) || tc.B < 0 {
		return invalid("type_curve.b", "must be >= 0")
	}
	if !finite(tc.Di) || tc.Di < 0 || tc.Di > 100 {
		return invalid("type_curve.di", "must be in [0, 100]")
	}
	if !finite(tc.TerminalDecline) || tc.TerminalDecline < 0 || tc.TerminalDecline > 100 {
		return invalid("type_curve.terminal_decline", "must be in [0, 100]")
	}
	return nil
}

func (c CapexAssumptions) Validate() error {
	if !finite(c.RigCount) || c.RigCount < 0 {
		return invalid("capex.rig_count", "must be >= 0")
	}
	if c.DrillDurationDays < 0 || c.StimDurationDays < 0 {
		return invalid("capex.duration_days", "drill and stim durations must be >= 0")
	}
	for _, it := range c.Items {
		switch it.Basis {
		case PerWell, PerFoot:
		default:
			return invalid("capex.items.basis", fmt.Sprintf("unknown basis %q on item %q", it.Basis, it.Name))
		}
		if !finite(it.Value) {
			return invalid("capex.items.value", fmt.Sprintf("item %q is not a finite number", it.Name))
		}
	}
	return nil
}

func (s ScheduleParams) Validate() error {
	for i, r := range s.AnnualRigs {
		if !finite(r) || r < 0 {
			return invalid("schedule.annual_rigs", fmt.Sprintf("year %d must be >= 0", i+1))
		}
	}
	if s.DrillDurationDays < 0 || s.StimDurationDays < 0 {
		return invalid("schedule.duration_days", "drill and stim durations must be >= 0")
	}
	return nil
}

func (p PricingAssumptions) Validate() error {
	if !finite(p.OilPrice) || p.OilPrice < 0 {
		return invalid("pricing.oil_price", "must be >= 0")
	}
	if !finite(p.GasPrice) || p.GasPrice < 0 {
		return invalid("pricing.gas_price", "must be >= 0")
	}
	if !finite(p.NRI) || p.NRI < 0 || p.NRI > 1 {
		return invalid("pricing.nri", "must be in [0, 1]")
	}
	if !finite(p.LOEPerMonth) || p.LOEPerMonth < 0 {
		return invalid("pricing.loe_per_month", "must be >= 0")
	}
	for _, seg := range p.OpexSegments {
		if seg.StartMonth < 1 || seg.EndMonth < seg.StartMonth {
			return invalid("pricing.opex_segments", fmt.Sprintf("segment %q must satisfy 1 <= start <= end", seg.Label))
		}
	}
	return nil
}

func (s Scalars) Validate() error {
	if !finite(s.Capex) || s.Capex < 0 {
		return invalid("scalars.capex", "must be >= 0")
	}
	if !finite(s.Production) || s.Production < 0 {
		return invalid("scalars.production", "must be >= 0")
	}
	return nil
}

// ValidateInputs checks one group evaluation's inputs.
// scalars and schedule may be nil.
func ValidateInputs(wells []Well, tc TypeCurveParams, capex CapexAssumptions, pricing PricingAssumptions, scalars *Scalars, schedule *ScheduleParams) error {
	seen := make(map[string]bool, len(wells))
	for _, w := range wells {
		if err := w.Validate(); err != nil {
			return err
		}
		if seen[w.ID] {
			return invalid("well.id", fmt.Sprintf("duplicate id %s", w.ID))
		}
		seen[w.ID] = true
	}
	if err := tc.Validate(); err != nil {
		return err
	}
	if err := capex.Validate(); err != nil {
		return err
	}
	if err := pricing.Validate(); err != nil {
		return err
	}
	if scalars != nil {
		if err := scalars.Validate(); err != nil {
			return err
		}
	}
	if schedule != nil {
		if err := schedule.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the group's own assumptions; membership is not resolved here.
func (g WellGroup) Validate() error {
	if g.ID == "" {
		return invalid("group.id", "must not be empty")
	}
	if err := g.TypeCurve.Validate(); err != nil {
		return err
	}
	if err := g.Capex.Validate(); err != nil {
		return err
	}
	return g.Pricing.Validate()
}
