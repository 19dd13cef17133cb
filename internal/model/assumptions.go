package model

// DaysPerMonth converts daily rates and rig days to months.
const DaysPerMonth = 30.4

// TypeCurveParams describes expected well performance with an Arps decline.
// Units:
// - Qi: bbl/day at first production
// - B: hyperbolic exponent (0 = exponential)
// - Di: nominal annual initial decline, percent (65 = 65%)
// - TerminalDecline: nominal annual terminal decline, percent
type TypeCurveParams struct {
	Qi              float64
	B               float64
	Di              float64
	TerminalDecline float64
}

// CapexCategory groups cost items for reporting only.
type CapexCategory string

const (
	CapexDrilling   CapexCategory = "DRILLING"
	CapexCompletion CapexCategory = "COMPLETION"
	CapexFacilities CapexCategory = "FACILITIES"
	CapexEquipment  CapexCategory = "EQUIPMENT"
	CapexOther      CapexCategory = "OTHER"
)

// CostBasis decides how a CapexItem scales with the well.
type CostBasis string

const (
	PerWell CostBasis = "PER_WELL"
	PerFoot CostBasis = "PER_FOOT"
)

// CapexItem is one line of the per-well AFE.
// OffsetDays is carried for callers; all items are booked at spud as one lump sum.
type CapexItem struct {
	ID         string
	Name       string
	Category   CapexCategory
	Value      float64 // $ per well, or $ per lateral foot
	Basis      CostBasis
	OffsetDays float64
}

// Cost returns the item's dollars for a well with the given lateral length.
func (i CapexItem) Cost(lateralLength float64) float64 {
	if i.Basis == PerFoot {
		return i.Value * lateralLength
	}
	return i.Value
}

// CapexAssumptions is a group's capital plan and default drilling pace.
type CapexAssumptions struct {
	RigCount          float64
	DrillDurationDays float64
	StimDurationDays  float64
	RigStartDate      string // YYYY-MM-DD
	Items             []CapexItem
}

// WellCost sums every item for one well, before scalars.
func (c CapexAssumptions) WellCost(lateralLength float64) float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Cost(lateralLength)
	}
	return total
}

// ScheduleParams overrides the drilling pace with a per-year rig ramp.
// AnnualRigs[0] is year 1.
type ScheduleParams struct {
	AnnualRigs        []float64
	DrillDurationDays float64
	StimDurationDays  float64
	RigStartDate      string
}

// Clone returns a copy that does not share AnnualRigs.
func (s ScheduleParams) Clone() ScheduleParams {
	out := s
	out.AnnualRigs = append([]float64(nil), s.AnnualRigs...)
	return out
}

// OpexSegment is an optional well-age cost band.
// StartMonth/EndMonth are inclusive well-age months (1 = first producing month).
type OpexSegment struct {
	Label                string
	StartMonth           int
	EndMonth             int
	FixedPerWellPerMonth float64 // $/well/month
	VariableOilPerBbl    float64 // $/bbl
}

// PricingAssumptions carries commodity prices, interest and lease costs.
// Gas fields are carried for callers; revenue is oil-only.
// Units:
// - OilPrice, OilDifferential: $/bbl
// - GasPrice, GasDifferential: $/mcf
// - NRI: fraction 0..1
// - LOEPerMonth: $/well/month
type PricingAssumptions struct {
	OilPrice        float64
	GasPrice        float64
	OilDifferential float64
	GasDifferential float64
	NRI             float64
	LOEPerMonth     float64

	// OpexSegments replaces the flat LOEPerMonth when non-empty.
	OpexSegments []OpexSegment
}

// RealizedOil is the wellhead oil price net of differential.
func (p PricingAssumptions) RealizedOil() float64 {
	return p.OilPrice - p.OilDifferential
}

// Scalars multiply capital and production. 1.0 is a no-op.
type Scalars struct {
	Capex      float64
	Production float64
}

func DefaultScalars() Scalars {
	return Scalars{Capex: 1, Production: 1}
}
