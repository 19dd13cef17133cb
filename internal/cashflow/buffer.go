package cashflow

import (
	"math"
	"sort"

	"wellecon/internal/decline"
	"wellecon/internal/model"
	"wellecon/internal/schedule"
)

// LateStartPad is extra calendar room past the horizon for wells that spud late.
const LateStartPad = 24

// Buffer holds gross monthly streams for one group on a shared calendar.
// Index 0 is calendar month 1. Net and cumulative are derived later.
type Buffer struct {
	Production []float64
	Revenue    []float64
	Capex      []float64
	Opex       []float64
}

func NewBuffer(horizon int) *Buffer {
	if horizon < 0 {
		horizon = 0
	}
	n := horizon + LateStartPad
	return &Buffer{
		Production: make([]float64, n),
		Revenue:    make([]float64, n),
		Capex:      make([]float64, n),
		Opex:       make([]float64, n),
	}
}

func (b *Buffer) Len() int { return len(b.Production) }

// Inputs are the per-group assumptions shared by every well in the group.
type Inputs struct {
	TypeCurve model.TypeCurveParams
	Capex     model.CapexAssumptions
	Pricing   model.PricingAssumptions
	Scalars   model.Scalars
}

// Params control how each well is projected.
type Params struct {
	Horizon         int  // months of production per well
	TerminalDecline bool // modified Arps tail
}

// Aggregate books every scheduled well into a new buffer.
func Aggregate(assignments []schedule.Assignment, in Inputs, p Params) *Buffer {
	buf := NewBuffer(p.Horizon)
	curve := decline.NewCurve(in.TypeCurve, in.Scalars.Production, p.TerminalDecline)
	rates := curve.Series(p.Horizon)
	for _, a := range assignments {
		buf.AddWell(a, rates, in)
	}
	return buf
}

// AddWell books one well's lump-sum capex at its spud month and its
// production stream starting the month after. rates[i] is age month i+1.
// Anything that lands outside the buffer is dropped.
func (b *Buffer) AddWell(a schedule.Assignment, rates []float64, in Inputs) {
	spud := int(math.Floor(a.StartMonth))
	n := b.Len()

	if spud >= 0 && spud < n {
		b.Capex[spud] += in.Capex.WellCost(a.Well.LateralLength) * in.Scalars.Capex
	}

	price := in.Pricing.RealizedOil() * in.Pricing.NRI
	for i, q := range rates {
		age := i + 1
		idx := spud + age
		if idx < 0 {
			continue
		}
		if idx >= n {
			break
		}
		b.Production[idx] += q
		b.Revenue[idx] += q * price
		b.Opex[idx] += WellOpex(in.Pricing, age, q)
	}
}

// WellOpex is one well's operating cost in well-age month `age`.
// Without segments it is the flat monthly LOE. Where segments overlap, the
// one with the earliest StartMonth applies, regardless of input order.
func WellOpex(p model.PricingAssumptions, age int, q float64) float64 {
	if len(p.OpexSegments) == 0 {
		return p.LOEPerMonth
	}
	for _, seg := range sortedSegments(p.OpexSegments) {
		if age >= seg.StartMonth && age <= seg.EndMonth {
			return seg.FixedPerWellPerMonth + q*seg.VariableOilPerBbl
		}
	}
	return 0
}

func sortedSegments(segs []model.OpexSegment) []model.OpexSegment {
	if sort.SliceIsSorted(segs, func(i, j int) bool { return segs[i].StartMonth < segs[j].StartMonth }) {
		return segs
	}
	out := append([]model.OpexSegment(nil), segs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartMonth < out[j].StartMonth })
	return out
}
