package models

import (
	"wellecon/internal/analysis"
	"wellecon/internal/economics"
	"wellecon/internal/model"
	"wellecon/internal/schedule"
	"wellecon/internal/sensitivity"
)

func (w WellInput) ToModel() model.Well {
	return model.Well{
		ID:            w.ID,
		Name:          w.Name,
		Lat:           w.Lat,
		Lng:           w.Lng,
		LateralLength: w.LateralLength,
		Status:        model.WellStatus(w.Status),
		Operator:      w.Operator,
		Formation:     w.Formation,
	}
}

func ToModelWells(in []WellInput) []model.Well {
	out := make([]model.Well, 0, len(in))
	for _, w := range in {
		out = append(out, w.ToModel())
	}
	return out
}

func (t TypeCurveInput) ToModel() model.TypeCurveParams {
	return model.TypeCurveParams{Qi: t.Qi, B: t.B, Di: t.Di, TerminalDecline: t.TerminalDecline}
}

func (c CapexInput) ToModel() model.CapexAssumptions {
	items := make([]model.CapexItem, 0, len(c.Items))
	for _, it := range c.Items {
		basis := model.CostBasis(it.Basis)
		if basis == "" {
			basis = model.PerWell
		}
		items = append(items, model.CapexItem{
			ID:         it.ID,
			Name:       it.Name,
			Category:   model.CapexCategory(it.Category),
			Value:      it.Value,
			Basis:      basis,
			OffsetDays: it.OffsetDays,
		})
	}
	return model.CapexAssumptions{
		RigCount:          c.RigCount,
		DrillDurationDays: c.DrillDurationDays,
		StimDurationDays:  c.StimDurationDays,
		RigStartDate:      c.RigStartDate,
		Items:             items,
	}
}

func (p PricingInput) ToModel() model.PricingAssumptions {
	var segs []model.OpexSegment
	for _, s := range p.OpexSegments {
		segs = append(segs, model.OpexSegment{
			Label:                s.Label,
			StartMonth:           s.StartMonth,
			EndMonth:             s.EndMonth,
			FixedPerWellPerMonth: s.FixedPerWellPerMonth,
			VariableOilPerBbl:    s.VariableOilPerBbl,
		})
	}
	return model.PricingAssumptions{
		OilPrice:        p.OilPrice,
		GasPrice:        p.GasPrice,
		OilDifferential: p.OilDifferential,
		GasDifferential: p.GasDifferential,
		NRI:             p.NRI,
		LOEPerMonth:     p.LOEPerMonth,
		OpexSegments:    segs,
	}
}

func (s *ScalarsInput) ToModel() *model.Scalars {
	if s == nil {
		return nil
	}
	out := model.DefaultScalars()
	if s.Capex != nil {
		out.Capex = *s.Capex
	}
	if s.Production != nil {
		out.Production = *s.Production
	}
	return &out
}

func (s *ScheduleInput) ToModel() *model.ScheduleParams {
	if s == nil {
		return nil
	}
	return &model.ScheduleParams{
		AnnualRigs:        append([]float64(nil), s.AnnualRigs...),
		DrillDurationDays: s.DrillDurationDays,
		StimDurationDays:  s.StimDurationDays,
		RigStartDate:      s.RigStartDate,
	}
}

func (g GroupInput) ToModel() model.WellGroup {
	return model.WellGroup{
		ID:        g.ID,
		Name:      g.Name,
		Color:     g.Color,
		WellIDs:   model.NewWellSet(g.WellIDs...),
		TypeCurve: g.TypeCurve.ToModel(),
		Capex:     g.Capex.ToModel(),
		Pricing:   g.Pricing.ToModel(),
	}
}

// ToEngine maps the request flags onto baseline engine options.
func (o EngineOptions) ToEngine() economics.Options {
	opts := economics.DefaultOptions()
	opts.ComputeIRR = o.ComputeIRR
	opts.TerminalDecline = o.TerminalDecline
	return opts
}

func money(x float64) float64 {
	return economics.RoundMoney(x).InexactFloat64()
}

func FromMetrics(m model.DealMetrics) DealMetrics {
	return DealMetrics{
		TotalCapex:   money(m.TotalCapex),
		EUR:          m.EUR,
		NPV10:        money(m.NPV10),
		IRR:          m.IRR,
		PayoutMonths: m.PayoutMonths,
		WellCount:    m.WellCount,
	}
}

func FromFlow(flow []model.MonthlyCashFlow) []MonthlyCashFlow {
	out := make([]MonthlyCashFlow, 0, len(flow))
	for _, f := range flow {
		out = append(out, MonthlyCashFlow{
			Month:              f.Month,
			OilProduction:      f.OilProduction,
			Revenue:            money(f.Revenue),
			Capex:              money(f.Capex),
			Opex:               money(f.Opex),
			NetCashFlow:        money(f.NetCashFlow),
			CumulativeCashFlow: money(f.CumulativeCashFlow),
		})
	}
	return out
}

// ToModelFlow reverses FromFlow, for exporting a cached run.
func ToModelFlow(flow []MonthlyCashFlow) []model.MonthlyCashFlow {
	out := make([]model.MonthlyCashFlow, 0, len(flow))
	for _, f := range flow {
		out = append(out, model.MonthlyCashFlow{
			Month:              f.Month,
			OilProduction:      f.OilProduction,
			Revenue:            f.Revenue,
			Capex:              f.Capex,
			Opex:               f.Opex,
			NetCashFlow:        f.NetCashFlow,
			CumulativeCashFlow: f.CumulativeCashFlow,
		})
	}
	return out
}

func FromSchedule(as []schedule.Assignment) []ScheduleEntry {
	out := make([]ScheduleEntry, 0, len(as))
	for _, a := range as {
		out = append(out, ScheduleEntry{WellID: a.Well.ID, RigIndex: a.RigIndex, StartMonth: a.StartMonth})
	}
	return out
}

func FromRankings(rs []analysis.GroupRanking) []Ranking {
	out := make([]Ranking, 0, len(rs))
	for _, r := range rs {
		out = append(out, Ranking{
			GroupID:         r.GroupID,
			Name:            r.Name,
			WellCount:       r.WellCount,
			NPV10:           money(r.NPV10),
			TotalCapex:      money(r.TotalCapex),
			EUR:             r.EUR,
			PayoutMonths:    r.PayoutMonths,
			Efficiency:      r.Efficiency,
			DevelopmentCost: money(r.DevelopmentCost),
		})
	}
	return out
}

func FromMatrix(m [][]sensitivity.Cell) [][]SensitivityCell {
	out := make([][]SensitivityCell, len(m))
	for i, row := range m {
		out[i] = make([]SensitivityCell, len(row))
		for j, c := range row {
			out[i][j] = SensitivityCell{XValue: c.XValue, YValue: c.YValue, NPV: money(c.NPV)}
		}
	}
	return out
}
