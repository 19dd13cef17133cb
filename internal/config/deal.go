package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wellecon/internal/model"
	"wellecon/internal/sensitivity"
)

// Deal is the on-disk deal shape (YAML).
type Deal struct {
	Name        string             `yaml:"name"`
	Wells       []WellConfig       `yaml:"wells"`
	Groups      []GroupConfig      `yaml:"groups"`
	Scenarios   []ScenarioConfig   `yaml:"scenarios"`
	Engine      EngineConfig       `yaml:"engine"`
	Sensitivity *SensitivityConfig `yaml:"sensitivity"`
}

type WellConfig struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Lat           float64 `yaml:"lat"`
	Lng           float64 `yaml:"lng"`
	LateralLength float64 `yaml:"lateral_length"`
	Status        string  `yaml:"status"`
	Operator      string  `yaml:"operator"`
	Formation     string  `yaml:"formation"`
}

type GroupConfig struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Color   string   `yaml:"color"`
	WellIDs []string `yaml:"well_ids"`

	// Optional: load the type curve from a preset (e.g. examples/typecurves/*.yaml).
	// If both are provided, TypeCurve fields override the preset.
	TypeCurveFile string          `yaml:"type_curve_file"`
	TypeCurve     TypeCurveConfig `yaml:"type_curve"`

	Capex   CapexConfig   `yaml:"capex"`
	Pricing PricingConfig `yaml:"pricing"`
}

type CapexItemConfig struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Category   string  `yaml:"category"`
	Value      float64 `yaml:"value"`
	Basis      string  `yaml:"basis"`
	OffsetDays float64 `yaml:"offset_days"`
}

type CapexConfig struct {
	RigCount          float64           `yaml:"rig_count"`
	DrillDurationDays float64           `yaml:"drill_duration_days"`
	StimDurationDays  float64           `yaml:"stim_duration_days"`
	RigStartDate      string            `yaml:"rig_start_date"`
	Items             []CapexItemConfig `yaml:"items"`
}

type OpexSegmentConfig struct {
	Label                string  `yaml:"label"`
	StartMonth           int     `yaml:"start_month"`
	EndMonth             int     `yaml:"end_month"`
	FixedPerWellPerMonth float64 `yaml:"fixed_per_well_per_month"`
	VariableOilPerBbl    float64 `yaml:"variable_oil_per_bbl"`
}

type PricingConfig struct {
	OilPrice        float64             `yaml:"oil_price"`
	GasPrice        float64             `yaml:"gas_price"`
	OilDifferential float64             `yaml:"oil_differential"`
	GasDifferential float64             `yaml:"gas_differential"`
	NRI             float64             `yaml:"nri"`
	LOEPerMonth     float64             `yaml:"loe_per_month"`
	OpexSegments    []OpexSegmentConfig `yaml:"opex_segments"`
}

type ScheduleConfig struct {
	AnnualRigs        []float64 `yaml:"annual_rigs"`
	DrillDurationDays float64   `yaml:"drill_duration_days"`
	StimDurationDays  float64   `yaml:"stim_duration_days"`
	RigStartDate      string    `yaml:"rig_start_date"`
}

type ScenarioConfig struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	Color            string         `yaml:"color"`
	IsBaseCase       bool           `yaml:"is_base_case"`
	Pricing          PricingConfig  `yaml:"pricing"`
	Schedule         ScheduleConfig `yaml:"schedule"`
	CapexScalar      float64        `yaml:"capex_scalar"`
	ProductionScalar float64        `yaml:"production_scalar"`
}

// EngineConfig toggles the opt-in engine enhancements. Zero values keep the baseline.
type EngineConfig struct {
	HorizonMonths int     `yaml:"horizon_months"`
	DiscountRate  float64 `yaml:"discount_rate"`
	ComputeIRR    bool    `yaml:"compute_irr"`
	Terminal      bool    `yaml:"terminal_decline"`
}

type SensitivityConfig struct {
	XVariable string    `yaml:"x_variable"`
	XSteps    []float64 `yaml:"x_steps"`
	YVariable string    `yaml:"y_variable"`
	YSteps    []float64 `yaml:"y_steps"`
}

func LoadDeal(path string) (*Deal, error) {
	d, err := LoadDealUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDealUnchecked loads and merges presets, but does not validate.
func LoadDealUnchecked(path string) (*Deal, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Deal
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse deal %s: %w", path, err)
	}
	for i := range d.Groups {
		g := &d.Groups[i]
		if g.TypeCurveFile == "" {
			continue
		}
		loaded, err := LoadTypeCurveFile(resolvePath(path, g.TypeCurveFile))
		if err != nil {
			return nil, fmt.Errorf("group %s type_curve_file: %w", g.ID, err)
		}
		g.TypeCurve = MergeTypeCurve(loaded, g.TypeCurve)
	}
	return &d, nil
}

func (d *Deal) Validate() error {
	if d == nil {
		return errors.New("deal is nil")
	}
	if len(d.Groups) == 0 {
		return errors.New("deal must define at least one group")
	}

	wells := d.ModelWells()
	known := make(map[string]bool, len(wells))
	for _, w := range wells {
		if err := w.Validate(); err != nil {
			return err
		}
		if known[w.ID] {
			return fmt.Errorf("duplicate well id %s", w.ID)
		}
		known[w.ID] = true
	}

	owner := make(map[string]string)
	seenGroup := make(map[string]bool, len(d.Groups))
	for _, g := range d.ModelGroups() {
		if seenGroup[g.ID] {
			return fmt.Errorf("duplicate group id %s", g.ID)
		}
		seenGroup[g.ID] = true
		if err := g.Validate(); err != nil {
			return fmt.Errorf("group %s: %w", g.ID, err)
		}
		for _, id := range g.WellIDs.IDs() {
			if !known[id] {
				return fmt.Errorf("group %s: unknown well %s", g.ID, id)
			}
			if prev, ok := owner[id]; ok {
				return fmt.Errorf("well %s is in groups %s and %s", id, prev, g.ID)
			}
			owner[id] = g.ID
		}
	}

	for _, sc := range d.ModelScenarios() {
		if sc.ID == "" {
			return errors.New("scenario id is required")
		}
		if !sc.IsBaseCase {
			if err := sc.Pricing.Validate(); err != nil {
				return fmt.Errorf("scenario %s: %w", sc.ID, err)
			}
		}
		if err := sc.Schedule.Validate(); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.ID, err)
		}
	}

	if s := d.Sensitivity; s != nil {
		if _, err := sensitivity.ParseVariable(s.XVariable); err != nil {
			return fmt.Errorf("sensitivity.x_variable: %w", err)
		}
		if _, err := sensitivity.ParseVariable(s.YVariable); err != nil {
			return fmt.Errorf("sensitivity.y_variable: %w", err)
		}
	}
	return nil
}

func (d *Deal) ModelWells() []model.Well {
	out := make([]model.Well, 0, len(d.Wells))
	for _, w := range d.Wells {
		out = append(out, w.ToModel())
	}
	return out
}

func (d *Deal) ModelGroups() []model.WellGroup {
	out := make([]model.WellGroup, 0, len(d.Groups))
	for _, g := range d.Groups {
		out = append(out, g.ToModel())
	}
	return out
}

func (d *Deal) ModelScenarios() []model.Scenario {
	out := make([]model.Scenario, 0, len(d.Scenarios))
	for _, s := range d.Scenarios {
		out = append(out, s.ToModel())
	}
	return out
}

func (w WellConfig) ToModel() model.Well {
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

func (g GroupConfig) ToModel() model.WellGroup {
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

func (c CapexConfig) ToModel() model.CapexAssumptions {
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

func (p PricingConfig) ToModel() model.PricingAssumptions {
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

func (s ScheduleConfig) ToModel() model.ScheduleParams {
	return model.ScheduleParams{
		AnnualRigs:        append([]float64(nil), s.AnnualRigs...),
		DrillDurationDays: s.DrillDurationDays,
		StimDurationDays:  s.StimDurationDays,
		RigStartDate:      s.RigStartDate,
	}
}

func (s ScenarioConfig) ToModel() model.Scenario {
	return model.Scenario{
		ID:               s.ID,
		Name:             s.Name,
		Color:            s.Color,
		IsBaseCase:       s.IsBaseCase,
		Pricing:          s.Pricing.ToModel(),
		Schedule:         s.Schedule.ToModel(),
		CapexScalar:      s.CapexScalar,
		ProductionScalar: s.ProductionScalar,
	}
}
