package models

// WellInput is one well record supplied by the client.
type WellInput struct {
	ID            string  `json:"id"`
	Name          string  `json:"name,omitempty"`
	Lat           float64 `json:"lat,omitempty"`
	Lng           float64 `json:"lng,omitempty"`
	LateralLength float64 `json:"lateral_length"`
	Status        string  `json:"status,omitempty"`
	Operator      string  `json:"operator,omitempty"`
	Formation     string  `json:"formation,omitempty"`
}

type TypeCurveInput struct {
	Qi              float64 `json:"qi"`
	B               float64 `json:"b"`
	Di              float64 `json:"di"`
	TerminalDecline float64 `json:"terminal_decline,omitempty"`
}

type CapexItemInput struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	Value      float64 `json:"value"`
	Basis      string  `json:"basis"` // "PER_WELL" or "PER_FOOT"
	OffsetDays float64 `json:"offset_days,omitempty"`
}

type CapexInput struct {
	RigCount          float64          `json:"rig_count"`
	DrillDurationDays float64          `json:"drill_duration_days"`
	StimDurationDays  float64          `json:"stim_duration_days"`
	RigStartDate      string           `json:"rig_start_date,omitempty"`
	Items             []CapexItemInput `json:"items"`
}

type OpexSegmentInput struct {
	Label                string  `json:"label,omitempty"`
	StartMonth           int     `json:"start_month"`
	EndMonth             int     `json:"end_month"`
	FixedPerWellPerMonth float64 `json:"fixed_per_well_per_month"`
	VariableOilPerBbl    float64 `json:"variable_oil_per_bbl,omitempty"`
}

type PricingInput struct {
	OilPrice        float64            `json:"oil_price"`
	GasPrice        float64            `json:"gas_price,omitempty"`
	OilDifferential float64            `json:"oil_differential,omitempty"`
	GasDifferential float64            `json:"gas_differential,omitempty"`
	NRI             float64            `json:"nri"`
	LOEPerMonth     float64            `json:"loe_per_month"`
	OpexSegments    []OpexSegmentInput `json:"opex_segments,omitempty"`
}

// ScalarsInput fields are optional; an omitted scalar is 1.
type ScalarsInput struct {
	Capex      *float64 `json:"capex,omitempty"`
	Production *float64 `json:"production,omitempty"`
}

type ScheduleInput struct {
	AnnualRigs        []float64 `json:"annual_rigs"`
	DrillDurationDays float64   `json:"drill_duration_days"`
	StimDurationDays  float64   `json:"stim_duration_days"`
	RigStartDate      string    `json:"rig_start_date,omitempty"`
}

// EngineOptions opt in to the engine enhancements. Omitted means baseline.
type EngineOptions struct {
	ComputeIRR      bool `json:"compute_irr,omitempty"`
	TerminalDecline bool `json:"terminal_decline,omitempty"`
	IncludeFlow     bool `json:"include_flow,omitempty"`
	IncludeSchedule bool `json:"include_schedule,omitempty"`
}

// CalculateRequest evaluates a single group of wells.
type CalculateRequest struct {
	Wells []WellInput `json:"wells"`

	// TypeCurveID names a preset; TypeCurve fields override it when non-zero.
	TypeCurveID string         `json:"type_curve_id,omitempty"`
	TypeCurve   TypeCurveInput `json:"type_curve"`

	Capex    CapexInput     `json:"capex"`
	Pricing  PricingInput   `json:"pricing"`
	Scalars  *ScalarsInput  `json:"scalars,omitempty"`
	Schedule *ScheduleInput `json:"schedule,omitempty"`
	Options  EngineOptions  `json:"options,omitempty"`
}

type GroupInput struct {
	ID          string         `json:"id" binding:"required"`
	Name        string         `json:"name,omitempty"`
	Color       string         `json:"color,omitempty"`
	WellIDs     []string       `json:"well_ids"`
	TypeCurveID string         `json:"type_curve_id,omitempty"`
	TypeCurve   TypeCurveInput `json:"type_curve"`
	Capex       CapexInput     `json:"capex"`
	Pricing     PricingInput   `json:"pricing"`
}

// AggregateRequest evaluates every group and rolls them up into a portfolio.
type AggregateRequest struct {
	Wells   []WellInput   `json:"wells"`
	Groups  []GroupInput  `json:"groups" binding:"required,dive"`
	Options EngineOptions `json:"options,omitempty"`
}

// SensitivityRequest sweeps two variables over the portfolio.
type SensitivityRequest struct {
	Wells     []WellInput   `json:"wells"`
	Groups    []GroupInput  `json:"groups" binding:"required,dive"`
	XVariable string        `json:"x_variable" binding:"required"`
	XSteps    []float64     `json:"x_steps" binding:"required"`
	YVariable string        `json:"y_variable" binding:"required"`
	YSteps    []float64     `json:"y_steps" binding:"required"`
	Options   EngineOptions `json:"options,omitempty"`
}
