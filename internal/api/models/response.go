package models

import "time"

type MonthlyCashFlow struct {
	Month              int     `json:"month"`
	OilProduction      float64 `json:"oil_production"`
	Revenue            float64 `json:"revenue"`
	Capex              float64 `json:"capex"`
	Opex               float64 `json:"opex"`
	NetCashFlow        float64 `json:"net_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
}

type DealMetrics struct {
	TotalCapex   float64 `json:"total_capex"`
	EUR          float64 `json:"eur"`
	NPV10        float64 `json:"npv10"`
	IRR          float64 `json:"irr"`
	PayoutMonths int     `json:"payout_months"`
	WellCount    int     `json:"well_count"`
}

// ScheduleEntry is one well's slot in the drilling program.
type ScheduleEntry struct {
	WellID     string  `json:"well_id"`
	RigIndex   int     `json:"rig_index"`
	StartMonth float64 `json:"start_month"`
}

type CalculateResponse struct {
	ID       string            `json:"id,omitempty"`
	Metrics  DealMetrics       `json:"metrics"`
	Flow     []MonthlyCashFlow `json:"flow"`
	Schedule []ScheduleEntry   `json:"schedule,omitempty"`
}

type GroupResult struct {
	GroupID string            `json:"group_id"`
	Metrics DealMetrics       `json:"metrics"`
	Flow    []MonthlyCashFlow `json:"flow,omitempty"`
}

type Ranking struct {
	GroupID         string  `json:"group_id"`
	Name            string  `json:"name,omitempty"`
	WellCount       int     `json:"well_count"`
	NPV10           float64 `json:"npv10"`
	TotalCapex      float64 `json:"total_capex"`
	EUR             float64 `json:"eur"`
	PayoutMonths    int     `json:"payout_months"`
	Efficiency      float64 `json:"efficiency"`
	DevelopmentCost float64 `json:"development_cost"`
}

type AggregateResponse struct {
	ID       string            `json:"id,omitempty"`
	Metrics  DealMetrics       `json:"metrics"`
	Flow     []MonthlyCashFlow `json:"flow"`
	Groups   []GroupResult     `json:"groups"`
	Rankings []Ranking         `json:"rankings"`
}

type SensitivityCell struct {
	XValue float64 `json:"x_value"`
	YValue float64 `json:"y_value"`
	NPV    float64 `json:"npv"`
}

type SensitivityResponse struct {
	ID        string              `json:"id,omitempty"`
	XVariable string              `json:"x_variable"`
	YVariable string              `json:"y_variable"`
	Matrix    [][]SensitivityCell `json:"matrix"`
}

// RunResponse wraps a cached run for GET /api/v1/economics/:id.
type RunResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Result    any       `json:"result"`
}

type TypeCurveInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	File            string  `json:"file"`
	Qi              float64 `json:"qi"`
	B               float64 `json:"b"`
	Di              float64 `json:"di"`
	TerminalDecline float64 `json:"terminal_decline"`
}

type TypeCurvesResponse struct {
	TypeCurves []TypeCurveInfo `json:"type_curves"`
}

type VariablesResponse struct {
	Variables []string `json:"variables"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
