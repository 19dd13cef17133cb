package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellecon/internal/analysis"
	"wellecon/internal/api/models"
	"wellecon/internal/data"
	"wellecon/internal/economics"
	"wellecon/internal/logging"
	"wellecon/internal/model"
)

const (
	runCalculate   = "calculate"
	runAggregate   = "aggregate"
	runSensitivity = "sensitivity"
)

// EconomicsHandler handles single-group and portfolio evaluations
type EconomicsHandler struct {
	presets  *TypeCurveHandler
	cache    *data.RunCache
	defaults economics.Options
}

// NewEconomicsHandler creates a new economics handler. cache may be nil.
func NewEconomicsHandler(presets *TypeCurveHandler, cache *data.RunCache, defaults economics.Options) *EconomicsHandler {
	return &EconomicsHandler{presets: presets, cache: cache, defaults: defaults}
}

// engineFor applies request flags on top of the server defaults.
func engineFor(defaults economics.Options, o models.EngineOptions) *economics.Engine {
	opts := o.ToEngine()
	opts.ComputeIRR = opts.ComputeIRR || defaults.ComputeIRR
	opts.TerminalDecline = opts.TerminalDecline || defaults.TerminalDecline
	if defaults.Horizon > 0 {
		opts.Horizon = defaults.Horizon
	}
	if defaults.AnnualDiscountRate > 0 {
		opts.AnnualDiscountRate = defaults.AnnualDiscountRate
	}
	return economics.NewWithOptions(opts)
}

// Calculate handles POST /api/v1/economics/calculate
func (h *EconomicsHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	tc, err := h.presets.Resolve(req.TypeCurveID, req.TypeCurve)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_TYPE_CURVE", err.Error(), nil)
		return
	}

	in := economics.Input{
		Wells:     models.ToModelWells(req.Wells),
		TypeCurve: tc,
		Capex:     req.Capex.ToModel(),
		Pricing:   req.Pricing.ToModel(),
		Scalars:   req.Scalars.ToModel(),
		Schedule:  req.Schedule.ToModel(),
	}
	if err := model.ValidateInputs(in.Wells, in.TypeCurve, in.Capex, in.Pricing, in.Scalars, in.Schedule); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ASSUMPTIONS", err.Error(), assumptionDetails(err))
		return
	}

	start := time.Now()
	res := engineFor(h.defaults, req.Options).Calculate(in)

	resp := &models.CalculateResponse{
		Metrics: models.FromMetrics(res.Metrics),
		Flow:    models.FromFlow(res.Flow),
	}
	if req.Options.IncludeSchedule {
		resp.Schedule = models.FromSchedule(res.Schedule)
	}
	run := h.cache.Put(runCalculate, resp)
	resp.ID = run.ID

	logging.L().Info("economics calculated",
		zap.String("run_id", run.ID),
		zap.String("request_key", data.RequestKey(req)),
		zap.Int("wells", res.Metrics.WellCount),
		zap.Float64("npv10", res.Metrics.NPV10),
		zap.Int("payout_months", res.Metrics.PayoutMonths),
		zap.Duration("elapsed", time.Since(start)))

	c.JSON(http.StatusOK, resp)
}

// Aggregate handles POST /api/v1/economics/aggregate
func (h *EconomicsHandler) Aggregate(c *gin.Context) {
	var req models.AggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	wells, groups, err := buildPortfolio(h.presets, req.Wells, req.Groups)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ASSUMPTIONS", err.Error(), assumptionDetails(err))
		return
	}

	start := time.Now()
	e := engineFor(h.defaults, req.Options)
	results := e.CalculateGroups(groups, wells)
	flow, metrics := e.Aggregate(results)

	resp := &models.AggregateResponse{
		Metrics:  models.FromMetrics(metrics),
		Flow:     models.FromFlow(flow),
		Groups:   make([]models.GroupResult, 0, len(results)),
		Rankings: models.FromRankings(analysis.RankGroups(groups, results)),
	}
	for _, r := range results {
		gr := models.GroupResult{GroupID: r.GroupID, Metrics: models.FromMetrics(r.Metrics)}
		if req.Options.IncludeFlow {
			gr.Flow = models.FromFlow(r.Flow)
		}
		resp.Groups = append(resp.Groups, gr)
	}
	run := h.cache.Put(runAggregate, resp)
	resp.ID = run.ID

	logging.L().Info("portfolio aggregated",
		zap.String("run_id", run.ID),
		zap.String("request_key", data.RequestKey(req)),
		zap.Int("groups", len(groups)),
		zap.Int("wells", metrics.WellCount),
		zap.Float64("npv10", metrics.NPV10),
		zap.Duration("elapsed", time.Since(start)))

	c.JSON(http.StatusOK, resp)
}

// GetRun handles GET /api/v1/economics/:id
func (h *EconomicsHandler) GetRun(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RunResponse{
		ID:        run.ID,
		Kind:      run.Kind,
		CreatedAt: run.CreatedAt,
		Result:    run.Payload,
	})
}

// GetLedger handles GET /api/v1/economics/:id/ledger and returns the monthly flow as CSV.
func (h *EconomicsHandler) GetLedger(c *gin.Context) {
	run, ok := h.lookup(c)
	if !ok {
		return
	}

	var flow []models.MonthlyCashFlow
	switch p := run.Payload.(type) {
	case *models.CalculateResponse:
		flow = p.Flow
	case *models.AggregateResponse:
		flow = p.Flow
	default:
		respondError(c, http.StatusBadRequest, "NO_LEDGER", fmt.Sprintf("run kind %q has no monthly ledger", run.Kind), nil)
		return
	}

	var buf bytes.Buffer
	if err := economics.WriteFlowCSVTo(&buf, models.ToModelFlow(flow)); err != nil {
		respondError(c, http.StatusInternalServerError, "LEDGER_ERROR", err.Error(), nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", run.ID+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *EconomicsHandler) lookup(c *gin.Context) (*data.Run, bool) {
	id := c.Param("id")
	run, ok := h.cache.Get(id)
	if !ok {
		respondError(c, http.StatusNotFound, "RUN_NOT_FOUND", fmt.Sprintf("run %s not found or expired", id), nil)
		return nil, false
	}
	return run, true
}
