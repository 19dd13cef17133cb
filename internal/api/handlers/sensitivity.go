package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellecon/internal/api/models"
	"wellecon/internal/data"
	"wellecon/internal/economics"
	"wellecon/internal/logging"
	"wellecon/internal/sensitivity"
)

// MaxAxisSteps bounds each sensitivity axis.
const MaxAxisSteps = 50

// SensitivityHandler handles NPV surface requests
type SensitivityHandler struct {
	presets  *TypeCurveHandler
	cache    *data.RunCache
	defaults economics.Options
	workers  int
}

func NewSensitivityHandler(presets *TypeCurveHandler, cache *data.RunCache, defaults economics.Options, workers int) *SensitivityHandler {
	return &SensitivityHandler{presets: presets, cache: cache, defaults: defaults, workers: workers}
}

// Matrix handles POST /api/v1/sensitivity/matrix
func (h *SensitivityHandler) Matrix(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	if len(req.XSteps) > MaxAxisSteps || len(req.YSteps) > MaxAxisSteps {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST",
			fmt.Sprintf("at most %d steps per axis, got %dx%d", MaxAxisSteps, len(req.XSteps), len(req.YSteps)), nil)
		return
	}

	xVar, err := sensitivity.ParseVariable(req.XVariable)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_VARIABLE", err.Error(), map[string]interface{}{"axis": "x"})
		return
	}
	yVar, err := sensitivity.ParseVariable(req.YVariable)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_VARIABLE", err.Error(), map[string]interface{}{"axis": "y"})
		return
	}

	wells, groups, err := buildPortfolio(h.presets, req.Wells, req.Groups)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ASSUMPTIONS", err.Error(), assumptionDetails(err))
		return
	}

	start := time.Now()
	gen := sensitivity.New(engineFor(h.defaults, req.Options), h.workers)
	matrix, err := gen.GenerateContext(c.Request.Context(), sensitivity.Request{
		Groups:    groups,
		Wells:     wells,
		XVariable: xVar,
		XSteps:    req.XSteps,
		YVariable: yVar,
		YSteps:    req.YSteps,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logging.L().Warn("sensitivity cancelled", zap.Error(err))
			respondError(c, http.StatusServiceUnavailable, "CANCELLED", err.Error(), nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "SENSITIVITY_ERROR", err.Error(), nil)
		return
	}

	resp := &models.SensitivityResponse{
		XVariable: string(xVar),
		YVariable: string(yVar),
		Matrix:    models.FromMatrix(matrix),
	}
	run := h.cache.Put(runSensitivity, resp)
	resp.ID = run.ID

	logging.L().Info("sensitivity generated",
		zap.String("run_id", run.ID),
		zap.String("request_key", data.RequestKey(req)),
		zap.String("x", string(xVar)),
		zap.String("y", string(yVar)),
		zap.Int("cells", len(req.XSteps)*len(req.YSteps)),
		zap.Duration("elapsed", time.Since(start)))

	c.JSON(http.StatusOK, resp)
}

// ListVariables handles GET /api/v1/sensitivity/variables
func (h *SensitivityHandler) ListVariables(c *gin.Context) {
	vars := sensitivity.Variables()
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		out = append(out, string(v))
	}
	c.JSON(http.StatusOK, models.VariablesResponse{Variables: out})
}
