package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellecon/internal/api/models"
	"wellecon/internal/config"
	"wellecon/internal/data"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const wolfcampPreset = `
type_curve:
  name: Wolfcamp A
  qi: 850
  b: 1.2
  di: 65
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newRouterWithCache(t, data.NewRunCache(time.Hour))
}

func newRouterWithCache(t *testing.T, cache *data.RunCache) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wolfcamp_a.yaml"), []byte(wolfcampPreset), 0o644))

	s, err := config.LoadSettings("")
	require.NoError(t, err)
	s.Server.Mode = "test"
	s.Server.PresetDir = dir

	return NewRouter(s, cache)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func calculateRequest() models.CalculateRequest {
	return models.CalculateRequest{
		Wells: []models.WellInput{
			{ID: "W2", LateralLength: 7500},
			{ID: "W1", LateralLength: 10000},
		},
		TypeCurve: models.TypeCurveInput{Qi: 800, B: 1.1, Di: 60},
		Capex: models.CapexInput{
			RigCount:          1,
			DrillDurationDays: 18,
			StimDurationDays:  12,
			Items:             []models.CapexItemInput{{Name: "Well", Value: 8000000}},
		},
		Pricing: models.PricingInput{OilPrice: 75, NRI: 0.8, LOEPerMonth: 10000},
		Options: models.EngineOptions{IncludeSchedule: true},
	}
}

func aggregateRequest() models.AggregateRequest {
	pricing := models.PricingInput{OilPrice: 75, NRI: 0.8, LOEPerMonth: 10000}
	capex := models.CapexInput{
		RigCount:          1,
		DrillDurationDays: 18,
		StimDurationDays:  12,
		Items:             []models.CapexItemInput{{Name: "Well", Value: 7000000, Basis: "PER_WELL"}},
	}
	return models.AggregateRequest{
		Wells: []models.WellInput{
			{ID: "W1", LateralLength: 10000},
			{ID: "W2", LateralLength: 7500},
			{ID: "W3", LateralLength: 12000},
		},
		Groups: []models.GroupInput{
			{ID: "core", Name: "Core", WellIDs: []string{"W1", "W2"}, TypeCurveID: "wolfcamp_a", Capex: capex, Pricing: pricing},
			{ID: "step", WellIDs: []string{"W3"}, TypeCurve: models.TypeCurveInput{Qi: 500, B: 0.9, Di: 55}, Capex: capex, Pricing: pricing},
		},
	}
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestCalculate(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/economics/calculate", calculateRequest())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.CalculateResponse](t, w)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, resp.Flow, 120)
	assert.Equal(t, 2, resp.Metrics.WellCount)
	assert.InDelta(t, 16000000, resp.Metrics.TotalCapex, 0.01)
	assert.Greater(t, resp.Metrics.EUR, 0.0)

	require.Len(t, resp.Schedule, 2)
	assert.Equal(t, "W1", resp.Schedule[0].WellID, "longest lateral first")
	assert.Equal(t, 0.0, resp.Schedule[0].StartMonth)
	assert.Greater(t, resp.Schedule[1].StartMonth, 0.0)
}

func TestCalculate_TypeCurvePreset(t *testing.T) {
	r := newTestRouter(t)

	req := calculateRequest()
	req.TypeCurveID = "wolfcamp_a"
	req.TypeCurve = models.TypeCurveInput{}
	w := do(t, r, http.MethodPost, "/api/v1/economics/calculate", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	req.TypeCurveID = "../etc/passwd"
	w = do(t, r, http.MethodPost, "/api/v1/economics/calculate", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TYPE_CURVE")
}

func TestCalculate_InvalidAssumptions(t *testing.T) {
	req := calculateRequest()
	req.Pricing.NRI = 1.5

	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/economics/calculate", req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "INVALID_ASSUMPTIONS", resp.Error.Code)
	assert.Equal(t, "pricing.nri", resp.Error.Details["field"])
}

func TestCalculate_MalformedJSON(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/economics/calculate", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestRunAndLedger(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/v1/economics/calculate", calculateRequest())
	require.Equal(t, http.StatusOK, w.Code)
	id := decode[models.CalculateResponse](t, w).ID

	w = do(t, r, http.MethodGet, "/api/v1/economics/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	run := decode[models.RunResponse](t, w)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "calculate", run.Kind)

	w = do(t, r, http.MethodGet, "/api/v1/economics/"+id+"/ledger", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "month,"))
	assert.Len(t, lines, 121)

	w = do(t, r, http.MethodGet, "/api/v1/economics/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RUN_NOT_FOUND")
}

func TestAggregate(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/economics/aggregate", aggregateRequest())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.AggregateResponse](t, w)
	assert.Len(t, resp.Flow, 120)
	assert.Equal(t, 3, resp.Metrics.WellCount)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "core", resp.Groups[0].GroupID)
	assert.Nil(t, resp.Groups[0].Flow, "group flows only on request")

	require.Len(t, resp.Rankings, 2)
	assert.GreaterOrEqual(t, resp.Rankings[0].NPV10, resp.Rankings[1].NPV10)

	var sum float64
	for _, g := range resp.Groups {
		sum += g.Metrics.TotalCapex
	}
	assert.InDelta(t, sum, resp.Metrics.TotalCapex, 0.05)
}

func TestAggregate_Errors(t *testing.T) {
	r := newTestRouter(t)

	req := aggregateRequest()
	req.Groups[1].WellIDs = []string{"W1"}
	w := do(t, r, http.MethodPost, "/api/v1/economics/aggregate", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "is in groups core and step")

	req = aggregateRequest()
	req.Groups[0].WellIDs = []string{"W9"}
	w = do(t, r, http.MethodPost, "/api/v1/economics/aggregate", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown well W9")

	w = do(t, r, http.MethodPost, "/api/v1/economics/aggregate", `{"wells": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestSensitivityMatrix(t *testing.T) {
	r := newTestRouter(t)
	agg := aggregateRequest()
	req := models.SensitivityRequest{
		Wells:     agg.Wells,
		Groups:    agg.Groups,
		XVariable: "oil_price",
		XSteps:    []float64{50, 90},
		YVariable: "CAPEX_SCALAR",
		YSteps:    []float64{1},
	}
	w := do(t, r, http.MethodPost, "/api/v1/sensitivity/matrix", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.SensitivityResponse](t, w)
	assert.Equal(t, "OIL_PRICE", resp.XVariable)
	require.Len(t, resp.Matrix, 1)
	require.Len(t, resp.Matrix[0], 2)
	assert.Equal(t, 50.0, resp.Matrix[0][0].XValue)
	assert.Greater(t, resp.Matrix[0][1].NPV, resp.Matrix[0][0].NPV)

	// sensitivity runs are cached but carry no ledger
	w = do(t, r, http.MethodGet, "/api/v1/economics/"+resp.ID+"/ledger", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "NO_LEDGER")

	req.XVariable = "NRI"
	w = do(t, r, http.MethodPost, "/api/v1/sensitivity/matrix", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_VARIABLE")
}

func TestListVariables(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/v1/sensitivity/variables", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.VariablesResponse](t, w)
	assert.ElementsMatch(t, []string{"OIL_PRICE", "CAPEX_SCALAR", "EUR_SCALAR", "RIG_COUNT"}, resp.Variables)
}

func TestListTypeCurves(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/v1/typecurves", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.TypeCurvesResponse](t, w)
	require.Len(t, resp.TypeCurves, 1)
	assert.Equal(t, "wolfcamp_a", resp.TypeCurves[0].ID)
	assert.Equal(t, "Wolfcamp A", resp.TypeCurves[0].Name)
	assert.Equal(t, 850.0, resp.TypeCurves[0].Qi)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/economics/calculate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNoRoute(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalculate_PartialScalarsDefaultToOne(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/economics/calculate", calculateRequest())
	require.Equal(t, http.StatusOK, w.Code)
	base := decode[models.CalculateResponse](t, w).Metrics

	capex := 1.1
	req := calculateRequest()
	req.Scalars = &models.ScalarsInput{Capex: &capex}
	w = do(t, r, http.MethodPost, "/api/v1/economics/calculate", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[models.CalculateResponse](t, w).Metrics

	assert.InDelta(t, base.EUR, got.EUR, 1e-6, "omitted production scalar is 1")
	assert.InDelta(t, base.TotalCapex*1.1, got.TotalCapex, 0.05)

	w = do(t, r, http.MethodPost, "/api/v1/economics/calculate",
		strings.Replace(mustJSON(t, calculateRequest()), `"pricing"`, `"scalars":{},"pricing"`, 1))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.InDelta(t, base.NPV10, decode[models.CalculateResponse](t, w).Metrics.NPV10, 0.05)
}

func TestCalculate_NoCacheOmitsRunID(t *testing.T) {
	r := newRouterWithCache(t, nil)

	w := do(t, r, http.MethodPost, "/api/v1/economics/calculate", calculateRequest())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.CalculateResponse](t, w).ID)
	assert.NotContains(t, w.Body.String(), `"id"`)
}

func TestSensitivityMatrix_TooManySteps(t *testing.T) {
	agg := aggregateRequest()
	steps := make([]float64, 51)
	for i := range steps {
		steps[i] = float64(40 + i)
	}
	req := models.SensitivityRequest{
		Wells:     agg.Wells,
		Groups:    agg.Groups,
		XVariable: "OIL_PRICE",
		XSteps:    steps,
		YVariable: "CAPEX_SCALAR",
		YSteps:    []float64{1},
	}
	w := do(t, newTestRouter(t), http.MethodPost, "/api/v1/sensitivity/matrix", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	assert.Contains(t, w.Body.String(), "at most 50 steps")
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
