package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellecon/internal/api/models"
	"wellecon/internal/config"
	"wellecon/internal/logging"
	"wellecon/internal/model"
)

// TypeCurveHandler serves type-curve presets from a directory of YAML files.
type TypeCurveHandler struct {
	dir string
}

// NewTypeCurveHandler resolves dir to an absolute path; an empty dir means
// examples/typecurves under the working directory.
func NewTypeCurveHandler(dir string) *TypeCurveHandler {
	if dir == "" {
		dir = filepath.Join("examples", "typecurves")
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	logging.L().Debug("type curve presets", zap.String("dir", dir))
	return &TypeCurveHandler{dir: dir}
}

func (h *TypeCurveHandler) Dir() string { return h.dir }

// ListTypeCurves handles GET /api/v1/typecurves
func (h *TypeCurveHandler) ListTypeCurves(c *gin.Context) {
	presets, err := config.ListTypeCurves(h.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.L().Warn("type curve directory not found", zap.String("dir", h.dir))
			c.JSON(http.StatusOK, models.TypeCurvesResponse{TypeCurves: []models.TypeCurveInfo{}})
			return
		}
		logging.L().Error("list type curves", zap.String("dir", h.dir), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "PRESET_ERROR", err.Error(), nil)
		return
	}

	out := make([]models.TypeCurveInfo, 0, len(presets))
	for _, p := range presets {
		out = append(out, models.TypeCurveInfo{
			ID:              p.ID,
			Name:            p.Name,
			File:            p.Path,
			Qi:              p.Qi,
			B:               p.B,
			Di:              p.Di,
			TerminalDecline: p.TerminalDecline,
		})
	}
	c.JSON(http.StatusOK, models.TypeCurvesResponse{TypeCurves: out})
}

// Resolve merges an optional preset with inline overrides.
func (h *TypeCurveHandler) Resolve(id string, inline models.TypeCurveInput) (model.TypeCurveParams, error) {
	if id == "" {
		return inline.ToModel(), nil
	}
	if filepath.Base(id) != id {
		return model.TypeCurveParams{}, fmt.Errorf("invalid type curve id %q", id)
	}
	path := filepath.Join(h.dir, id+".yaml")
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(h.dir, id+".yml")
	}
	preset, err := config.LoadTypeCurveFile(path)
	if err != nil {
		return model.TypeCurveParams{}, fmt.Errorf("type curve %s: %w", id, err)
	}
	merged := config.MergeTypeCurve(preset, config.TypeCurveConfig{
		Qi:              inline.Qi,
		B:               inline.B,
		Di:              inline.Di,
		TerminalDecline: inline.TerminalDecline,
	})
	return merged.ToModel(), nil
}
