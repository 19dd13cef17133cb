package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"wellecon/internal/model"
)

type TypeCurveConfig struct {
	Name            string  `yaml:"name"`
	Qi              float64 `yaml:"qi"`
	B               float64 `yaml:"b"`
	Di              float64 `yaml:"di"`
	TerminalDecline float64 `yaml:"terminal_decline"`
}

func (t TypeCurveConfig) ToModel() model.TypeCurveParams {
	return model.TypeCurveParams{
		Qi:              t.Qi,
		B:               t.B,
		Di:              t.Di,
		TerminalDecline: t.TerminalDecline,
	}
}

// NamedTypeCurve is a preset found on disk. ID is the file name without extension.
type NamedTypeCurve struct {
	ID   string
	Path string
	TypeCurveConfig
}

type typeCurveFileWrapper struct {
	TypeCurve TypeCurveConfig `yaml:"type_curve"`
}

func LoadTypeCurveFile(path string) (TypeCurveConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TypeCurveConfig{}, err
	}
	var w typeCurveFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TypeCurveConfig{}, fmt.Errorf("parse type curve %s: %w", path, err)
	}
	return w.TypeCurve, nil
}

// ListTypeCurves loads every *.yaml / *.yml preset in dir, sorted by ID.
func ListTypeCurves(dir string) ([]NamedTypeCurve, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]NamedTypeCurve, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		tc, err := LoadTypeCurveFile(path)
		if err != nil {
			return nil, err
		}
		id := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if tc.Name == "" {
			tc.Name = id
		}
		out = append(out, NamedTypeCurve{ID: id, Path: path, TypeCurveConfig: tc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MergeTypeCurve overlays non-zero fields from override onto base.
// Used when a group names a preset file and then tweaks it inline.
func MergeTypeCurve(base, override TypeCurveConfig) TypeCurveConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Qi != 0 {
		out.Qi = override.Qi
	}
	// b = 0 is a legitimate exponential curve, but inline zero means "not set" here.
	if override.B != 0 {
		out.B = override.B
	}
	if override.Di != 0 {
		out.Di = override.Di
	}
	if override.TerminalDecline != 0 {
		out.TerminalDecline = override.TerminalDecline
	}
	return out
}

// resolvePath prefers paths relative to the referencing file's directory,
// falling back to the path as given (relative to cwd).
func resolvePath(from, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(filepath.Dir(from), p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}
