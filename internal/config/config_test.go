package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellecon/internal/model"
)

const presetYAML = `
type_curve:
  name: Wolfcamp A
  qi: 850
  b: 1.2
  di: 65
  terminal_decline: 8
`

const dealYAML = `
name: Delaware Package
wells:
  - id: W1
    lateral_length: 10000
    status: DUC
  - id: W2
    lateral_length: 7500
  - id: W3
    lateral_length: 12000
groups:
  - id: g1
    name: Core
    well_ids: [W1, W2]
    type_curve_file: typecurves/wolfcamp_a.yaml
    type_curve:
      qi: 900
    capex:
      rig_count: 2
      drill_duration_days: 18
      stim_duration_days: 12
      items:
        - name: Drilling
          category: DRILLING
          value: 2500000
          basis: PER_WELL
        - name: Completion
          category: COMPLETION
          value: 350
          basis: PER_FOOT
    pricing:
      oil_price: 75
      oil_differential: 3
      nri: 0.8
      loe_per_month: 12000
  - id: g2
    well_ids: [W3]
    type_curve:
      qi: 600
      b: 0.9
      di: 55
    capex:
      rig_count: 1
      items:
        - name: Well
          value: 7000000
    pricing:
      oil_price: 70
      nri: 0.75
      loe_per_month: 9000
      opex_segments:
        - label: early
          start_month: 1
          end_month: 24
          fixed_per_well_per_month: 15000
scenarios:
  - id: base
    is_base_case: true
  - id: ramp
    pricing:
      oil_price: 65
      nri: 0.8
    schedule:
      annual_rigs: [1, 2, 3]
      drill_duration_days: 20
    capex_scalar: 1.1
engine:
  compute_irr: true
sensitivity:
  x_variable: OIL_PRICE
  x_steps: [50, 70, 90]
  y_variable: capex_scalar
  y_steps: [0.8, 1.0, 1.2]
`

func writeDeal(t *testing.T, deal string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "typecurves"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typecurves", "wolfcamp_a.yaml"), []byte(presetYAML), 0o644))
	path := filepath.Join(dir, "deal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(deal), 0o644))
	return path
}

func TestLoadDeal(t *testing.T) {
	d, err := LoadDeal(writeDeal(t, dealYAML))
	require.NoError(t, err)

	assert.Equal(t, "Delaware Package", d.Name)
	require.Len(t, d.Groups, 2)

	// preset merged with inline override
	tc := d.Groups[0].TypeCurve
	assert.Equal(t, "Wolfcamp A", tc.Name)
	assert.Equal(t, 900.0, tc.Qi)
	assert.Equal(t, 1.2, tc.B)
	assert.Equal(t, 65.0, tc.Di)
	assert.Equal(t, 8.0, tc.TerminalDecline)

	groups := d.ModelGroups()
	assert.True(t, groups[0].WellIDs.Has("W2"))
	assert.Equal(t, model.PerFoot, groups[0].Capex.Items[1].Basis)
	assert.Equal(t, model.PerWell, groups[1].Capex.Items[0].Basis, "basis defaults to PER_WELL")
	require.Len(t, groups[1].Pricing.OpexSegments, 1)
	assert.Equal(t, 24, groups[1].Pricing.OpexSegments[0].EndMonth)

	wells := d.ModelWells()
	assert.Equal(t, model.WellStatus("DUC"), wells[0].Status)

	scs := d.ModelScenarios()
	require.Len(t, scs, 2)
	assert.True(t, scs[0].IsBaseCase)
	assert.Equal(t, []float64{1, 2, 3}, scs[1].Schedule.AnnualRigs)
	assert.True(t, d.Engine.ComputeIRR)
	require.NotNil(t, d.Sensitivity)
}

func TestLoadDeal_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		deal    string
		wantErr string
	}{
		{
			name:    "no groups",
			deal:    "wells:\n  - id: W1\n",
			wantErr: "at least one group",
		},
		{
			name:    "unknown well",
			deal:    "groups:\n  - id: g\n    well_ids: [X]\n    pricing: {nri: 1}\n",
			wantErr: "unknown well X",
		},
		{
			name: "well in two groups",
			deal: `
wells: [{id: W1}]
groups:
  - {id: a, well_ids: [W1], pricing: {nri: 1}}
  - {id: b, well_ids: [W1], pricing: {nri: 1}}
`,
			wantErr: "is in groups a and b",
		},
		{
			name:    "bad nri",
			deal:    "groups:\n  - id: g\n    pricing: {nri: 1.5}\n",
			wantErr: "nri",
		},
		{
			name:    "duplicate well",
			deal:    "wells: [{id: W1}, {id: W1}]\ngroups: [{id: g}]\n",
			wantErr: "duplicate well id W1",
		},
		{
			name:    "bad sensitivity variable",
			deal:    "groups: [{id: g}]\nsensitivity: {x_variable: NRI, y_variable: OIL_PRICE}\n",
			wantErr: "sensitivity.x_variable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDeal(writeDeal(t, tt.deal))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDeal_InvalidAssumptionsIsTyped(t *testing.T) {
	_, err := LoadDeal(writeDeal(t, "groups:\n  - id: g\n    pricing: {oil_price: -1}\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidAssumptions))
}

func TestLoadDealUnchecked_MissingPreset(t *testing.T) {
	_, err := LoadDealUnchecked(writeDeal(t, "groups:\n  - id: g\n    type_curve_file: nope.yaml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type_curve_file")
}

func TestMergeTypeCurve(t *testing.T) {
	base := TypeCurveConfig{Name: "base", Qi: 800, B: 1.1, Di: 60, TerminalDecline: 6}
	got := MergeTypeCurve(base, TypeCurveConfig{Di: 70})
	assert.Equal(t, TypeCurveConfig{Name: "base", Qi: 800, B: 1.1, Di: 70, TerminalDecline: 6}, got)
}

func TestListTypeCurves(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wolfcamp_a.yaml"), []byte(presetYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bone_spring.yml"), []byte("type_curve:\n  qi: 500\n  b: 0.9\n  di: 50\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	got, err := ListTypeCurves(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bone_spring", got[0].ID)
	assert.Equal(t, "bone_spring", got[0].Name)
	assert.Equal(t, "Wolfcamp A", got[1].Name)
	assert.Equal(t, 850.0, got[1].ToModel().Qi)

	_, err = ListTypeCurves(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, 8080, s.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, s.Server.AllowedOrigins)
	assert.Equal(t, time.Hour, s.Cache.TTL)
	assert.Equal(t, 4, s.Engine.Workers)
	assert.Equal(t, "info", s.Logging.Level)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	content := `
server:
  port: 9090
  mode: release
cache:
  ttl: 10m
logging:
  level: debug
  format: text
`
	tmpfile, err := os.CreateTemp("", "settings-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())
	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	t.Setenv("WELLECON_ENGINE_WORKERS", "8")

	s, err := LoadSettings(tmpfile.Name())
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, 9090, s.Server.Port)
	assert.Equal(t, "release", s.Server.Mode)
	assert.Equal(t, 10*time.Minute, s.Cache.TTL)
	assert.Equal(t, 8, s.Engine.Workers)
	assert.Equal(t, "text", s.Logging.Format)
}

func TestSettingsValidateErrors(t *testing.T) {
	valid := func() *Settings {
		s, err := LoadSettings("")
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"port", func(s *Settings) { s.Server.Port = 0 }},
		{"mode", func(s *Settings) { s.Server.Mode = "prod" }},
		{"ttl", func(s *Settings) { s.Cache.TTL = 0 }},
		{"workers", func(s *Settings) { s.Engine.Workers = 0 }},
		{"level", func(s *Settings) { s.Logging.Level = "trace" }},
		{"format", func(s *Settings) { s.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
