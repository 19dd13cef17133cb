package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDeal = `
name: test
wells:
  - {id: A, lateral_length: 10000}
  - {id: B, lateral_length: 7500}
  - {id: C, lateral_length: 12000}
groups:
  - id: g1
    well_ids: [A, B]
    type_curve: {qi: 800, b: 1.1, di: 60}
    capex:
      rig_count: 1
      drill_duration_days: 18
      stim_duration_days: 12
      items: [{name: well, value: 7000000}]
    pricing: {oil_price: 75, nri: 0.8, loe_per_month: 10000}
  - id: g2
    well_ids: [C]
    type_curve: {qi: 500, b: 0.9, di: 55}
    capex:
      rig_count: 1
      items: [{name: well, value: 9000000}]
    pricing: {oil_price: 75, nri: 0.8, loe_per_month: 10000}
scenarios:
  - {id: base, is_base_case: true}
  - id: cheap
    pricing: {oil_price: 50, nri: 0.8, loe_per_month: 10000}
sensitivity:
  x_variable: OIL_PRICE
  x_steps: [50, 90]
  y_variable: EUR_SCALAR
  y_steps: [0.8, 1.2]
`

// setup points the global flags at a temp deal and returns a command writing to out.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()

	path := filepath.Join(t.TempDir(), "deal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDeal), 0o644))

	oldDeal := dealPath
	dealPath = path
	t.Cleanup(func() { dealPath = oldDeal })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestCalculateCmd(t *testing.T) {
	cmd, out := setup(t)

	dir := t.TempDir()
	outPath = filepath.Join(dir, "run-{run}.csv")
	groupFlows = true
	defer func() { outPath, groupFlows = "", false }()

	require.NoError(t, runCalculate(cmd, nil))
	assert.Contains(t, out.String(), "PORTFOLIO")
	assert.Contains(t, out.String(), "g1")

	files, err := filepath.Glob(filepath.Join(dir, "run-*.csv"))
	require.NoError(t, err)
	assert.Len(t, files, 3, "portfolio plus one ledger per group")
	for _, f := range files {
		assert.NotContains(t, f, "{run}")
	}
}

func TestCalculateCmd_UnknownGroup(t *testing.T) {
	cmd, _ := setup(t)
	onlyGroup = "nope"
	defer func() { onlyGroup = "" }()

	err := runCalculate(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `group "nope" not found`)
}

func TestSensitivityCmd(t *testing.T) {
	cmd, out := setup(t)
	workers = 2

	require.NoError(t, runSensitivity(cmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3, "header plus one row per y step")
	assert.Contains(t, lines[0], "EUR_SCALAR\\OIL_PRICE")
}

func TestSensitivityCmd_BadVariable(t *testing.T) {
	cmd, _ := setup(t)
	xVariable = "NRI"
	defer func() { xVariable = "" }()

	err := runSensitivity(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x axis")
}

func TestRankCmd(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runRank(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1 "))
}

func TestScenariosCmd(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runScenarios(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	// base outranks the $50 case and has a zero delta
	assert.True(t, strings.HasPrefix(lines[1], "base"))
	assert.Contains(t, lines[1], "0.00")
}

func TestLoadDeal_Missing(t *testing.T) {
	logger = zap.NewNop()
	old := dealPath
	dealPath = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { dealPath = old }()

	_, err := loadDeal()
	assert.Error(t, err)
}
