package decline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellecon/internal/model"
)

func TestMonthlyDecline(t *testing.T) {
	assert.InDelta(t, 0.08710, MonthlyDecline(65), 1e-5)
	assert.InDelta(t, 1-math.Pow(0.35, 1.0/12), MonthlyDecline(65), 1e-12)
	assert.Equal(t, 0.0, MonthlyDecline(0))
	assert.Equal(t, 1.0, MonthlyDecline(100))
}

func TestHyperbolicFirstMonth(t *testing.T) {
	tc := model.TypeCurveParams{Qi: 850, B: 1.2, Di: 65}
	c := NewCurve(tc, 1, false)

	di := MonthlyDecline(65)
	want := 850 * 30.4 / math.Pow(1+1.2*di, 1/1.2)
	assert.InDelta(t, want, c.Rate(1), 1e-9)
}

func TestExponentialWhenBIsZero(t *testing.T) {
	tc := model.TypeCurveParams{Qi: 100, B: 0, Di: 30}
	c := NewCurve(tc, 1, true)

	di := MonthlyDecline(30)
	for _, m := range []int{1, 12, 120} {
		assert.InDelta(t, 100*30.4*math.Exp(-di*float64(m)), c.Rate(m), 1e-9)
	}
	assert.Zero(t, c.SwitchMonth())
}

func TestProductionScalar(t *testing.T) {
	tc := model.TypeCurveParams{Qi: 500, B: 0.9, Di: 70}
	base := NewCurve(tc, 1, false)
	scaled := NewCurve(tc, 1.5, false)
	for m := 1; m <= 24; m++ {
		assert.InDelta(t, 1.5*base.Rate(m), scaled.Rate(m), 1e-9)
	}
}

func TestSeriesIsMonotoneDecreasing(t *testing.T) {
	c := NewCurve(model.TypeCurveParams{Qi: 850, B: 1.2, Di: 65}, 1, false)
	s := c.Series(120)
	require.Len(t, s, 120)
	for i := 1; i < len(s); i++ {
		assert.Less(t, s[i], s[i-1])
	}
	assert.Nil(t, c.Series(0))
}

func TestTerminalSwitch(t *testing.T) {
	tc := model.TypeCurveParams{Qi: 850, B: 1.2, Di: 65, TerminalDecline: 10}
	plain := NewCurve(tc, 1, false)
	term := NewCurve(tc, 1, true)

	sw := term.SwitchMonth()
	require.Greater(t, sw, 1.0)
	require.Less(t, sw, 120.0)

	// identical before the switch
	before := int(math.Floor(sw))
	assert.InDelta(t, plain.Rate(before), term.Rate(before), 1e-9)

	// steeper decline after it, so less volume late in life
	assert.Less(t, term.Rate(120), plain.Rate(120))

	// exponential tail at the terminal rate
	dTerm := MonthlyDecline(10)
	ratio := term.Rate(100) / term.Rate(99)
	assert.InDelta(t, math.Exp(-dTerm), ratio, 1e-12)
}

func TestTerminalIgnoredWhenNotBelowInitial(t *testing.T) {
	tc := model.TypeCurveParams{Qi: 850, B: 1.2, Di: 10, TerminalDecline: 20}
	assert.Zero(t, NewCurve(tc, 1, true).SwitchMonth())
}
