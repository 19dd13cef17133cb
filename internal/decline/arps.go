package decline

import (
	"math"

	"wellecon/internal/model"
)

// MonthlyDecline converts a nominal annual decline in percent to an effective monthly rate.
func MonthlyDecline(annualPct float64) float64 {
	return 1 - math.Pow(1-annualPct/100, 1.0/12)
}

// Curve is an Arps rate-time curve expressed in monthly volumes.
type Curve struct {
	qi float64 // bbl/month at t=0
	b  float64
	di float64 // effective monthly

	// switchAt > 0 means the curve turns exponential at dTerm after that age.
	switchAt float64
	dTerm    float64
	qSwitch  float64
}

// NewCurve builds a curve for one well. prodScalar multiplies qi.
// With terminal set and a hyperbolic exponent, the curve switches to
// exponential decline once its instantaneous decline falls to the terminal rate.
func NewCurve(tc model.TypeCurveParams, prodScalar float64, terminal bool) Curve {
	c := Curve{
		qi: tc.Qi * model.DaysPerMonth * prodScalar,
		b:  tc.B,
		di: MonthlyDecline(tc.Di),
	}
	if !terminal || c.b == 0 || tc.TerminalDecline <= 0 {
		return c
	}
	dTerm := MonthlyDecline(tc.TerminalDecline)
	if dTerm <= 0 || dTerm >= c.di {
		return c
	}
	c.dTerm = dTerm
	c.switchAt = (c.di/dTerm - 1) / (c.b * c.di)
	c.qSwitch = c.hyperbolic(c.switchAt)
	return c
}

func (c Curve) hyperbolic(t float64) float64 {
	return c.qi / math.Pow(1+c.b*c.di*t, 1/c.b)
}

// Rate is the volume produced in well-age month t (1 = first producing month).
func (c Curve) Rate(t int) float64 {
	tf := float64(t)
	if c.b == 0 {
		return c.qi * math.Exp(-c.di*tf)
	}
	if c.switchAt > 0 && tf > c.switchAt {
		return c.qSwitch * math.Exp(-c.dTerm*(tf-c.switchAt))
	}
	return c.hyperbolic(tf)
}

// Series returns months 1..n; out[i] is the volume for age month i+1.
func (c Curve) Series(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = c.Rate(i + 1)
	}
	return out
}

// SwitchMonth is the age at which the terminal switch happens, or 0 if it never does.
func (c Curve) SwitchMonth() float64 { return c.switchAt }
