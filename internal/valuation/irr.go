package valuation

import (
	"math"

	"wellecon/internal/model"
)

const (
	irrTolerance = 1e-9
	irrMaxIter   = 100

	// monthly rate search bracket
	irrLow  = -0.99
	irrHigh = 10.0
)

// IRR solves NPV(r) = 0 on the monthly net cash flows and returns the
// annualized rate (1+r)^12 - 1. It returns 0 when the flows never change
// sign or no root is found.
func IRR(flow []model.MonthlyCashFlow) float64 {
	if !hasSignChange(flow) {
		return 0
	}
	r, ok := newton(flow, 0.01)
	if !ok {
		r, ok = bisect(flow, irrLow, irrHigh)
	}
	if !ok {
		return 0
	}
	return math.Pow(1+r, 12) - 1
}

func hasSignChange(flow []model.MonthlyCashFlow) bool {
	pos, neg := false, false
	for _, f := range flow {
		if f.NetCashFlow > 0 {
			pos = true
		} else if f.NetCashFlow < 0 {
			neg = true
		}
	}
	return pos && neg
}

func newton(flow []model.MonthlyCashFlow, guess float64) (float64, bool) {
	r := guess
	for i := 0; i < irrMaxIter; i++ {
		v := npvMonthly(flow, r)
		if math.Abs(v) < irrTolerance {
			return r, true
		}
		d := npvDerivative(flow, r)
		if d == 0 || math.IsNaN(d) {
			return 0, false
		}
		next := r - v/d
		if next <= irrLow || next > irrHigh || math.IsNaN(next) {
			return 0, false
		}
		if math.Abs(next-r) < irrTolerance {
			return next, true
		}
		r = next
	}
	return 0, false
}

func bisect(flow []model.MonthlyCashFlow, lo, hi float64) (float64, bool) {
	fLo := npvMonthly(flow, lo)
	fHi := npvMonthly(flow, hi)
	if fLo*fHi > 0 {
		return 0, false
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fMid := npvMonthly(flow, mid)
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return 0, false
}
