package homeinvest

import (
	"fmt"
	"math"
)

const (
	irrMaxIterations = 100
	irrTolerance     = 1e-9
)

// internalRateOfReturn solves for the periodic rate r such that
//
//	Σ amounts[i] / (1+r)^i = 0
//
// treating each cash flow as one discrete period in row order, regardless
// of the actual date gaps between them. It runs Newton-Raphson from a
// conventional 10% guess and falls back to bisection when Newton diverges.
//
// A sequence whose amounts are all of one sign has no root; that and
// non-convergence return ErrIRRNonConvergent, which callers downgrade to
// an undefined metric rather than a fatal error.
func internalRateOfReturn(amounts []float64) (float64, error) {
	var positive, negative bool
	for _, a := range amounts {
		if a > 0 {
			positive = true
		}
		if a < 0 {
			negative = true
		}
	}
	if !positive || !negative {
		return 0, fmt.Errorf("%w: cash flows never change sign", ErrIRRNonConvergent)
	}

	if r, ok := irrNewton(amounts); ok {
		return r, nil
	}
	if r, ok := irrBisect(amounts); ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: no root found after %d iterations", ErrIRRNonConvergent, irrMaxIterations)
}

// npv evaluates the net present value and its derivative with respect to
// the rate at r.
func npv(amounts []float64, r float64) (value, derivative float64) {
	for i, a := range amounts {
		f := math.Pow(1+r, float64(i))
		value += a / f
		derivative -= float64(i) * a / (f * (1 + r))
	}
	return value, derivative
}

func irrNewton(amounts []float64) (float64, bool) {
	r := 0.1
	for range irrMaxIterations {
		value, derivative := npv(amounts, r)
		if math.Abs(derivative) < irrTolerance {
			return 0, false
		}
		next := r - value/derivative
		// Rates at or below -100% are meaningless; pull the guess back.
		if next <= -1 {
			next = (r - 1) / 2
		}
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if math.Abs(next-r) < irrTolerance {
			return next, true
		}
		r = next
	}
	return 0, false
}

// irrBisect brackets a sign change of the NPV on (-1, +10] and bisects it.
func irrBisect(amounts []float64) (float64, bool) {
	lo, hi := -0.999999, 10.0
	flo, _ := npv(amounts, lo)
	fhi, _ := npv(amounts, hi)
	if flo*fhi > 0 {
		return 0, false
	}
	for range irrMaxIterations {
		mid := (lo + hi) / 2
		fmid, _ := npv(amounts, mid)
		if math.Abs(fmid) < irrTolerance || hi-lo < irrTolerance {
			return mid, true
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return (lo + hi) / 2, true
}
