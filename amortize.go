package homeinvest

import (
	"fmt"
	"math"
)

// Fixed-rate amortization formulas. All functions here are pure over their
// numeric inputs; money enters and leaves as float64 and is wrapped back
// into Money by the callers that emit ledger events.

// MonthlyPayment returns the fixed annuity payment for a loan:
//
//	payment = P·r·(1+r)^n / ((1+r)^n − 1)
//
// It fails with ErrDegenerateAmortization when the monthly rate or the
// payment count is zero or negative, where the formula divides by zero.
func MonthlyPayment(principal, monthlyRate float64, totalPayments int) (float64, error) {
	if monthlyRate <= 0 {
		return 0, fmt.Errorf("%w: monthly rate %g must be positive", ErrDegenerateAmortization, monthlyRate)
	}
	if totalPayments <= 0 {
		return 0, fmt.Errorf("%w: total payments %d must be positive", ErrDegenerateAmortization, totalPayments)
	}
	factor := math.Pow(1+monthlyRate, float64(totalPayments))
	return principal * monthlyRate * factor / (factor - 1), nil
}

// Balance returns the remaining principal immediately before payment n,
// where n counts elapsed monthly periods (n=0 is just before the first
// payment). n may be fractional when derived from a day count:
//
//	B(n) = P·(1+r)^n − payment·((1+r)^n − 1)/r
//
// The result is clamped to zero once n reaches totalPayments, so a sale
// after the loan term reports no remaining mortgage.
func Balance(principal, monthlyRate, payment, n float64, totalPayments int) float64 {
	if n >= float64(totalPayments) {
		return 0
	}
	balance := balanceAt(principal, monthlyRate, payment, n)
	if balance < 0 {
		return 0
	}
	return balance
}

// balanceAt evaluates the closed-form balance with no clamping.
func balanceAt(principal, monthlyRate, payment, n float64) float64 {
	factor := math.Pow(1+monthlyRate, n)
	return principal*factor - payment*(factor-1)/monthlyRate
}

// PaymentSplit returns the principal and interest portions of payment n
// (0-indexed). The interest is the monthly rate applied to the balance
// just before the payment; the principal is the remainder of the fixed
// payment. The split is consistent with amortizing forward payment by
// payment from the same balance formula.
func PaymentSplit(n int, principal, monthlyRate, payment float64) (principalPortion, interestPortion float64) {
	balance := balanceAt(principal, monthlyRate, payment, float64(n))
	interestPortion = balance * monthlyRate
	principalPortion = payment - interestPortion
	return principalPortion, interestPortion
}
