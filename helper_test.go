package homeinvest

import (
	"math"
	"testing"
)

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// approx fails the test when got is not within tol of want.
func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("%s = %g, want %g (±%g)", name, got, want, tol)
	}
}

// scenarioCostSet builds the reference scenario: $300,000 principal at 4%
// over 30 years from 2020-01-01, a $60,000 down payment the same day, and
// a $450,000 sale on 2025-01-01 with 6% closing costs.
func scenarioCostSet(t *testing.T) *CostSet {
	t.Helper()
	set := NewCostSet("USD")
	set.AddInitialCost("Down Payment", USD(60000), MustParse("2020-01-01"))
	m, err := NewMortgage(USD(300000), 4.0, 30, MustParse("2020-01-01"))
	if err != nil {
		t.Fatalf("NewMortgage: %v", err)
	}
	if err := set.SetMortgage(m); err != nil {
		t.Fatalf("SetMortgage: %v", err)
	}
	if err := set.SetSale(SaleInfo{Price: USD(450000), Date: MustParse("2025-01-01"), ClosingCostsPercent: 6.0}); err != nil {
		t.Fatalf("SetSale: %v", err)
	}
	return set
}
