package homeinvest

import (
	"errors"
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	// $300,000 at 4% over 30 years.
	payment, err := MonthlyPayment(300000, 0.04/12, 360)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}
	approx(t, "payment", payment, 1432.25, 0.01)
}

func TestMonthlyPaymentDegenerate(t *testing.T) {
	tests := []struct {
		name          string
		rate          float64
		totalPayments int
	}{
		{"zero rate", 0, 360},
		{"negative rate", -0.01, 360},
		{"zero payments", 0.04 / 12, 0},
		{"negative payments", 0.04 / 12, -12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyPayment(300000, tt.rate, tt.totalPayments)
			if !errors.Is(err, ErrDegenerateAmortization) {
				t.Errorf("MonthlyPayment(rate=%g, n=%d) error = %v, want ErrDegenerateAmortization", tt.rate, tt.totalPayments, err)
			}
		})
	}
}

func TestPaymentSplitSumsToPayment(t *testing.T) {
	const principal, rate = 300000.0, 0.04 / 12
	const totalPayments = 360
	payment, err := MonthlyPayment(principal, rate, totalPayments)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}

	for n := 0; n < totalPayments; n++ {
		p, i := PaymentSplit(n, principal, rate, payment)
		if math.Abs(p+i-payment) > 1e-6 {
			t.Fatalf("payment %d: principal %g + interest %g != payment %g", n, p, i, payment)
		}
		if p <= 0 || i < 0 {
			t.Fatalf("payment %d: non-positive portion principal=%g interest=%g", n, p, i)
		}
	}
}

// TestForwardSimulationMatchesClosedForm amortizes forward payment by
// payment and checks the running balance against the closed-form Balance
// at every step.
func TestForwardSimulationMatchesClosedForm(t *testing.T) {
	const principal, rate = 300000.0, 0.04 / 12
	const totalPayments = 360
	payment, err := MonthlyPayment(principal, rate, totalPayments)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}

	balance := principal
	for n := 0; n < totalPayments; n++ {
		closed := Balance(principal, rate, payment, float64(n), totalPayments)
		if math.Abs(balance-closed) > 1e-4 {
			t.Fatalf("before payment %d: simulated balance %g, closed form %g", n, balance, closed)
		}
		p, _ := PaymentSplit(n, principal, rate, payment)
		balance -= p
	}
	// After the full term the loan is paid off.
	approx(t, "final balance", balance, 0, 1e-3)
}

func TestBalanceClampedAfterTerm(t *testing.T) {
	payment, _ := MonthlyPayment(300000, 0.04/12, 360)

	if got := Balance(300000, 0.04/12, payment, 360, 360); got != 0 {
		t.Errorf("Balance at term end = %g, want 0", got)
	}
	if got := Balance(300000, 0.04/12, payment, 480.5, 360); got != 0 {
		t.Errorf("Balance after term = %g, want 0", got)
	}
}

func TestBalanceAfterFiveYears(t *testing.T) {
	payment, _ := MonthlyPayment(300000, 0.04/12, 360)
	got := Balance(300000, 0.04/12, payment, 60, 360)
	// After 60 payments the balance is down but most principal remains.
	if got <= 260000 || got >= 300000 {
		t.Errorf("Balance after 60 payments = %g, want strictly between 260000 and 300000", got)
	}
}
