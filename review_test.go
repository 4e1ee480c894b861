package homeinvest

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateScenario(t *testing.T) {
	set := scenarioCostSet(t)

	ledger, summary, err := Calculate(set)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// Monthly payment of the reference mortgage.
	approx(t, "monthly payment", set.Mortgage().MonthlyPayment().AsFloat(), 1432.25, 0.01)

	// Remaining balance after ~60 day-count months.
	remaining := summary.RemainingMortgage.AsFloat()
	if remaining <= 260000 || remaining >= 300000 {
		t.Errorf("RemainingMortgage = %g, want strictly between 260000 and 300000", remaining)
	}

	// net proceeds = 450000 - 6% closing - remaining mortgage.
	wantProceeds := 450000 - 27000 - remaining
	approx(t, "SaleProceeds", summary.SaleProceeds.AsFloat(), wantProceeds, 0.01)

	approx(t, "HoldingPeriodYears", summary.HoldingPeriodYears, 5.0, 0.01)

	if summary.AnnualIRR.IsNaN() {
		t.Error("AnnualIRR undefined, want a converged rate for this scenario")
	}

	// Purchase information derived from the down payment row.
	if !summary.DownPayment.Equal(USD(60000)) {
		t.Errorf("DownPayment = %s, want $60,000", summary.DownPayment)
	}
	if !summary.PurchasePrice.Equal(USD(360000)) {
		t.Errorf("PurchasePrice = %s, want $360,000", summary.PurchasePrice)
	}
	if summary.PurchaseDate != MustParse("2020-01-01") {
		t.Errorf("PurchaseDate = %s, want 2020-01-01", summary.PurchaseDate)
	}
	if !summary.SalePrice.Equal(USD(450000)) {
		t.Errorf("SalePrice = %s, want $450,000", summary.SalePrice)
	}

	// The ledger's last event is the sale.
	last := ledger.Event(ledger.Len() - 1)
	if last.Type != EventSale {
		t.Errorf("last event type = %v, want Sale", last.Type)
	}
	if !last.Amount.Equal(summary.SaleProceeds) {
		t.Errorf("sale event amount = %s, want %s", last.Amount, summary.SaleProceeds)
	}

	// Net profit is the sum of every ledger amount.
	if !summary.NetProfit.Equal(ledger.Sum()) {
		t.Errorf("NetProfit = %s, want ledger sum %s", summary.NetProfit, ledger.Sum())
	}

	// Accumulated equity is the negated sum of equity-building events.
	var equity Money
	for _, e := range ledger.Filter(ByType(EventEquityBuilding)) {
		equity = equity.Add(e.Amount.Neg())
	}
	if !summary.AccumulatedEquity.Equal(equity) {
		t.Errorf("AccumulatedEquity = %s, want %s", summary.AccumulatedEquity, equity)
	}

	// Outperformance ties the two net profits together.
	wantOut := summary.NetProfit.Sub(summary.Benchmark.NetProfit)
	if !summary.Outperformance.Equal(wantOut) {
		t.Errorf("Outperformance = %s, want %s", summary.Outperformance, wantOut)
	}
}

func TestCalculateMissingSale(t *testing.T) {
	set := NewCostSet("USD")
	set.AddInitialCost("Down Payment", USD(60000), MustParse("2020-01-01"))

	ledger, summary, err := Calculate(set)
	if !errors.Is(err, ErrMissingSaleInformation) {
		t.Fatalf("Calculate error = %v, want ErrMissingSaleInformation", err)
	}
	if ledger != nil || summary != nil {
		t.Error("Calculate returned a partial result alongside the error")
	}
}

func TestCalculateNoMortgage(t *testing.T) {
	set := NewCostSet("USD")
	set.AddInitialCost("Cash Purchase", USD(200000), MustParse("2020-01-01"))
	if err := set.SetSale(SaleInfo{Price: USD(260000), Date: MustParse("2023-01-01"), ClosingCostsPercent: 6.0}); err != nil {
		t.Fatal(err)
	}

	_, summary, err := Calculate(set)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if !summary.RemainingMortgage.IsZero() {
		t.Errorf("RemainingMortgage = %s, want zero with no mortgage", summary.RemainingMortgage)
	}
	if !summary.AccumulatedEquity.IsZero() {
		t.Errorf("AccumulatedEquity = %s, want zero with no mortgage", summary.AccumulatedEquity)
	}
	// 260000 - 6% closing = 244400 net proceeds.
	if !summary.SaleProceeds.Equal(USD(244400)) {
		t.Errorf("SaleProceeds = %s, want $244,400", summary.SaleProceeds)
	}
}

func TestCalculateNoDownPayment(t *testing.T) {
	set := NewCostSet("USD")
	set.AddInitialCost("Closing Costs", USD(9000), MustParse("2020-01-01"))
	if err := set.SetSale(SaleInfo{Price: USD(100000), Date: MustParse("2021-01-01"), ClosingCostsPercent: 6.0}); err != nil {
		t.Fatal(err)
	}

	_, summary, err := Calculate(set)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if !summary.DownPayment.IsZero() {
		t.Errorf("DownPayment = %s, want zero when no matching row exists", summary.DownPayment)
	}
	// The purchase date still comes from the first initial cost.
	if summary.PurchaseDate != MustParse("2020-01-01") {
		t.Errorf("PurchaseDate = %s, want 2020-01-01", summary.PurchaseDate)
	}
}

func TestCalculateBenchmarkRateOption(t *testing.T) {
	set := scenarioCostSet(t)

	_, def, err := Calculate(set)
	if err != nil {
		t.Fatal(err)
	}
	if !def.Benchmark.AnnualRate.Equal(DefaultBenchmarkRate) {
		t.Errorf("default benchmark rate = %v, want %v", def.Benchmark.AnnualRate, DefaultBenchmarkRate)
	}

	_, flat, err := Calculate(set, WithBenchmarkRate(0))
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "zero-rate benchmark FinalValue",
		flat.Benchmark.FinalValue.AsFloat(), flat.Benchmark.TotalInvested.AsFloat(), 1e-6)
	if math.IsNaN(float64(flat.AnnualIRR)) {
		t.Error("AnnualIRR undefined under a benchmark option change")
	}
}

// TestCalculateIndependentRuns checks that two calculations over
// independently built cost sets do not interfere: the engine holds no
// shared amortization state.
func TestCalculateIndependentRuns(t *testing.T) {
	a := scenarioCostSet(t)
	b := scenarioCostSet(t)

	_, s1, err := Calculate(a)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = Calculate(b, WithBenchmarkRate(12))
	if err != nil {
		t.Fatal(err)
	}
	_, s3, err := Calculate(a)
	if err != nil {
		t.Fatal(err)
	}

	if !s1.NetProfit.Equal(s3.NetProfit) || !s1.Benchmark.FinalValue.Equal(s3.Benchmark.FinalValue) {
		t.Error("repeated calculation over the same cost set changed its result")
	}
}
