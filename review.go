package homeinvest

import (
	"errors"
	"fmt"
	"math"
)

// Summary provides a comprehensive, at-a-glance overview of the outcome of
// owning the property over the holding period, compared to the benchmark.
// It is derived from the ledger once and read-only afterwards.
type Summary struct {
	// Purchase information, derived by locating an initial cost whose
	// description contains "down payment" (case-insensitive). DownPayment
	// is zero and PurchaseDate undefined when none is found.
	PurchasePrice Money
	DownPayment   Money
	PurchaseDate  Date

	SalePrice Money
	SaleDate  Date

	TotalInitialInvestment Money // initial costs + improvements
	TotalCashOutflow       Money // every cost paid over the holding period
	AccumulatedEquity      Money // principal repaid through mortgage payments
	RemainingMortgage      Money // balance owed at the sale date
	SaleProceeds           Money // net of closing costs and mortgage payoff
	NetProfit              Money // sum of all ledger amounts

	HoldingPeriodYears float64

	// AnnualIRR treats each ledger row as one evenly-spaced period and
	// reports the periodic rate as annual, ignoring the actual date gaps
	// between rows. NaN when the root-finder does not converge.
	AnnualIRR Percent

	Benchmark MarketComparison
	// Outperformance is the actual net profit minus the benchmark's.
	Outperformance Money
}

// CalcOption configures a calculation.
type CalcOption func(*calcConfig)

type calcConfig struct {
	benchmarkRate Percent
}

// WithBenchmarkRate overrides the assumed annual return of the benchmark
// index, in percent points.
func WithBenchmarkRate(rate Percent) CalcOption {
	return func(c *calcConfig) { c.benchmarkRate = rate }
}

// Calculate runs one full return computation over a closed cost set: it
// expands the costs into the dated event ledger, appends the net sale
// proceeds, and derives the summary metrics including IRR and the
// benchmark comparison.
//
// Calculate is a pure function of the cost set: it never mutates it, holds
// no state between runs, and concurrent calls over independent cost sets
// are safe. A cost set without sale information fails with
// ErrMissingSaleInformation and produces no partial result.
func Calculate(set *CostSet, opts ...CalcOption) (*Ledger, *Summary, error) {
	cfg := calcConfig{benchmarkRate: DefaultBenchmarkRate}
	for _, opt := range opts {
		opt(&cfg)
	}

	sale := set.Sale()
	if sale == nil {
		return nil, nil, fmt.Errorf("%w: cost set has no sale row", ErrMissingSaleInformation)
	}

	events := expandCosts(set, sale.Date)

	// Remaining balance at the sale date, using the day-count month
	// convention. This is deliberately not the count of emitted payment
	// events: a sale date between scheduled payments makes the two
	// slightly inconsistent (see the DaysPerMonth doc).
	remaining := 0.0
	if m := set.Mortgage(); m != nil {
		elapsed := m.Start().MonthsUntil(sale.Date)
		remaining = Balance(m.Principal().AsFloat(), m.MonthlyRate(), m.MonthlyPayment().AsFloat(), elapsed, m.TotalPayments())
	}
	remainingMortgage := M(remaining, set.Currency())

	netProceeds := sale.NetOfClosing().Sub(remainingMortgage)
	events = append(events, CostEvent{
		Date:        sale.Date,
		Amount:      netProceeds,
		Description: "Sale Proceeds (After Mortgage Payoff)",
		Type:        EventSale,
	})

	ledger := NewLedger(events)

	summary, err := newSummary(ledger, set, sale, remainingMortgage, netProceeds, cfg.benchmarkRate)
	if err != nil {
		return nil, nil, err
	}
	return ledger, summary, nil
}

func newSummary(ledger *Ledger, set *CostSet, sale *SaleInfo, remainingMortgage, netProceeds Money, benchmarkRate Percent) (*Summary, error) {
	s := &Summary{
		SalePrice:         sale.Price,
		SaleDate:          sale.Date,
		RemainingMortgage: remainingMortgage,
		SaleProceeds:      netProceeds,
		NetProfit:         ledger.Sum(),
		TotalCashOutflow:  ledger.TotalInvested(),
	}

	byType := ledger.SumByType()
	s.TotalInitialInvestment = byType[EventInitialCost].Add(byType[EventImprovement]).Neg()
	s.AccumulatedEquity = byType[EventEquityBuilding].Neg()

	s.HoldingPeriodYears = ledger.OldestEventDate().YearsUntil(sale.Date)

	// Purchase information.
	if ev, ok := ledger.FindInitialCost("down payment"); ok {
		s.DownPayment = ev.Amount.Neg()
		s.PurchasePrice = s.DownPayment
		if m := set.Mortgage(); m != nil {
			s.PurchasePrice = s.PurchasePrice.Add(m.Principal())
		}
	}
	for _, e := range ledger.Filter(ByType(EventInitialCost)) {
		s.PurchaseDate = e.Date
		break
	}

	// IRR over row-ordered periods. Non-convergence is downgraded to an
	// undefined metric; the rest of the summary still completes.
	amounts := make([]float64, 0, ledger.Len())
	for _, e := range ledger.Events() {
		amounts = append(amounts, e.Amount.AsFloat())
	}
	rate, err := internalRateOfReturn(amounts)
	switch {
	case errors.Is(err, ErrIRRNonConvergent):
		s.AnnualIRR = Percent(math.NaN())
	case err != nil:
		return nil, err
	default:
		// Annualize as (1+r)^1 - 1: the periodic rate is reported as
		// already annual, matching the row-as-period simplification.
		s.AnnualIRR = Percent(rate * 100)
	}

	s.Benchmark = compareMarket(ledger, benchmarkRate)
	s.Outperformance = s.NetProfit.Sub(s.Benchmark.NetProfit)

	return s, nil
}
