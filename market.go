package homeinvest

import "math"

// DefaultBenchmarkRate is the assumed annual return of the benchmark index
// (7%, a long-run S&P 500 figure) when the caller provides none.
const DefaultBenchmarkRate Percent = 7.0

// MarketComparison holds the hypothetical outcome of investing every cost
// outflow in a benchmark index instead of the property.
type MarketComparison struct {
	AnnualRate     Percent // annual return rate used for compounding
	FinalValue     Money   // what the invested costs would be worth at the ledger's last date
	NetProfit      Money   // FinalValue - TotalInvested
	TotalInvested  Money   // sum of absolute values of all outflows
	TotalWithdrawn Money   // sum of all inflows (sale proceeds)
}

// compareMarket compounds each outflow of the ledger to the ledger's
// latest date at the benchmark's monthly rate (1+annual)^(1/12)-1, using
// the days/30.44 month count. Inflows (the sale event) are excluded from
// the invested side: only costs are modeled as going into the benchmark.
func compareMarket(l *Ledger, annualRate Percent) MarketComparison {
	monthlyRate := math.Pow(1+annualRate.Rate(), 1.0/12) - 1
	endDate := l.NewestEventDate()

	finalValue := 0.0
	currency := ""
	for _, e := range l.Events() {
		if !e.Amount.IsNegative() {
			continue
		}
		currency = e.Amount.Currency()
		months := e.Date.MonthsUntil(endDate)
		finalValue += -e.Amount.AsFloat() * math.Pow(1+monthlyRate, months)
	}

	invested := l.TotalInvested()
	return MarketComparison{
		AnnualRate:     annualRate,
		FinalValue:     M(finalValue, currency),
		NetProfit:      M(finalValue, currency).Sub(invested),
		TotalInvested:  invested,
		TotalWithdrawn: l.TotalWithdrawn(),
	}
}
