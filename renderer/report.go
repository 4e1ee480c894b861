// Package renderer builds the markdown views of a computed investment:
// the analysis report, the event ledger, and the amortization schedule.
// It renders from the Ledger and Summary only and never mutates them.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/homeinvest"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the full investment analysis report.
func ReportMarkdown(l *homeinvest.Ledger, s *homeinvest.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Home Investment Analysis Report")

	doc.H2("Purchase Information")
	if s.PurchaseDate.IsZero() {
		doc.PlainText("Not available")
	} else {
		doc.BulletList(
			fmt.Sprintf("Purchase Price: %s", s.PurchasePrice),
			fmt.Sprintf("Down Payment: %s", s.DownPayment),
			fmt.Sprintf("Purchase Date: %s", s.PurchaseDate),
		)
	}

	doc.H2("Sale Information")
	doc.BulletList(
		fmt.Sprintf("Sale Price: %s", s.SalePrice),
		fmt.Sprintf("Sale Date: %s", s.SaleDate),
	)
	years, months := splitHolding(s.HoldingPeriodYears)
	doc.PlainText(fmt.Sprintf("House owned for %d years and %d months.", years, months))

	doc.H2("Detailed Cost Breakdown")
	byType := l.SumByType()
	var rows [][]string
	for _, typ := range []homeinvest.EventType{
		homeinvest.EventInitialCost,
		homeinvest.EventImprovement,
		homeinvest.EventEquityBuilding,
		homeinvest.EventInterestCost,
		homeinvest.EventRecurringCost,
		homeinvest.EventSale,
	} {
		total, ok := byType[typ]
		if !ok {
			continue
		}
		rows = append(rows, []string{typ.String(), total.Abs().String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Total"},
		Rows:   rows,
	})

	doc.H2("Investment Summary")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Initial Investment", s.TotalInitialInvestment.String()},
			{"Total Cash Outflow", s.TotalCashOutflow.String()},
			{"Accumulated Equity", s.AccumulatedEquity.String()},
			{"Remaining Mortgage", s.RemainingMortgage.String()},
			{"Sale Proceeds", s.SaleProceeds.String()},
			{"Net Profit", s.NetProfit.SignedString()},
			{"Holding Period", fmt.Sprintf("%.1f years", s.HoldingPeriodYears)},
			{"Annual IRR", s.AnnualIRR.String()},
		},
	})

	doc.H2("Benchmark Comparison")
	doc.PlainText(fmt.Sprintf(
		"If every housing cost had been invested in the benchmark instead, at %s annual return:",
		s.Benchmark.AnnualRate))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Money Spent (Invested)", s.Benchmark.TotalInvested.String()},
			{"Final Sale Proceeds (Withdrawn)", s.Benchmark.TotalWithdrawn.String()},
			{"Benchmark Investment Worth", s.Benchmark.FinalValue.String()},
			{"Benchmark Net Profit", s.Benchmark.NetProfit.SignedString()},
		},
	})

	doc.H2("Return Comparison")
	homeROI, benchROI := returnOnInvestment(s)
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Cash Invested", s.TotalCashOutflow.String()},
			{"Home Investment Return", fmt.Sprintf("%s (%s)", s.NetProfit.SignedString(), homeROI)},
			{"Benchmark Return", fmt.Sprintf("%s (%s)", s.Benchmark.NetProfit.SignedString(), benchROI)},
			{"ROI Difference", (homeROI - benchROI).SignedString()},
			{"Absolute Dollar Difference", s.Outperformance.SignedString()},
		},
	})
	doc.PlainText(fmt.Sprintf(
		"Note: ROIs are calculated on the total cash invested (%s) over the entire period.",
		s.TotalCashOutflow))

	return doc.String()
}

// splitHolding breaks a fractional year count into whole years and months.
func splitHolding(holdingYears float64) (years, months int) {
	years = int(holdingYears)
	months = int((holdingYears - float64(years)) * 12)
	return
}

// returnOnInvestment computes both ROIs on the same base, the total cash
// outflow, so the two are directly comparable.
func returnOnInvestment(s *homeinvest.Summary) (home, benchmark homeinvest.Percent) {
	base := s.TotalCashOutflow.AsFloat()
	if base == 0 {
		return 0, 0
	}
	home = homeinvest.Percent(s.NetProfit.AsFloat() / base * 100)
	benchmark = homeinvest.Percent(s.Benchmark.NetProfit.AsFloat() / base * 100)
	return
}
