package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/homeinvest"
	md "github.com/nao1215/markdown"
)

// ScheduleMarkdown renders the first 'payments' rows of the amortization
// schedule of a mortgage, one row per monthly payment. Zero or negative
// 'payments' renders the full term.
func ScheduleMarkdown(m homeinvest.Mortgage, payments int) string {
	total := m.TotalPayments()
	if payments <= 0 || payments > total {
		payments = total
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Amortization Schedule: %s at %s over %d years",
		m.Principal(), m.AnnualRate(), m.TermYears()))
	doc.PlainText(fmt.Sprintf("Monthly payment: %s. Showing %d of %d payments.",
		m.MonthlyPayment(), payments, total))

	currency := m.Principal().Currency()
	principal := m.Principal().AsFloat()
	rate := m.MonthlyRate()
	payment := m.MonthlyPayment().AsFloat()

	rows := make([][]string, 0, payments)
	date := m.Start()
	for n := 0; n < payments; n++ {
		principalPortion, interestPortion := homeinvest.PaymentSplit(n, principal, rate, payment)
		remaining := homeinvest.Balance(principal, rate, payment, float64(n+1), total)
		rows = append(rows, []string{
			fmt.Sprintf("%d", n+1),
			date.String(),
			homeinvest.M(principalPortion, currency).String(),
			homeinvest.M(interestPortion, currency).String(),
			homeinvest.M(remaining, currency).String(),
		})
		date = date.AddMonths(1)
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Date", "Principal", "Interest", "Remaining"},
		Rows:   rows,
	})

	return doc.String()
}
