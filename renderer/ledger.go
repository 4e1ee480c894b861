package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/homeinvest"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders the full dated event ledger as a table, with a
// running cumulative investment column. The last cumulative value is the
// net profit of the whole holding.
func LedgerMarkdown(l *homeinvest.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cost Ledger (%d events)", l.Len()))

	cumulative := l.CumulativeInvestment()
	rows := make([][]string, 0, l.Len())
	for i, e := range l.Events() {
		rows = append(rows, []string{
			e.Date.String(),
			e.Type.String(),
			e.Description,
			e.Amount.SignedString(),
			cumulative[i].SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Category", "Description", "Amount", "Cumulative"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Total invested: %s, total withdrawn: %s.",
		l.TotalInvested(), l.TotalWithdrawn()))

	return doc.String()
}
