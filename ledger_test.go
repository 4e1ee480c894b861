package homeinvest

import (
	"testing"
)

func sampleLedger() *Ledger {
	return NewLedger([]CostEvent{
		{Date: MustParse("2020-03-01"), Amount: USD(-100), Description: "Insurance", Type: EventRecurringCost},
		{Date: MustParse("2020-01-01"), Amount: USD(-60000), Description: "Down Payment", Type: EventInitialCost},
		{Date: MustParse("2022-01-01"), Amount: USD(80000), Description: "Sale Proceeds (After Mortgage Payoff)", Type: EventSale},
		{Date: MustParse("2020-02-01"), Amount: USD(-5000), Description: "New Roof", Type: EventImprovement},
	})
}

func TestLedgerSortedByDate(t *testing.T) {
	l := sampleLedger()
	var prev Date
	for i, e := range l.Events() {
		if i > 0 && e.Date.Before(prev) {
			t.Fatalf("event %d on %s is before its predecessor %s", i, e.Date, prev)
		}
		prev = e.Date
	}
	if l.OldestEventDate() != MustParse("2020-01-01") {
		t.Errorf("OldestEventDate = %s, want 2020-01-01", l.OldestEventDate())
	}
	if l.NewestEventDate() != MustParse("2022-01-01") {
		t.Errorf("NewestEventDate = %s, want 2022-01-01", l.NewestEventDate())
	}
}

func TestLedgerCumulativeInvestment(t *testing.T) {
	l := sampleLedger()
	sums := l.CumulativeInvestment()
	if len(sums) != l.Len() {
		t.Fatalf("got %d sums, want %d", len(sums), l.Len())
	}
	// For a ledger of one-time events the final running sum is the plain
	// sum of all amounts.
	if !sums[len(sums)-1].Equal(l.Sum()) {
		t.Errorf("final cumulative %s != Sum() %s", sums[len(sums)-1], l.Sum())
	}
	if !l.Sum().Equal(USD(14900)) {
		t.Errorf("Sum = %s, want $14,900", l.Sum())
	}
}

func TestLedgerTotals(t *testing.T) {
	l := sampleLedger()
	if !l.TotalInvested().Equal(USD(65100)) {
		t.Errorf("TotalInvested = %s, want $65,100", l.TotalInvested())
	}
	if !l.TotalWithdrawn().Equal(USD(80000)) {
		t.Errorf("TotalWithdrawn = %s, want $80,000", l.TotalWithdrawn())
	}

	byType := l.SumByType()
	if !byType[EventInitialCost].Equal(USD(-60000)) {
		t.Errorf("initial cost total = %s, want -$60,000", byType[EventInitialCost])
	}
	if !byType[EventSale].Equal(USD(80000)) {
		t.Errorf("sale total = %s, want $80,000", byType[EventSale])
	}
}

func TestLedgerFindInitialCost(t *testing.T) {
	l := sampleLedger()
	ev, ok := l.FindInitialCost("down payment")
	if !ok {
		t.Fatal("FindInitialCost(down payment) not found")
	}
	if !ev.Amount.Equal(USD(-60000)) {
		t.Errorf("down payment amount = %s, want -$60,000", ev.Amount)
	}
	if _, ok := l.FindInitialCost("earnest money"); ok {
		t.Error("FindInitialCost(earnest money) found, want none")
	}
	// The improvement is not an initial cost, so it must not match.
	if _, ok := l.FindInitialCost("roof"); ok {
		t.Error("FindInitialCost(roof) matched a non-initial event")
	}
}

func TestParseEventType(t *testing.T) {
	for _, typ := range []EventType{EventInitialCost, EventImprovement, EventEquityBuilding, EventInterestCost, EventRecurringCost, EventSale} {
		got, err := ParseEventType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseEventType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if _, err := ParseEventType("dividend"); err == nil {
		t.Error("ParseEventType(dividend) succeeded, want error")
	}
}
