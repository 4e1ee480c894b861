package homeinvest

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// EventType tags a ledger event with its cost category.
type EventType int

const (
	EventInitialCost EventType = iota
	EventImprovement
	EventEquityBuilding
	EventInterestCost
	EventRecurringCost
	EventSale
)

func (t EventType) String() string {
	switch t {
	case EventInitialCost:
		return "Initial Cost"
	case EventImprovement:
		return "Improvement"
	case EventEquityBuilding:
		return "Equity Building"
	case EventInterestCost:
		return "Interest Cost"
	case EventRecurringCost:
		return "Recurring Cost"
	case EventSale:
		return "Sale"
	default:
		return "unknown"
	}
}

// ParseEventType parses a display name back into an EventType.
func ParseEventType(s string) (EventType, error) {
	for _, t := range []EventType{EventInitialCost, EventImprovement, EventEquityBuilding, EventInterestCost, EventRecurringCost, EventSale} {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown event type: %q", s)
}

// CostEvent is one dated cash flow in the ledger. Amount is signed:
// negative is an outflow (a cost), positive an inflow (sale proceeds).
// Events are immutable once created.
type CostEvent struct {
	Date        Date
	Amount      Money
	Description string
	Type        EventType
}

// Ledger is the full ordered sequence of cash-flow events produced for one
// calculation. Events are always sorted ascending by date; same-day events
// keep their insertion order. A Ledger is built once per calculation and
// never mutated afterwards.
type Ledger struct {
	events []CostEvent
}

// NewLedger builds a ledger from events, sorting them by date. The sort is
// stable: no tie-break beyond the date is defined.
func NewLedger(events []CostEvent) *Ledger {
	l := &Ledger{events: append([]CostEvent(nil), events...)}
	sort.SliceStable(l.events, func(i, j int) bool {
		return l.events[i].Date.Before(l.events[j].Date)
	})
	return l
}

// Len returns the number of events.
func (l *Ledger) Len() int { return len(l.events) }

// Events returns an iterator over the events in date order.
func (l *Ledger) Events() iter.Seq2[int, CostEvent] {
	return func(yield func(int, CostEvent) bool) {
		for i, e := range l.events {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Event returns the i-th event in date order.
func (l *Ledger) Event(i int) CostEvent { return l.events[i] }

// OldestEventDate returns the date of the earliest event, or the zero Date
// for an empty ledger.
func (l *Ledger) OldestEventDate() Date {
	if len(l.events) == 0 {
		return Date{}
	}
	return l.events[0].Date
}

// NewestEventDate returns the date of the latest event, or the zero Date
// for an empty ledger.
func (l *Ledger) NewestEventDate() Date {
	if len(l.events) == 0 {
		return Date{}
	}
	return l.events[len(l.events)-1].Date
}

// CumulativeInvestment returns the running sum of event amounts in date
// order. The last element is the net profit of the whole ledger.
func (l *Ledger) CumulativeInvestment() []Money {
	sums := make([]Money, len(l.events))
	var run Money
	for i, e := range l.events {
		run = run.Add(e.Amount)
		sums[i] = run
	}
	return sums
}

// Sum returns the sum of all event amounts: the net profit of the holding.
func (l *Ledger) Sum() Money {
	var total Money
	for _, e := range l.events {
		total = total.Add(e.Amount)
	}
	return total
}

// SumByType returns the total amount per event type, for the cost
// breakdown section of the report.
func (l *Ledger) SumByType() map[EventType]Money {
	totals := make(map[EventType]Money)
	for _, e := range l.events {
		totals[e.Type] = totals[e.Type].Add(e.Amount)
	}
	return totals
}

// TotalInvested returns the sum of the absolute values of all negative
// amounts: every cost that went into the property.
func (l *Ledger) TotalInvested() Money {
	var total Money
	for _, e := range l.events {
		if e.Amount.IsNegative() {
			total = total.Add(e.Amount.Neg())
		}
	}
	return total
}

// TotalWithdrawn returns the sum of all positive amounts (sale proceeds).
func (l *Ledger) TotalWithdrawn() Money {
	var total Money
	for _, e := range l.events {
		if e.Amount.IsPositive() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// FindInitialCost returns the first InitialCost event whose description
// contains substr, case-insensitive. ok is false when none matches.
func (l *Ledger) FindInitialCost(substr string) (ev CostEvent, ok bool) {
	needle := strings.ToLower(substr)
	for _, e := range l.events {
		if e.Type != EventInitialCost {
			continue
		}
		if strings.Contains(strings.ToLower(e.Description), needle) {
			return e, true
		}
	}
	return CostEvent{}, false
}

// ByType returns a predicate that filters events by type.
func ByType(t EventType) func(CostEvent) bool {
	return func(e CostEvent) bool { return e.Type == t }
}

// Filter returns an iterator over events accepted by any of the predicates.
func (l *Ledger) Filter(filters ...func(CostEvent) bool) iter.Seq2[int, CostEvent] {
	return func(yield func(int, CostEvent) bool) {
		for i, e := range l.events {
			accept := false
			for _, filter := range filters {
				if filter(e) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}
