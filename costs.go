package homeinvest

import (
	"fmt"
)

// Frequency is the stepping period of a recurring cost.
type Frequency string

const (
	Monthly Frequency = "monthly"
	Annual  Frequency = "annual"
)

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Monthly:
		return Monthly, nil
	case Annual:
		return Annual, nil
	default:
		return "", fmt.Errorf("unknown frequency: %q", s)
	}
}

// InitialCost is a one-time purchase-related cost (down payment, closing
// costs). Amount is positive; it is recorded as an outflow in the ledger.
type InitialCost struct {
	Description string
	Amount      Money
	Date        Date
}

// Improvement is a one-time home improvement cost (renovation, extension).
type Improvement struct {
	Description string
	Amount      Money
	Date        Date
}

// RecurringCost is a periodic cost (property tax, insurance, maintenance)
// stepping from Start by its Frequency until the sale date.
type RecurringCost struct {
	Description string
	Amount      Money
	Start       Date
	Frequency   Frequency
}

// Mortgage holds the parameters of a fixed-rate mortgage. It is immutable
// after construction; the monthly payment is derived once by the annuity
// formula.
type Mortgage struct {
	principal      Money
	annualRate     Percent
	termYears      int
	start          Date
	monthlyPayment float64
}

// NewMortgage validates the mortgage parameters and derives the fixed
// monthly payment. A zero or negative rate or term is rejected with
// ErrDegenerateAmortization: the closed-form annuity formula cannot
// express a free loan.
func NewMortgage(principal Money, annualRate Percent, termYears int, start Date) (Mortgage, error) {
	m := Mortgage{
		principal:  principal,
		annualRate: annualRate,
		termYears:  termYears,
		start:      start,
	}
	if !principal.IsPositive() {
		return Mortgage{}, fmt.Errorf("%w: principal %s must be positive", ErrDegenerateAmortization, principal)
	}
	payment, err := MonthlyPayment(principal.AsFloat(), m.MonthlyRate(), m.TotalPayments())
	if err != nil {
		return Mortgage{}, err
	}
	m.monthlyPayment = payment
	return m, nil
}

func (m Mortgage) Principal() Money    { return m.principal }
func (m Mortgage) AnnualRate() Percent { return m.annualRate }
func (m Mortgage) TermYears() int      { return m.termYears }
func (m Mortgage) Start() Date         { return m.start }

// MonthlyRate returns the periodic rate: annual percent / 12 / 100.
func (m Mortgage) MonthlyRate() float64 { return float64(m.annualRate) / 12 / 100 }

// TotalPayments returns the number of monthly payments over the full term.
func (m Mortgage) TotalPayments() int { return m.termYears * 12 }

// MonthlyPayment returns the fixed payment as money in the principal's currency.
func (m Mortgage) MonthlyPayment() Money { return M(m.monthlyPayment, m.principal.Currency()) }

// DefaultClosingCostsPercent is applied when a sale row leaves the
// closing-cost percent blank.
const DefaultClosingCostsPercent Percent = 6.0

// SaleInfo describes the eventual sale bounding the holding period.
// Exactly one per cost set; its absence makes the calculation fail.
type SaleInfo struct {
	Price               Money
	Date                Date
	ClosingCostsPercent Percent
}

// ClosingCosts returns the transaction costs charged at sale.
func (s SaleInfo) ClosingCosts() Money {
	return M(s.Price.AsFloat()*s.ClosingCostsPercent.Rate(), s.Price.Currency())
}

// NetOfClosing returns the sale price minus closing costs.
func (s SaleInfo) NetOfClosing() Money { return s.Price.Sub(s.ClosingCosts()) }

// CostSet is the closed ledger of cost definitions for one property. It is
// assembled once (typically by ImportCosts) and then passed wholesale into
// Calculate, which treats it as read-only. There is no shared state between
// two calculations: each run builds its own CostSet and Ledger.
type CostSet struct {
	currency     string
	initial      []InitialCost
	improvements []Improvement
	recurring    []RecurringCost
	mortgage     *Mortgage
	sale         *SaleInfo
}

// NewCostSet creates an empty cost set whose amounts are in the given
// currency ("USD" if empty).
func NewCostSet(currency string) *CostSet {
	if currency == "" {
		currency = "USD"
	}
	return &CostSet{currency: currency}
}

// Currency returns the cost set currency.
func (c *CostSet) Currency() string { return c.currency }

// AddInitialCost records a one-time initial cost like down payment or closing costs.
func (c *CostSet) AddInitialCost(description string, amount Money, on Date) {
	c.initial = append(c.initial, InitialCost{Description: description, Amount: amount, Date: on})
}

// AddImprovement records a one-time improvement like a renovation.
func (c *CostSet) AddImprovement(description string, amount Money, on Date) {
	c.improvements = append(c.improvements, Improvement{Description: description, Amount: amount, Date: on})
}

// AddRecurringCost records a periodic cost like property tax or insurance.
func (c *CostSet) AddRecurringCost(description string, amount Money, start Date, freq Frequency) {
	c.recurring = append(c.recurring, RecurringCost{Description: description, Amount: amount, Start: start, Frequency: freq})
}

// SetMortgage records the mortgage. At most one mortgage per cost set.
func (c *CostSet) SetMortgage(m Mortgage) error {
	if c.mortgage != nil {
		return fmt.Errorf("mortgage already set")
	}
	c.mortgage = &m
	return nil
}

// SetSale records the sale. Exactly one sale per cost set is expected.
func (c *CostSet) SetSale(s SaleInfo) error {
	if c.sale != nil {
		return fmt.Errorf("sale already set")
	}
	c.sale = &s
	return nil
}

// Mortgage returns the mortgage, or nil when the property is owned outright.
func (c *CostSet) Mortgage() *Mortgage {
	if c.mortgage == nil {
		return nil
	}
	m := *c.mortgage
	return &m
}

// Sale returns the sale information, or nil if none was recorded.
func (c *CostSet) Sale() *SaleInfo {
	if c.sale == nil {
		return nil
	}
	s := *c.sale
	return &s
}

// InitialCosts returns a copy of the initial costs.
func (c *CostSet) InitialCosts() []InitialCost {
	return append([]InitialCost(nil), c.initial...)
}

// Improvements returns a copy of the improvements.
func (c *CostSet) Improvements() []Improvement {
	return append([]Improvement(nil), c.improvements...)
}

// RecurringCosts returns a copy of the recurring costs.
func (c *CostSet) RecurringCosts() []RecurringCost {
	return append([]RecurringCost(nil), c.recurring...)
}
