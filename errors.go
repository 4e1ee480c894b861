package homeinvest

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by import and calculation. Callers match them with
// errors.Is; the wrapped message carries the offending row or field.
var (
	// ErrMissingRequiredField reports an input row or header lacking one of
	// category, description, amount, date.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidMortgageDescriptor reports a malformed "annual_rate=<f>;term_years=<i>"
	// descriptor on a mortgage row. Fatal: the whole import aborts.
	ErrInvalidMortgageDescriptor = errors.New("invalid mortgage descriptor")

	// ErrMissingSaleInformation reports a calculation requested over a cost
	// set with no sale row. Fatal: no partial summary is produced.
	ErrMissingSaleInformation = errors.New("missing sale information")

	// ErrDegenerateAmortization reports a zero or negative monthly rate or
	// term, which the closed-form annuity formula cannot express.
	ErrDegenerateAmortization = errors.New("degenerate amortization")

	// ErrIRRNonConvergent reports that the IRR root-finder failed. It is
	// recovered locally: the summary reports an undefined rate instead.
	ErrIRRNonConvergent = errors.New("IRR did not converge")
)

// Warning is a non-fatal data-quality finding from the importer: a skipped
// unknown category or a defaulted frequency. Warnings are reported to the
// caller so the analyst can audit the input, never silently dropped.
type Warning struct {
	Row int // 1-based data row number
	Msg string
}

func (w Warning) String() string { return fmt.Sprintf("row %d: %s", w.Row, w.Msg) }
