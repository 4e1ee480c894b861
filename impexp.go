package homeinvest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file contains the cost-set import format: one CSV row per cost item.
//
// Required columns: category, description, amount, date.
// Optional column: frequency (recurring costs only, defaults to monthly).
//
// Recognized categories and their field semantics:
//
//	initial      one-time cost; description is free text
//	recurring    periodic cost; frequency column controls stepping
//	improvement  one-time cost; description is free text
//	mortgage     amount is the principal; description is "annual_rate=<float>;term_years=<int>"
//	sale         amount is the sale price; description is the closing-cost percent (blank = 6.0)
//
// Unknown categories are skipped with a warning. A malformed mortgage
// descriptor or a second sale row aborts the import.

var requiredColumns = []string{"category", "description", "amount", "date"}

// ImportCosts reads a cost set from 'r' in the CSV import format.
//
// Non-fatal findings (skipped unknown categories, defaulted frequencies)
// are returned as warnings so the caller can report them; fatal errors
// identify the offending row and field.
func ImportCosts(r io.Reader) (*CostSet, []Warning, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, nil, fmt.Errorf("%w: no %q column in header", ErrMissingRequiredField, name)
		}
	}

	set := NewCostSet("USD")
	var warnings []Warning

	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", row, err)
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		category := strings.ToLower(field("category"))
		description := field("description")

		amount, err := strconv.ParseFloat(field("amount"), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: invalid amount %q: %w", row, field("amount"), err)
		}
		date, err := ParseDate(field("date"))
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", row, err)
		}
		money := M(amount, set.Currency())

		switch category {
		case "initial":
			set.AddInitialCost(description, money, date)

		case "improvement":
			set.AddImprovement(description, money, date)

		case "recurring":
			freq, err := ParseFrequency(strings.ToLower(field("frequency")))
			if err != nil {
				warnings = append(warnings, Warning{Row: row,
					Msg: fmt.Sprintf("invalid frequency %q for %q, defaulting to monthly", field("frequency"), description)})
				freq = Monthly
			}
			set.AddRecurringCost(description, money, date, freq)

		case "mortgage":
			mortgage, err := parseMortgageRow(description, money, date)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", row, err)
			}
			if err := set.SetMortgage(mortgage); err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", row, err)
			}

		case "sale":
			closing := DefaultClosingCostsPercent
			if description != "" {
				pct, err := strconv.ParseFloat(description, 64)
				if err != nil {
					return nil, nil, fmt.Errorf("row %d: invalid closing-cost percent %q: %w", row, description, err)
				}
				closing = Percent(pct)
			}
			if err := set.SetSale(SaleInfo{Price: money, Date: date, ClosingCostsPercent: closing}); err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", row, err)
			}

		default:
			warnings = append(warnings, Warning{Row: row,
				Msg: fmt.Sprintf("unknown category %q for %q, row skipped", category, description)})
		}
	}

	return set, warnings, nil
}

// parseMortgageRow parses the "annual_rate=<float>;term_years=<int>"
// descriptor carried in the description column of a mortgage row.
func parseMortgageRow(descriptor string, principal Money, start Date) (Mortgage, error) {
	params := make(map[string]string)
	for _, item := range strings.Split(descriptor, ";") {
		key, value, found := strings.Cut(item, "=")
		if !found {
			return Mortgage{}, fmt.Errorf("%w: %q is not a key=value pair", ErrInvalidMortgageDescriptor, item)
		}
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	rateStr, ok := params["annual_rate"]
	if !ok {
		return Mortgage{}, fmt.Errorf("%w: missing annual_rate in %q", ErrInvalidMortgageDescriptor, descriptor)
	}
	annualRate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return Mortgage{}, fmt.Errorf("%w: invalid annual_rate %q", ErrInvalidMortgageDescriptor, rateStr)
	}

	yearsStr, ok := params["term_years"]
	if !ok {
		return Mortgage{}, fmt.Errorf("%w: missing term_years in %q", ErrInvalidMortgageDescriptor, descriptor)
	}
	termYears, err := strconv.Atoi(yearsStr)
	if err != nil {
		return Mortgage{}, fmt.Errorf("%w: invalid term_years %q", ErrInvalidMortgageDescriptor, yearsStr)
	}

	return NewMortgage(principal, Percent(annualRate), termYears, start)
}
