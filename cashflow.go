package homeinvest

// expandCosts turns the sparse cost definitions into the full dated event
// stream, bounded above by the sale date (inclusive). The sale proceeds
// event itself is appended later by Calculate; this covers only the costs.
//
// One-time costs emit exactly one event each, negated. The mortgage emits
// one EquityBuilding and one InterestCost event per payment, stepping by
// exact calendar months from its start date until the sale date or the end
// of the term. Recurring costs step by calendar month or year from their
// start date; a start after the sale date emits nothing.
func expandCosts(set *CostSet, saleDate Date) []CostEvent {
	var events []CostEvent

	for _, cost := range set.InitialCosts() {
		events = append(events, CostEvent{
			Date:        cost.Date,
			Amount:      cost.Amount.Neg(),
			Description: cost.Description,
			Type:        EventInitialCost,
		})
	}

	for _, improvement := range set.Improvements() {
		events = append(events, CostEvent{
			Date:        improvement.Date,
			Amount:      improvement.Amount.Neg(),
			Description: improvement.Description,
			Type:        EventImprovement,
		})
	}

	if mortgage := set.Mortgage(); mortgage != nil {
		events = append(events, expandMortgage(mortgage, set.Currency(), saleDate)...)
	}

	for _, cost := range set.RecurringCosts() {
		current := cost.Start
		for !current.After(saleDate) {
			events = append(events, CostEvent{
				Date:        current,
				Amount:      cost.Amount.Neg(),
				Description: cost.Description,
				Type:        EventRecurringCost,
			})
			switch cost.Frequency {
			case Annual:
				current = current.AddYears(1)
			default:
				// Unknown frequencies were already defaulted (and reported)
				// by the importer; stepping monthly here keeps the builder
				// total even if a caller constructs one directly.
				current = current.AddMonths(1)
			}
		}
	}

	return events
}

// expandMortgage emits the principal/interest pair for every scheduled
// payment up to the sale date. The payment index is 0-based: index 0 is
// the payment due on the mortgage start date.
func expandMortgage(m *Mortgage, currency string, saleDate Date) []CostEvent {
	var events []CostEvent

	principal := m.Principal().AsFloat()
	rate := m.MonthlyRate()
	payment := m.MonthlyPayment().AsFloat()

	current := m.Start()
	for n := 0; !current.After(saleDate) && n < m.TotalPayments(); n++ {
		principalPortion, interestPortion := PaymentSplit(n, principal, rate, payment)

		events = append(events,
			CostEvent{
				Date:        current,
				Amount:      M(principalPortion, currency).Neg(),
				Description: "Mortgage Principal",
				Type:        EventEquityBuilding,
			},
			CostEvent{
				Date:        current,
				Amount:      M(interestPortion, currency).Neg(),
				Description: "Mortgage Interest",
				Type:        EventInterestCost,
			})

		current = current.AddMonths(1)
	}
	return events
}
