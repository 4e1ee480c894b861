// Package homeinvest estimates the financial return of owning a single
// residential property from a closed ledger of one-time, recurring, and
// mortgage-related costs plus an eventual sale.
//
// A calculation expands the sparse cost definitions into a dated event
// ledger, amortizes the mortgage into principal and interest streams,
// appends the net sale proceeds, and derives summary metrics: cumulative
// investment, holding period, internal rate of return, and a comparison
// against a passive benchmark index over the same period.
//
// Cost sets are usually imported from a CSV file (see ImportCosts) and
// passed wholesale into Calculate, which returns an immutable Ledger and
// Summary per run.
package homeinvest
