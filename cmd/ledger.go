package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/homeinvest"
	"github.com/etnz/homeinvest/renderer"
	"github.com/google/subcommands"
)

// ledgerCmd holds the flags for the 'ledger' subcommand.
type ledgerCmd struct {
	csvFile string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "full dated cash-flow ledger" }
func (*ledgerCmd) Usage() string {
	return `hic ledger -csv <costs.csv>

  Expands the costs into the full dated event ledger and prints every
  cash flow with its running cumulative investment.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Path to the costs CSV file")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" {
		fmt.Fprintln(os.Stderr, "the -csv flag is required")
		return subcommands.ExitUsageError
	}

	set, err := importCostsFile(c.csvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing costs: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, _, err := homeinvest.Calculate(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating returns: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LedgerMarkdown(ledger))
	return subcommands.ExitSuccess
}
