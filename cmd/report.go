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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	csvFile       string
	benchmarkRate float64
	benchmarkFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "full investment analysis report" }
func (*reportCmd) Usage() string {
	return `hic report -csv <costs.csv> [-benchmark-rate <percent>] [-benchmark-file <stats.json>]

  Imports the costs, runs the full return calculation, and prints the
  analysis report including the benchmark comparison.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Path to the costs CSV file")
	f.Float64Var(&c.benchmarkRate, "benchmark-rate", 0, "Benchmark annual return in percent points (overrides -benchmark-file)")
	f.StringVar(&c.benchmarkFile, "benchmark-file", "", "JSON stats file to read the benchmark annual return from")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" {
		fmt.Fprintln(os.Stderr, "the -csv flag is required")
		return subcommands.ExitUsageError
	}

	set, err := importCostsFile(c.csvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing costs: %v\n", err)
		return subcommands.ExitFailure
	}

	opts, err := benchmarkOptions(c.benchmarkRate, c.benchmarkFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving benchmark rate: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, summary, err := homeinvest.Calculate(set, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating returns: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(ledger, summary))
	return subcommands.ExitSuccess
}
