package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/homeinvest"
	"github.com/etnz/homeinvest/agent"
	"github.com/etnz/homeinvest/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	csvFile       string
	benchmarkRate float64
	benchmarkFile string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `hic assist -csv <costs.csv> [question...]

  Runs the full return calculation and starts an interactive session with
  an assistant that knows the computed report.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Path to the costs CSV file")
	f.Float64Var(&c.benchmarkRate, "benchmark-rate", 0, "Benchmark annual return in percent points (overrides -benchmark-file)")
	f.StringVar(&c.benchmarkFile, "benchmark-file", "", "JSON stats file to read the benchmark annual return from")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" {
		fmt.Fprintln(os.Stderr, "the -csv flag is required")
		return subcommands.ExitUsageError
	}
	initialPrompt := strings.Join(f.Args(), " ")

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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(renderer.ReportMarkdown(ledger, summary))
	advisor := agent.NewAdvisor()
	a := agent.New(os.Stdout, os.Stdin, analyst, advisor)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
