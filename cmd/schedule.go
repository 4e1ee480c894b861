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

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	principal float64
	rate      float64
	years     int
	start     string
	payments  int
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "amortization schedule preview" }
func (*scheduleCmd) Usage() string {
	return `hic schedule -principal <amount> -rate <percent> -years <n> [-start <date>] [-payments <n>]

  Prints the amortization schedule of a fixed-rate mortgage, one row per
  monthly payment, without needing a costs file.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Loan principal")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent points")
	f.IntVar(&c.years, "years", 0, "Loan term in years")
	f.StringVar(&c.start, "start", homeinvest.Today().String(), "First payment date")
	f.IntVar(&c.payments, "payments", 12, "Number of payments to show (0 for the full term)")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := homeinvest.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}

	m, err := homeinvest.NewMortgage(homeinvest.M(c.principal, "USD"), homeinvest.Percent(c.rate), c.years, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building mortgage: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.ScheduleMarkdown(m, c.payments))
	return subcommands.ExitSuccess
}
