// Package cmd implements the CLI application to analyse a home investment.
package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/homeinvest"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&ledgerCmd{}, "reports")
	c.Register(&scheduleCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
}

// importCostsFile reads a cost set from a CSV file. Non-fatal import
// warnings are printed to stderr so data-quality issues stay auditable.
func importCostsFile(path string) (*homeinvest.CostSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open costs file %q: %w", path, err)
	}
	defer f.Close()

	set, warnings, err := homeinvest.ImportCosts(f)
	if err != nil {
		return nil, fmt.Errorf("cannot import costs file %q: %w", path, err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", path, w)
	}
	return set, nil
}

// benchmarkOptions resolves the benchmark flags into calculation options.
// An explicit -benchmark-rate wins over -benchmark-file.
func benchmarkOptions(rate float64, statsFile string) ([]homeinvest.CalcOption, error) {
	if rate != 0 {
		return []homeinvest.CalcOption{homeinvest.WithBenchmarkRate(homeinvest.Percent(rate))}, nil
	}
	if statsFile == "" {
		return nil, nil
	}
	f, err := os.Open(statsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open benchmark stats %q: %w", statsFile, err)
	}
	defer f.Close()

	p, err := homeinvest.BenchmarkRate(f, "")
	if err != nil {
		return nil, err
	}
	return []homeinvest.CalcOption{homeinvest.WithBenchmarkRate(p)}, nil
}
