// Command hic is the home investment calculator.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/homeinvest/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, handled before flag parsing. Complete exits the
	// process when invoked by the shell completion machinery.
	costsFlags := map[string]complete.Predictor{
		"csv":            predict.Files("*.csv"),
		"benchmark-rate": predict.Something,
		"benchmark-file": predict.Files("*.json"),
	}
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {Flags: costsFlags},
			"ledger": {Flags: map[string]complete.Predictor{"csv": predict.Files("*.csv")}},
			"schedule": {Flags: map[string]complete.Predictor{
				"principal": predict.Something,
				"rate":      predict.Something,
				"years":     predict.Something,
				"start":     predict.Something,
				"payments":  predict.Something,
			}},
			"assist": {Flags: costsFlags},
			"help":   {},
		},
	}
	completion.Complete("hic")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
