// Command mtt tracks poker tournament results kept in a CSV ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	log "github.com/sirupsen/logrus"

	"github.com/grindstats/tourney/cmd"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	// Optional .env file can seed defaults like MTT_FILE.
	godotenv.Load()

	completion().Complete("mtt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion tree for the mtt command.
func completion() *complete.Command {
	filters := map[string]complete.Predictor{
		"file":     predict.Files("*.csv"),
		"from":     predict.Something,
		"to":       predict.Something,
		"room":     predict.Something,
		"format":   predict.Set{"MTT", "SnG", "PKO"},
		"currency": predict.Set{"USD", "EUR", "CNY"},
	}
	withFilters := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := make(map[string]complete.Predictor, len(filters)+len(extra))
		for k, v := range filters {
			flags[k] = v
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"summary": {Flags: withFilters(map[string]complete.Predictor{
				"show-by": predict.Set{"none", "day", "week", "month", "quarter", "year"},
				"export":  predict.Files("*.csv"),
			})},
			"add": {Flags: map[string]complete.Predictor{
				"file":     predict.Files("*.csv"),
				"date":     predict.Something,
				"room":     predict.Something,
				"name":     predict.Something,
				"buy-in":   predict.Something,
				"rake":     predict.Something,
				"currency": predict.Set{"USD", "EUR", "CNY"},
				"result":   predict.Something,
				"place":    predict.Something,
				"players":  predict.Something,
				"format":   predict.Set{"MTT", "SnG", "PKO"},
				"notes":    predict.Something,
			}},
			"graph": {Flags: withFilters(map[string]complete.Predictor{
				"metric":         predict.Set{"profit", "bankroll"},
				"start-bankroll": predict.Something,
				"output":         predict.Files("*.png"),
			})},
			"details": {Flags: withFilters(map[string]complete.Predictor{
				"limit": predict.Something,
			})},
			"fmt": {Flags: map[string]complete.Predictor{
				"file": predict.Files("*.csv"),
			}},
		},
	}
}
