package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/grindstats/tourney"
	"github.com/grindstats/tourney/renderer"
)

// graphCmd holds the flags for the 'graph' subcommand.
type graphCmd struct {
	filters       filterFlags
	metric        string
	startBankroll string
	output        string
}

func (*graphCmd) Name() string     { return "graph" }
func (*graphCmd) Synopsis() string { return "chart cumulative profit or bankroll over time" }
func (*graphCmd) Usage() string {
	return `mtt graph [filters] [-metric profit|bankroll] [-start-bankroll <amount>] [-output <png>]

  Charts the cumulative series of the filtered tournaments. Without
  -output the chart is drawn in the terminal; with -output it is saved
  as a PNG file. The bankroll metric requires -start-bankroll.
`
}

func (c *graphCmd) SetFlags(f *flag.FlagSet) {
	c.filters.setFlags(f)
	f.StringVar(&c.metric, "metric", "profit", "series metric: profit or bankroll")
	f.StringVar(&c.startBankroll, "start-bankroll", "", "starting bankroll (required with -metric bankroll)")
	f.StringVar(&c.output, "output", "", "write the chart as PNG to this file")
}

func (c *graphCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	metric, err := tourney.ParseMetric(c.metric)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -metric: %v\n", err)
		return subcommands.ExitUsageError
	}

	var start *tourney.Money
	if c.startBankroll != "" {
		m, err := tourney.ParseMoney(c.startBankroll, c.filters.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -start-bankroll: %v\n", err)
			return subcommands.ExitUsageError
		}
		start = &m
	}

	tournaments, err := c.filters.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(tournaments) == 0 {
		return noMatch()
	}

	series, err := tourney.CumulativeSeries(tournaments, metric, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	title := fmt.Sprintf("Cumulative %s", metric)
	if c.output == "" {
		fmt.Print(renderer.AsciiChart(series, title))
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := renderer.ChartPNG(out, series, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart saved to %s\n", c.output)
	return subcommands.ExitSuccess
}
