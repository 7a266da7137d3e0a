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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	filters filterFlags
	showBy  string
	export  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display aggregate tournament statistics" }
func (*summaryCmd) Usage() string {
	return `mtt summary [-file <csv>] [filters] [-show-by <period>] [-export <csv>]

  Displays overall profit, ROI and ITM rate over the filtered
  tournaments, with breakdowns by format and by buy-in tier. With
  -show-by, adds a breakdown by calendar period; -export writes those
  period rows to a CSV file.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filters.setFlags(f)
	f.StringVar(&c.showBy, "show-by", "none", "time breakdown period (none, day, week, month, quarter, year)")
	f.StringVar(&c.export, "export", "", "write the period breakdown to this CSV file")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var period tourney.Period
	withPeriods := c.showBy != "" && c.showBy != "none"
	if withPeriods {
		p, err := tourney.ParsePeriod(c.showBy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -show-by: %v\n", err)
			return subcommands.ExitUsageError
		}
		period = p
	}

	tournaments, err := c.filters.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(tournaments) == 0 {
		return noMatch()
	}

	data := &renderer.SummaryData{
		Overall: tourney.Summarize(tournaments),
		Formats: tourney.GroupByFormat(tournaments),
		Tiers:   tourney.GroupByBuyInTier(tournaments),
	}
	if withPeriods {
		data.Periods = tourney.GroupByPeriod(tournaments, period)
		data.PeriodLabel = period.String()
	}

	printMarkdown(renderer.SummaryMarkdown(data))

	if withPeriods && c.export != "" {
		if err := c.exportPeriods(data.Periods); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting periods: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Period breakdown exported to %s\n", c.export)
	}

	return subcommands.ExitSuccess
}

func (c *summaryCmd) exportPeriods(buckets []tourney.Bucket) error {
	f, err := os.Create(c.export)
	if err != nil {
		return err
	}
	defer f.Close()
	return tourney.EncodePeriods(f, buckets)
}
