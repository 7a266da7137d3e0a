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

// detailsCmd holds the flags for the 'details' subcommand.
type detailsCmd struct {
	filters filterFlags
	limit   int
}

func (*detailsCmd) Name() string     { return "details" }
func (*detailsCmd) Synopsis() string { return "list tournaments chronologically" }
func (*detailsCmd) Usage() string {
	return `mtt details [filters] [-limit <n>]

  Lists the filtered tournaments in chronological order, one row per
  tournament with its cost, result and profit.
`
}

func (c *detailsCmd) SetFlags(f *flag.FlagSet) {
	c.filters.setFlags(f)
	f.IntVar(&c.limit, "limit", 0, "show at most n tournaments (0 means all)")
}

func (c *detailsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tournaments, err := c.filters.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(tournaments) == 0 {
		return noMatch()
	}

	tourney.SortByDate(tournaments)
	if c.limit > 0 && c.limit < len(tournaments) {
		tournaments = tournaments[:c.limit]
	}

	renderer.DetailsTable(os.Stdout, tournaments)
	return subcommands.ExitSuccess
}
