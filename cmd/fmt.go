package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/grindstats/tourney"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	file string
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the CSV ledger in canonical form" }
func (*fmtCmd) Usage() string {
	return `mtt fmt [-file <csv>]

  Rewrites the ledger file canonically: rows sorted by date, amounts
  normalized to two decimals. Unparseable rows are dropped, with one
  warning each.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", defaultFile(), "path to the tournaments CSV file")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := tourney.EncodeLedger(&buf, ledger.Tournaments()); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.file, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d tournaments into %s", ledger.Len(), c.file)
	if dropped := len(ledger.Warnings()); dropped > 0 {
		fmt.Printf(" (%d unparseable rows dropped)", dropped)
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
