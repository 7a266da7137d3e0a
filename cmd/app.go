// Package cmd implements the mtt command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"

	"github.com/grindstats/tourney"
)

// DefaultFile is the ledger file used when neither the -file flag nor
// the MTT_FILE environment variable names one.
const DefaultFile = "tournaments.csv"

// Commands lists every mtt subcommand in display order.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&addCmd{},
	&graphCmd{},
	&detailsCmd{},
	&fmtCmd{},
}

// defaultFile resolves the ledger path default. As a short-lived CLI it
// is fine to read the environment at flag-definition time.
func defaultFile() string {
	if f := os.Getenv("MTT_FILE"); f != "" {
		return f
	}
	return DefaultFile
}

// filterFlags are the flags shared by every reading subcommand: the
// ledger file and the record filters.
type filterFlags struct {
	file     string
	from     string
	to       string
	room     string
	format   string
	currency string
}

func (c *filterFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", defaultFile(), "path to the tournaments CSV file")
	f.StringVar(&c.from, "from", "", "keep tournaments on or after this date (also relative, e.g. -1m)")
	f.StringVar(&c.to, "to", "", "keep tournaments on or before this date")
	f.StringVar(&c.room, "room", "", "keep tournaments of this room only")
	f.StringVar(&c.format, "format", "", "keep tournaments of this format only (MTT, SnG, PKO...)")
	f.StringVar(&c.currency, "currency", "", "keep tournaments in this currency only")
}

// filter builds the record filter from the parsed flags.
func (c *filterFlags) filter() (tourney.Filter, error) {
	var filter tourney.Filter
	if c.from != "" {
		from, err := tourney.ParseDate(c.from)
		if err != nil {
			return filter, fmt.Errorf("parsing -from: %w", err)
		}
		filter.Range.From = from
	}
	if c.to != "" {
		to, err := tourney.ParseDate(c.to)
		if err != nil {
			return filter, fmt.Errorf("parsing -to: %w", err)
		}
		filter.Range.To = to
	}
	filter.Room = c.room
	filter.Format = c.format
	filter.Currency = c.currency
	return filter, nil
}

// loadLedger opens and decodes the ledger file, logging one warning
// per unparseable row.
func loadLedger(filename string) (*tourney.Ledger, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file %q not found: pass -file or record a first tournament with 'mtt add'", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", filename, err)
	}
	defer f.Close()

	ledger, err := tourney.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", filename, err)
	}
	for _, w := range ledger.Warnings() {
		log.Warnf("%s: skipping %s", filename, w)
	}
	return ledger, nil
}

// load combines loadLedger and filtering for the common read path.
func (c *filterFlags) load() ([]tourney.Tournament, error) {
	filter, err := c.filter()
	if err != nil {
		return nil, err
	}
	ledger, err := loadLedger(c.file)
	if err != nil {
		return nil, err
	}
	return ledger.Filter(filter), nil
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when the terminal renderer fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// noMatch reports the empty-result condition: informational, not an error.
func noMatch() subcommands.ExitStatus {
	fmt.Println("No tournaments match the given filters.")
	return subcommands.ExitSuccess
}
