package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/grindstats/tourney"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	file     string
	date     string
	room     string
	name     string
	buyIn    string
	rake     string
	currency string
	result   string
	place    int
	players  int
	format   string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record one tournament in the CSV ledger" }
func (*addCmd) Usage() string {
	return `mtt add -name <name> [-date <date>] [-buy-in <amount>] [-rake <amount>] [-result <amount>] [...]

  Appends one tournament to the CSV file, creating it with a header
  row when missing.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", defaultFile(), "path to the tournaments CSV file")
	f.StringVar(&c.date, "date", "", "tournament date (defaults to today)")
	f.StringVar(&c.room, "room", "PokerOK", "poker room")
	f.StringVar(&c.name, "name", "", "tournament name (required)")
	f.StringVar(&c.buyIn, "buy-in", "0", "buy-in, rake excluded")
	f.StringVar(&c.rake, "rake", "0", "rake")
	f.StringVar(&c.currency, "currency", tourney.DefaultCurrency, "currency code")
	f.StringVar(&c.result, "result", "0", "prize won, 0 when not in the money")
	f.IntVar(&c.place, "place", 0, "finishing place")
	f.IntVar(&c.players, "players", 0, "number of entrants")
	f.StringVar(&c.format, "format", "MTT", "tournament format (MTT, SnG, PKO...)")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := c.tournament()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := appendTournament(c.file, t); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Println("Tournament recorded.")
	fmt.Printf("Date: %s\n", t.Date)
	fmt.Printf("Name: %s (%s, %s)\n", t.Name, t.Room, t.Format)
	fmt.Printf("Cost: %s (%s + %s rake)\n", t.Cost(), t.BuyIn, t.Rake)
	fmt.Printf("Result: %s\n", t.Result)
	fmt.Printf("Profit: %s\n", t.Profit().SignedString())
	return subcommands.ExitSuccess
}

// tournament validates the flags and builds the record to append.
func (c *addCmd) tournament() (tourney.Tournament, error) {
	var t tourney.Tournament

	if strings.TrimSpace(c.name) == "" {
		return t, fmt.Errorf("-name is required")
	}

	on := tourney.Today()
	if c.date != "" {
		var err error
		on, err = tourney.ParseDate(c.date)
		if err != nil {
			return t, err
		}
	}

	currency := strings.ToUpper(c.currency)
	buyIn, err := tourney.ParseMoney(c.buyIn, currency)
	if err != nil {
		return t, fmt.Errorf("-buy-in: %w", err)
	}
	rake, err := tourney.ParseMoney(c.rake, currency)
	if err != nil {
		return t, fmt.Errorf("-rake: %w", err)
	}
	result, err := tourney.ParseMoney(c.result, currency)
	if err != nil {
		return t, fmt.Errorf("-result: %w", err)
	}

	return tourney.Tournament{
		Date:     on,
		Room:     c.room,
		Name:     strings.TrimSpace(c.name),
		BuyIn:    buyIn,
		Rake:     rake,
		Currency: currency,
		Result:   result,
		Place:    c.place,
		Players:  c.players,
		Format:   c.format,
		Notes:    c.notes,
	}, nil
}

// appendTournament appends a single record to the ledger file,
// creating it with a header when it does not exist yet.
func appendTournament(filename string, t tourney.Tournament) subcommands.ExitStatus {
	_, statErr := os.Stat(filename)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tourney.EncodeTournament(f, t, isNew); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
