package tourney

import (
	"fmt"
	"sort"
)

// Warning describes a CSV row that could not be fully parsed. The row
// is excluded from aggregation but the batch continues.
type Warning struct {
	Line int // 1-based line in the CSV file, header included
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %v", w.Line, w.Err)
}

// Ledger is the in-memory record set of one command invocation: the
// tournaments decoded from the CSV file plus the warnings collected
// while decoding.
type Ledger struct {
	tournaments []Tournament
	warnings    []Warning
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Append adds tournaments to the ledger.
func (l *Ledger) Append(ts ...Tournament) { l.tournaments = append(l.tournaments, ts...) }

// warn records a row-level warning.
func (l *Ledger) warn(line int, err error) {
	l.warnings = append(l.warnings, Warning{Line: line, Err: err})
}

// Len returns the number of valid records in the ledger.
func (l *Ledger) Len() int { return len(l.tournaments) }

// Tournaments returns all valid records in file order.
func (l *Ledger) Tournaments() []Tournament { return l.tournaments }

// Warnings returns the rows skipped while decoding.
func (l *Ledger) Warnings() []Warning { return l.warnings }

// Filter returns the records matching f, in file order.
func (l *Ledger) Filter(f Filter) []Tournament { return f.Apply(l.tournaments) }

// SortByDate sorts records chronologically, keeping the file order of
// same-day entries (re-entries are legal and must stay in order).
func SortByDate(ts []Tournament) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Date.Before(ts[j].Date) })
}
