package tourney

// Tournament is a single tournament result, one row of the CSV ledger.
// Records are immutable once parsed; everything derived (cost, profit,
// ITM) is computed on demand and never stored.
type Tournament struct {
	Date     Date
	Room     string
	Name     string
	BuyIn    Money // entry fee, rake excluded
	Rake     Money
	Currency string
	Result   Money // prize won, zero when busting out of the money
	Place    int
	Players  int
	Format   string // MTT, SnG, PKO...
	Notes    string
}

// Cost is the full price of the seat: buy-in plus rake.
func (t Tournament) Cost() Money { return t.BuyIn.Add(t.Rake) }

// Profit is the prize minus the cost, negative on a losing tournament.
func (t Tournament) Profit() Money { return t.Result.Sub(t.Cost()) }

// ITM reports whether the tournament finished in the money.
func (t Tournament) ITM() bool { return t.Result.IsPositive() }
