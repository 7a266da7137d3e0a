package tourney

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// CSVHeader is the exact header row of the ledger file.
const CSVHeader = "date,room,name,buy_in,rake,currency,result,place,players,format,notes"

// DefaultCurrency is assumed when a row carries no currency code.
const DefaultCurrency = "USD"

// tournamentRow is the CSV shape of a record. Every field is a string
// so that one malformed cell degrades to a row warning instead of
// failing the whole batch.
type tournamentRow struct {
	Date     string `csv:"date"`
	Room     string `csv:"room"`
	Name     string `csv:"name"`
	BuyIn    string `csv:"buy_in"`
	Rake     string `csv:"rake"`
	Currency string `csv:"currency"`
	Result   string `csv:"result"`
	Place    string `csv:"place"`
	Players  string `csv:"players"`
	Format   string `csv:"format"`
	Notes    string `csv:"notes"`
}

// DecodeLedger reads the whole CSV stream into a Ledger. Rows with a
// malformed date or numeric field are skipped and recorded as
// warnings; a broken header or stream is an error.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var rows []tournamentRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading tournaments CSV: %w", err)
	}

	ledger := NewLedger()
	for i, row := range rows {
		line := i + 2 // 1-based, after the header
		t, err := decodeRow(row)
		if err != nil {
			ledger.warn(line, err)
			continue
		}
		ledger.Append(t)
	}
	return ledger, nil
}

// decodeRow converts one CSV row into a Tournament.
func decodeRow(row tournamentRow) (Tournament, error) {
	on, err := time.Parse(readDateFormat, strings.TrimSpace(row.Date))
	if err != nil {
		return Tournament{}, fmt.Errorf("invalid date %q want format %q", row.Date, DateFormat)
	}

	currency := strings.ToUpper(strings.TrimSpace(row.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	buyIn, err := ParseMoney(strings.TrimSpace(row.BuyIn), currency)
	if err != nil {
		return Tournament{}, fmt.Errorf("buy_in: %w", err)
	}
	rake, err := ParseMoney(strings.TrimSpace(row.Rake), currency)
	if err != nil {
		return Tournament{}, fmt.Errorf("rake: %w", err)
	}
	result, err := ParseMoney(strings.TrimSpace(row.Result), currency)
	if err != nil {
		return Tournament{}, fmt.Errorf("result: %w", err)
	}
	place, err := parseCount(row.Place)
	if err != nil {
		return Tournament{}, fmt.Errorf("place: %w", err)
	}
	players, err := parseCount(row.Players)
	if err != nil {
		return Tournament{}, fmt.Errorf("players: %w", err)
	}

	return Tournament{
		Date:     NewDate(on.Date()),
		Room:     strings.TrimSpace(row.Room),
		Name:     strings.TrimSpace(row.Name),
		BuyIn:    buyIn,
		Rake:     rake,
		Currency: currency,
		Result:   result,
		Place:    place,
		Players:  players,
		Format:   strings.TrimSpace(row.Format),
		Notes:    strings.TrimSpace(row.Notes),
	}, nil
}

// parseCount parses a non-negative integer cell, empty meaning zero.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// encodeRow converts a Tournament into its canonical CSV shape:
// ISO date and two-decimal amounts.
func encodeRow(t Tournament) tournamentRow {
	return tournamentRow{
		Date:     t.Date.String(),
		Room:     t.Room,
		Name:     t.Name,
		BuyIn:    t.BuyIn.StringFixed(),
		Rake:     t.Rake.StringFixed(),
		Currency: t.Currency,
		Result:   t.Result.StringFixed(),
		Place:    strconv.Itoa(t.Place),
		Players:  strconv.Itoa(t.Players),
		Format:   t.Format,
		Notes:    t.Notes,
	}
}

// EncodeTournament appends a single record to w. withHeader writes the
// header row first, for a file created by this append.
func EncodeTournament(w io.Writer, t Tournament, withHeader bool) error {
	rows := []tournamentRow{encodeRow(t)}
	if withHeader {
		return gocsv.Marshal(&rows, w)
	}
	return gocsv.MarshalWithoutHeaders(&rows, w)
}

// EncodeLedger writes the full record set to w in canonical form:
// header row, records sorted by date, amounts normalized.
func EncodeLedger(w io.Writer, ts []Tournament) error {
	sorted := make([]Tournament, len(ts))
	copy(sorted, ts)
	SortByDate(sorted)

	rows := make([]tournamentRow, 0, len(sorted))
	for _, t := range sorted {
		rows = append(rows, encodeRow(t))
	}
	return gocsv.Marshal(&rows, w)
}

// periodRow is the CSV shape of one exported period bucket.
type periodRow struct {
	Period string `csv:"period"`
	Count  int    `csv:"count"`
	ITMPct string `csv:"itm_pct"`
	ROIPct string `csv:"roi_pct"`
	Profit string `csv:"profit"`
}

// EncodePeriods exports period buckets as CSV, one row per bucket.
// Undefined percentages are written as "n/a".
func EncodePeriods(w io.Writer, buckets []Bucket) error {
	rows := make([]periodRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, periodRow{
			Period: b.Label,
			Count:  b.Summary.Count,
			ITMPct: percentCell(b.Summary.ITMRate()),
			ROIPct: percentCell(b.Summary.ROI()),
			Profit: b.Summary.Profit.StringFixed(),
		})
	}
	return gocsv.Marshal(&rows, w)
}

func percentCell(p Percent, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", float64(p))
}
