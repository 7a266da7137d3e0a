package tourney

import (
	"strings"
	"testing"
)

const sampleCSV = `date,room,name,buy_in,rake,currency,result,place,players,format,notes
2025-11-28,PokerOK,Daily Freezeout,5,0.5,USD,0,120,450,MTT,
2025-11-30,PokerOK,Sunday Special,10,1,USD,45,3,210,PKO,"deep run, final table"
`

func TestDecodeLedger(t *testing.T) {
	ledger, err := DecodeLedger(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", ledger.Len())
	}
	if len(ledger.Warnings()) != 0 {
		t.Fatalf("expected no warnings, got %v", ledger.Warnings())
	}

	got := ledger.Tournaments()[1]
	if got.Name != "Sunday Special" || got.Place != 3 || got.Players != 210 {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.Notes != "deep run, final table" {
		t.Errorf("quoted notes mangled: %q", got.Notes)
	}
	if !got.Profit().Equal(M(34, "USD")) {
		t.Errorf("Profit() = %s, want 34", got.Profit())
	}
}

func TestDecodeLedger_BadNumericRow(t *testing.T) {
	in := `date,room,name,buy_in,rake,currency,result,place,players,format,notes
2025-11-28,PokerOK,Good,5,0.5,USD,0,0,0,MTT,
2025-11-29,PokerOK,Bad,not-a-number,0.5,USD,0,0,0,MTT,
2025-11-30,PokerOK,Also Good,10,1,USD,45,0,0,MTT,
`
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	// The bad row is excluded from totals but produces exactly one warning.
	if ledger.Len() != 2 {
		t.Errorf("expected 2 valid records, got %d", ledger.Len())
	}
	if len(ledger.Warnings()) != 1 {
		t.Fatalf("expected exactly 1 warning, got %d: %v", len(ledger.Warnings()), ledger.Warnings())
	}
	w := ledger.Warnings()[0]
	if w.Line != 3 || !strings.Contains(w.Err.Error(), "buy_in") {
		t.Errorf("warning = %s, want buy_in failure on line 3", w)
	}

	s := Summarize(ledger.Tournaments())
	if !s.TotalBuyIn.Equal(M(15, "USD")) {
		t.Errorf("TotalBuyIn = %s, the bad row must not count", s.TotalBuyIn)
	}
}

func TestDecodeLedger_BadDateRow(t *testing.T) {
	in := `date,room,name,buy_in,rake,currency,result,place,players,format,notes
28/11/2025,PokerOK,Bad Date,5,0.5,USD,0,0,0,MTT,
`
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 0 || len(ledger.Warnings()) != 1 {
		t.Errorf("records = %d, warnings = %d, want 0 and 1", ledger.Len(), len(ledger.Warnings()))
	}
}

func TestDecodeLedger_Defaults(t *testing.T) {
	in := `date,room,name,buy_in,rake,currency,result,place,players,format,notes
2025-11-28,,No Frills,,,,,,,,
`
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("expected 1 record, got %d with warnings %v", ledger.Len(), ledger.Warnings())
	}
	got := ledger.Tournaments()[0]
	if got.Currency != "USD" {
		t.Errorf("empty currency should default to USD, got %q", got.Currency)
	}
	if !got.Cost().IsZero() || got.Place != 0 || got.Players != 0 {
		t.Errorf("empty numeric cells should be zero: %+v", got)
	}
}

func TestEncodeTournament_RoundTrip(t *testing.T) {
	original := record("2025-11-30", 10, 1, 45)
	original.Place = 3
	original.Players = 210
	original.Notes = "final table"

	var b strings.Builder
	if err := EncodeTournament(&b, original, true); err != nil {
		t.Fatalf("EncodeTournament() error = %v", err)
	}
	if !strings.HasPrefix(b.String(), CSVHeader) {
		t.Errorf("new file must start with the header, got %q", b.String())
	}

	ledger, err := DecodeLedger(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", ledger.Len())
	}
	got := ledger.Tournaments()[0]
	if got.Date != original.Date || !got.BuyIn.Equal(original.BuyIn) || got.Notes != original.Notes {
		t.Errorf("round trip mismatch: %+v != %+v", got, original)
	}
}

func TestEncodeTournament_AppendWithoutHeader(t *testing.T) {
	var b strings.Builder
	if err := EncodeTournament(&b, record("2025-11-30", 10, 1, 45), false); err != nil {
		t.Fatalf("EncodeTournament() error = %v", err)
	}
	if strings.Contains(b.String(), "buy_in") {
		t.Errorf("append mode must not repeat the header: %q", b.String())
	}
}

func TestEncodeLedger_Canonical(t *testing.T) {
	ts := []Tournament{
		record("2025-11-30", 10, 1, 45),
		record("2025-11-28", 5, 0.5, 0),
	}

	var b strings.Builder
	if err := EncodeLedger(&b, ts); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "2025-11-28") || !strings.HasPrefix(lines[2], "2025-11-30") {
		t.Errorf("rows must be sorted by date:\n%s", b.String())
	}
	if !strings.Contains(lines[1], "5.00,0.50") {
		t.Errorf("amounts must be normalized to two decimals: %q", lines[1])
	}
}

func TestEncodePeriods(t *testing.T) {
	buckets := GroupByPeriod([]Tournament{
		record("2025-11-28", 5, 0.5, 0),
		record("2025-12-01", 10, 1, 45),
	}, Monthly)

	var b strings.Builder
	if err := EncodePeriods(&b, buckets); err != nil {
		t.Fatalf("EncodePeriods() error = %v", err)
	}

	out := b.String()
	if !strings.HasPrefix(out, "period,count,itm_pct,roi_pct,profit") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "2025-11,1,0.00,-100.00,-5.50") {
		t.Errorf("missing November row:\n%s", out)
	}
	if !strings.Contains(out, "2025-12,1,100.00") {
		t.Errorf("missing December row:\n%s", out)
	}
}
