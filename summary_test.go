package tourney

import (
	"errors"
	"testing"
)

func TestSummarize(t *testing.T) {
	ts := []Tournament{
		record("2025-11-28", 10, 1, 45),
		record("2025-11-29", 10, 1, 0),
		record("2025-11-30", 10, 1, 0),
	}
	s := Summarize(ts)

	if s.Count != 3 || s.ITMCount != 1 {
		t.Fatalf("Count = %d, ITMCount = %d, want 3 and 1", s.Count, s.ITMCount)
	}
	if !s.TotalBuyIn.Equal(M(30, "USD")) || !s.TotalRake.Equal(M(3, "USD")) {
		t.Errorf("TotalBuyIn = %s, TotalRake = %s", s.TotalBuyIn, s.TotalRake)
	}
	if !s.TotalCost.Equal(M(33, "USD")) || !s.TotalResult.Equal(M(45, "USD")) {
		t.Errorf("TotalCost = %s, TotalResult = %s", s.TotalCost, s.TotalResult)
	}
	// Reduction consistency: profit is always results minus costs.
	if !s.Profit.Equal(s.TotalResult.Sub(s.TotalCost)) {
		t.Errorf("Profit = %s, want TotalResult - TotalCost = %s", s.Profit, s.TotalResult.Sub(s.TotalCost))
	}

	itm, ok := s.ITMRate()
	if !ok || !itm.Equal(Percent(33.3333)) {
		t.Errorf("ITMRate() = %s ok=%v, want 33.33%% (1 of 3)", itm, ok)
	}
	roi, ok := s.ROI()
	if !ok || !roi.Equal(Percent(36.3636)) {
		t.Errorf("ROI() = %s ok=%v, want 36.36%%", roi, ok)
	}
	if !s.BestProfit.Equal(M(34, "USD")) || !s.WorstProfit.Equal(M(-11, "USD")) {
		t.Errorf("BestProfit = %s, WorstProfit = %s", s.BestProfit, s.WorstProfit)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if s.Count != 0 {
		t.Fatalf("Count = %d, want 0", s.Count)
	}
	if !s.Profit.IsZero() {
		t.Errorf("Profit = %s, want zero", s.Profit)
	}
	if _, ok := s.ROI(); ok {
		t.Error("ROI() must be undefined on an empty set")
	}
	if _, ok := s.ITMRate(); ok {
		t.Error("ITMRate() must be undefined on an empty set")
	}
}

func TestSummary_ROI_UndefinedOnZeroCost(t *testing.T) {
	// Freerolls only: winnings without any investment.
	s := Summarize([]Tournament{record("2025-11-30", 0, 0, 12)})
	if _, ok := s.ROI(); ok {
		t.Error("ROI() must be undefined when nothing was invested")
	}
	if itm, ok := s.ITMRate(); !ok || !itm.Equal(Percent(100)) {
		t.Errorf("ITMRate() = %s ok=%v, want 100%%", itm, ok)
	}
}

func TestGroupByPeriod_Partition(t *testing.T) {
	ts := []Tournament{
		record("2025-11-24", 5, 0.5, 0),  // week 48
		record("2025-11-30", 10, 1, 45),  // week 48
		record("2025-12-01", 10, 1, 0),   // week 49
		record("2025-12-15", 20, 2, 100), // week 51
	}

	for _, p := range []Period{Daily, Weekly, Monthly} {
		buckets := GroupByPeriod(ts, p)

		total := 0
		var prev string
		for _, b := range buckets {
			if b.Summary.Count != len(b.Records) {
				t.Errorf("%s bucket %q count %d != %d records", p, b.Label, b.Summary.Count, len(b.Records))
			}
			if b.Summary.Count == 0 {
				t.Errorf("%s bucket %q is empty, empty buckets must be omitted", p, b.Label)
			}
			if prev != "" && b.Label <= prev {
				t.Errorf("%s buckets out of order: %q after %q", p, b.Label, prev)
			}
			prev = b.Label
			total += b.Summary.Count
		}
		if total != len(ts) {
			t.Errorf("%s bucket counts sum to %d, want %d", p, total, len(ts))
		}
	}
}

func TestGroupByPeriod_WeekLabels(t *testing.T) {
	ts := []Tournament{
		record("2025-11-24", 5, 0, 0),
		record("2025-11-30", 5, 0, 0),
		record("2025-12-01", 5, 0, 0),
	}
	buckets := GroupByPeriod(ts, Weekly)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 week buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "2025-W48" || buckets[1].Label != "2025-W49" {
		t.Errorf("labels = %q, %q, want 2025-W48, 2025-W49", buckets[0].Label, buckets[1].Label)
	}
	if buckets[0].Summary.Count != 2 || buckets[1].Summary.Count != 1 {
		t.Errorf("counts = %d, %d, want 2 and 1", buckets[0].Summary.Count, buckets[1].Summary.Count)
	}
}

func TestGroupByFormat(t *testing.T) {
	mtt := record("2025-11-28", 10, 1, 0)
	sng := record("2025-11-29", 10, 1, 25)
	sng.Format = "SnG"
	unknown := record("2025-11-30", 10, 1, 0)
	unknown.Format = ""

	buckets := GroupByFormat([]Tournament{mtt, sng, unknown})
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "MTT" || buckets[1].Label != "SNG" || buckets[2].Label != "UNKNOWN" {
		t.Errorf("labels = %q, %q, %q", buckets[0].Label, buckets[1].Label, buckets[2].Label)
	}
}

func TestGroupByBuyInTier(t *testing.T) {
	tiers := func(buyIns ...float64) []string {
		var ts []Tournament
		for _, b := range buyIns {
			ts = append(ts, record("2025-11-30", b, 0, 0))
		}
		var labels []string
		for _, b := range GroupByBuyInTier(ts) {
			labels = append(labels, b.Label)
		}
		return labels
	}

	got := tiers(2, 5, 11, 33, 500)
	want := []string{"0-5", "5-11", "11-33", "33+"}
	if len(got) != len(want) {
		t.Fatalf("tiers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tiers = %v, want %v", got, want)
			break
		}
	}

	// Boundary values land in the upper tier.
	if got := tiers(5); got[0] != "5-11" {
		t.Errorf("buy-in 5 landed in %q, want 5-11", got[0])
	}
}

func TestCumulativeSeries_Profit(t *testing.T) {
	// Out-of-order input, profits 34 and -5.5.
	ts := []Tournament{
		record("2025-11-30", 10, 1, 45),
		record("2025-11-28", 5, 0.5, 0),
	}

	series, err := CumulativeSeries(ts, MetricProfit, nil)
	if err != nil {
		t.Fatalf("CumulativeSeries() error = %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[0].Date != MustParseDate("2025-11-28") || !series[0].Value.Equal(M(-5.5, "USD")) {
		t.Errorf("point 0 = (%s, %s), want (2025-11-28, -5.5)", series[0].Date, series[0].Value)
	}
	if series[1].Date != MustParseDate("2025-11-30") || !series[1].Value.Equal(M(28.5, "USD")) {
		t.Errorf("point 1 = (%s, %s), want (2025-11-30, 28.5)", series[1].Date, series[1].Value)
	}
}

func TestCumulativeSeries_Bankroll(t *testing.T) {
	ts := []Tournament{record("2025-11-28", 5, 0.5, 0)}

	if _, err := CumulativeSeries(ts, MetricBankroll, nil); !errors.Is(err, ErrMissingStartBankroll) {
		t.Fatalf("expected ErrMissingStartBankroll, got %v", err)
	}

	start := M(100, "USD")
	series, err := CumulativeSeries(ts, MetricBankroll, &start)
	if err != nil {
		t.Fatalf("CumulativeSeries() error = %v", err)
	}
	if !series[0].Value.Equal(M(94.5, "USD")) {
		t.Errorf("bankroll after first tournament = %s, want 94.50", series[0].Value)
	}
}

func TestParseMetric(t *testing.T) {
	if m, err := ParseMetric("profit"); err != nil || m != MetricProfit {
		t.Errorf("ParseMetric(profit) = %v, %v", m, err)
	}
	if m, err := ParseMetric(" Bankroll "); err != nil || m != MetricBankroll {
		t.Errorf("ParseMetric(Bankroll) = %v, %v", m, err)
	}
	if _, err := ParseMetric("equity"); err == nil {
		t.Error("ParseMetric(equity) expected an error")
	}
}
