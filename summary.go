package tourney

import (
	"errors"
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
)

// Summary holds the aggregate statistics of a set of tournaments.
type Summary struct {
	Count    int
	ITMCount int

	TotalBuyIn  Money // buy-ins only, rake excluded
	TotalRake   Money
	TotalCost   Money // buy-ins plus rake
	TotalResult Money
	Profit      Money // TotalResult - TotalCost

	AvgProfit    Money // per-tournament mean profit
	ProfitStdDev Money
	BestProfit   Money
	WorstProfit  Money
}

// Summarize reduces a set of tournaments into its Summary. An empty
// set yields a zero summary with Count = 0, never an error.
func Summarize(ts []Tournament) Summary {
	var s Summary
	profits := make([]float64, 0, len(ts))
	for _, t := range ts {
		s.Count++
		if t.ITM() {
			s.ITMCount++
		}
		s.TotalBuyIn = s.TotalBuyIn.Add(t.BuyIn)
		s.TotalRake = s.TotalRake.Add(t.Rake)
		s.TotalResult = s.TotalResult.Add(t.Result)
		profits = append(profits, t.Profit().Float64())
	}
	s.TotalCost = s.TotalBuyIn.Add(s.TotalRake)
	s.Profit = s.TotalResult.Sub(s.TotalCost)

	if s.Count > 0 {
		currency := s.TotalCost.Currency()
		if mean, err := stats.Mean(profits); err == nil {
			s.AvgProfit = M(mean, currency)
		}
		if sd, err := stats.StandardDeviation(profits); err == nil {
			s.ProfitStdDev = M(sd, currency)
		}
		if best, err := stats.Max(profits); err == nil {
			s.BestProfit = M(best, currency)
		}
		if worst, err := stats.Min(profits); err == nil {
			s.WorstProfit = M(worst, currency)
		}
	}
	return s
}

// ROI is the return on investment: profit over total cost, as a
// percentage. It is undefined (ok = false) when nothing was invested.
func (s Summary) ROI() (p Percent, ok bool) {
	if !s.TotalCost.IsPositive() {
		return 0, false
	}
	roi := s.Profit.Decimal().Div(s.TotalCost.Decimal())
	return Percent(roi.InexactFloat64() * 100), true
}

// ITMRate is the share of tournaments that finished in the money. It
// is undefined (ok = false) on an empty set.
func (s Summary) ITMRate() (p Percent, ok bool) {
	if s.Count == 0 {
		return 0, false
	}
	return Percent(float64(s.ITMCount) / float64(s.Count) * 100), true
}

// Bucket is one row of a grouped report: a label, the records it
// holds, and their summary. Buckets are independent, there is no
// carry-over between them.
type Bucket struct {
	Label   string
	Records []Tournament
	Summary Summary
}

// GroupByPeriod buckets tournaments by the calendar period containing
// their date. Buckets are ordered chronologically by period start and
// empty periods are omitted, so the buckets partition the input set.
func GroupByPeriod(ts []Tournament, p Period) []Bucket {
	if len(ts) == 0 {
		return nil
	}
	span := NewRange(ts[0].Date, ts[0].Date)
	for _, t := range ts[1:] {
		if t.Date.Before(span.From) {
			span.From = t.Date
		}
		if t.Date.After(span.To) {
			span.To = t.Date
		}
	}

	var buckets []Bucket
	for r := range span.Periods(p) {
		var members []Tournament
		for _, t := range ts {
			if r.Contains(t.Date) {
				members = append(members, t)
			}
		}
		if len(members) == 0 {
			continue
		}
		buckets = append(buckets, Bucket{
			Label:   r.Identifier(p),
			Records: members,
			Summary: Summarize(members),
		})
	}
	return buckets
}

// GroupByFormat buckets tournaments by their format category, in order
// of first appearance. Records without a format land in "UNKNOWN".
func GroupByFormat(ts []Tournament) []Bucket {
	var order []string
	groups := make(map[string][]Tournament)
	for _, t := range ts {
		key := strings.ToUpper(t.Format)
		if key == "" {
			key = "UNKNOWN"
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}

	buckets := make([]Bucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, Bucket{
			Label:   key,
			Records: groups[key],
			Summary: Summarize(groups[key]),
		})
	}
	return buckets
}

// buyInTiers are the buy-in brackets of the tier breakdown, rake
// excluded. An upper bound of zero means no bound.
var buyInTiers = []struct {
	label string
	upTo  float64
}{
	{"0-5", 5},
	{"5-11", 11},
	{"11-33", 33},
	{"33+", 0},
}

// GroupByBuyInTier buckets tournaments by buy-in bracket. Empty tiers
// are omitted.
func GroupByBuyInTier(ts []Tournament) []Bucket {
	groups := make([][]Tournament, len(buyInTiers))
	for _, t := range ts {
		buyIn := t.BuyIn.Float64()
		tier := len(buyInTiers) - 1
		for i, b := range buyInTiers {
			if b.upTo > 0 && buyIn < b.upTo {
				tier = i
				break
			}
		}
		groups[tier] = append(groups[tier], t)
	}

	var buckets []Bucket
	for i, members := range groups {
		if len(members) == 0 {
			continue
		}
		buckets = append(buckets, Bucket{
			Label:   buyInTiers[i].label,
			Records: members,
			Summary: Summarize(members),
		})
	}
	return buckets
}

// Metric selects what a cumulative series accumulates.
type Metric int

const (
	// MetricProfit is the running sum of per-tournament profit.
	MetricProfit Metric = iota
	// MetricBankroll is profit accumulated on top of a starting bankroll.
	MetricBankroll
)

func (m Metric) String() string {
	if m == MetricBankroll {
		return "bankroll"
	}
	return "profit"
}

// ParseMetric parses a series metric name.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "profit":
		return MetricProfit, nil
	case "bankroll":
		return MetricBankroll, nil
	default:
		return MetricProfit, fmt.Errorf("unknown metric %q (want profit or bankroll)", s)
	}
}

// ErrMissingStartBankroll is returned when a bankroll series is
// requested without its starting value.
var ErrMissingStartBankroll = errors.New("the bankroll metric requires a starting bankroll")

// Point is one step of a cumulative series.
type Point struct {
	Date  Date
	Value Money
}

// CumulativeSeries sorts the tournaments chronologically and runs a
// prefix sum of profit. For MetricBankroll the sum starts at the
// caller-supplied value; omitting it is a configuration error.
func CumulativeSeries(ts []Tournament, metric Metric, start *Money) ([]Point, error) {
	var cumulative Money
	if metric == MetricBankroll {
		if start == nil {
			return nil, ErrMissingStartBankroll
		}
		cumulative = *start
	}

	sorted := make([]Tournament, len(ts))
	copy(sorted, ts)
	SortByDate(sorted)

	series := make([]Point, 0, len(sorted))
	for _, t := range sorted {
		cumulative = cumulative.Add(t.Profit())
		series = append(series, Point{Date: t.Date, Value: cumulative})
	}
	return series, nil
}
