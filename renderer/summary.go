// Package renderer turns tournament reports into markdown and
// terminal-ready tables.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/grindstats/tourney"
)

// SummaryData carries everything the summary report renders.
type SummaryData struct {
	Overall tourney.Summary
	Formats []tourney.Bucket
	Tiers   []tourney.Bucket

	// Periods is the optional time breakdown, nil when not requested.
	Periods     []tourney.Bucket
	PeriodLabel string
}

// SummaryMarkdown renders the full summary report to a markdown string.
func SummaryMarkdown(d *SummaryData) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := d.Overall
	doc.H1("Tournament Summary")
	doc.PlainText(fmt.Sprintf("Tournaments: %d", s.Count))
	doc.PlainText(fmt.Sprintf("ITM: %d (%s)", s.ITMCount, percentOrNA(s.ITMRate())))
	doc.PlainText(fmt.Sprintf("Buy-ins: %s, rake: %s, total invested: %s",
		s.TotalBuyIn, s.TotalRake, s.TotalCost))
	doc.PlainText(fmt.Sprintf("Winnings: %s", s.TotalResult))
	doc.PlainText(fmt.Sprintf("Profit: %s", s.Profit.SignedString()))
	doc.PlainText(fmt.Sprintf("ROI: %s", percentOrNA(s.ROI())))
	doc.PlainText(fmt.Sprintf("Avg profit: %s (stddev %s), best %s, worst %s",
		s.AvgProfit.SignedString(), s.ProfitStdDev, s.BestProfit.SignedString(), s.WorstProfit.SignedString()))

	doc.H2("By Format")
	doc.Table(bucketTable(d.Formats, "Format"))

	doc.H2("By Buy-in Tier")
	doc.Table(bucketTable(d.Tiers, "Tier"))

	if d.Periods != nil {
		doc.H2(fmt.Sprintf("By %s", d.PeriodLabel))
		doc.Table(bucketTable(d.Periods, "Period"))
	}

	return doc.String()
}

// bucketTable lays out grouped summaries, one bucket per row.
func bucketTable(buckets []tourney.Bucket, label string) md.TableSet {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Label,
			fmt.Sprintf("%d", b.Summary.Count),
			percentOrNA(b.Summary.ITMRate()),
			percentOrNA(b.Summary.ROI()),
			b.Summary.Profit.SignedString(),
		})
	}
	return md.TableSet{
		Header: []string{label, "Count", "ITM", "ROI", "Profit"},
		Rows:   rows,
	}
}

func percentOrNA(p tourney.Percent, ok bool) string {
	if !ok {
		return "n/a"
	}
	return p.String()
}
