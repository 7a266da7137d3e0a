package renderer

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/grindstats/tourney"
)

// DetailsTable writes a chronological listing of tournaments as a
// plain terminal table.
func DetailsTable(w io.Writer, ts []tourney.Tournament) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Name", "Room", "Cost", "Result", "Profit", "Place", "Players", "Format"})
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)

	for _, t := range ts {
		table.Append([]string{
			t.Date.String(),
			clip(t.Name, 28),
			t.Room,
			t.Cost().StringFixed(),
			t.Result.StringFixed(),
			t.Profit().StringFixed(),
			fmt.Sprintf("%d", t.Place),
			fmt.Sprintf("%d", t.Players),
			t.Format,
		})
	}
	table.Render()
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
