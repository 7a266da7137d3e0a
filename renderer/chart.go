package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/grindstats/tourney"
)

// AsciiChart renders a cumulative series as a terminal line chart.
func AsciiChart(series []tourney.Point, caption string) string {
	values := make([]float64, 0, len(series))
	for _, p := range series {
		values = append(values, p.Value.Float64())
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
	span := fmt.Sprintf("%s .. %s", series[0].Date, series[len(series)-1].Date)
	return graph + "\n" + span + "\n"
}

// ChartPNG renders a cumulative series as a PNG line chart.
func ChartPNG(w io.Writer, series []tourney.Point, title string) error {
	xs := make([]time.Time, 0, len(series))
	ys := make([]float64, 0, len(series))
	for _, p := range series {
		xs = append(xs, p.Date.Time())
		ys = append(ys, p.Value.Float64())
	}

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 480,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
