package util

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"crawl-server/models"
)

// PlotRoute renders an HTML bar chart of the per-leg driving minutes and
// kilometres of a route.
func PlotRoute(w io.Writer, route models.Route) error {
	legNames := make([]string, 0, len(route.Legs))
	minutes := make([]opts.BarData, 0, len(route.Legs))
	kilometres := make([]opts.BarData, 0, len(route.Legs))

	for i, leg := range route.Legs {
		legNames = append(legNames, fmt.Sprintf("Stop %d → %d", i+1, i+2))
		minutes = append(minutes, opts.BarData{
			Name:  leg.DurationText,
			Value: math.Round(float64(leg.DurationSeconds) / 60),
		})
		kilometres = append(kilometres, opts.BarData{
			Name:  leg.DistanceText,
			Value: math.Round(float64(leg.DistanceMeters)/100) / 10,
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Bar Crawl Route",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Bar Crawl Route",
			Subtitle: fmt.Sprintf("Total: %s, %s", route.TotalDurationText, route.TotalDistanceText),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	labels := charts.WithLabelOpts(opts.Label{
		Show:     opts.Bool(true),
		Position: "top",
	})
	bar.SetXAxis(legNames).
		AddSeries("Minutes", minutes, labels).
		AddSeries("Kilometres", kilometres, labels)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render route chart: %w", err)
	}
	return nil
}
