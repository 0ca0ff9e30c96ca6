// Package charts renders the aggregated activity summaries as an HTML page
// of echarts visualizations: distance and calories per activity type as bar
// charts, and the monthly distance trend as a line chart.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/KojotMaciek/activitiesmonitor/internal/service"
)

func Render(w io.Writer, summary service.Summary) error {
	page := components.NewPage()
	page.PageTitle = "Activity charts"
	page.AddCharts(
		distanceByActivityChart(summary),
		caloriesByActivityChart(summary),
		monthlyTrendChart(summary),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts page: %w", err)
	}
	return nil
}

func distanceByActivityChart(summary service.Summary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Distance by activity",
			Subtitle: fmt.Sprintf("%d records", summary.Records),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "Kilometers",
			NameLocation: "middle",
			NameGap:      50,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
	)
	bar.SetXAxis(activityLabels(summary.DistanceByActivity))
	bar.AddSeries("km", barItems(summary.DistanceByActivity))
	return bar
}

func caloriesByActivityChart(summary service.Summary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title: "Calories by activity",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "kcal",
			NameLocation: "middle",
			NameGap:      50,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
	)
	bar.SetXAxis(activityLabels(summary.CaloriesByActivity))
	bar.AddSeries("kcal", barItems(summary.CaloriesByActivity))
	return bar
}

func monthlyTrendChart(summary service.Summary) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title: "Distance trend by month",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "Kilometers",
			NameLocation: "middle",
			NameGap:      50,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	months := make([]string, 0, len(summary.MonthlyDistance))
	values := make([]opts.LineData, 0, len(summary.MonthlyDistance))
	for _, m := range summary.MonthlyDistance {
		months = append(months, m.Month)
		values = append(values, opts.LineData{Value: m.DistanceKm})
	}
	line.SetXAxis(months)
	line.AddSeries("km", values)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

func activityLabels(totals []service.ActivityTotal) []string {
	labels := make([]string, 0, len(totals))
	for _, t := range totals {
		labels = append(labels, string(t.Type))
	}
	return labels
}

func barItems(totals []service.ActivityTotal) []opts.BarData {
	items := make([]opts.BarData, 0, len(totals))
	for _, t := range totals {
		items = append(items, opts.BarData{Value: t.Total})
	}
	return items
}
