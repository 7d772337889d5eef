// Package report renders the derived activity statistics as a
// self-contained HTML page of charts.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lildude/stravastats/internal/analysis"
)

// Report holds the derived views to render: total distance per day, a count
// per activity type and the estimated fastest times per target distance.
type Report struct {
	Days   []analysis.DayDistance
	Types  map[string]int
	Splits []analysis.SplitEstimate
}

// Render writes all charts to w as one HTML page.
func (r *Report) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Strava activity statistics"
	page.AddCharts(r.dailyDistanceChart(), r.typeCountsChart(), r.splitsChart())

	return page.Render(w)
}

// WriteFile renders the report to the given path.
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := r.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering report: %w", err)
	}

	return f.Close()
}

func (r *Report) dailyDistanceChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Daily distance"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "km"}),
	)

	dates := make([]string, 0, len(r.Days))
	values := make([]opts.LineData, 0, len(r.Days))
	for _, d := range r.Days {
		dates = append(dates, d.Date.Format("2006-01-02"))
		values = append(values, opts.LineData{Value: round2(d.Kilometres)})
	}
	line.SetXAxis(dates).AddSeries("Distance", values)

	return line
}

func (r *Report) typeCountsChart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Activity types"}))

	types := SortedTypes(r.Types)
	labels := make([]string, 0, len(types))
	values := make([]opts.BarData, 0, len(types))
	for _, typ := range types {
		labels = append(labels, PrettyLabel(typ))
		values = append(values, opts.BarData{Value: r.Types[typ]})
	}
	bar.SetXAxis(labels).AddSeries("Count", values)

	return bar
}

// SortedTypes returns the activity types busiest first, ties alphabetical,
// so charts and summaries are stable run to run.
func SortedTypes(counts map[string]int) []string {
	types := make([]string, 0, len(counts))
	for typ := range counts {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return types[i] < types[j]
	})

	return types
}

func (r *Report) splitsChart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Estimated fastest times",
			Subtitle: "Extrapolated from each activity's average pace, not true best efforts",
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "minutes"}),
	)

	labels := make([]string, 0, len(r.Splits))
	values := make([]opts.BarData, 0, len(r.Splits))
	for _, s := range r.Splits {
		if !s.OK {
			continue
		}
		labels = append(labels, formatTarget(s.TargetKm))
		values = append(values, opts.BarData{Value: round2(s.Estimate.Minutes())})
	}
	bar.SetXAxis(labels).AddSeries("Estimated time", values)

	return bar
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// PrettyLabel makes an API activity type readable on a chart axis, splitting
// CamelCase names: "VirtualRide" becomes "Virtual Ride".
func PrettyLabel(typ string) string {
	if typ == "" {
		return "Unknown"
	}

	runes := []rune(typ)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	return titleCaser.String(b.String())
}

func formatTarget(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64) + " km"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
