package happiness

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ChartConfig is a render-ready chart description. The frontend draws it
// without recomputing anything.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "line", "bar", "choropleth"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries is one data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is a single labeled data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// TrendChart builds a line chart of one metric over years, one series per
// country in the view. Records with a missing value are skipped. Within a
// series the points are sorted by year; series appear in view order.
func TrendChart(view View, metric Metric) (*ChartConfig, error) {
	def, ok := GetMetric(metric)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	type point struct {
		year  int
		value float64
	}
	byCountry := make(map[string][]point)
	var order []string

	for i := 0; i < view.Len(); i++ {
		rec := view.Record(i)
		v := def.Value(rec)
		if !v.Valid {
			continue
		}
		if _, seen := byCountry[rec.Country]; !seen {
			order = append(order, rec.Country)
		}
		byCountry[rec.Country] = append(byCountry[rec.Country], point{rec.Year, v.Float64})
	}

	config := &ChartConfig{
		ChartType:  "line",
		Title:      def.Label + " Trends",
		XAxis:      "Year",
		YAxis:      def.Label,
		ShowLegend: true,
		ShowGrid:   true,
	}

	for i, country := range order {
		pts := byCountry[country]
		sort.Slice(pts, func(a, b int) bool { return pts[a].year < pts[b].year })

		data := make([]ChartPoint, len(pts))
		for j, p := range pts {
			data[j] = ChartPoint{Label: strconv.Itoa(p.year), Value: roundTo2(p.value)}
		}
		config.Series = append(config.Series, ChartSeries{
			Name:  country,
			Data:  data,
			Color: defaultColors[i%len(defaultColors)],
		})
	}

	config.Colors = assignColors(len(config.Series))
	return config, nil
}

// ComparisonChart builds a grouped bar chart comparing every registered
// metric side by side, one bar group per "Country (Year)" in view order.
func ComparisonChart(view View) *ChartConfig {
	config := &ChartConfig{
		ChartType:  "bar",
		Title:      "Comparison of Key Metrics Across Countries and Years",
		XAxis:      "Country (Year)",
		YAxis:      "Metric Value",
		ShowLegend: true,
		ShowGrid:   true,
	}

	metrics := Metrics()
	for i, def := range metrics {
		series := ChartSeries{
			Name:  def.Label,
			Color: defaultColors[i%len(defaultColors)],
		}
		for j := 0; j < view.Len(); j++ {
			rec := view.Record(j)
			label := fmt.Sprintf("%s (%d)", rec.Country, rec.Year)
			v := def.Value(rec)
			if !v.Valid {
				// Keep bar groups aligned across series.
				series.Data = append(series.Data, ChartPoint{Label: label})
				continue
			}
			series.Data = append(series.Data, ChartPoint{Label: label, Value: roundTo2(v.Float64)})
		}
		config.Series = append(config.Series, series)
	}

	config.Colors = assignColors(len(config.Series))
	return config
}

// MapChart builds the choropleth feed: every country's Life Ladder score for
// one year, restricted to scores inside [scoreMin, scoreMax]. Countries with
// a missing score for that year are omitted.
func (d *Dataset) MapChart(year int, scoreMin, scoreMax float64) *ChartConfig {
	series := ChartSeries{Name: "Life Ladder"}

	for _, rec := range d.records {
		if rec.Year != year || !rec.LifeLadder.Valid {
			continue
		}
		score := rec.LifeLadder.Float64
		if score < scoreMin || score > scoreMax {
			continue
		}
		series.Data = append(series.Data, ChartPoint{Label: rec.Country, Value: roundTo2(score)})
	}

	sort.Slice(series.Data, func(i, j int) bool {
		return series.Data[i].Value > series.Data[j].Value
	})

	return &ChartConfig{
		ChartType:  "choropleth",
		Title:      fmt.Sprintf("Happiness Scores Worldwide (%d)", year),
		Series:     []ChartSeries{series},
		ShowLegend: false,
		ShowGrid:   false,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}

// roundTo2 rounds to 2 decimal places for display values.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
