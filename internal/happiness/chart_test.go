package happiness

import (
	"errors"
	"testing"
)

func TestTrendChart(t *testing.T) {
	d := New([]Record{
		{Country: "Mongolia", Year: 2016, LifeLadder: v(5.0)},
		{Country: "Mongolia", Year: 2015, LifeLadder: v(4.5)},
		{Country: "Finland", Year: 2015, LifeLadder: v(7.5)},
		{Country: "Finland", Year: 2016, LifeLadder: Float{}},
	})

	chart, err := TrendChart(d.All(), MetricLifeLadder)
	if err != nil {
		t.Fatalf("TrendChart() error = %v", err)
	}

	if chart.ChartType != "line" {
		t.Errorf("ChartType = %q, want line", chart.ChartType)
	}
	if chart.Title != "Life Ladder Trends" {
		t.Errorf("Title = %q, want %q", chart.Title, "Life Ladder Trends")
	}
	if len(chart.Series) != 2 {
		t.Fatalf("len(Series) = %d, want 2", len(chart.Series))
	}

	// Series appear in view order, points sorted by year.
	mongolia := chart.Series[0]
	if mongolia.Name != "Mongolia" {
		t.Errorf("Series[0].Name = %q, want Mongolia", mongolia.Name)
	}
	if len(mongolia.Data) != 2 {
		t.Fatalf("len(Series[0].Data) = %d, want 2", len(mongolia.Data))
	}
	if mongolia.Data[0].Label != "2015" || mongolia.Data[1].Label != "2016" {
		t.Errorf("point order = %q, %q, want 2015, 2016",
			mongolia.Data[0].Label, mongolia.Data[1].Label)
	}

	// Finland's 2016 value is missing and must be dropped.
	finland := chart.Series[1]
	if len(finland.Data) != 1 {
		t.Errorf("len(Series[1].Data) = %d, want 1 (missing point skipped)", len(finland.Data))
	}
}

func TestTrendChartUnknownMetric(t *testing.T) {
	d := testDataset()

	_, err := TrendChart(d.All(), Metric("nope"))
	if !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("TrendChart() error = %v, want ErrUnknownMetric", err)
	}
}

func TestComparisonChart(t *testing.T) {
	d := New([]Record{
		{Country: "Mongolia", Year: 2015, LifeLadder: v(4.5), LogGDP: v(9.39), SocialSupport: v(0.94), LifeExpectancy: v(61.4)},
		{Country: "Finland", Year: 2016, LifeLadder: v(7.6), LogGDP: Float{}, SocialSupport: v(0.95), LifeExpectancy: v(71.2)},
	})

	chart := ComparisonChart(d.All())

	if chart.ChartType != "bar" {
		t.Errorf("ChartType = %q, want bar", chart.ChartType)
	}
	if len(chart.Series) != MetricCount() {
		t.Fatalf("len(Series) = %d, want %d", len(chart.Series), MetricCount())
	}

	for _, series := range chart.Series {
		if len(series.Data) != 2 {
			t.Fatalf("series %q has %d points, want 2 (groups stay aligned)",
				series.Name, len(series.Data))
		}
		if got := series.Data[0].Label; got != "Mongolia (2015)" {
			t.Errorf("label = %q, want %q", got, "Mongolia (2015)")
		}
		if got := series.Data[1].Label; got != "Finland (2016)" {
			t.Errorf("label = %q, want %q", got, "Finland (2016)")
		}
	}

	// The missing Log GDP value renders as a zero-valued point.
	for _, series := range chart.Series {
		if series.Name == "Log GDP per capita" && series.Data[1].Value != 0 {
			t.Errorf("missing value rendered as %v, want 0", series.Data[1].Value)
		}
	}
}

func TestMapChart(t *testing.T) {
	d := New([]Record{
		{Country: "Finland", Year: 2022, LifeLadder: v(7.729)},
		{Country: "Mongolia", Year: 2022, LifeLadder: v(5.578)},
		{Country: "Afghanistan", Year: 2022, LifeLadder: v(1.281)},
		{Country: "Japan", Year: 2021, LifeLadder: v(6.039)},
		{Country: "Zimbabwe", Year: 2022, LifeLadder: Float{}},
	})

	chart := d.MapChart(2022, 2.0, 10.0)

	if chart.ChartType != "choropleth" {
		t.Errorf("ChartType = %q, want choropleth", chart.ChartType)
	}
	if chart.Title != "Happiness Scores Worldwide (2022)" {
		t.Errorf("Title = %q, want year 2022 in title", chart.Title)
	}
	if len(chart.Series) != 1 {
		t.Fatalf("len(Series) = %d, want 1", len(chart.Series))
	}

	// Japan is from 2021, Afghanistan below the score floor, Zimbabwe missing.
	data := chart.Series[0].Data
	if len(data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(data))
	}
	if data[0].Label != "Finland" || data[1].Label != "Mongolia" {
		t.Errorf("order = %q, %q, want Finland, Mongolia (descending score)",
			data[0].Label, data[1].Label)
	}
	if data[0].Value != 7.73 {
		t.Errorf("Finland value = %v, want 7.73 (rounded)", data[0].Value)
	}
}

func TestAssignColorsCycle(t *testing.T) {
	colors := assignColors(len(defaultColors) + 2)
	if colors[0] != colors[len(defaultColors)] {
		t.Error("palette does not cycle after exhaustion")
	}
}
