package happiness

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes mean/min/max of a registered metric over a view.
//
// Records with a missing value for the metric are excluded. An empty view,
// or a view where every value is missing, yields Summary{Available: false};
// absence of data is a designed result, not an error. The only error
// condition is an unregistered metric key.
func Summarize(view View, metric Metric) (Summary, error) {
	def, ok := GetMetric(metric)
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	values := collect(view, def)
	if len(values) == 0 {
		return Summary{Metric: metric}, nil
	}

	return Summary{
		Metric:    metric,
		Mean:      stat.Mean(values, nil),
		Min:       floats.Min(values),
		Max:       floats.Max(values),
		Count:     len(values),
		Available: true,
	}, nil
}

// collect gathers the non-missing values of a metric across a view.
func collect(view View, def MetricDef) []float64 {
	values := make([]float64, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if v := def.Value(view.Record(i)); v.Valid {
			values = append(values, v.Float64)
		}
	}
	return values
}

// MeanOf computes the mean of a metric over a view, skipping missing values.
// Returns an invalid Float when no values are present.
func MeanOf(view View, metric Metric) Float {
	def, ok := GetMetric(metric)
	if !ok {
		return Float{}
	}
	values := collect(view, def)
	if len(values) == 0 {
		return Float{}
	}
	return Float{Float64: stat.Mean(values, nil), Valid: true}
}
