// Package happiness provides the domain logic for the happiness dashboard.
// This package has no UI dependencies and can be used by any frontend.
package happiness

import "strconv"

// Metric identifies a numeric column of the dataset.
type Metric string

const (
	MetricLifeLadder     Metric = "life_ladder"
	MetricLogGDP         Metric = "log_gdp_per_capita"
	MetricSocialSupport  Metric = "social_support"
	MetricLifeExpectancy Metric = "healthy_life_expectancy"
)

// Float is a float64 with an explicit validity flag.
// Missing CSV cells produce Valid=false, never NaN.
type Float struct {
	Float64 float64
	Valid   bool
}

// MarshalJSON renders an invalid Float as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f.Float64, 'g', -1, 64), nil
}

// UnmarshalJSON accepts a number or null.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Float{Float64: v, Valid: true}
	return nil
}

// ToFloat parses a CSV cell into a Float.
// Empty or unparseable cells are invalid (missing), not errors.
func ToFloat(s string) Float {
	if s == "" {
		return Float{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}
	}
	return Float{Float64: f, Valid: true}
}

// Record is one country-year observation of the World Happiness Report.
type Record struct {
	Country        string
	Year           int
	LifeLadder     Float
	LogGDP         Float
	SocialSupport  Float
	LifeExpectancy Float
}

// Criteria selects a subset of the dataset.
// Constructed fresh per user interaction; carries no persisted identity.
type Criteria struct {
	Countries []string // exact country names; empty means no records
	YearMin   int      // inclusive
	YearMax   int      // inclusive
}

// Summary holds mean/min/max of a metric over a view.
// Available is false when the view is empty or every value is missing.
type Summary struct {
	Metric    Metric  `json:"metric"`
	Mean      float64 `json:"mean"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Count     int     `json:"count"`
	Available bool    `json:"available"`
}

// CountryInsights summarizes a single country across the full dataset.
type CountryInsights struct {
	Country           string  `json:"country"`
	Records           int     `json:"records"`
	AvgLifeLadder     float64 `json:"avgLifeLadder"`
	BestYear          int     `json:"bestYear"`
	BestScore         float64 `json:"bestScore"`
	WorstYear         int     `json:"worstYear"`
	WorstScore        float64 `json:"worstScore"`
	AvgSocialSupport  Float   `json:"avgSocialSupport"`
	AvgLifeExpectancy Float   `json:"avgLifeExpectancy"`
	AvgLogGDP         Float   `json:"avgLogGdpPerCapita"`
}
