package happiness

// Insights summarizes a single country across the full dataset, regardless
// of the active filter: average Life Ladder, the best and worst years, and
// average values of the supporting indicators.
//
// Returns false when the dataset holds no records for the country. On tied
// scores the earlier record wins.
func (d *Dataset) Insights(country string) (CountryInsights, bool) {
	view := d.ByCountry(country)
	if view.Len() == 0 {
		return CountryInsights{}, false
	}

	ins := CountryInsights{
		Country: view.Record(0).Country,
		Records: view.Len(),
	}

	var sum float64
	var scored int
	first := true
	for i := 0; i < view.Len(); i++ {
		rec := view.Record(i)
		if !rec.LifeLadder.Valid {
			continue
		}
		score := rec.LifeLadder.Float64
		sum += score
		scored++

		if first || score > ins.BestScore {
			ins.BestScore = score
			ins.BestYear = rec.Year
		}
		if first || score < ins.WorstScore {
			ins.WorstScore = score
			ins.WorstYear = rec.Year
		}
		first = false
	}
	if scored > 0 {
		ins.AvgLifeLadder = sum / float64(scored)
	}

	ins.AvgSocialSupport = MeanOf(view, MetricSocialSupport)
	ins.AvgLifeExpectancy = MeanOf(view, MetricLifeExpectancy)
	ins.AvgLogGDP = MeanOf(view, MetricLogGDP)

	return ins, true
}
