package happiness

import "testing"

func TestInsights(t *testing.T) {
	d := testDataset()

	ins, ok := d.Insights("Mongolia")
	if !ok {
		t.Fatal("Insights(Mongolia) ok = false, want true")
	}

	if ins.Country != "Mongolia" {
		t.Errorf("Country = %q, want Mongolia", ins.Country)
	}
	if ins.Records != 2 {
		t.Errorf("Records = %d, want 2", ins.Records)
	}
	if !almostEqual(ins.AvgLifeLadder, 4.75) {
		t.Errorf("AvgLifeLadder = %v, want 4.75", ins.AvgLifeLadder)
	}
	if ins.BestYear != 2016 || !almostEqual(ins.BestScore, 5.0) {
		t.Errorf("best = %d/%v, want 2016/5.0", ins.BestYear, ins.BestScore)
	}
	if ins.WorstYear != 2015 || !almostEqual(ins.WorstScore, 4.5) {
		t.Errorf("worst = %d/%v, want 2015/4.5", ins.WorstYear, ins.WorstScore)
	}
	if !ins.AvgSocialSupport.Valid || !almostEqual(ins.AvgSocialSupport.Float64, 0.94) {
		t.Errorf("AvgSocialSupport = %+v, want 0.94", ins.AvgSocialSupport)
	}
	if !ins.AvgLifeExpectancy.Valid || !almostEqual(ins.AvgLifeExpectancy.Float64, 61.5) {
		t.Errorf("AvgLifeExpectancy = %+v, want 61.5", ins.AvgLifeExpectancy)
	}
}

func TestInsightsCaseInsensitive(t *testing.T) {
	d := testDataset()

	ins, ok := d.Insights("finland")
	if !ok {
		t.Fatal("Insights(finland) ok = false, want true")
	}
	if ins.Country != "Finland" {
		t.Errorf("Country = %q, want canonical Finland", ins.Country)
	}
}

func TestInsightsUnknownCountry(t *testing.T) {
	d := testDataset()

	if _, ok := d.Insights("Atlantis"); ok {
		t.Error("Insights(Atlantis) ok = true, want false")
	}
}

func TestInsightsTieFirstWins(t *testing.T) {
	d := New([]Record{
		{Country: "A", Year: 2014, LifeLadder: v(6.0)},
		{Country: "A", Year: 2015, LifeLadder: v(6.0)},
		{Country: "A", Year: 2016, LifeLadder: v(3.0)},
		{Country: "A", Year: 2017, LifeLadder: v(3.0)},
	})

	ins, ok := d.Insights("A")
	if !ok {
		t.Fatal("Insights(A) ok = false, want true")
	}
	if ins.BestYear != 2014 {
		t.Errorf("BestYear = %d, want first tied year 2014", ins.BestYear)
	}
	if ins.WorstYear != 2016 {
		t.Errorf("WorstYear = %d, want first tied year 2016", ins.WorstYear)
	}
}

func TestInsightsSkipsMissingScores(t *testing.T) {
	d := New([]Record{
		{Country: "A", Year: 2015, LifeLadder: Float{}, SocialSupport: v(0.5)},
		{Country: "A", Year: 2016, LifeLadder: v(4.0), SocialSupport: v(0.7)},
	})

	ins, ok := d.Insights("A")
	if !ok {
		t.Fatal("Insights(A) ok = false, want true")
	}
	if ins.Records != 2 {
		t.Errorf("Records = %d, want 2", ins.Records)
	}
	if !almostEqual(ins.AvgLifeLadder, 4.0) {
		t.Errorf("AvgLifeLadder = %v, want 4.0 (missing score excluded)", ins.AvgLifeLadder)
	}
	if ins.BestYear != 2016 || ins.WorstYear != 2016 {
		t.Errorf("best/worst year = %d/%d, want 2016/2016", ins.BestYear, ins.WorstYear)
	}
	if !almostEqual(ins.AvgSocialSupport.Float64, 0.6) {
		t.Errorf("AvgSocialSupport = %+v, want 0.6", ins.AvgSocialSupport)
	}
}
