package happiness

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildTable(t *testing.T) {
	d := testDataset()

	table := BuildTable(d.Filter(Criteria{Countries: []string{"Mongolia"}, YearMin: 2015, YearMax: 2016}))

	wantLabels := []string{
		"Country name",
		"year",
		"Life Ladder",
		"Log GDP per capita",
		"Social support",
		"Healthy life expectancy at birth",
	}
	if len(table.Columns) != len(wantLabels) {
		t.Fatalf("len(Columns) = %d, want %d", len(table.Columns), len(wantLabels))
	}
	for i, want := range wantLabels {
		if table.Columns[i].Label != want {
			t.Errorf("Columns[%d].Label = %q, want %q", i, table.Columns[i].Label, want)
		}
	}

	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if table.Rows[0][0] != "Mongolia" || table.Rows[0][1] != "2015" {
		t.Errorf("Rows[0] = %v, want Mongolia 2015 first", table.Rows[0])
	}
	if table.Rows[0][2] != "4.5" {
		t.Errorf("Rows[0][2] = %q, want 4.5", table.Rows[0][2])
	}
}

func TestBuildTableMissingValues(t *testing.T) {
	d := testDataset()

	table := BuildTable(d.ByCountry("Afghanistan"))
	if len(table.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(table.Rows))
	}
	if got := table.Rows[0][2]; got != "" {
		t.Errorf("missing Life Ladder rendered as %q, want empty cell", got)
	}
}

func TestWriteCSV(t *testing.T) {
	d := testDataset()

	var buf bytes.Buffer
	err := WriteCSV(&buf, d.Filter(Criteria{Countries: []string{"Mongolia"}, YearMin: 2015, YearMax: 2015}))
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header plus 1 row:\n%s", len(lines), buf.String())
	}

	wantHeader := "Country name,year,Life Ladder,Log GDP per capita,Social support,Healthy life expectancy at birth"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if lines[1] != "Mongolia,2015,4.5,9.39,0.94,61.4" {
		t.Errorf("row = %q, want %q", lines[1], "Mongolia,2015,4.5,9.39,0.94,61.4")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	d := testDataset()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, d.All()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	reloaded, err := parse("roundtrip", &buf)
	if err != nil {
		t.Fatalf("parse() of exported CSV error = %v", err)
	}
	if reloaded.Len() != d.Len() {
		t.Fatalf("reloaded Len() = %d, want %d", reloaded.Len(), d.Len())
	}
	for i := 0; i < d.Len(); i++ {
		if d.Record(i) != reloaded.Record(i) {
			t.Errorf("record %d changed through export: %+v vs %+v",
				i, d.Record(i), reloaded.Record(i))
		}
	}
}
