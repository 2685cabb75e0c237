package happiness

import (
	"encoding/csv"
	"io"
	"strconv"
)

// TableColumn describes one column of a rendered table.
type TableColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text" or "number"
	Align string `json:"align"` // "left" or "right"
}

// TableData is a render-ready table. Column order matches the input CSV.
type TableData struct {
	Columns []TableColumn `json:"columns"`
	Rows    [][]string    `json:"rows"`
}

// exportHeader is the CSV header written on export, identical to the input
// file's columns and order.
var exportHeader = []string{
	headerCountry,
	headerYear,
	"Life Ladder",
	"Log GDP per capita",
	"Social support",
	"Healthy life expectancy at birth",
}

// BuildTable renders a view as TableData for the detailed metrics tab.
func BuildTable(view View) *TableData {
	columns := []TableColumn{
		{Key: "country", Label: headerCountry, Type: "text", Align: "left"},
		{Key: "year", Label: headerYear, Type: "number", Align: "right"},
	}
	for _, def := range Metrics() {
		columns = append(columns, TableColumn{
			Key:   string(def.Key),
			Label: def.Label,
			Type:  "number",
			Align: "right",
		})
	}

	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		rows = append(rows, exportRow(view.Record(i)))
	}

	return &TableData{Columns: columns, Rows: rows}
}

// WriteCSV serializes a view back to CSV with the input file's header and
// column order. Missing values become empty cells.
func WriteCSV(w io.Writer, view View) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for i := 0; i < view.Len(); i++ {
		if err := cw.Write(exportRow(view.Record(i))); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// exportRow formats one record in exportHeader order.
func exportRow(rec Record) []string {
	return []string{
		rec.Country,
		strconv.Itoa(rec.Year),
		formatFloat(rec.LifeLadder),
		formatFloat(rec.LogGDP),
		formatFloat(rec.SocialSupport),
		formatFloat(rec.LifeExpectancy),
	}
}

// formatFloat renders a Float for export: shortest round-trip representation,
// empty for missing values.
func formatFloat(f Float) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}
