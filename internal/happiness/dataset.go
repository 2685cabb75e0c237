package happiness

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Column headers of the source CSV. Matched case-insensitively on load and
// written back verbatim on export, in this order.
const (
	headerCountry = "Country name"
	headerYear    = "year"
)

// Dataset is the full in-memory collection of records, immutable after Load.
// It is safe for concurrent read-only access; construct it once at startup
// and pass it by handle to all consumers.
type Dataset struct {
	id        uuid.UUID
	records   []Record
	countries []string // sorted unique country names
	minYear   int
	maxYear   int
}

// Load reads the World Happiness Report CSV at path into a Dataset.
// The file must contain the canonical headers (matched case-insensitively)
// and every year value must be numeric; anything else is a
// *MalformedDataError. One file read, no caching; callers keep the
// returned handle for the life of the process.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MalformedDataError{Path: path, Reason: err.Error(), Err: err}
	}
	defer f.Close()

	return parse(path, f)
}

// New builds a Dataset directly from records. Primarily useful for tests.
func New(records []Record) *Dataset {
	d := &Dataset{
		id:      uuid.New(),
		records: records,
	}
	d.index()
	return d
}

func parse(path string, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, &MalformedDataError{Path: path, Reason: "failed to read CSV header", Err: err}
	}

	idx := makeHeaderIndex(header)

	required := []string{headerCountry, headerYear}
	for _, m := range Metrics() {
		required = append(required, m.Header)
	}
	for _, name := range required {
		if _, ok := idx[strings.ToLower(name)]; !ok {
			return nil, &MalformedDataError{
				Path:   path,
				Reason: fmt.Sprintf("missing required column %q", name),
			}
		}
	}

	countryCol := idx[strings.ToLower(headerCountry)]
	yearCol := idx[strings.ToLower(headerYear)]

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &MalformedDataError{Path: path, Line: line, Reason: "invalid CSV row", Err: err}
		}

		yearStr := strings.TrimSpace(cell(row, yearCol))
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			// Spreadsheet exports sometimes write years as "2015.0".
			f, ferr := strconv.ParseFloat(yearStr, 64)
			if ferr != nil || f != float64(int(f)) {
				return nil, &MalformedDataError{
					Path:   path,
					Line:   line,
					Reason: fmt.Sprintf("non-numeric year %q", yearStr),
					Err:    err,
				}
			}
			year = int(f)
		}

		rec := Record{
			Country: strings.TrimSpace(cell(row, countryCol)),
			Year:    year,
		}
		rec.LifeLadder = ToFloat(strings.TrimSpace(cell(row, idx[strings.ToLower("Life Ladder")])))
		rec.LogGDP = ToFloat(strings.TrimSpace(cell(row, idx[strings.ToLower("Log GDP per capita")])))
		rec.SocialSupport = ToFloat(strings.TrimSpace(cell(row, idx[strings.ToLower("Social support")])))
		rec.LifeExpectancy = ToFloat(strings.TrimSpace(cell(row, idx[strings.ToLower("Healthy life expectancy at birth")])))

		records = append(records, rec)
	}

	d := &Dataset{
		id:      uuid.New(),
		records: records,
	}
	d.index()
	return d, nil
}

// index caches the sorted unique country list and the year range.
func (d *Dataset) index() {
	seen := make(map[string]bool)
	for i, rec := range d.records {
		if !seen[rec.Country] {
			seen[rec.Country] = true
			d.countries = append(d.countries, rec.Country)
		}
		if i == 0 || rec.Year < d.minYear {
			d.minYear = rec.Year
		}
		if i == 0 || rec.Year > d.maxYear {
			d.maxYear = rec.Year
		}
	}
	sort.Strings(d.countries)
}

// ID identifies this in-memory load. Two loads of the same file get
// distinct IDs; consumers use it for cache validation (ETags).
func (d *Dataset) ID() string { return d.id.String() }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Record returns the record at index i in load order.
func (d *Dataset) Record(i int) Record { return d.records[i] }

// Countries returns the sorted unique country names. The returned slice is
// shared; callers must not modify it.
func (d *Dataset) Countries() []string { return d.countries }

// YearRange returns the smallest and largest year in the dataset.
// Both are zero for an empty dataset.
func (d *Dataset) YearRange() (min, max int) { return d.minYear, d.maxYear }

// All returns a view over every record.
func (d *Dataset) All() View {
	indices := make([]int, len(d.records))
	for i := range indices {
		indices[i] = i
	}
	return View{dataset: d, indices: indices}
}

// makeHeaderIndex maps lowercased column names to their position in the row.
func makeHeaderIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(stripBOM(h)))] = i
	}
	return idx
}

// stripBOM removes a UTF-8 byte order mark, a common Excel export artifact.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
