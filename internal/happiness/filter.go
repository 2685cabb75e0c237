package happiness

import "strings"

// View is a non-owning subset of a Dataset: an index list into the parent
// in load order. Filtering never copies records and never mutates the
// Dataset, so identical criteria always produce identical views.
type View struct {
	dataset *Dataset
	indices []int
}

// Len returns the number of records in the view.
func (v View) Len() int { return len(v.indices) }

// Record returns the i-th record of the view in dataset order.
func (v View) Record(i int) Record {
	return v.dataset.records[v.indices[i]]
}

// Dataset returns the parent dataset.
func (v View) Dataset() *Dataset { return v.dataset }

// MaxYear returns the largest year present in the view and whether the view
// is non-empty.
func (v View) MaxYear() (int, bool) {
	if len(v.indices) == 0 {
		return 0, false
	}
	max := v.Record(0).Year
	for i := 1; i < v.Len(); i++ {
		if y := v.Record(i).Year; y > max {
			max = y
		}
	}
	return max, true
}

// Filter returns the view of records matching the criteria: country in the
// selected set AND YearMin <= year <= YearMax.
//
// An empty country set matches nothing (there is no implicit "all"), an
// inverted year range matches nothing, and unknown country names simply
// produce no matches. Dataset order is preserved.
func (d *Dataset) Filter(c Criteria) View {
	if len(c.Countries) == 0 || c.YearMin > c.YearMax {
		return View{dataset: d}
	}

	set := make(map[string]bool, len(c.Countries))
	for _, name := range c.Countries {
		set[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var indices []int
	for i, rec := range d.records {
		if rec.Year < c.YearMin || rec.Year > c.YearMax {
			continue
		}
		if !set[strings.ToLower(rec.Country)] {
			continue
		}
		indices = append(indices, i)
	}

	return View{dataset: d, indices: indices}
}

// ByCountry returns the view of every record for one country, all years.
func (d *Dataset) ByCountry(country string) View {
	want := strings.ToLower(strings.TrimSpace(country))

	var indices []int
	for i, rec := range d.records {
		if strings.ToLower(rec.Country) == want {
			indices = append(indices, i)
		}
	}
	return View{dataset: d, indices: indices}
}
