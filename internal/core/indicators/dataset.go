// Package indicators is the aggregation and comparison engine over a
// country-year table of economic indicators
//
// A Dataset is loaded once and never mutated. The Engine layers the
// indicator Catalog on top and answers resolve, growth, formatting and
// panel queries. Worldwide rows are synthesized per query and never stored.
package indicators

import (
	"math"
	"sort"
	"strings"

	perr "econlens/internal/platform/errors"
)

// Worldwide is the synthesized cross-country aggregate entity
const Worldwide = "Worldwide"

// Reserved column names that never become indicators
const (
	ColCountry = "country_name"
	ColYear    = "year"
)

// Record is one source row
type Record struct {
	Country string
	Year    int
	Values  map[string]Value
}

type row struct {
	country string
	year    int
	vals    []Value // aligned with Dataset.indicators
}

// Dataset is an immutable table of country-year records
type Dataset struct {
	indicators []string
	col        map[string]int
	byCountry  map[string][]*row // sorted by year
	byYear     map[int][]*row
	countries  []string
	years      []int
	size       int
}

// NewDataset validates recs against the indicator schema and freezes them
func NewDataset(indicators []string, recs []Record) (*Dataset, error) {
	ds := &Dataset{
		col:       make(map[string]int, len(indicators)),
		byCountry: map[string][]*row{},
		byYear:    map[int][]*row{},
	}
	for _, name := range indicators {
		name = strings.TrimSpace(name)
		switch {
		case name == "":
			return nil, perr.InvalidArgf("empty indicator name")
		case name == ColCountry || name == ColYear:
			return nil, perr.InvalidArgf("column %q is reserved", name)
		}
		if _, dup := ds.col[name]; dup {
			return nil, perr.Newf(perr.ErrorCodeDuplicateKey, "indicator %q listed twice", name)
		}
		ds.col[name] = len(ds.indicators)
		ds.indicators = append(ds.indicators, name)
	}

	seen := map[string]map[int]struct{}{}
	for _, rec := range recs {
		country := strings.TrimSpace(rec.Country)
		if country == "" {
			return nil, perr.WithField(perr.InvalidArgf("record for year %d has no country", rec.Year), ColCountry)
		}
		if strings.EqualFold(country, Worldwide) {
			return nil, perr.WithField(perr.InvalidArgf("%q is reserved for the synthesized aggregate", country), ColCountry)
		}
		years := seen[country]
		if years == nil {
			years = map[int]struct{}{}
			seen[country] = years
		}
		if _, dup := years[rec.Year]; dup {
			return nil, perr.Newf(perr.ErrorCodeDuplicateKey, "duplicate record for %s %d", country, rec.Year)
		}
		years[rec.Year] = struct{}{}

		r := &row{country: country, year: rec.Year, vals: make([]Value, len(ds.indicators))}
		for name, v := range rec.Values {
			i, ok := ds.col[name]
			if !ok {
				return nil, unknownIndicator(name)
			}
			r.vals[i] = v
		}
		ds.byCountry[country] = append(ds.byCountry[country], r)
		ds.byYear[rec.Year] = append(ds.byYear[rec.Year], r)
		ds.size++
	}

	for c, rows := range ds.byCountry {
		sort.Slice(rows, func(i, j int) bool { return rows[i].year < rows[j].year })
		ds.countries = append(ds.countries, c)
	}
	sort.Strings(ds.countries)
	for y := range ds.byYear {
		ds.years = append(ds.years, y)
	}
	sort.Ints(ds.years)
	return ds, nil
}

// Indicators returns the indicator columns in source order
func (d *Dataset) Indicators() []string { return append([]string(nil), d.indicators...) }

// Countries returns the distinct countries, sorted
func (d *Dataset) Countries() []string { return append([]string(nil), d.countries...) }

// Years returns the distinct years, ascending
func (d *Dataset) Years() []int { return append([]int(nil), d.years...) }

// Len is the number of records
func (d *Dataset) Len() int { return d.size }

// Has reports whether indicator is a column
func (d *Dataset) Has(indicator string) bool {
	_, ok := d.col[indicator]
	return ok
}

// HasCountry reports whether any record names country
func (d *Dataset) HasCountry(country string) bool {
	_, ok := d.byCountry[country]
	return ok
}

// Lookup returns the value at (country, year, indicator); found is false when no such record exists
func (d *Dataset) Lookup(country string, year int, indicator string) (v Value, found bool, err error) {
	i, ok := d.col[indicator]
	if !ok {
		return Value{}, false, unknownIndicator(indicator)
	}
	r := d.find(country, year)
	if r == nil {
		return Value{}, false, nil
	}
	return r.vals[i], true, nil
}

// ObservedMax is the largest non-missing value of indicator across the dataset
func (d *Dataset) ObservedMax(indicator string) (Value, error) {
	i, ok := d.col[indicator]
	if !ok {
		return Value{}, unknownIndicator(indicator)
	}
	best := math.Inf(-1)
	for _, rows := range d.byCountry {
		for _, r := range rows {
			if f, ok := r.vals[i].Float(); ok && f > best {
				best = f
			}
		}
	}
	return Of(best), nil
}

func (d *Dataset) find(country string, year int) *row {
	rows := d.byCountry[country]
	i := sort.Search(len(rows), func(i int) bool { return rows[i].year >= year })
	if i < len(rows) && rows[i].year == year {
		return rows[i]
	}
	return nil
}

func unknownIndicator(name string) error {
	return perr.WithField(perr.Schemaf("unknown indicator %q", name), "indicator")
}
