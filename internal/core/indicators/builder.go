package indicators

import (
	"math"
	"strings"

	perr "econlens/internal/platform/errors"
)

// YearWindow bounds the years a loader accepts; rows outside are dropped
type YearWindow struct {
	Min int
	Max int
}

// DefaultYearWindow covers the World Bank series
var DefaultYearWindow = YearWindow{Min: 1960, Max: 2030}

// Accept rounds a numeric year and reports whether it falls in the window
func (w YearWindow) Accept(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	y := int(math.Round(f))
	if y < w.Min || y > w.Max {
		return 0, false
	}
	return y, true
}

// Builder accumulates records for loaders that see one cell at a time
type Builder struct {
	indicators []string
	known      map[string]struct{}
	recs       map[string]map[int]*Record
	order      []*Record
	dropped    int
}

// NewBuilder starts a builder for the given indicator columns
func NewBuilder(indicators []string) *Builder {
	b := &Builder{known: map[string]struct{}{}, recs: map[string]map[int]*Record{}}
	for _, name := range indicators {
		b.Indicator(name)
	}
	return b
}

// Indicator declares a column, repeated names are ignored
func (b *Builder) Indicator(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if _, ok := b.known[name]; ok {
		return
	}
	b.known[name] = struct{}{}
	b.indicators = append(b.indicators, name)
}

// Set stores one cell, creating the record on first use
// a cell set twice is a duplicate key
func (b *Builder) Set(country string, year int, indicator string, v Value) error {
	if _, ok := b.known[indicator]; !ok {
		return unknownIndicator(indicator)
	}
	rec := b.record(strings.TrimSpace(country), year)
	if _, dup := rec.Values[indicator]; dup {
		return perr.Newf(perr.ErrorCodeDuplicateKey, "duplicate value for %s %d %q", rec.Country, year, indicator)
	}
	rec.Values[indicator] = v
	return nil
}

// Touch makes sure a record exists even when every value is missing
func (b *Builder) Touch(country string, year int) {
	b.record(strings.TrimSpace(country), year)
}

// Drop counts a source row the loader skipped
func (b *Builder) Drop() { b.dropped++ }

// Dropped is the number of skipped source rows
func (b *Builder) Dropped() int { return b.dropped }

// Dataset validates and freezes everything collected so far
func (b *Builder) Dataset() (*Dataset, error) {
	recs := make([]Record, 0, len(b.order))
	for _, r := range b.order {
		recs = append(recs, *r)
	}
	return NewDataset(b.indicators, recs)
}

func (b *Builder) record(country string, year int) *Record {
	years := b.recs[country]
	if years == nil {
		years = map[int]*Record{}
		b.recs[country] = years
	}
	rec := years[year]
	if rec == nil {
		rec = &Record{Country: country, Year: year, Values: map[string]Value{}}
		years[year] = rec
		b.order = append(b.order, rec)
	}
	return rec
}
