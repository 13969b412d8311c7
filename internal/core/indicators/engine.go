package indicators

import (
	"sort"
	"strings"

	"econlens/internal/core/names"
)

// Engine answers queries over one Dataset and its Catalog
// safe for concurrent use, nothing is mutated after NewEngine
type Engine struct {
	ds    *Dataset
	cat   *Catalog
	names *names.Index
}

// NewEngine classifies ds and returns a ready Engine
func NewEngine(ds *Dataset, opt CatalogOptions) (*Engine, error) {
	cat, err := NewCatalog(ds, opt)
	if err != nil {
		return nil, err
	}
	return &Engine{ds: ds, cat: cat, names: names.NewIndex(ds.Countries())}, nil
}

// Dataset returns the underlying table
func (e *Engine) Dataset() *Dataset { return e.ds }

// Catalog returns the indicator classification
func (e *Engine) Catalog() *Catalog { return e.cat }

// Canonical maps user input to a dataset country name or the Worldwide sentinel
// input that matches nothing is returned trimmed and resolves to no rows
func (e *Engine) Canonical(name string) string {
	if names.Fold(name) == names.Fold(Worldwide) {
		return Worldwide
	}
	return e.names.Canonical(name)
}

// ListCountries returns Worldwide followed by every country, sorted
func (e *Engine) ListCountries() []string {
	return append([]string{Worldwide}, e.ds.countries...)
}

// ListYears returns the distinct years ascending; upTo > 0 caps the list
func (e *Engine) ListYears(upTo int) []int {
	if upTo <= 0 {
		return e.ds.Years()
	}
	n := sort.SearchInts(e.ds.years, upTo+1)
	out := make([]int, n)
	copy(out, e.ds.years)
	return out
}

// indicatorCols validates requested names; empty means every column
func (e *Engine) indicatorCols(req []string) ([]string, []int, error) {
	if len(req) == 0 {
		req = e.ds.indicators
	}
	out := make([]string, 0, len(req))
	idx := make([]int, 0, len(req))
	seen := map[string]struct{}{}
	for _, name := range req {
		name = strings.TrimSpace(name)
		i, ok := e.ds.col[name]
		if !ok {
			return nil, nil, unknownIndicator(name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
		idx = append(idx, i)
	}
	return out, idx, nil
}
