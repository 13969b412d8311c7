package indicators

import (
	"math"
	"strings"

	perr "econlens/internal/platform/errors"
)

// Kind says how an indicator is displayed
type Kind uint8

const (
	// Magnitude values are absolute amounts shown with T/B/M suffixes
	Magnitude Kind = iota
	// Ratio values are percentages or rates shown as gauges
	Ratio
)

func (k Kind) String() string {
	if k == Magnitude {
		return "magnitude"
	}
	return "ratio"
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Entry describes one indicator column
type Entry struct {
	Name        string  `json:"name"`
	Kind        Kind    `json:"kind"`
	DisplayMax  float64 `json:"display_max,omitempty"`
	ObservedMax Value   `json:"observed_max"`
}

// Scale rule names accepted in CatalogOptions.ScaleOrder
const (
	ScaleGrowth  = "growth"
	ScaleTax     = "tax"
	ScaleDebt    = "debt"
	ScalePercent = "percent"
)

// fallbackDisplayMax is used when the observed data cannot give a positive scale
const fallbackDisplayMax = 100

type scaleRule struct {
	match func(name string) bool
	max   func(observed Value) float64
}

func fixed(n float64) func(Value) float64 { return func(Value) float64 { return n } }

func containsFold(sub string) func(string) bool {
	return func(name string) bool { return strings.Contains(strings.ToLower(name), sub) }
}

var scaleRules = map[string]scaleRule{
	ScaleGrowth: {match: containsFold("growth"), max: fixed(15)},
	ScaleTax:    {match: containsFold("tax"), max: fixed(50)},
	ScaleDebt:   {match: containsFold("debt"), max: fixed(200)},
	ScalePercent: {
		match: func(name string) bool { return strings.Contains(name, "%") },
		max: func(obs Value) float64 {
			f, ok := obs.Float()
			if !ok {
				return 0
			}
			return math.Min(100, f+10)
		},
	},
}

// CatalogOptions tunes indicator classification
type CatalogOptions struct {
	// ScaleOrder lists scale rules in priority order, first match wins
	ScaleOrder []string
	// MagnitudeMarkers are substrings that mark a column as a magnitude
	MagnitudeMarkers []string
}

// DefaultCatalogOptions matches the World Bank column naming
func DefaultCatalogOptions() CatalogOptions {
	return CatalogOptions{
		ScaleOrder:       []string{ScaleGrowth, ScaleTax, ScaleDebt, ScalePercent},
		MagnitudeMarkers: []string{"USD", "Income"},
	}
}

// Catalog holds the classification of every indicator in a dataset
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// NewCatalog classifies every indicator of ds once
func NewCatalog(ds *Dataset, opt CatalogOptions) (*Catalog, error) {
	def := DefaultCatalogOptions()
	if len(opt.ScaleOrder) == 0 {
		opt.ScaleOrder = def.ScaleOrder
	}
	if len(opt.MagnitudeMarkers) == 0 {
		opt.MagnitudeMarkers = def.MagnitudeMarkers
	}
	rules := make([]scaleRule, 0, len(opt.ScaleOrder))
	for _, name := range opt.ScaleOrder {
		r, ok := scaleRules[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, perr.WithField(perr.InvalidArgf("unknown scale rule %q", name), "scale_order")
		}
		rules = append(rules, r)
	}

	c := &Catalog{byName: map[string]int{}}
	for _, name := range ds.Indicators() {
		obs, err := ds.ObservedMax(name)
		if err != nil {
			return nil, err
		}
		e := Entry{Name: name, Kind: Classify(name, opt.MagnitudeMarkers), ObservedMax: obs}
		if e.Kind == Ratio {
			e.DisplayMax = displayMax(name, obs, rules)
		}
		c.byName[name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Classify applies the magnitude heuristics to a column name
// a column is a Magnitude when it contains a marker, or mentions GDP without being a share
func Classify(name string, markers []string) Kind {
	for _, m := range markers {
		if m != "" && strings.Contains(name, m) {
			return Magnitude
		}
	}
	if strings.Contains(name, "GDP") && !strings.Contains(name, "%") {
		return Magnitude
	}
	return Ratio
}

func displayMax(name string, obs Value, rules []scaleRule) float64 {
	dm := 0.0
	matched := false
	for _, r := range rules {
		if r.match(name) {
			dm = r.max(obs)
			matched = true
			break
		}
	}
	if !matched {
		if f, ok := obs.Float(); ok {
			dm = f * 1.1
		}
	}
	if !(dm > 0) || math.IsInf(dm, 0) {
		return fallbackDisplayMax
	}
	return dm
}

// Entries returns every entry in dataset column order
func (c *Catalog) Entries() []Entry { return append([]Entry(nil), c.entries...) }

// Entry returns the entry for name or a schema error
func (c *Catalog) Entry(name string) (Entry, error) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, unknownIndicator(name)
	}
	return c.entries[i], nil
}

// Split partitions names into magnitude and ratio columns, keeping order
func (c *Catalog) Split(names []string) (mags, ratios []string, err error) {
	for _, n := range names {
		e, err := c.Entry(n)
		if err != nil {
			return nil, nil, err
		}
		if e.Kind == Magnitude {
			mags = append(mags, n)
		} else {
			ratios = append(ratios, n)
		}
	}
	return mags, ratios, nil
}

