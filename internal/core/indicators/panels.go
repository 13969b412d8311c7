package indicators

// DefaultPanelIndicators are shown when a comparison names none
var DefaultPanelIndicators = []string{
	"GDP (Current USD)",
	"GDP Growth (% Annual)",
	"Tax Revenue (% of GDP)",
	"Public Debt (% of GDP)",
}

// Selection picks one (country, year) for a panel
type Selection struct {
	Country string `json:"country"`
	Year    int    `json:"year"`
}

// MagnitudeCell is a magnitude indicator rendered as text
type MagnitudeCell struct {
	Indicator string `json:"indicator"`
	Value     Value  `json:"value"`
	Text      string `json:"text"`
}

// GaugeCell is a ratio indicator rendered as a gauge
type GaugeCell struct {
	Indicator string `json:"indicator"`
	Value     Value  `json:"value"`
	Gauge     Gauge  `json:"gauge"`
}

// Panel is one comparison snapshot; Found is false when no record matches
type Panel struct {
	Selection
	Found      bool            `json:"found"`
	Magnitudes []MagnitudeCell `json:"magnitudes"`
	Gauges     []GaugeCell     `json:"gauges"`
}

// BuildPanels does an exact (country, year) lookup per selection
// Worldwide is not a panel target and yields an empty snapshot
func (e *Engine) BuildPanels(sel []Selection, indicators []string) ([]Panel, error) {
	if len(indicators) == 0 {
		indicators = e.defaultPanelIndicators()
	}
	cols, idx, err := e.indicatorCols(indicators)
	if err != nil {
		return nil, err
	}
	out := make([]Panel, 0, len(sel))
	for _, s := range sel {
		p := Panel{Selection: s, Magnitudes: []MagnitudeCell{}, Gauges: []GaugeCell{}}
		r := e.ds.find(s.Country, s.Year)
		if r == nil || s.Country == Worldwide {
			out = append(out, p)
			continue
		}
		p.Found = true
		for k, name := range cols {
			v := r.vals[idx[k]]
			ent := e.cat.entries[e.cat.byName[name]]
			if ent.Kind == Magnitude {
				p.Magnitudes = append(p.Magnitudes, MagnitudeCell{Indicator: name, Value: v, Text: FormatMagnitude(v)})
				continue
			}
			p.Gauges = append(p.Gauges, GaugeCell{Indicator: name, Value: v, Gauge: GaugeFor(v, ent.DisplayMax)})
		}
		out = append(out, p)
	}
	return out, nil
}

// defaultPanelIndicators keeps the defaults the dataset actually has
func (e *Engine) defaultPanelIndicators() []string {
	var out []string
	for _, n := range DefaultPanelIndicators {
		if e.ds.Has(n) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return e.ds.Indicators()
	}
	return out
}
