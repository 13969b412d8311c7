package indicators

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NA is shown wherever a value is missing
const NA = "N/A"

var magnitudeTiers = []struct {
	min    float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
}

// FormatMagnitude renders v with a T/B/M suffix, or grouped digits below a million
func FormatMagnitude(v Value) string {
	f, ok := v.Float()
	if !ok {
		return NA
	}
	abs := math.Abs(f)
	// the tier follows the raw value, not the rounded text
	// so 999,999,999.9 prints as "1000.0 M" and never gains the B suffix
	for _, t := range magnitudeTiers {
		if abs >= t.min {
			return fmt.Sprintf("%.1f %s", f/t.min, t.suffix)
		}
	}
	// printers carry a buffer, one per call keeps this safe for concurrent use
	p := message.NewPrinter(language.English)
	if f == math.Trunc(f) {
		return p.Sprintf("%d", int64(f))
	}
	return p.Sprintf("%.1f", f)
}

// Gauge is the bar encoding of a ratio value against its display max
type Gauge struct {
	Text     string  `json:"text"`
	Fraction float64 `json:"fraction"`
	Overflow bool    `json:"overflow"`
	Max      float64 `json:"max"`
	MaxLabel string  `json:"max_label"`
}

// GaugeFor encodes v against displayMax; the fraction is clamped to [0,1] and v itself is never altered
func GaugeFor(v Value, displayMax float64) Gauge {
	if !(displayMax > 0) || math.IsInf(displayMax, 0) {
		displayMax = fallbackDisplayMax
	}
	g := Gauge{Text: NA, Max: displayMax, MaxLabel: fmt.Sprintf("Max: %.0f%%", displayMax)}
	f, ok := v.Float()
	if !ok {
		return g
	}
	g.Text = fmt.Sprintf("%.2f%%", f)
	g.Overflow = f > displayMax
	g.Fraction = math.Max(0, math.Min(f/displayMax, 1))
	return g
}

// Gauge encodes v with the catalog display max of indicator
func (e *Engine) Gauge(v Value, indicator string) (Gauge, error) {
	ent, err := e.cat.Entry(indicator)
	if err != nil {
		return Gauge{}, err
	}
	dm := ent.DisplayMax
	if ent.Kind == Magnitude {
		dm = fallbackDisplayMax
	}
	return GaugeFor(v, dm), nil
}
