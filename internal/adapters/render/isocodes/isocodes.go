// Package isocodes attaches ISO 3166 codes to dataset country names
package isocodes

import (
	"strings"

	"econlens/internal/core/indicators"

	"github.com/biter777/countries"
)

// World Bank spellings the generic lookup misses, mapped to ISO numeric codes
var overrides = map[string]countries.CountryCode{
	"korea, rep.":               countries.CountryCode(410),
	"korea, dem. people's rep.": countries.CountryCode(408),
	"egypt, arab rep.":          countries.CountryCode(818),
	"iran, islamic rep.":        countries.CountryCode(364),
	"venezuela, rb":             countries.CountryCode(862),
	"yemen, rep.":               countries.CountryCode(887),
	"hong kong sar, china":      countries.CountryCode(344),
	"turkiye":                   countries.CountryCode(792),
	"slovak republic":           countries.CountryCode(703),
	"kyrgyz republic":           countries.CountryCode(417),
	"lao pdr":                   countries.CountryCode(418),
	"gambia, the":               countries.CountryCode(270),
	"bahamas, the":              countries.CountryCode(44),
	"congo, dem. rep.":          countries.CountryCode(180),
	"congo, rep.":               countries.CountryCode(178),
}

// Country is a dataset entity with its codes, when it has any
type Country struct {
	Name      string `json:"name"`
	Alpha2    string `json:"alpha2,omitempty"`
	Alpha3    string `json:"alpha3,omitempty"`
	Synthetic bool   `json:"synthetic,omitempty"`
}

// Lookup resolves a country name to its ISO code
func Lookup(name string) (countries.CountryCode, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == strings.ToLower(indicators.Worldwide) {
		return countries.Unknown, false
	}
	if c, ok := overrides[key]; ok {
		return c, true
	}
	c := countries.ByName(name)
	return c, c != countries.Unknown && c.IsValid()
}

// Enrich maps names to Country values in order; Worldwide is flagged synthetic
func Enrich(names []string) []Country {
	out := make([]Country, 0, len(names))
	for _, n := range names {
		c := Country{Name: n, Synthetic: n == indicators.Worldwide}
		if code, ok := Lookup(n); ok {
			c.Alpha2, c.Alpha3 = code.Alpha2(), code.Alpha3()
		}
		out = append(out, c)
	}
	return out
}
