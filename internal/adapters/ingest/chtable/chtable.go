// Package chtable loads the indicator dataset from a long clickhouse table,
// one row per (country, year, indicator) cell
package chtable

import (
	"context"
	"fmt"
	"strings"

	"econlens/internal/core/indicators"
	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/store"
	"econlens/internal/platform/store/ch"
)

// DefaultTable is used when no table is configured
const DefaultTable = "indicator_values"

// Columns is the insert order of the long table
var Columns = []string{"country_name", "year", "indicator", "ordinal", "value"}

// CreateTableSQL returns the ddl for the long table
// ordinal keeps the source column order of the indicators
func CreateTableSQL(table string) (string, error) {
	if !ch.ValidIdent(table) {
		return "", perr.WithField(perr.InvalidArgf("invalid clickhouse table %q", table), "table")
	}
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	country_name LowCardinality(String),
	year UInt16,
	indicator LowCardinality(String),
	ordinal UInt16,
	value Nullable(Float64)
) ENGINE = ReplacingMergeTree ORDER BY (indicator, country_name, year)`, table), nil
}

// Source reads the long table through Q
type Source struct {
	Q      store.Querier
	Table  string
	Window indicators.YearWindow
}

// Name identifies the source in logs and readiness output
func (s Source) Name() string { return "ch:" + s.table() }

func (s Source) table() string {
	if t := strings.TrimSpace(s.Table); t != "" {
		return t
	}
	return DefaultTable
}

// Load pivots the long rows back into country-year records
func (s Source) Load(ctx context.Context) (*indicators.Dataset, error) {
	if s.Q == nil {
		return nil, perr.Unavailablef("clickhouse is not configured")
	}
	table := s.table()
	if !ch.ValidIdent(table) {
		return nil, perr.WithField(perr.InvalidArgf("invalid clickhouse table %q", table), "table")
	}
	w := s.Window
	if w == (indicators.YearWindow{}) {
		w = indicators.DefaultYearWindow
	}

	rs, err := s.Q.Query(ctx, fmt.Sprintf(
		"SELECT country_name, toInt32(year), indicator, value FROM %s FINAL ORDER BY ordinal, country_name, year", table))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read indicator table %s", table)
	}
	defer rs.Close()

	b := indicators.NewBuilder(nil)
	for rs.Next() {
		var (
			country, name string
			year          int32
			value         *float64
		)
		if err := rs.Scan(&country, &year, &name, &value); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeSchema, "scan indicator row")
		}
		y, ok := w.Accept(float64(year))
		if strings.TrimSpace(country) == "" || strings.TrimSpace(name) == "" || !ok {
			b.Drop()
			continue
		}
		b.Indicator(name)
		b.Touch(country, y)
		v := indicators.Missing()
		if value != nil {
			v = indicators.Of(*value)
		}
		if err := b.Set(country, y, strings.TrimSpace(name), v); err != nil {
			return nil, err
		}
	}
	if err := rs.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read indicator table %s", table)
	}
	return b.Dataset()
}

// Rows flattens a dataset into long-table rows in Columns order
func Rows(ds *indicators.Dataset) [][]any {
	names := ds.Indicators()
	var out [][]any
	for _, c := range ds.Countries() {
		for _, y := range ds.Years() {
			for i, n := range names {
				v, found, _ := ds.Lookup(c, y, n)
				if !found {
					break
				}
				var cell *float64
				if f, ok := v.Float(); ok {
					cell = &f
				}
				out = append(out, []any{c, uint16(y), n, uint16(i), cell})
			}
		}
	}
	return out
}
