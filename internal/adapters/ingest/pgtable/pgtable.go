// Package pgtable loads the indicator dataset from a wide postgres table
// with country_name, year and one double precision column per indicator
package pgtable

import (
	"context"
	"slices"
	"strings"

	"econlens/internal/core/indicators"
	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DefaultTable is used when no table is configured
const DefaultTable = "indicators"

// Source reads every row of Table through Q
type Source struct {
	Q      store.Querier
	Table  string
	Window indicators.YearWindow
}

// Name identifies the source in logs and readiness output
func (s Source) Name() string { return "pg:" + s.table() }

func (s Source) table() string {
	if t := strings.TrimSpace(s.Table); t != "" {
		return t
	}
	return DefaultTable
}

// QuoteTable quotes a plain or schema-qualified table name
func QuoteTable(name string) string { return pgx.Identifier(strings.Split(name, ".")).Sanitize() }

// Load runs select * and builds a Dataset from the result columns
func (s Source) Load(ctx context.Context) (*indicators.Dataset, error) {
	if s.Q == nil {
		return nil, perr.Unavailablef("postgres is not configured")
	}
	w := s.Window
	if w == (indicators.YearWindow{}) {
		w = indicators.DefaultYearWindow
	}

	rs, err := s.Q.Query(ctx, "select * from "+QuoteTable(s.table()))
	if perr.IsUndefinedTable(err) {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "indicator table %s does not exist, run econlens-seed", s.table())
	}
	if err != nil {
		return nil, perr.FromPostgresf(err, "read indicator table %s", s.table())
	}
	defer rs.Close()

	cols := rs.Columns()
	ci := slices.Index(cols, indicators.ColCountry)
	yi := slices.Index(cols, indicators.ColYear)
	switch {
	case ci < 0:
		return nil, perr.WithField(perr.Schemaf("table %s has no %s column", s.table(), indicators.ColCountry), indicators.ColCountry)
	case yi < 0:
		return nil, perr.WithField(perr.Schemaf("table %s has no %s column", s.table(), indicators.ColYear), indicators.ColYear)
	}
	var names []string
	for i, c := range cols {
		if i != ci && i != yi {
			names = append(names, c)
		}
	}

	b := indicators.NewBuilder(names)
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rs.Next() {
		if err := rs.Scan(ptrs...); err != nil {
			return nil, perr.FromPostgresf(err, "scan indicator row")
		}
		country, _ := vals[ci].(string)
		yv, err := cell(vals[yi])
		if err != nil {
			return nil, perr.WithField(err, indicators.ColYear)
		}
		yf, _ := yv.Float()
		year, ok := w.Accept(yf)
		if strings.TrimSpace(country) == "" || yv.IsMissing() || !ok {
			b.Drop()
			continue
		}
		b.Touch(country, year)
		for i, c := range cols {
			if i == ci || i == yi {
				continue
			}
			v, err := cell(vals[i])
			if err != nil {
				return nil, perr.WithField(err, c)
			}
			if err := b.Set(country, year, c, v); err != nil {
				return nil, err
			}
		}
	}
	if err := rs.Err(); err != nil {
		return nil, perr.FromPostgresf(err, "read indicator table %s", s.table())
	}
	return b.Dataset()
}

// cell converts a scanned postgres value to an indicator value
func cell(v any) (indicators.Value, error) {
	switch x := v.(type) {
	case nil:
		return indicators.Missing(), nil
	case float64:
		return indicators.Of(x), nil
	case float32:
		return indicators.Of(float64(x)), nil
	case int16:
		return indicators.Of(float64(x)), nil
	case int32:
		return indicators.Of(float64(x)), nil
	case int64:
		return indicators.Of(float64(x)), nil
	case int:
		return indicators.Of(float64(x)), nil
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil {
			return indicators.Missing(), perr.Wrap(err, perr.ErrorCodeSchema, "numeric column")
		}
		if !f.Valid {
			return indicators.Missing(), nil
		}
		return indicators.Of(f.Float64), nil
	default:
		return indicators.Missing(), perr.Schemaf("unsupported column type %T", v)
	}
}
