package pgtable

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"econlens/internal/core/indicators"
	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type fakeRows struct {
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	for i, d := range dest {
		*d.(*any) = r.data[r.idx-1][i]
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Columns() []string { return r.cols }

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	f.sql = sql
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

const (
	gdp = "GDP (Current USD)"
	cpi = "Inflation (CPI %)"
)

func TestLoad_WideTable(t *testing.T) {
	rows := &fakeRows{
		cols: []string{"year", indicators.ColCountry, gdp, cpi},
		data: [][]any{
			{int32(2022), "United States", 25e12, pgtype.Numeric{Int: big.NewInt(80), Exp: -1, Valid: true}},
			{int32(2023), "United States", 27e12, nil},
			{int32(1900), "United States", 1.0, nil},
			{int32(2023), "", 1.0, nil},
			{nil, "Brazil", 1.0, nil},
			{float64(2019.6), "Brazil", float32(2), pgtype.Numeric{}},
		},
	}
	q := &fakeQuerier{rows: rows}

	ds, err := Source{Q: q, Table: "public.indicators"}.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if q.sql != `select * from "public"."indicators"` {
		t.Fatalf("sql = %s", q.sql)
	}
	if !rows.closed {
		t.Fatal("rows not closed")
	}
	if got := ds.Indicators(); len(got) != 2 || got[0] != gdp || got[1] != cpi {
		t.Fatalf("indicators = %v", got)
	}
	if ds.Len() != 3 {
		t.Fatalf("rows = %d", ds.Len())
	}

	v, _, _ := ds.Lookup("United States", 2022, cpi)
	if f, ok := v.Float(); !ok || f != 8.0 {
		t.Fatalf("numeric cell = %v", v)
	}
	v, _, _ = ds.Lookup("United States", 2023, cpi)
	if !v.IsMissing() {
		t.Fatalf("null cell = %v", v)
	}
	v, found, _ := ds.Lookup("Brazil", 2020, cpi)
	if !found || !v.IsMissing() {
		t.Fatalf("invalid numeric = %v %v", v, found)
	}
}

func TestLoad_Errors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}

	cases := []struct {
		name  string
		src   Source
		code  perr.ErrorCode
		field string
	}{
		{"not configured", Source{}, perr.ErrorCodeUnavailable, ""},
		{"missing table", Source{Q: &fakeQuerier{err: pgErr}}, perr.ErrorCodeUnavailable, ""},
		{"foreign query error", Source{Q: &fakeQuerier{err: errors.New("conn reset")}}, perr.ErrorCodeDB, ""},
		{"no year column", Source{Q: &fakeQuerier{rows: &fakeRows{cols: []string{indicators.ColCountry, gdp}}}}, perr.ErrorCodeSchema, indicators.ColYear},
		{"text indicator", Source{Q: &fakeQuerier{rows: &fakeRows{
			cols: []string{indicators.ColCountry, indicators.ColYear, gdp},
			data: [][]any{{"Brazil", int32(2020), "lots"}},
		}}}, perr.ErrorCodeSchema, gdp},
		{"iteration error", Source{Q: &fakeQuerier{rows: &fakeRows{
			cols: []string{indicators.ColCountry, indicators.ColYear},
			err:  errors.New("broken pipe"),
		}}}, perr.ErrorCodeDB, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.src.Load(context.Background())
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("err = %v, want %v", err, tc.code)
			}
			if tc.field != "" {
				if pe, _ := perr.As(err); pe.Field() != tc.field {
					t.Fatalf("field = %q", pe.Field())
				}
			}
		})
	}
}

func TestName(t *testing.T) {
	if got := (Source{}).Name(); got != "pg:indicators" {
		t.Fatalf("name = %q", got)
	}
	if got := QuoteTable(`we"ird`); got != `"we""ird"` {
		t.Fatalf("quote = %q", got)
	}
}
