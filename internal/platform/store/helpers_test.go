package store

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "econlens/internal/platform/errors"
)

func TestScalar(t *testing.T) {
	ctx := context.Background()
	got, err := Scalar[int](ctx, &fakeQuerier{row: fakeRow{v: 42}}, "select 42")
	if err != nil || got != 42 {
		t.Fatalf("got %d err %v", got, err)
	}
	if _, err := Scalar[int](ctx, &fakeQuerier{row: fakeRow{err: errors.New("boom")}}, "select"); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()
	rs := newFakeRows([]string{"country_name"}, []any{"Brazil"}, []any{"Japan"})
	got, err := Many(ctx, &fakeQuerier{rows: rs}, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, "select country_name from indicators")
	if err != nil || len(got) != 2 || got[1] != "Japan" {
		t.Fatalf("got %v err %v", got, err)
	}
	if !rs.closed {
		t.Fatalf("rows not closed")
	}

	scanErr := errors.New("scan")
	_, err = Many(ctx, &fakeQuerier{rows: newFakeRows([]string{"x"}, []any{1})}, func(Row) (int, error) { return 0, scanErr }, "q")
	if !errors.Is(err, scanErr) {
		t.Fatalf("expected scan error, got %v", err)
	}

	qErr := errors.New("query")
	if _, err := Many(ctx, &fakeQuerier{queryErr: qErr}, func(Row) (int, error) { return 0, nil }, "q"); !errors.Is(err, qErr) {
		t.Fatalf("expected query error, got %v", err)
	}
}

func TestMapsAndMap(t *testing.T) {
	ctx := context.Background()
	gdp := 27e12
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	var nilF *float64

	rs := newFakeRows(
		[]string{"country_name", "year", "GDP (Current USD)", "loaded_at"},
		[]any{"United States", int32(2023), &gdp, &ts},
		[]any{"Brazil", int32(2023), nilF, &ts},
	)
	all, err := Maps(ctx, &fakeQuerier{rows: rs}, "select *")
	if err != nil || len(all) != 2 {
		t.Fatalf("maps: %v %v", all, err)
	}
	if all[0]["GDP (Current USD)"] != 27e12 {
		t.Fatalf("pointer not dereferenced: %#v", all[0])
	}
	if all[1]["GDP (Current USD)"] != nil {
		t.Fatalf("nil pointer should become nil, got %#v", all[1]["GDP (Current USD)"])
	}
	if all[0]["loaded_at"] != ts {
		t.Fatalf("time not dereferenced")
	}

	if _, err := Map(ctx, &fakeQuerier{rows: newFakeRows([]string{"a"})}, "q"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := Map(ctx, &fakeQuerier{rows: newFakeRows([]string{"a"}, []any{1}, []any{2})}, "q"); err == nil {
		t.Fatalf("expected too many rows error")
	}
	one, err := Map(ctx, &fakeQuerier{rows: newFakeRows([]string{"a"}, []any{"x"})}, "q")
	if err != nil || one["a"] != "x" {
		t.Fatalf("map: %v %v", one, err)
	}

	bad := newFakeRows([]string{"a"}, []any{1})
	bad.scanErr = errors.New("scan")
	if _, err := Maps(ctx, &fakeQuerier{rows: bad}, "q"); err == nil {
		t.Fatalf("expected scan error")
	}

	iterErr := newFakeRows([]string{"a"})
	iterErr.err = errors.New("iter")
	if _, err := Maps(ctx, &fakeQuerier{rows: iterErr}, "q"); err == nil {
		t.Fatalf("expected iteration error")
	}
}
