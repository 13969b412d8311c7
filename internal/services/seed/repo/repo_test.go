package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"econlens/internal/adapters/ingest/csvfile"
	"econlens/internal/core/indicators"
	"econlens/internal/modkit/repokit"
	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/testkit"
	"econlens/internal/services/seed/guardrails"

	"github.com/jackc/pgx/v5/pgconn"
)

type tag struct{}

func (tag) String() string      { return "INSERT 0 1" }
func (tag) RowsAffected() int64 { return 1 }

type exec struct {
	sql  string
	args []any
}

type boolRow bool

func (b boolRow) Scan(dest ...any) error {
	*dest[0].(*bool) = bool(b)
	return nil
}

// fakeTx records statements; failAt makes the nth exec fail
type fakeTx struct {
	execs  []exec
	failAt int
	err    error
	txs    int
	held   bool
	leases []any
}

func (f *fakeTx) Exec(_ context.Context, sql string, args ...any) (repokit.CommandTag, error) {
	f.execs = append(f.execs, exec{sql: sql, args: args})
	if f.failAt > 0 && len(f.execs) == f.failAt {
		return nil, f.err
	}
	return tag{}, nil
}

func (f *fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeTx) QueryRow(_ context.Context, _ string, args ...any) repokit.Row {
	f.leases = append(f.leases, args...)
	return boolRow(!f.held)
}

func (f *fakeTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	f.txs++
	return fn(f)
}

type fakeCH struct {
	execs   []string
	table   string
	cols    []string
	rows    [][]any
	execErr error
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return f.execErr
}

func (f *fakeCH) Insert(_ context.Context, table string, cols []string, rows [][]any) error {
	f.table, f.cols, f.rows = table, cols, rows
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeCH) Close() error { return nil }

func fixture(t *testing.T) *indicators.Dataset {
	t.Helper()
	ds, err := csvfile.Read(context.Background(), strings.NewReader(testkit.WorldBankCSV), indicators.DefaultYearWindow)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestPG_Write(t *testing.T) {
	ds := fixture(t)
	tx := &fakeTx{}

	n, err := NewPG(tx, "", 5*time.Second).Write(context.Background(), ds)
	if err != nil {
		t.Fatal(err)
	}
	if n != 9 || tx.txs != 1 {
		t.Fatalf("rows = %d txs = %d", n, tx.txs)
	}
	if len(tx.leases) != 1 || tx.leases[0] != "indicators" {
		t.Fatalf("leases = %v", tx.leases)
	}
	// statement timeout, ddl, then one upsert per record
	if len(tx.execs) != 11 {
		t.Fatalf("execs = %d", len(tx.execs))
	}
	testkit.MustContain(t, tx.execs[0].sql, "statement_timeout = 5000")
	testkit.MustContain(t, tx.execs[1].sql, `create table if not exists "indicators"`)
	up := tx.execs[2]
	testkit.MustContain(t, up.sql, "on conflict (country_name, year) do update")
	if len(up.args) != 2+len(ds.Indicators()) {
		t.Fatalf("upsert args = %d", len(up.args))
	}

	// brazil 2020 has no unemployment figure and is written as null
	for _, e := range tx.execs[2:] {
		if e.args[0] == "Brazil" && e.args[1] == 2020 && e.args[9] != nil {
			t.Fatalf("unemployment = %v", e.args[9])
		}
	}
}

func TestPG_WriteError(t *testing.T) {
	ds := fixture(t)
	tx := &fakeTx{failAt: 3, err: &pgconn.PgError{Code: "23505", Message: "duplicate"}}

	n, err := NewPG(tx, "wb.indicators", 0).Write(context.Background(), ds)
	if n != 0 || !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("n = %d err = %v", n, err)
	}
	testkit.MustContain(t, tx.execs[0].sql, `"wb"."indicators"`)
}

func TestPG_RetriesDeadlock(t *testing.T) {
	tx := &fakeTx{failAt: 3, err: &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}}

	n, err := NewPG(tx, "", 5*time.Second).Write(context.Background(), fixture(t))
	if err != nil {
		t.Fatal(err)
	}
	// first run dies on its first upsert, the rerun writes everything
	if n != 9 || tx.txs != 2 || len(tx.execs) != 3+11 || len(tx.leases) != 2 {
		t.Fatalf("n = %d txs = %d execs = %d leases = %d", n, tx.txs, len(tx.execs), len(tx.leases))
	}
}

func TestPG_LeaseHeld(t *testing.T) {
	tx := &fakeTx{held: true}

	_, err := NewPG(tx, "", 0).Write(context.Background(), fixture(t))
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) || !errors.Is(err, guardrails.ErrLeaseHeld) {
		t.Fatalf("err = %v", err)
	}
	if len(tx.execs) != 0 {
		t.Fatalf("nothing should be written, got %d execs", len(tx.execs))
	}
}

func TestCH_Write(t *testing.T) {
	ds := fixture(t)
	ch := &fakeCH{}

	n, err := NewCH(ch, "").Write(context.Background(), ds)
	if err != nil {
		t.Fatal(err)
	}
	if n != 9*13 || len(ch.rows) != n || ch.table != "indicator_values" {
		t.Fatalf("n = %d table = %s", n, ch.table)
	}
	testkit.MustContain(t, ch.execs[0], "ReplacingMergeTree")

	_, err = NewCH(ch, "bad name;").Write(context.Background(), ds)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad table err = %v", err)
	}

	_, err = NewCH(&fakeCH{execErr: errors.New("down")}, "").Write(context.Background(), ds)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("exec err = %v", err)
	}
}
