package repokit

import (
	"context"
	"testing"

	"econlens/internal/platform/store"
	"econlens/internal/platform/testkit"
)

type fakeQ struct{ execs []string }

func (f *fakeQ) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return nil, nil
}

func (f *fakeQ) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }

func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row { return nil }

var _ Queryer = (*fakeQ)(nil)

type tableRepo struct {
	q     Queryer
	table string
}

func (r tableRepo) truncate(ctx context.Context) error {
	_, err := r.q.Exec(ctx, "truncate "+r.table)
	return err
}

func TestMustBind(t *testing.T) {
	b := BindFunc[tableRepo](func(q Queryer) tableRepo { return tableRepo{q: q, table: "indicators"} })

	q := &fakeQ{}
	repo := MustBind[tableRepo](b, q)
	if err := repo.truncate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(q.execs) != 1 || q.execs[0] != "truncate indicators" {
		t.Fatalf("execs = %v", q.execs)
	}

	testkit.MustPanic(t, func() { _ = MustBind[tableRepo](b, nil) })
}
