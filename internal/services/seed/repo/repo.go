// Package repo writes indicator datasets into postgres and clickhouse
package repo

import (
	"context"
	"time"

	"econlens/internal/adapters/ingest/chtable"
	"econlens/internal/adapters/ingest/pgtable"
	"econlens/internal/core/indicators"
	"econlens/internal/modkit/repokit"
	perr "econlens/internal/platform/errors"
	"econlens/internal/services/seed/guardrails"
)

// PG upserts the wide table inside one transaction
type PG struct {
	tx    repokit.TxRunner
	table string
}

// NewPG binds a wide-table writer; statementTimeout bounds every statement of the run
// and a table lease keeps two seeds from writing the same table at once
func NewPG(tx repokit.TxRunner, table string, statementTimeout time.Duration) *PG {
	if table == "" {
		table = pgtable.DefaultTable
	}
	hooked := repokit.WithBeginHooks(tx, repokit.StatementTimeout(statementTimeout), guardrails.TableLease(table))
	return &PG{tx: hooked, table: table}
}

// wide is the wide-table statement set bound to one tx queryer
type wide struct {
	q     repokit.Queryer
	table string
}

// bindWide binds wide to the queryer of the running transaction
func bindWide(table string) repokit.Binder[wide] {
	return repokit.BindFunc[wide](func(q repokit.Queryer) wide { return wide{q: q, table: table} })
}

func (w wide) create(ctx context.Context, names []string) error {
	if _, err := w.q.Exec(ctx, pgtable.CreateTableSQL(w.table, names)); err != nil {
		return perr.FromPostgresf(err, "create table %s", w.table)
	}
	return nil
}

func (w wide) upsert(ctx context.Context, sql string, args []any) error {
	if _, err := w.q.Exec(ctx, sql, args...); err != nil {
		return perr.FromPostgresf(err, "upsert %v %v", args[0], args[1])
	}
	return nil
}

// Write implements domain.StorageRepo
func (p *PG) Write(ctx context.Context, ds *indicators.Dataset) (int, error) {
	names := ds.Indicators()
	upsert := pgtable.UpsertSQL(p.table, names)
	binder := bindWide(p.table)

	var (
		n   int
		err error
	)
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		n, err = p.write(ctx, ds, names, upsert, binder)
		if err == nil || !perr.IsRetryable(err) {
			break
		}
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// writeAttempts bounds reruns of the whole transaction after a deadlock or serialization failure
const writeAttempts = 3

func (p *PG) write(ctx context.Context, ds *indicators.Dataset, names []string, upsert string, binder repokit.Binder[wide]) (int, error) {
	n := 0
	err := repokit.WithTx(ctx, p.tx, func(q repokit.Queryer) error {
		w := repokit.MustBind(binder, q)
		if err := w.create(ctx, names); err != nil {
			return err
		}
		for _, c := range ds.Countries() {
			for _, y := range ds.Years() {
				args, ok := pgtable.UpsertArgs(ds, c, y)
				if !ok {
					continue
				}
				if err := w.upsert(ctx, upsert, args); err != nil {
					return err
				}
				n++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// CH batch inserts the long table
type CH struct {
	ch    repokit.Clickhouse
	table string
}

// NewCH binds a long-table writer
func NewCH(ch repokit.Clickhouse, table string) *CH {
	if table == "" {
		table = chtable.DefaultTable
	}
	return &CH{ch: ch, table: table}
}

// Write implements domain.StorageRepo
func (c *CH) Write(ctx context.Context, ds *indicators.Dataset) (int, error) {
	ddl, err := chtable.CreateTableSQL(c.table)
	if err != nil {
		return 0, err
	}
	if err := c.ch.Exec(ctx, ddl); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeUnavailable, "create table %s", c.table)
	}
	rows := chtable.Rows(ds)
	if len(rows) == 0 {
		return 0, nil
	}
	if err := c.ch.Insert(ctx, c.table, chtable.Columns, rows); err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeUnavailable, "insert into %s", c.table)
	}
	return len(rows), nil
}
