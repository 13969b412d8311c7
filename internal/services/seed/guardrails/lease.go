// Package guardrails keeps concurrent seed runs from interleaving writes
package guardrails

import (
	"context"
	"errors"

	"econlens/internal/modkit/repokit"
	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/store"
)

// ErrLeaseHeld signals another seed run owns the table already
var ErrLeaseHeld = errors.New("seed: table lease already held")

// TableLease returns a begin hook claiming a transaction scoped advisory lock on table.
// The lock is released with the transaction, so a crashed run never strands it.
// A held lock fails fast with Unavailable instead of queueing behind the other writer.
func TableLease(table string) repokit.BeginHook {
	return func(ctx context.Context, q repokit.Queryer) error {
		claimed, err := store.Scalar[bool](ctx, q, `select pg_try_advisory_xact_lock(hashtext($1))`, table)
		if err != nil {
			return perr.FromPostgresf(err, "lease %s", table)
		}
		if !claimed {
			return perr.Wrapf(ErrLeaseHeld, perr.ErrorCodeUnavailable, "another seed is writing %s", table)
		}
		return nil
	}
}
