package repokit

import (
	"context"
	"fmt"
	"time"
)

// GuardTimeout bounds MustGuard when the caller's ctx carries no deadline
const GuardTimeout = 10 * time.Second

// Guarder checks that every configured backend answers
type Guarder interface {
	Guard(context.Context) error
}

// MustGuard runs st.Guard at process start and panics with the binary name on failure
func MustGuard(ctx context.Context, name string, st Guarder) {
	if st == nil {
		panic(fmt.Sprintf("%s: nil store", name))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("%s: backend guard failed: %w", name, err))
	}
}
