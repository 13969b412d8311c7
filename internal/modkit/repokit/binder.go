package repokit

import (
	"fmt"
	"reflect"
)

// Binder turns a Queryer (pool or running tx) into a repo value of type T
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a constructor into a Binder
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds T to q and panics when q is nil, a wiring bug rather than a runtime fault
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic(fmt.Sprintf("repokit: binding %s to a nil Queryer", reflect.TypeFor[T]()))
	}
	return b.Bind(q)
}
