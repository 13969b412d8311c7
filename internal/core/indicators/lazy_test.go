package indicators

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	perr "econlens/internal/platform/errors"
)

func TestLazy_RetriesAfterFailure(t *testing.T) {
	eng := newFixtureEngine(t)
	var calls atomic.Int32
	l := NewLazy(func(context.Context) (*Engine, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("file not found")
		}
		return eng, nil
	})

	if _, err := l.Get(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("first get err = %v", err)
	}
	if l.Loaded() {
		t.Fatal("failed load must not be cached")
	}
	got, err := l.Get(context.Background())
	if err != nil || got != eng {
		t.Fatalf("second get = %v, %v", got, err)
	}
	_, _ = l.Get(context.Background())
	if calls.Load() != 2 {
		t.Fatalf("loader calls = %d", calls.Load())
	}
}

func TestLazy_LoadsOnceUnderConcurrency(t *testing.T) {
	eng := newFixtureEngine(t)
	var calls atomic.Int32
	l := NewLazy(func(context.Context) (*Engine, error) {
		calls.Add(1)
		return eng, nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if e, err := l.Get(context.Background()); err != nil || e != eng {
				t.Errorf("get = %v, %v", e, err)
			}
		}()
	}
	wg.Wait()
	if calls.Load() != 1 {
		t.Fatalf("loader calls = %d", calls.Load())
	}
}

func TestLazy_ReadyAndNil(t *testing.T) {
	eng := newFixtureEngine(t)
	if l := Ready(eng); !l.Loaded() {
		t.Fatal("Ready should be loaded")
	}

	if _, err := NewLazy(nil).Get(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("nil loader err = %v", err)
	}
	empty := NewLazy(func(context.Context) (*Engine, error) { return nil, nil })
	if _, err := empty.Get(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("nil engine err = %v", err)
	}
}
