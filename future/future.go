// Package future provides deferred values that flow through an
// interceptor.Wrapped as opaque results, and an injector variant that can
// transform what they eventually resolve to.
package future

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFuture = errors.New("future: value is not a *Future")
	ErrPanicked  = errors.New("future: function panicked")
)

// Future is the eventual result of an asynchronous computation. It resolves
// exactly once.
type Future struct {
	done  chan struct{}
	value any
	err   error
}

// Go runs fn on its own goroutine. A panic in fn rejects the future with
// ErrPanicked instead of crashing the process.
func Go(fn func() (any, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.value, f.err = nil, fmt.Errorf("%w: %v", ErrPanicked, r)
			}
		}()
		f.value, f.err = fn()
	}()

	return f
}

func Resolved(v any) *Future {
	f := &Future{done: make(chan struct{}), value: v}
	close(f.done)

	return f
}

func Rejected(err error) *Future {
	f := &Future{done: make(chan struct{}), err: err}
	close(f.done)

	return f
}

// Done is closed once the future has resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Then returns a future resolving to t(value). A rejected future skips t
// and passes its error on.
func (f *Future) Then(t func(v any) (any, error)) *Future {
	return Go(func() (any, error) {
		<-f.done
		if f.err != nil {
			return nil, f.err
		}

		return t(f.value)
	})
}
