// Package interceptor wraps callables so that their arguments and results
// can be transformed, and hooks run around them, without touching the
// callable itself.
//
//	add := interceptor.Wrap(func(a, b int) int { return a + b }).
//		Transform(1, interceptor.Map(func(v int) int { return v * 2 })).
//		TransformOutput(interceptor.Map(func(v int) int { return v + 10 }))
//
//	v, err := add.Invoke(3, 4) // 21, nil
package interceptor

import "errors"

var ErrNotCallable = errors.New("interceptor: target is not callable")

// Callable is anything that can be invoked against a receiver with a
// dynamic list of positional arguments. Wrapped values and the Factory are
// Callables too, so wrappers can be wrapped again.
type Callable interface {
	Call(recv any, args ...any) (any, error)
}

type Func func(recv any, args ...any) (any, error)

func (f Func) Call(recv any, args ...any) (any, error) {
	return f(recv, args...)
}

// Object is the receiver bound when New is given none.
type Object map[string]any

// Factory is New exposed as a Callable. Call expects the target as its
// first argument and an optional receiver as the second, and returns the
// resulting *Wrapped.
var Factory Callable = Func(func(_ any, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, ErrNotCallable
	}
	target, ok := args[0].(Callable)
	if !ok {
		return nil, ErrNotCallable
	}

	return New(target, args[1:]...), nil
})
