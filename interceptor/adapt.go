package interceptor

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/panagiotisptr/inject/caster"
)

var (
	ErrNotFunc  = errors.New("interceptor: not a function")
	ErrArgument = errors.New("interceptor: bad argument")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FromFunc adapts an arbitrary Go function into a Callable. The receiver
// passed to Call is ignored; bind one with a method value or use Method.
//
// Arguments follow loose calling rules: missing ones are zero values and
// surplus ones are dropped (unless fn is variadic). Numeric values are
// converted between numeric kinds when that loses nothing. An explicit nil
// for a parameter that cannot be nil, a lossy numeric conversion and an
// unassignable type fail the call with ErrArgument. Results are returned as nil when fn has
// none, as the value itself when it has one, and as []any otherwise. A
// trailing error result is split off and returned as the error.
func FromFunc(fn any) (Callable, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}

	return Func(func(_ any, args ...any) (any, error) {
		return callValue(v, args)
	}), nil
}

// MustFunc is FromFunc for functions known to be valid.
func MustFunc(fn any) Callable {
	c, err := FromFunc(fn)
	if err != nil {
		panic(err)
	}

	return c
}

// Wrap is New(MustFunc(fn), receiver...).
func Wrap(fn any, receiver ...any) *Wrapped {
	return New(MustFunc(fn), receiver...)
}

// Method returns a Callable that invokes the named method on whatever
// receiver it is called with.
func Method(name string) Callable {
	return Func(func(recv any, args ...any) (any, error) {
		rv := reflect.ValueOf(recv)
		if !rv.IsValid() {
			return nil, fmt.Errorf("%w: nil receiver for method %s", ErrNotFunc, name)
		}
		m := rv.MethodByName(name)
		if !m.IsValid() {
			return nil, fmt.Errorf("%w: %T has no method %s", ErrNotFunc, recv, name)
		}

		return callValue(m, args)
	})
}

// Pure adapts a transformer that cannot fail.
func Pure(f func(v any) any) Transformer {
	return func(v any) (any, error) {
		return f(v), nil
	}
}

// Map adapts a typed transformer. Values of another type reach f as the
// zero value of T.
func Map[T any](f func(T) T) Transformer {
	return func(v any) (any, error) {
		return f(caster.Cast[T](v)), nil
	}
}

// Observe adapts a before hook that only reads the arguments.
func Observe(f func(args []any)) BeforeHook {
	return func(args *Args) error {
		f(args.Values())
		return nil
	}
}

func callValue(fn reflect.Value, args []any) (any, error) {
	in, err := convertArgs(fn.Type(), args)
	if err != nil {
		return nil, err
	}

	return collectResults(fn.Type(), fn.Call(in))
}

func convertArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		if i >= len(args) {
			in = append(in, reflect.Zero(t.In(i)))
			continue
		}
		v, err := convertArg(i, args[i], t.In(i))
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	if !t.IsVariadic() {
		return in, nil
	}

	elem := t.In(fixed).Elem()
	for i := fixed; i < len(args); i++ {
		v, err := convertArg(i, args[i], elem)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	return in, nil
}

func convertArg(i int, a any, t reflect.Type) (reflect.Value, error) {
	if a == nil {
		if !isNilable(t.Kind()) {
			return reflect.Value{}, fmt.Errorf("%w %d: nil is not a valid %s", ErrArgument, i, t)
		}

		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(a)
	switch {
	case v.Type().AssignableTo(t):
		return v, nil
	case isNumeric(v.Kind()) && isNumeric(t.Kind()):
		if !fitsNumeric(v, t) {
			return reflect.Value{}, fmt.Errorf("%w %d: %v does not fit in %s", ErrArgument, i, a, t)
		}

		return v.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w %d: cannot use %T as %s", ErrArgument, i, a, t)
	}
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}

	return false
}

// fitsNumeric reports whether v converts to t without truncation, overflow
// or a sign change.
func fitsNumeric(v reflect.Value, t reflect.Type) bool {
	dst := reflect.New(t).Elem()

	switch {
	case isInt(v.Kind()):
		n := v.Int()
		switch {
		case isInt(t.Kind()):
			return !dst.OverflowInt(n)
		case isUint(t.Kind()):
			return n >= 0 && !dst.OverflowUint(uint64(n))
		}
		return true
	case isUint(v.Kind()):
		u := v.Uint()
		switch {
		case isInt(t.Kind()):
			return u <= math.MaxInt64 && !dst.OverflowInt(int64(u))
		case isUint(t.Kind()):
			return !dst.OverflowUint(u)
		}
		return true
	}

	f := v.Float()
	switch {
	case isInt(t.Kind()):
		return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !dst.OverflowInt(int64(f))
	case isUint(t.Kind()):
		return f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 && !dst.OverflowUint(uint64(f))
	}

	return !dst.OverflowFloat(f)
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

func collectResults(t reflect.Type, out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && t.Out(n-1) == errorType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}

	vals := make([]any, len(out))
	for i := range out {
		vals[i] = out[i].Interface()
	}

	return vals, err
}
