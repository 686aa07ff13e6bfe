package future

import (
	"fmt"

	"github.com/panagiotisptr/inject/caster"
	"github.com/panagiotisptr/inject/interceptor"
)

// Wrapped is an interceptor.Wrapped whose target returns a *Future.
type Wrapped struct {
	*interceptor.Wrapped
}

// Transform, TransformOutput, Before and After shadow the embedded builder
// methods so chains keep returning a *Wrapped.

func (w *Wrapped) Transform(position int, t interceptor.Transformer) *Wrapped {
	w.Wrapped.Transform(position, t)
	return w
}

func (w *Wrapped) TransformOutput(t interceptor.Transformer) *Wrapped {
	w.Wrapped.TransformOutput(t)
	return w
}

func (w *Wrapped) Before(h interceptor.BeforeHook) *Wrapped {
	w.Wrapped.Before(h)
	return w
}

func (w *Wrapped) After(h interceptor.AfterHook) *Wrapped {
	w.Wrapped.After(h)
	return w
}

// TransformFuture registers an output transform that chains t onto the
// returned future instead of replacing it.
func (w *Wrapped) TransformFuture(t interceptor.Transformer) *Wrapped {
	w.TransformOutput(func(v any) (any, error) {
		f, ok := caster.TryCast[*Future](v)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrNotFuture, v)
		}

		return f.Then(t), nil
	})

	return w
}

// injector is the interceptor factory wrapped with itself, its output
// upgraded to a *Wrapped.
var injector = interceptor.New(interceptor.Factory).TransformOutput(func(v any) (any, error) {
	return &Wrapped{Wrapped: caster.Cast[*interceptor.Wrapped](v)}, nil
})

// Inject wraps a target that returns a *Future.
func Inject(target interceptor.Callable, receiver ...any) (*Wrapped, error) {
	out, err := injector.Invoke(append([]any{target}, receiver...)...)
	if err != nil {
		return nil, err
	}

	return caster.Cast[*Wrapped](out), nil
}
