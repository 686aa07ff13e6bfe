package interceptor

import "sync"

type (
	// Transformer maps one value to another. It is used both for single
	// arguments and for the return value.
	Transformer func(v any) (any, error)

	// BeforeHook runs ahead of argument transformation and may edit args.
	BeforeHook func(args *Args) error

	// AfterHook sees the final result together with the transformed args.
	AfterHook func(result any, args *Args) error
)

type argTransform struct {
	position  int
	transform Transformer
}

// Wrapped is a Callable that runs target through its registered hooks and
// transformers on every invocation. Registration may happen at any time,
// including concurrently with invocations; a call uses the registries as
// they were when it started.
type Wrapped struct {
	target   Callable
	receiver any

	mu         sync.RWMutex
	before     []BeforeHook
	transforms []argTransform
	outputs    []Transformer
	after      []AfterHook
}

// New wraps target. The first receiver, if given, is what target is invoked
// against; otherwise a fresh empty Object is used.
func New(target Callable, receiver ...any) *Wrapped {
	var recv any = Object{}
	if len(receiver) > 0 {
		recv = receiver[0]
	}

	return &Wrapped{
		target:   target,
		receiver: recv,
	}
}

// Receiver returns the value target is invoked against.
func (w *Wrapped) Receiver() any {
	return w.receiver
}

// Transform replaces the argument at position with t(argument) before the
// call. Positions the call does not reach are skipped.
func (w *Wrapped) Transform(position int, t Transformer) *Wrapped {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.transforms = append(w.transforms, argTransform{position: position, transform: t})

	return w
}

// TransformOutput replaces the return value with t(value).
func (w *Wrapped) TransformOutput(t Transformer) *Wrapped {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.outputs = append(w.outputs, t)

	return w
}

func (w *Wrapped) Before(h BeforeHook) *Wrapped {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.before = append(w.before, h)

	return w
}

func (w *Wrapped) After(h AfterHook) *Wrapped {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.after = append(w.after, h)

	return w
}

// Call implements Callable. recv is ignored: the receiver bound at
// construction always wins.
func (w *Wrapped) Call(_ any, args ...any) (any, error) {
	return w.Invoke(args...)
}

// Invoke runs the pipeline: before hooks, argument transforms, target,
// output transforms, after hooks. The first error stops the pipeline and is
// returned as is.
func (w *Wrapped) Invoke(args ...any) (any, error) {
	before, transforms, outputs, after := w.snapshot()
	a := NewArgs(args...)

	for _, h := range before {
		if err := h(a); err != nil {
			return nil, err
		}
	}

	for _, t := range transforms {
		if !a.InBounds(t.position) {
			continue
		}
		v, err := t.transform(a.At(t.position))
		if err != nil {
			return nil, err
		}
		a.Set(t.position, v)
	}

	result, err := w.target.Call(w.receiver, a.Values()...)
	if err != nil {
		return nil, err
	}

	for _, t := range outputs {
		result, err = t(result)
		if err != nil {
			return nil, err
		}
	}

	for _, h := range after {
		if err := h(result, a); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// snapshot copies the slice headers only. Registries are append-only, so
// later appends never touch the elements a snapshot can see.
func (w *Wrapped) snapshot() (
	[]BeforeHook,
	[]argTransform,
	[]Transformer,
	[]AfterHook,
) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.before, w.transforms, w.outputs, w.after
}
