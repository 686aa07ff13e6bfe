package interceptor

import "fmt"

// Args is the argument list of a single invocation. Hooks and transformers
// receive the same *Args, so changes made by one are seen by the next.
type Args struct {
	values []any
}

// NewArgs copies values into a new argument list.
func NewArgs(values ...any) *Args {
	a := &Args{values: make([]any, len(values))}
	copy(a.values, values)

	return a
}

func (a *Args) Len() int {
	return len(a.values)
}

func (a *Args) InBounds(i int) bool {
	return i >= 0 && i < len(a.values)
}

// At panics when i is out of range, like indexing a slice.
func (a *Args) At(i int) any {
	return a.values[i]
}

func (a *Args) Set(i int, v any) {
	a.values[i] = v
}

func (a *Args) Append(v ...any) {
	a.values = append(a.values, v...)
}

// Values returns a copy of the current arguments.
func (a *Args) Values() []any {
	out := make([]any, len(a.values))
	copy(out, a.values)

	return out
}

func (a *Args) String() string {
	return fmt.Sprint(a.values)
}
