package interceptor

// Handler is the shape every proxied method is reduced to.
type Handler func(args ...any) (any, error)

// Interceptor decorates the handler of a named method. Unlike the hooks on
// a Wrapped, an Interceptor sees every method of a generated proxy.
type Interceptor func(
	method string,
	next Handler,
) Handler

type Chain []Interceptor

// Apply runs h for method behind the chain; the first interceptor is the
// outermost.
func (chain Chain) Apply(
	method string,
	h Handler,
	args ...any,
) (any, error) {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](method, h)
	}

	return h(args...)
}
