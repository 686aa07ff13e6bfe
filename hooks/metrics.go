package hooks

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/panagiotisptr/inject/interceptor"
)

const (
	stageStarted   = "started"
	stageCompleted = "completed"
)

// Metrics counts invocations of instrumented wrappers. A call that fails
// is counted as started but never as completed.
type Metrics struct {
	calls *prometheus.CounterVec
	args  *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Invocations of intercepted functions by stage.",
		}, []string{"function", "stage"}),
		args: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "call_arguments",
			Help:      "Number of arguments intercepted functions were called with.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		}, []string{"function"}),
	}

	for _, c := range []prometheus.Collector{m.calls, m.args} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Instrument registers counting hooks on w under the given function label.
func (m *Metrics) Instrument(function string, w *interceptor.Wrapped) *interceptor.Wrapped {
	return w.
		Before(CountArgs(m.args.WithLabelValues(function))).
		Before(countStage(m.calls.WithLabelValues(function, stageStarted))).
		After(CountCalls(m.calls.WithLabelValues(function, stageCompleted)))
}

// CountCalls increments c after every successful call.
func CountCalls(c prometheus.Counter) interceptor.AfterHook {
	return func(any, *interceptor.Args) error {
		c.Inc()
		return nil
	}
}

// CountArgs observes the argument count of every call.
func CountArgs(o prometheus.Observer) interceptor.BeforeHook {
	return func(args *interceptor.Args) error {
		o.Observe(float64(args.Len()))
		return nil
	}
}

func countStage(c prometheus.Counter) interceptor.BeforeHook {
	return func(*interceptor.Args) error {
		c.Inc()
		return nil
	}
}
