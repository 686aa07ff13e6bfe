package hooks_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panagiotisptr/inject/hooks"
	"github.com/panagiotisptr/inject/interceptor"
)

func Test_Metrics_Instrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := hooks.NewMetrics(reg, "inject")
	require.NoError(t, err)

	errOdd := errors.New("odd")
	w := m.Instrument("half", interceptor.Wrap(func(v int) (int, error) {
		if v%2 != 0 {
			return 0, errOdd
		}
		return v / 2, nil
	}))

	_, err = w.Invoke(4)
	require.NoError(t, err)
	_, err = w.Invoke(3)
	require.ErrorIs(t, err, errOdd)

	expected := `
# HELP inject_calls_total Invocations of intercepted functions by stage.
# TYPE inject_calls_total counter
inject_calls_total{function="half",stage="completed"} 1
inject_calls_total{function="half",stage="started"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "inject_calls_total"))
	n, err := testutil.GatherAndCount(reg, "inject_call_arguments")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func Test_Metrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := hooks.NewMetrics(reg, "inject")
	require.NoError(t, err)

	_, err = hooks.NewMetrics(reg, "inject")
	assert.Error(t, err)
}

func Test_CountCalls(t *testing.T) {
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "adds_total"})
	w := interceptor.Wrap(add).After(hooks.CountCalls(c))

	for i := 0; i < 3; i++ {
		_, err := w.Invoke(i, i)
		require.NoError(t, err)
	}

	assert.InDelta(t, 3, testutil.ToFloat64(c), 0)
}

func Test_CountArgs(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "add_arguments",
		Help:    "Argument count.",
		Buckets: []float64{1, 2},
	})
	reg.MustRegister(h)

	w := interceptor.Wrap(add).Before(hooks.CountArgs(h))
	for i := 0; i < 2; i++ {
		_, err := w.Invoke(i, i)
		require.NoError(t, err)
	}

	expected := `
# HELP add_arguments Argument count.
# TYPE add_arguments histogram
add_arguments_bucket{le="1"} 0
add_arguments_bucket{le="2"} 2
add_arguments_bucket{le="+Inf"} 2
add_arguments_sum 4
add_arguments_count 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "add_arguments"))
}
