package hooks_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panagiotisptr/inject/hooks"
	"github.com/panagiotisptr/inject/interceptor"
)

type logHandlerSpy struct {
	mu      sync.Mutex
	records []slog.Record
}

func (s *logHandlerSpy) Handle(_ context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)

	return nil
}

func (s *logHandlerSpy) Enabled(context.Context, slog.Level) bool { return true }
func (s *logHandlerSpy) WithAttrs([]slog.Attr) slog.Handler        { return s }
func (s *logHandlerSpy) WithGroup(string) slog.Handler             { return s }

func (s *logHandlerSpy) attrs(i int) map[string]any {
	out := map[string]any{}
	s.records[i].Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})

	return out
}

func add(a, b int) int {
	return a + b
}

func Test_LogArgs_And_LogResult(t *testing.T) {
	spy := &logHandlerSpy{}
	logger := slog.New(spy)

	w := interceptor.Wrap(add).
		Before(hooks.LogArgs(logger, "add called")).
		Transform(1, interceptor.Map(func(v int) int { return v * 2 })).
		TransformOutput(interceptor.Map(func(v int) int { return v + 10 })).
		After(hooks.LogResult(logger, "add returned"))

	result, err := w.Invoke(3, 4)

	require.NoError(t, err)
	assert.Equal(t, 21, result)
	require.Len(t, spy.records, 2)

	assert.Equal(t, slog.LevelDebug, spy.records[0].Level)
	assert.Equal(t, "add called", spy.records[0].Message)
	assert.Equal(t, []any{3, 4}, spy.attrs(0)["args"])

	assert.Equal(t, slog.LevelInfo, spy.records[1].Level)
	assert.EqualValues(t, 21, spy.attrs(1)["result"])
	assert.Equal(t, []any{3, 8}, spy.attrs(1)["args"])
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func Test_Tee(t *testing.T) {
	var file, console bytes.Buffer
	consoleLog := interceptor.New(interceptor.Method("WriteString"), &console).
		Before(hooks.Tee(&file, "[LOG] "))

	_, err := consoleLog.Invoke("Hello world")
	require.NoError(t, err)
	_, err = consoleLog.Invoke("How are you?")
	require.NoError(t, err)

	assert.Equal(t, "[LOG] Hello world\n[LOG] How are you?\n", file.String())
	assert.Equal(t, "Hello worldHow are you?", console.String())
}

func Test_Tee_JoinsArguments(t *testing.T) {
	var file bytes.Buffer
	w := interceptor.Wrap(func(...any) {}).Before(hooks.Tee(&file, ""))

	_, err := w.Invoke("a", 1, true, nil)

	require.NoError(t, err)
	assert.Equal(t, "a 1 true <nil>\n", file.String())
}

func Test_Tee_WriteErrorFailsCall(t *testing.T) {
	errDisk := errors.New("disk full")
	called := false
	w := interceptor.Wrap(func() { called = true }).Before(hooks.Tee(failingWriter{err: errDisk}, ""))

	_, err := w.Invoke()

	assert.Same(t, errDisk, err)
	assert.False(t, called)
}

func Test_Prefix(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		expect string
	}{
		{name: "string", in: "hello world", expect: "[INFO] hello world"},
		{name: "number", in: 42, expect: "[INFO] 42"},
		{name: "nil", in: nil, expect: "[INFO] <nil>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := hooks.Prefix("[INFO] ")(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, out)
		})
	}
}

func Test_Prefix_AsArgumentTransform(t *testing.T) {
	var console bytes.Buffer
	log := interceptor.New(interceptor.Method("WriteString"), &console).Transform(0, hooks.Prefix("[INFO] "))

	_, err := log.Invoke("hello world")

	require.NoError(t, err)
	assert.Equal(t, "[INFO] hello world", console.String())
}
