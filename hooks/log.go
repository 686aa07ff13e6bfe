// Package hooks holds ready-made hooks and transformers for
// interceptor.Wrapped.
package hooks

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/panagiotisptr/inject/interceptor"
)

// LogArgs logs the untransformed arguments at debug level.
func LogArgs(logger *slog.Logger, msg string) interceptor.BeforeHook {
	return func(args *interceptor.Args) error {
		logger.Debug(msg, slog.Any("args", args.Values()))
		return nil
	}
}

// LogResult logs the final result and arguments at info level.
func LogResult(logger *slog.Logger, msg string) interceptor.AfterHook {
	return func(result any, args *interceptor.Args) error {
		logger.Info(msg, slog.Any("result", result), slog.Any("args", args.Values()))
		return nil
	}
}

// Tee writes prefix followed by the space separated arguments to w. Write
// errors fail the call.
func Tee(w io.Writer, prefix string) interceptor.BeforeHook {
	return func(args *interceptor.Args) error {
		parts := make([]string, args.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(args.At(i))
		}
		_, err := io.WriteString(w, prefix+strings.Join(parts, " ")+"\n")

		return err
	}
}

// Prefix prepends p to the value's string form.
func Prefix(p string) interceptor.Transformer {
	return interceptor.Pure(func(v any) any {
		if s, ok := v.(string); ok {
			return p + s
		}

		return p + fmt.Sprint(v)
	})
}
