package hooks

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/panagiotisptr/inject/interceptor"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeJSON parses a string or []byte into the generic JSON value model
// (map[string]any, []any, float64, string, bool, nil).
func DecodeJSON() interceptor.Transformer {
	return DecodeJSONInto[any]()
}

// DecodeJSONInto parses a string or []byte into a T.
func DecodeJSONInto[T any]() interceptor.Transformer {
	return func(v any) (any, error) {
		var data []byte
		switch raw := v.(type) {
		case []byte:
			data = raw
		case string:
			data = []byte(raw)
		default:
			return nil, fmt.Errorf("decode json: unsupported input %T", v)
		}

		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}

		return out, nil
	}
}

// EncodeJSON renders the value as a JSON string.
func EncodeJSON() interceptor.Transformer {
	return func(v any) (any, error) {
		s, err := json.MarshalToString(v)
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}

		return s, nil
	}
}
