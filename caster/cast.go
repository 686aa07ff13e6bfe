package caster

func Cast[T any](val interface{}) T {
	var defaultVal T
	if v, ok := val.(T); ok {
		return v
	}

	return defaultVal
}

// TryCast is Cast with the comma-ok result exposed.
func TryCast[T any](val interface{}) (T, bool) {
	v, ok := val.(T)
	return v, ok
}

// CastAt casts vals[i], yielding the zero value when i is out of range.
func CastAt[T any](vals []interface{}, i int) T {
	if i < 0 || i >= len(vals) {
		var defaultVal T
		return defaultVal
	}

	return Cast[T](vals[i])
}
