package utils

func Ptr[T any](v T) *T {
	return &v
}

// OptionalPtr returns nil for the zero value, so optional parameters can be
// omitted rather than emitted empty.
func OptionalPtr[T comparable](v T) *T {
	if v == *new(T) {
		return nil
	}
	return &v
}
