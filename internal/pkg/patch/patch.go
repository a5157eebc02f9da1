// Package patch merges partial update requests onto stored values.
// A nil field in a request means "leave as is".
package patch

func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Ref is Coalesce for fields that are themselves optional references.
func Ref[T any](next, current *T) *T {
	if next != nil {
		return next
	}
	return current
}
