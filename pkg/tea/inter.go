package tea

import "iter"

// Valuer is implemented by both Option[T] and Result[T, E].
type Valuer[T any] interface {
	// Get returns the value and whether it is present
	Get() (T, bool)
	// UnwrapOr returns the value or fallback
	UnwrapOr(fallback T) T
	// All yields the value at most once
	All() iter.Seq[T]
}

var (
	_ Valuer[int] = Option[int]{}
	_ Valuer[int] = Result[int, error]{}
)

// Present returns the values of every Some/Ok input, in order.
func Present[T any](values ...Valuer[T]) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		for item := range v.All() {
			out = append(out, item)
		}
	}
	return out
}
